package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/errors"
	sessionDTO "github.com/johnquangdev/interview-practice/internal/adapter/dto/session"
	"github.com/johnquangdev/interview-practice/internal/adapter/presenter"
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/usecase/question"
)

// Catalog serves the read-only question bank
type Catalog struct {
	bank   *question.Bank
	logger *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(bank *question.Bank, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{bank: bank, logger: logger}
}

// GetCatalog handles GET /catalog
// @Summary      List categories, difficulties and question types
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=question.Catalog}
// @Router       /catalog [get]
func (h *Catalog) GetCatalog(c echo.Context) error {
	return HandleSuccess(h.logger, c, h.bank.Catalog())
}

// ListQuestions handles GET /questions
// @Summary      Browse the question bank
// @Tags         Catalog
// @Produce      json
// @Param        category    query     string  false  "Question category"
// @Param        difficulty  query     string  false  "Difficulty"
// @Param        type        query     string  false  "Question type"
// @Success      200         {object}  common.SuccessResponse{data=session.QuestionListResponse}
// @Failure      400         {object}  common.ErrorResponse  "Invalid filter"
// @Router       /questions [get]
func (h *Catalog) ListQuestions(c echo.Context) error {
	var req sessionDTO.ListQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	var filters []question.Predicate
	if req.Category != "" {
		filters = append(filters, question.ByCategory(entities.QuestionCategory(req.Category)))
	}
	if req.Difficulty != "" {
		filters = append(filters, question.ByDifficulty(entities.Difficulty(req.Difficulty)))
	}
	if req.Type != "" {
		filters = append(filters, question.ByType(entities.QuestionType(req.Type)))
	}

	return HandleSuccess(h.logger, c, presenter.ToQuestionListResponse(h.bank.Find(question.All(filters...))))
}
