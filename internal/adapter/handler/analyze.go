package handler

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/errors"
	sessionDTO "github.com/johnquangdev/interview-practice/internal/adapter/dto/session"
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/usecase/scoring"
	"github.com/johnquangdev/interview-practice/pkg/ai"
)

// Analysis serves the response analysis endpoint used by remote scorers
type Analysis struct {
	scorer scoring.Provider
	secret string
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler. When secret is set every
// request must carry a valid X-Signature.
func NewAnalysisHandler(scorer scoring.Provider, secret string, logger *zap.Logger) *Analysis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analysis{scorer: scorer, secret: secret, logger: logger}
}

// Analyze handles POST /ai/analyze
// @Summary      Analyze an interview answer
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        X-Signature  header    string                  false  "Hex HMAC-SHA256 of the body"
// @Param        request      body      session.AnalyzeRequest  true   "Question and answer"
// @Success      200          {object}  common.SuccessResponse{data=ai.AnalyzeResponse}
// @Failure      401          {object}  common.ErrorResponse  "Invalid signature"
// @Failure      503          {object}  common.ErrorResponse  "Scoring unavailable"
// @Router       /ai/analyze [post]
func (h *Analysis) Analyze(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if h.secret != "" && !ai.VerifyHMAC(h.secret, body, c.Request().Header.Get(ai.SignatureHeader)) {
		return HandleError(h.logger, c, errors.ErrBadSignature())
	}

	var req sessionDTO.AnalyzeRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	score, err := h.scorer.Score(c.Request().Context(), entities.Question{Text: req.Question}, req.Response)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrScoringUnavailable(err))
	}

	return HandleSuccess(h.logger, c, ai.AnalyzeResponse{
		ResponseID: score.ResponseID,
		ContentAnalysis: ai.ContentAnalysis{
			Clarity:      score.ContentAnalysis.Clarity,
			Completeness: score.ContentAnalysis.Completeness,
			Relevance:    score.ContentAnalysis.Relevance,
			Structure:    score.ContentAnalysis.Structure,
		},
		DeliveryAnalysis: ai.DeliveryAnalysis{
			Confidence:   score.DeliveryAnalysis.Confidence,
			Pace:         score.DeliveryAnalysis.Pace,
			Articulation: score.DeliveryAnalysis.Articulation,
		},
		Suggestions:  score.Suggestions,
		OverallScore: score.OverallScore,
	})
}
