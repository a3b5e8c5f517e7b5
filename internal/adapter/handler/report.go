package handler

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/errors"
	sessionDTO "github.com/johnquangdev/interview-practice/internal/adapter/dto/session"
	httpmw "github.com/johnquangdev/interview-practice/internal/infrastructure/http/middleware"
)

const defaultReportURLExpiry = time.Hour

// ReportArchive lists archived session reports and signs links to them
type ReportArchive interface {
	ListReports(ctx context.Context, userID string) ([]string, error)
	ReportURL(ctx context.Context, userID, sessionID string, expiry time.Duration) (string, error)
}

// Report serves archived session reports
type Report struct {
	archive ReportArchive
	expiry  time.Duration
	logger  *zap.Logger
}

// NewReportHandler creates a new report handler. archive is nil when object storage is disabled.
func NewReportHandler(archive ReportArchive, expiry time.Duration, logger *zap.Logger) *Report {
	if expiry <= 0 {
		expiry = defaultReportURLExpiry
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Report{archive: archive, expiry: expiry, logger: logger}
}

// ListReports handles GET /users/:id/reports
// @Summary      List a user's archived session reports
// @Description  Returns presigned links to the JSON reports of completed sessions
// @Tags         Users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  common.SuccessResponse{data=session.ReportListResponse}
// @Failure      403  {object}  common.ErrorResponse  "Caller is another user"
// @Failure      404  {object}  common.ErrorResponse  "Report archive disabled"
// @Failure      500  {object}  common.ErrorResponse  "Object storage failure"
// @Router       /users/{id}/reports [get]
func (h *Report) ListReports(c echo.Context) error {
	userID := strings.TrimSpace(c.Param("id"))
	if userID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("user id is required"))
	}
	if caller := httpmw.UserIDFrom(c); caller != "" && caller != userID {
		return HandleError(h.logger, c, errors.ErrForbidden("Reports belong to another user"))
	}
	if h.archive == nil {
		return HandleError(h.logger, c, errors.ErrNotFound("Report archive"))
	}

	ctx := c.Request().Context()
	ids, err := h.archive.ListReports(ctx, userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list reports", err))
	}

	expiresAt := time.Now().Add(h.expiry).UTC()
	resp := sessionDTO.ReportListResponse{
		UserID:  userID,
		Reports: make([]sessionDTO.ReportResponse, 0, len(ids)),
		Total:   len(ids),
	}
	for _, id := range ids {
		url, err := h.archive.ReportURL(ctx, userID, id, h.expiry)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrStorageFailed("sign report url", err))
		}
		resp.Reports = append(resp.Reports, sessionDTO.ReportResponse{
			SessionID: id,
			URL:       url,
			ExpiresAt: expiresAt,
		})
	}

	return HandleSuccess(h.logger, c, resp)
}
