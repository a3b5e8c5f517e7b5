package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/errors"
	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/interview-practice/internal/usecase/errors"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized success response with 201 status
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusCreated, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// toAppError maps use case errors onto API errors. Unknown errors pass through
// and end up as 500 in HandleError.
func toAppError(sessionID string, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrSessionNotFound):
		return errors.ErrSessionNotFound(sessionID)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidSettings),
		stdErrors.Is(err, entities.ErrInvalidCategory),
		stdErrors.Is(err, entities.ErrInvalidDifficulty),
		stdErrors.Is(err, entities.ErrInvalidQuestionCount):
		return errors.ErrInvalidSettings(err)
	case stdErrors.Is(err, usecaseErrors.ErrEmptySession):
		return errors.ErrEmptySession("", "").WithDetail("reason", err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrNoCurrentQuestion):
		return errors.ErrNoCurrentQuestion(sessionID, sessionStatus(err))
	case stdErrors.Is(err, usecaseErrors.ErrIncompleteSession):
		return errors.ErrIncompleteSession(sessionID)
	case stdErrors.Is(err, usecaseErrors.ErrQuestionMismatch):
		return errors.ErrQuestionMismatch(sessionID, err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidTransition),
		stdErrors.Is(err, usecaseErrors.ErrSessionAlreadyUsed):
		return errors.ErrSessionInvalidState(sessionID, err)
	case stdErrors.Is(err, usecaseErrors.ErrScoringUnavailable):
		return errors.ErrScoringUnavailable(err)
	case stdErrors.Is(err, usecaseErrors.ErrEmptyAudio):
		return errors.ErrInvalidArgument("audio file is empty")
	case stdErrors.Is(err, usecaseErrors.ErrDatabase):
		return errors.ErrDBQueryFailed(sessionStoreOperation, err)
	case stdErrors.Is(err, usecaseErrors.ErrCache):
		return errors.ErrCacheFailed(sessionStoreOperation, err)
	}
	return errors.ErrInternal(err)
}

const sessionStoreOperation = "session store"

// sessionStatus returns the status carried by a session state error
func sessionStatus(err error) string {
	var stateErr *usecaseErrors.StateError
	if stdErrors.As(err, &stateErr) {
		return stateErr.Status
	}
	return ""
}

// validationError converts a validator error into an invalid argument error
func validationError(err error) error {
	return errors.ErrInvalidArgument("validation failed").WithDetail("reason", err.Error())
}
