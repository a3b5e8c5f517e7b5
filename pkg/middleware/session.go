package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/interview-practice/errors"
	httpmw "github.com/johnquangdev/interview-practice/internal/infrastructure/http/middleware"
	sessionUsecase "github.com/johnquangdev/interview-practice/internal/usecase/session"
)

// RequireSessionOwner middleware: a caller that identifies itself may only touch
// its own sessions. Anonymous callers and anonymous sessions are not restricted.
func RequireSessionOwner(sessionService sessionUsecase.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := httpmw.UserIDFrom(c)
			if userID == "" {
				return next(c)
			}

			s, err := sessionService.Get(c.Request().Context(), c.Param("id"))
			if err != nil {
				// the handler loads the session again and renders the mapped error
				return next(c)
			}
			if s.UserID != "" && s.UserID != userID {
				appErr := errors.ErrForbidden("Session belongs to another user").WithDetail("session_id", s.ID)
				return c.JSON(appErr.HTTPCode, map[string]interface{}{
					"code":    appErr.Code,
					"message": appErr.Message,
					"details": appErr.Details,
				})
			}
			return next(c)
		}
	}
}
