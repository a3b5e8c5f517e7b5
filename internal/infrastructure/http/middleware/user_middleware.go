package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// UserIDContextKey is the context key for the calling user id
	UserIDContextKey ContextKey = "user_id"

	// UserIDHeader identifies the caller. There is no authentication, the id only scopes history.
	UserIDHeader = "X-User-ID"

	maxUserIDLength = 128
)

// EchoUser returns an Echo middleware that reads X-User-ID and sets "user_id"
// (string) into both the Echo context and the request context. Malformed ids
// are rejected with 400.
func EchoUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if userID == "" {
				return next(c)
			}
			if !validUserID(userID) {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid X-User-ID header")
			}

			c.Set(string(UserIDContextKey), userID)
			ctx := context.WithValue(c.Request().Context(), UserIDContextKey, userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserIDFrom returns the caller id set by EchoUser, or "" for anonymous calls
func UserIDFrom(c echo.Context) string {
	userID, _ := c.Get(string(UserIDContextKey)).(string)
	return userID
}

// GetUserIDFromContext retrieves the caller id from a request context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}

// validUserID accepts printable ids without spaces, e.g. uuids or emails
func validUserID(id string) bool {
	if len(id) > maxUserIDLength {
		return false
	}
	for _, r := range id {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
