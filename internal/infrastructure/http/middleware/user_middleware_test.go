package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithUser(t *testing.T, header string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	var (
		fromEcho string
		fromCtx  bool
	)
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		fromEcho = UserIDFrom(c)
		_, fromCtx = GetUserIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	}, EchoUser())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(UserIDHeader, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, fromEcho, fromCtx
}

func TestEchoUser(t *testing.T) {
	rec, id, inCtx := serveWithUser(t, "  user-42 ")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-42", id)
	assert.True(t, inCtx)
}

func TestEchoUser_Anonymous(t *testing.T) {
	rec, id, inCtx := serveWithUser(t, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, id)
	assert.False(t, inCtx)
}

func TestEchoUser_Rejects(t *testing.T) {
	for _, bad := range []string{"two words", strings.Repeat("x", maxUserIDLength+1)} {
		rec, _, _ := serveWithUser(t, bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}
