package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "shopfront/internal/domain/errors"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_DomainError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(domainerrors.ErrUserNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestErrorMiddleware_WrappedDomainError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(errors.WithStack(domainerrors.ErrEmailInUse), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "bad input"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad input")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	m.HandleHTTPError(errors.New("database exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	// Internals never leak to the client.
	assert.NotContains(t, rec.Body.String(), "database exploded")
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	c, rec := newErrorTestContext(t)
	_ = c.NoContent(http.StatusOK)

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
