package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/delivery/http/validator"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	mockusecase "shopfront/internal/mocks/usecase"
	"shopfront/internal/usecase"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	mockUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret",
		}).
		Return(&usecase.RegisterOutput{
			User: &entity.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
		}, nil).
		Once()

	c, rec := newTestContext(t, http.MethodPost, "/user/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_Register_ValidationFailure(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	c, _ := newTestContext(t, http.MethodPost, "/user/register",
		`{"name":"Alice","email":"not-an-email","password":"secret"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Register_EmailInUse(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	mockUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailInUse).
		Once()

	c, _ := newTestContext(t, http.MethodPost, "/user/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)

	err := h.Register(c)
	require.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	mockUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{
			Email:    "alice@example.com",
			Password: "secret",
		}).
		Return(&usecase.LoginOutput{Token: "signed.jwt.token"}, nil).
		Once()

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
}

func TestAccountHandler_Login_UnknownEmail(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	mockUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserNotFound).
		Once()

	c, _ := newTestContext(t, http.MethodPost, "/login",
		`{"email":"ghost@example.com","password":"secret"}`)

	err := h.Login(c)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountHandler_GetProfile_Success(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	mockUC.EXPECT().
		GetProfile(mock.Anything, uint64(42)).
		Return(&entity.User{ID: 42, Name: "Alice", Email: "alice@example.com"}, nil).
		Once()

	c, rec := newTestContext(t, http.MethodGet, "/user/profile", "")
	deliverycontext.SetUserID(c, 42)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestAccountHandler_GetProfile_NoIdentity(t *testing.T) {
	mockUC := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(mockUC, slog.Default())

	c, _ := newTestContext(t, http.MethodGet, "/user/profile", "")

	err := h.GetProfile(c)
	require.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}
