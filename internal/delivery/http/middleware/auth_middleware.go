package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/delivery/http/response"
	"shopfront/internal/domain/service"
)

// AuthMiddleware guards protected routes by verifying the bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token carried in the Authorization
// header. The header holds the raw token; a "Bearer " prefix is tolerated.
// Missing header: 401, downstream never runs. Invalid token: 403. On success
// the user's ID is attached to the request context and the chain proceeds
// exactly once.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get("Authorization")
		if tokenString == "" {
			return response.Unauthorized(c, "Token not provided")
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Forbidden(c, "Failed to authenticate token")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
