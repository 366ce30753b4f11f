package middleware

import (
	"strings"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		role, ok := entity.ParseRole(claims.Role)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("unknown role in token")
		}

		deliverycontext.SetActor(c, usecase.Actor{
			ID:     claims.UserID,
			Utorid: claims.Utorid,
			Role:   role,
		})

		return next(c)
	}
}

// RequireRole only lets principals at or above minimum through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(minimum entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !actor.Role.AtLeast(minimum) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + minimum.String())
			}

			return next(c)
		}
	}
}
