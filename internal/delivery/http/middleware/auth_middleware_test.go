package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		setupMock func(tokenSvc *mockSvc.MockTokenService)
		wantErr   error
		wantActor usecase.Actor
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "not a bearer token",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "token rejected",
			header: "Bearer expired",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "unknown role",
			header: "Bearer forged",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("forged").Return(&service.Claims{UserID: 1, Utorid: "someone1", Role: "admin"}, nil)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 7, Utorid: "cashier1", Role: "cashier"}, nil)
			},
			wantActor: usecase.Actor{ID: 7, Utorid: "cashier1", Role: entity.RoleCashier},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			var (
				called bool
				actor  usecase.Actor
			)
			c := newContext(tt.header)
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				actor, _ = deliverycontext.GetActor(c)

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.wantActor, actor)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("no principal", func(t *testing.T) {
		err := m.RequireRole(entity.RoleRegular)(next)(newContext(""))
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	tests := []struct {
		role    entity.Role
		minimum entity.Role
		allowed bool
	}{
		{role: entity.RoleRegular, minimum: entity.RoleRegular, allowed: true},
		{role: entity.RoleRegular, minimum: entity.RoleCashier, allowed: false},
		{role: entity.RoleManager, minimum: entity.RoleCashier, allowed: true},
		{role: entity.RoleManager, minimum: entity.RoleSuperuser, allowed: false},
		{role: entity.RoleSuperuser, minimum: entity.RoleManager, allowed: true},
	}
	for _, tt := range tests {
		t.Run(tt.role.String()+" needs "+tt.minimum.String(), func(t *testing.T) {
			c := newContext("")
			deliverycontext.SetActor(c, usecase.Actor{ID: 1, Utorid: "someone1", Role: tt.role})

			err := m.RequireRole(tt.minimum)(next)(c)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			}
		})
	}
}
