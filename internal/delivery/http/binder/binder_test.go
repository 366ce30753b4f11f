package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "loyalty/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transferBody struct {
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
	Remark string `json:"remark"`
}

type listQuery struct {
	Name  string `query:"name"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

func newContext(method, target, body, contentType string) echo.Context {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestStrictBinder_Body(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        transferBody
		wantErr     error
	}{
		{
			name:        "declared keys",
			body:        `{"type":"transfer","amount":25,"remark":"lunch"}`,
			contentType: echo.MIMEApplicationJSON,
			want:        transferBody{Type: "transfer", Amount: 25, Remark: "lunch"},
		},
		{
			name:        "charset suffix",
			body:        `{"type":"transfer","amount":5}`,
			contentType: echo.MIMEApplicationJSONCharsetUTF8,
			want:        transferBody{Type: "transfer", Amount: 5},
		},
		{
			name: "empty body",
		},
		{
			name:        "unknown key",
			body:        `{"type":"transfer","amount":25,"bonus":10}`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     domainerrors.ErrUnexpectedFields,
		},
		{
			name:        "malformed json",
			body:        `{"type":`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     domainerrors.ErrValidationFailed,
		},
		{
			name:        "wrong type",
			body:        `{"amount":"lots"}`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     domainerrors.ErrValidationFailed,
		},
		{
			name:        "trailing document",
			body:        `{"amount":1}{"amount":2}`,
			contentType: echo.MIMEApplicationJSON,
			wantErr:     domainerrors.ErrValidationFailed,
		},
		{
			name:        "form body",
			body:        "amount=25",
			contentType: echo.MIMEApplicationForm,
			wantErr:     domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got transferBody
			err := New().Bind(&got, newContext(http.MethodPost, "/users/me/transactions", tt.body, tt.contentType))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrictBinder_Query(t *testing.T) {
	t.Run("binds query on GET", func(t *testing.T) {
		var got listQuery
		err := New().Bind(&got, newContext(http.MethodGet, "/users?name=ali&page=2&limit=5", "", ""))

		require.NoError(t, err)
		assert.Equal(t, listQuery{Name: "ali", Page: 2, Limit: 5}, got)
	})

	t.Run("rejects non numeric page", func(t *testing.T) {
		var got listQuery
		err := New().Bind(&got, newContext(http.MethodGet, "/users?page=two", "", ""))

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
