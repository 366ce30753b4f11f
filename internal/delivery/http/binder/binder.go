// Package binder decodes request input strictly: request bodies may only carry
// the keys declared on the target struct.
package binder

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	domainerrors "loyalty/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const unknownFieldPrefix = "json: unknown field "

// StrictBinder binds query parameters for reads and JSON bodies for writes.
type StrictBinder struct {
	defaults echo.DefaultBinder
}

// New creates a StrictBinder.
func New() *StrictBinder {
	return &StrictBinder{}
}

// Bind implements echo.Binder.
func (b *StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()

	switch req.Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if err := b.defaults.BindQueryParams(c, i); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid query parameters")
		}

		return nil
	}

	return b.bindBody(req, i)
}

func (b *StrictBinder) bindBody(req *http.Request, i any) error {
	if req.ContentLength == 0 && req.Body == http.NoBody {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return domainerrors.ErrValidationFailed.WithDetails("request body must be JSON")
	}

	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(i); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if field, ok := strings.CutPrefix(err.Error(), unknownFieldPrefix); ok {
			return domainerrors.ErrUnexpectedFields.WithDetails("unexpected field " + field)
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed JSON body")
	}

	if decoder.More() {
		return domainerrors.ErrValidationFailed.WithDetails("request body must hold a single JSON object")
	}

	return nil
}
