// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/delivery/http/response"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentActor returns the principal set by AuthMiddleware.Authenticate.
func currentActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(err)
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// optionalBool reads a query flag, nil when absent.
func optionalBool(c echo.Context, name string) (*bool, error) {
	if !c.QueryParams().Has(name) {
		return nil, nil
	}

	var value bool
	if err := echo.QueryParamsBinder(c).Bool(name, &value).BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be true or false")
	}

	return &value, nil
}

// optionalInt64 reads a numeric query parameter, nil when absent.
func optionalInt64(c echo.Context, name string) (*int64, error) {
	if !c.QueryParams().Has(name) {
		return nil, nil
	}

	var value int64
	if err := echo.QueryParamsBinder(c).Int64(name, &value).BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return &value, nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
