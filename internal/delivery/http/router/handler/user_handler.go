package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/http/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Utorid string `json:"utorid" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

// UpdateUserRequest is the body of PATCH /users/:userId.
type UpdateUserRequest struct {
	Email      *string `json:"email" validate:"omitnil,email"`
	Verified   *bool   `json:"verified"`
	Suspicious *bool   `json:"suspicious"`
	Role       *string `json:"role"`
}

// UpdateMeRequest is the body of PATCH /users/me.
type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Birthday *string `json:"birthday"`
}

type listUsersQuery struct {
	Name  string `query:"name"`
	Role  string `query:"role"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

// UserDetailResponse is a user with the one-time promotions they can still use.
type UserDetailResponse struct {
	*entity.User
	Promotions []*entity.Promotion `json:"promotions"`
}

func toUserDetail(detail *usecase.UserDetail) UserDetailResponse {
	promotions := detail.Promotions
	if promotions == nil {
		promotions = []*entity.Promotion{}
	}

	return UserDetailResponse{User: detail.User, Promotions: promotions}
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Utorid: req.Utorid,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// ListUsers lists users matching the filters.
func (h *UserHandler) ListUsers(c echo.Context) error {
	var query listUsersQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ListUsersInput{
		Name:      query.Name,
		PageInput: usecase.PageInput{Page: query.Page, Limit: query.Limit},
	}
	if query.Role != "" {
		role := entity.Role(query.Role)
		input.Role = &role
	}

	var err error
	if input.Verified, err = optionalBool(c, "verified"); err != nil {
		return err
	}
	if input.Activated, err = optionalBool(c, "activated"); err != nil {
		return err
	}

	result, err := h.userUC.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetUser returns a user and the promotions still available to them.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	detail, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserDetail(detail), "")
}

// UpdateUser applies a manager's changes to another user.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpdateUserInput{
		Email:      req.Email,
		Verified:   req.Verified,
		Suspicious: req.Suspicious,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), actor, userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated")
}

// GetMe returns the caller's profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	detail, err := h.userUC.GetMe(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserDetail(detail), "")
}

// UpdateMe edits the caller's own profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateMe(c.Request().Context(), actor, usecase.UpdateMeInput{
		Name:     req.Name,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

// GetBalance returns the caller's point balance.
func (h *UserHandler) GetBalance(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	balance, err := h.userUC.GetBalance(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, balance, "")
}
