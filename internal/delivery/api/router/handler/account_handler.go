package handler

import (
	"log/slog"
	"net/http"
	"time"

	"morrison/internal/delivery/api/middleware"
	"morrison/internal/delivery/api/response"
	"morrison/internal/domain/entity"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration and self-service profile changes.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest is the body of POST /accounts.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Avatar   string `json:"avatar"` // base64 data URI
}

// UpdateSelfRequest is the body of PATCH /accounts/self. Omitted fields are left unchanged.
type UpdateSelfRequest struct {
	NewUsername     string `json:"newUsername"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	NewAvatar       string `json:"newAvatar"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Account   *entity.AccountView `json:"account"`
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// UpdateSelfResponse carries a token only when the username changed.
type UpdateSelfResponse struct {
	Account   *entity.AccountView `json:"account"`
	Token     string              `json:"token,omitempty"`
	ExpiresAt *time.Time          `json:"expires_at,omitempty"`
}

// Register handles POST /accounts
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &AuthResponse{
		Account:   output.Account,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// UpdateSelf handles PATCH /accounts/self. The target account always comes from the token.
func (h *AccountHandler) UpdateSelf(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrTokenMissing)
	}

	var req UpdateSelfRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile update input")
	}

	output, err := h.accountUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		AccountID:       accountID,
		NewUsername:     req.NewUsername,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		NewAvatar:       req.NewAvatar,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &UpdateSelfResponse{
		Account:   output.Account,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}
