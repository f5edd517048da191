package handler

import (
	"net/http"
	"time"

	"morrison/internal/delivery/api/middleware"
	"morrison/internal/delivery/api/response"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// SessionHandler issues tokens and reports on the caller's token.
type SessionHandler struct {
	accountUC usecase.AccountUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{accountUC: params.AccountUC}
}

// LoginRequest is the body of POST /sessions.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Identity is what a verified token asserts.
type Identity struct {
	AccountID int64     `json:"account_id"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CurrentSessionResponse is returned by GET /sessions/current.
type CurrentSessionResponse struct {
	Valid    bool      `json:"valid"`
	Identity *Identity `json:"identity"`
}

// Login handles POST /sessions
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		Account:   output.Account,
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Current handles GET /sessions/current. It never touches the store.
func (h *SessionHandler) Current(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrTokenMissing)
	}

	identity := &Identity{
		AccountID: claims.AccountID,
		Username:  claims.Username,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return response.Success(c, http.StatusOK, &CurrentSessionResponse{Valid: true, Identity: identity})
}
