package handler

import (
	"net/http"

	"morrison/internal/delivery/api/response"
	"morrison/internal/domain/entity"
	"morrison/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
}

// AdminHandler serves moderation endpoints.
type AdminHandler struct {
	moderationUC usecase.ModerationUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{moderationUC: params.ModerationUC}
}

// VerifyKeyRequest is the body of POST /admin/verify.
type VerifyKeyRequest struct {
	Key string `json:"key" validate:"required"`
}

// SetFlagRequest is the body of POST /admin/flags.
type SetFlagRequest struct {
	Username string `json:"username" validate:"required"`
	Flag     string `json:"flag" validate:"required,oneof=banned disabled"`
	Value    *bool  `json:"value" validate:"required"`
}

// SetFlagResponse echoes the account after the change.
type SetFlagResponse struct {
	OK      bool                     `json:"ok"`
	Account *entity.AdminAccountView `json:"account"`
}

// VerifyKey handles POST /admin/verify so the admin panel can unlock itself.
func (h *AdminHandler) VerifyKey(c echo.Context) error {
	var req VerifyKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid admin key input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.moderationUC.VerifyAdminKey(req.Key); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"verified": true})
}

// SetFlag handles POST /admin/flags
func (h *AdminHandler) SetFlag(c echo.Context) error {
	var req SetFlagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid flag input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.setFlag(c, req.Username, req.Flag, *req.Value)
}

// FlagAction returns a handler for POST /admin/accounts/:username/<action> that sets flag to value.
func (h *AdminHandler) FlagAction(flag entity.ModerationFlag, value bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.setFlag(c, c.Param("username"), flag.String(), value)
	}
}

// ListAccounts handles GET /admin/accounts
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.moderationUC.ListAccounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"accounts": accounts})
}

func (h *AdminHandler) setFlag(c echo.Context, username, flag string, value bool) error {
	account, err := h.moderationUC.SetFlag(c.Request().Context(), &usecase.SetFlagInput{
		Username: username,
		Flag:     flag,
		Value:    value,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SetFlagResponse{OK: true, Account: account})
}
