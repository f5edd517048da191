package middleware

import (
	"log/slog"
	"strings"

	"morrison/config"
	"morrison/internal/delivery/api/response"
	deliverycontext "morrison/internal/delivery/context"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/service"
	"morrison/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// HeaderAdminKey carries the static moderation key.
	HeaderAdminKey = "X-Admin-Key"

	contextKeyClaims = "claims"
	bearerScheme     = "Bearer"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	AccountUC    usecase.AccountUsecase
	ModerationUC usecase.ModerationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware provides middleware for bearer token authentication and admin authorization.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	accountUC    usecase.AccountUsecase
	moderationUC usecase.ModerationUsecase
	recheck      bool
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{
		tokenSvc:     params.TokenService,
		accountUC:    params.AccountUC,
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		m.recheck = params.Config.Auth.RecheckEligibility
	}

	return m
}

// Authenticate validates the bearer token. A missing token is 401; a bad or expired one is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrTokenMissing)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token rejected", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyClaims, claims)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Int64("account_id", claims.AccountID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// RequireAdminKey checks the X-Admin-Key header. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdminKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.moderationUC.VerifyAdminKey(c.Request().Header.Get(HeaderAdminKey)); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Admin request rejected, bad admin key", slog.String("path", c.Path()))

			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// RequireEligible re-reads the caller's account when auth.recheckEligibility is on,
// so bans apply to tokens issued before them. Otherwise it passes through.
func (m *AuthMiddleware) RequireEligible(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.recheck {
		return next
	}

	return func(c echo.Context) error {
		accountID, ok := GetAccountID(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrTokenMissing)
		}

		if err := m.accountUC.CheckEligibility(c.Request().Context(), accountID); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// GetClaims returns the verified token claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*service.Claims)

	return claims, ok && claims != nil
}

// GetAccountID returns the caller's account id from the verified token.
func GetAccountID(c echo.Context) (int64, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return 0, false
	}

	return claims.AccountID, true
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
