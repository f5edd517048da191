package impl

import (
	"context"
	"log/slog"

	"morrison/config"
	deliverycontext "morrison/internal/delivery/context"
	"morrison/internal/domain/entity"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/repository"
	"morrison/internal/domain/service"
	"morrison/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// moderationService implements the ModerationUsecase interface.
type moderationService struct {
	accountRepo   repository.AccountRepository
	adminKey      service.AdminKeyVerifier
	publisher     service.EventPublisher
	metrics       service.AuthMetrics
	defaultAvatar string
	logger        *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	AdminKey    service.AdminKeyVerifier
	Publisher   service.EventPublisher
	Metrics     service.AuthMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewModerationService is the constructor for moderationService.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	srv := &moderationService{
		accountRepo: params.AccountRepo,
		adminKey:    params.AdminKey,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Accounts != nil {
		srv.defaultAvatar = params.Config.Accounts.DefaultAvatar
	}

	return srv
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyAdminKey checks key in constant time.
func (srv *moderationService) VerifyAdminKey(key string) error {
	if !srv.adminKey.Verify(key) {
		return domainerrors.ErrAdminKeyInvalid
	}

	return nil
}

// SetFlag sets or clears a moderation flag on the named account.
func (srv *moderationService) SetFlag(ctx context.Context, input *usecase.SetFlagInput) (*entity.AdminAccountView, error) {
	flag, err := entity.ParseModerationFlag(input.Flag)
	if err != nil {
		srv.metrics.Moderation(input.Flag, service.OutcomeRejected)

		return nil, domainerrors.ErrValidationFailed.WithDetails("flag must be one of: banned, disabled")
	}
	if isBlank(input.Username) {
		srv.metrics.Moderation(flag.String(), service.OutcomeRejected)

		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	account, err := srv.accountRepo.SetModerationFlag(ctx, input.Username, flag, input.Value)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.metrics.Moderation(flag.String(), service.OutcomeRejected)

			return nil, domainerrors.ErrAccountNotFound
		}
		srv.metrics.Moderation(flag.String(), service.OutcomeError)

		return nil, errors.Wrap(err, "failed to set moderation flag")
	}

	srv.metrics.Moderation(flag.String(), service.OutcomeSuccess)
	srv.log(ctx).Info("Moderation flag changed",
		slog.Int64("account_id", account.ID),
		slog.String("username", account.Username),
		slog.String("flag", flag.String()),
		slog.Bool("value", input.Value),
	)

	value := input.Value
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AccountEvent{
		Type:      service.EventAccountModerationChanged,
		AccountID: account.ID,
		Username:  account.Username,
		Flag:      flag.String(),
		Value:     &value,
	})

	return account.AdminView(srv.defaultAvatar), nil
}

// ListAccounts returns every account with its moderation state.
func (srv *moderationService) ListAccounts(ctx context.Context) ([]*entity.AdminAccountView, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	views := make([]*entity.AdminAccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.AdminView(srv.defaultAvatar))
	}

	return views, nil
}
