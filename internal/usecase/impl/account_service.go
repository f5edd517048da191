// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// timingPassword is hashed once at startup so logins for unknown usernames still pay for a bcrypt compare.
const timingPassword = "morrison-unknown-account"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo       repository.AccountRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	imagePersister    service.ImagePersister
	publisher         service.EventPublisher
	metrics           service.AuthMetrics
	defaultAvatar     string
	usernameMaxLength int
	dummyHash         string
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	ImagePersister service.ImagePersister
	Publisher      service.EventPublisher
	Metrics        service.AuthMetrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		accountRepo:    params.AccountRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		imagePersister: params.ImagePersister,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		logger:         params.Logger,
	}
	if params.Config != nil && params.Config.Accounts != nil {
		srv.defaultAvatar = params.Config.Accounts.DefaultAvatar
		srv.usernameMaxLength = params.Config.Accounts.UsernameMaxLength
	}

	dummyHash, err := srv.hasher.Hash(context.Background(), timingPassword)
	if err != nil {
		srv.logger.Warn("Failed to prepare login timing hash, unknown usernames will answer faster", slog.Any("error", err))
	} else {
		srv.dummyHash = dummyHash
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the caller in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if isBlank(input.Username) || input.Password == "" {
		srv.metrics.Registration(service.OutcomeRejected)

		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}
	if err := srv.validateUsername(input.Username); err != nil {
		srv.metrics.Registration(service.OutcomeRejected)

		return nil, err
	}

	account := &entity.Account{Username: input.Username}

	if input.Avatar != "" {
		avatarRef, err := srv.persistAvatar(ctx, input.Username, input.Avatar)
		if err != nil {
			srv.metrics.Registration(service.OutcomeRejected)

			return nil, err
		}
		account.AvatarRef = &avatarRef
	}

	hash, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		srv.metrics.Registration(outcomeOf(err))
		srv.discardAvatar(ctx, account.AvatarRef)

		return nil, err
	}
	account.PasswordHash = hash

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.metrics.Registration(outcomeOf(err))
		srv.discardAvatar(ctx, account.AvatarRef)
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", input.Username))

			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	token, claims, err := srv.tokenService.Issue(account.ID, account.Username)
	if err != nil {
		srv.metrics.Registration(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.metrics.Registration(service.OutcomeSuccess)
	srv.log(ctx).Info("Account registered", slog.Int64("account_id", account.ID), slog.String("username", account.Username))
	srv.publish(ctx, &service.AccountEvent{
		Type:      service.EventAccountRegistered,
		AccountID: account.ID,
		Username:  account.Username,
	})

	return &usecase.AuthOutput{
		Account:   account.View(""),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Login verifies credentials. Unknown usernames, moderated accounts and wrong passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if isBlank(input.Username) || input.Password == "" {
		srv.metrics.Login(service.OutcomeRejected)

		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			if srv.dummyHash != "" {
				_, _ = srv.hasher.Verify(ctx, input.Password, srv.dummyHash)
			}
			srv.metrics.Login(service.OutcomeRejected)
			srv.log(ctx).Info("Login rejected", slog.String("username", input.Username), slog.String("reason", "unknown username"))

			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.metrics.Login(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	// The password is checked before moderation so a banned account costs the same bcrypt compare as any other.
	ok, err := srv.hasher.Verify(ctx, input.Password, account.PasswordHash)
	if err != nil {
		srv.metrics.Login(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.metrics.Login(service.OutcomeRejected)
		srv.log(ctx).Info("Login rejected", slog.Int64("account_id", account.ID), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !account.IsEligibleToAuthenticate() {
		srv.metrics.Login(service.OutcomeRejected)
		srv.log(ctx).Info("Login rejected", slog.Int64("account_id", account.ID), slog.String("reason", "moderated"),
			slog.Bool("banned", account.Banned), slog.Bool("disabled", account.Disabled))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, claims, err := srv.tokenService.Issue(account.ID, account.Username)
	if err != nil {
		srv.metrics.Login(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.metrics.Login(service.OutcomeSuccess)
	srv.log(ctx).Debug("Login succeeded", slog.Int64("account_id", account.ID))

	return &usecase.AuthOutput{
		Account:   account.View(srv.defaultAvatar),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// UpdateProfile applies a partial change to the caller's own account.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error) {
	if input.NewUsername == "" && input.NewPassword == "" && input.NewAvatar == "" {
		srv.metrics.ProfileUpdate(service.OutcomeRejected)

		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}

	account, err := srv.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, srv.failUpdate(err, "failed to load account for update")
	}

	newUsername := input.NewUsername
	if newUsername == account.Username {
		newUsername = ""
	}
	if newUsername != "" {
		if err := srv.validateUsername(newUsername); err != nil {
			srv.metrics.ProfileUpdate(service.OutcomeRejected)

			return nil, err
		}
	}

	// Credential changes must be confirmed with the current password.
	if newUsername != "" || input.NewPassword != "" {
		if input.CurrentPassword == "" {
			srv.metrics.ProfileUpdate(service.OutcomeRejected)

			return nil, domainerrors.ErrValidationFailed.WithDetails("current password is required to change username or password")
		}

		ok, err := srv.hasher.Verify(ctx, input.CurrentPassword, account.PasswordHash)
		if err != nil {
			return nil, srv.failUpdate(err, "failed to verify current password")
		}
		if !ok {
			srv.metrics.ProfileUpdate(service.OutcomeRejected)
			srv.log(ctx).Info("Profile update rejected, current password mismatch", slog.Int64("account_id", account.ID))

			return nil, domainerrors.ErrInvalidCredentials
		}
	}

	var update repository.AccountUpdate
	if newUsername != "" {
		update.Username = &newUsername
	}
	if input.NewAvatar != "" {
		avatarRef, err := srv.persistAvatar(ctx, account.Username, input.NewAvatar)
		if err != nil {
			srv.metrics.ProfileUpdate(service.OutcomeRejected)

			return nil, err
		}
		update.AvatarRef = &avatarRef
	}
	if input.NewPassword != "" {
		hash, err := srv.hashPassword(ctx, input.NewPassword)
		if err != nil {
			srv.metrics.ProfileUpdate(outcomeOf(err))
			srv.discardAvatar(ctx, update.AvatarRef)

			return nil, err
		}
		update.PasswordHash = &hash
	}

	if update.IsEmpty() {
		srv.metrics.ProfileUpdate(service.OutcomeSuccess)

		return &usecase.UpdateProfileOutput{Account: account.View("")}, nil
	}

	updated, err := srv.accountRepo.UpdateFields(ctx, account.ID, update)
	if err != nil {
		srv.discardAvatar(ctx, update.AvatarRef)

		return nil, srv.failUpdate(err, "failed to update account")
	}

	output := &usecase.UpdateProfileOutput{Account: updated.View("")}

	if update.Username != nil {
		token, claims, err := srv.tokenService.Issue(updated.ID, updated.Username)
		if err != nil {
			srv.metrics.ProfileUpdate(service.OutcomeError)

			return nil, errors.Wrap(err, "failed to issue token after rename")
		}
		output.Token = token
		expiresAt := claims.ExpiresAt.Time
		output.ExpiresAt = &expiresAt

		srv.publish(ctx, &service.AccountEvent{
			Type:             service.EventAccountUsernameChanged,
			AccountID:        updated.ID,
			Username:         updated.Username,
			PreviousUsername: account.Username,
		})
	}

	srv.metrics.ProfileUpdate(service.OutcomeSuccess)
	srv.log(ctx).Info("Profile updated",
		slog.Int64("account_id", updated.ID),
		slog.Bool("username_changed", update.Username != nil),
		slog.Bool("password_changed", update.PasswordHash != nil),
		slog.Bool("avatar_changed", update.AvatarRef != nil),
	)

	return output, nil
}

// CheckEligibility re-reads the account so moderation applies to tokens issued before it.
func (srv *accountService) CheckEligibility(ctx context.Context, accountID int64) error {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrInvalidCredentials
		}

		return errors.Wrap(err, "failed to load account for eligibility check")
	}

	if !account.IsEligibleToAuthenticate() {
		srv.log(ctx).Info("Request rejected, account is moderated", slog.Int64("account_id", accountID))

		return domainerrors.ErrInvalidCredentials
	}

	return nil
}

func (srv *accountService) validateUsername(username string) error {
	if strings.TrimSpace(username) != username {
		return domainerrors.ErrValidationFailed.WithDetails("username must not start or end with whitespace")
	}
	if srv.usernameMaxLength > 0 && len([]rune(username)) > srv.usernameMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("username is too long")
	}

	return nil
}

func (srv *accountService) persistAvatar(ctx context.Context, owner, dataURI string) (string, error) {
	ref, err := srv.imagePersister.Persist(ctx, owner, dataURI)
	if err != nil {
		srv.log(ctx).Warn("Avatar could not be stored", slog.String("owner", owner), slog.Any("error", err))

		return "", domainerrors.ErrInvalidImage
	}

	return ref, nil
}

// discardAvatar removes an avatar whose account write failed. Failures are logged and otherwise ignored.
func (srv *accountService) discardAvatar(ctx context.Context, ref *string) {
	if ref == nil {
		return
	}

	if err := srv.imagePersister.Delete(ctx, *ref); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned avatar", slog.String("ref", *ref), slog.Any("error", err))
	}
}

func (srv *accountService) hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := srv.hasher.Hash(ctx, password)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return "", err
		}

		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// failUpdate maps store errors for profile updates and records the outcome.
func (srv *accountService) failUpdate(err error, message string) error {
	srv.metrics.ProfileUpdate(outcomeOf(err))

	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		return err
	default:
		return errors.Wrap(err, message)
	}
}

func (srv *accountService) publish(ctx context.Context, event *service.AccountEvent) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), event)
}

// publishEvent is best-effort: a broker outage must not fail the account operation.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.AccountEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishAccountEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("type", event.Type),
			slog.Int64("account_id", event.AccountID),
			slog.Any("error", err),
		)
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		return service.OutcomeConflict
	case errors.Is(err, repository.ErrAccountNotFound),
		errors.Is(err, domainerrors.ErrValidationFailed),
		errors.Is(err, domainerrors.ErrInvalidCredentials):
		return service.OutcomeRejected
	default:
		return service.OutcomeError
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
