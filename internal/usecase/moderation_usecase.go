package usecase

import (
	"context"

	"morrison/internal/domain/entity"
)

// SetFlagInput names the account and the moderation flag to change.
type SetFlagInput struct {
	Username string
	Flag     string
	Value    bool
}

// ModerationUsecase defines administrative operations on accounts.
type ModerationUsecase interface {
	// VerifyAdminKey fails with an auth error unless key matches the configured admin key.
	VerifyAdminKey(key string) error

	SetFlag(ctx context.Context, input *SetFlagInput) (*entity.AdminAccountView, error)
	ListAccounts(ctx context.Context) ([]*entity.AdminAccountView, error)
}
