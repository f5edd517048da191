// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"morrison/internal/domain/entity"
	"morrison/internal/errors"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountUpdate lists the columns a profile update may touch.
// A nil field is left unchanged.
type AccountUpdate struct {
	Username     *string
	PasswordHash *string
	AvatarRef    *string
}

// IsEmpty reports whether the update would change nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.Username == nil && u.PasswordHash == nil && u.AvatarRef == nil
}

// AccountRepository defines persistence for accounts.
// Username uniqueness is enforced by the store; a collision surfaces as domain errors.ErrUsernameTaken.
type AccountRepository interface {
	// Create inserts the account and fills in its ID and timestamps.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername retrieves an account by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves an account by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// UpdateFields applies the non-nil fields of update atomically and returns the stored result.
	UpdateFields(ctx context.Context, id int64, update AccountUpdate) (*entity.Account, error)

	// SetModerationFlag sets a moderation flag on the account with the given username.
	SetModerationFlag(ctx context.Context, username string, flag entity.ModerationFlag, value bool) (*entity.Account, error)

	// List returns every account ordered by ID.
	List(ctx context.Context) ([]*entity.Account, error)
}
