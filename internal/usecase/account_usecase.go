// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"morrison/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username string
	Password string
	Avatar   string // Optional base64 data URI
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateProfileInput describes a partial profile change. Empty strings mean "leave unchanged".
type UpdateProfileInput struct {
	AccountID       int64 // Taken from the verified token, never from the request body.
	NewUsername     string
	CurrentPassword string
	NewPassword     string
	NewAvatar       string
}

// --- Output DTOs ---

// AuthOutput is returned by registration and login.
type AuthOutput struct {
	Account   *entity.AccountView
	Token     string
	ExpiresAt time.Time
}

// UpdateProfileOutput carries the stored account and, after a rename, a token bound to the new username.
type UpdateProfileOutput struct {
	Account   *entity.AccountView
	Token     string
	ExpiresAt *time.Time
}

// AccountUsecase defines the interface for credential and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)

	// CheckEligibility loads the account and fails unless it exists and may authenticate.
	CheckEligibility(ctx context.Context, accountID int64) error
}
