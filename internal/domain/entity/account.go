// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is a registered identity on the site.
// Username is unique across accounts and compared case-sensitively.
type Account struct {
	ID           int64     // Store-assigned identifier, never changes.
	Username     string    // Public login name.
	PasswordHash string    // bcrypt hash; never leaves the service.
	AvatarRef    *string   // Public path or URL of the avatar; nil when none was uploaded.
	Banned       bool      // Set by moderators; blocks login.
	Disabled     bool      // Set by moderators; blocks login.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time
}

// AvatarOr returns the stored avatar or fallback when none is set.
func (a *Account) AvatarOr(fallback string) string {
	if a.AvatarRef == nil || *a.AvatarRef == "" {
		return fallback
	}

	return *a.AvatarRef
}

// AccountView is the client-facing projection of an Account.
type AccountView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// AdminAccountView is what moderators see when listing accounts.
type AdminAccountView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Banned    bool      `json:"banned"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
}

// View projects the account for clients. An absent avatar renders as fallback.
func (a *Account) View(fallback string) *AccountView {
	return &AccountView{
		ID:       a.ID,
		Username: a.Username,
		Avatar:   a.AvatarOr(fallback),
	}
}

// AdminView projects the account including its moderation state.
func (a *Account) AdminView(fallback string) *AdminAccountView {
	return &AdminAccountView{
		ID:        a.ID,
		Username:  a.Username,
		Avatar:    a.AvatarOr(fallback),
		Banned:    a.Banned,
		Disabled:  a.Disabled,
		CreatedAt: a.CreatedAt,
	}
}
