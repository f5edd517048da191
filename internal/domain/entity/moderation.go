package entity

import "morrison/internal/errors"

// ModerationFlag names one of the boolean moderation switches on an Account.
type ModerationFlag string

const (
	FlagBanned   ModerationFlag = "banned"
	FlagDisabled ModerationFlag = "disabled"
)

// ParseModerationFlag converts a string to a ModerationFlag.
func ParseModerationFlag(s string) (ModerationFlag, error) {
	switch ModerationFlag(s) {
	case FlagBanned, FlagDisabled:
		return ModerationFlag(s), nil
	default:
		return "", errors.Errorf("unknown moderation flag %q", s)
	}
}

// IsValid reports whether the flag is one of the known moderation flags.
func (f ModerationFlag) IsValid() bool {
	_, err := ParseModerationFlag(string(f))

	return err == nil
}

// String returns the string representation of the flag.
func (f ModerationFlag) String() string {
	return string(f)
}

// IsEligibleToAuthenticate reports whether the account may log in.
// Either moderation flag blocks authentication on its own.
func (a *Account) IsEligibleToAuthenticate() bool {
	return !a.Banned && !a.Disabled
}

// ApplyFlag sets flag to value on the account.
func (a *Account) ApplyFlag(flag ModerationFlag, value bool) {
	switch flag {
	case FlagBanned:
		a.Banned = value
	case FlagDisabled:
		a.Disabled = value
	}
}
