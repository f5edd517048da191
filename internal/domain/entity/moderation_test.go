package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEligibleToAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		banned   bool
		disabled bool
		want     bool
	}{
		{name: "clean account", want: true},
		{name: "banned", banned: true, want: false},
		{name: "disabled", disabled: true, want: false},
		{name: "banned and disabled", banned: true, disabled: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{Banned: tt.banned, Disabled: tt.disabled}
			assert.Equal(t, tt.want, account.IsEligibleToAuthenticate())
		})
	}
}

func TestParseModerationFlag(t *testing.T) {
	flag, err := ParseModerationFlag("banned")
	require.NoError(t, err)
	assert.Equal(t, FlagBanned, flag)

	flag, err = ParseModerationFlag("disabled")
	require.NoError(t, err)
	assert.Equal(t, FlagDisabled, flag)

	_, err = ParseModerationFlag("admin")
	require.Error(t, err)
	assert.False(t, ModerationFlag("Banned").IsValid())
}

func TestApplyFlag_IsIndependent(t *testing.T) {
	account := &Account{}

	account.ApplyFlag(FlagBanned, true)
	assert.True(t, account.Banned)
	assert.False(t, account.Disabled)

	account.ApplyFlag(FlagDisabled, true)
	account.ApplyFlag(FlagBanned, false)
	assert.False(t, account.Banned)
	assert.True(t, account.Disabled)
	assert.False(t, account.IsEligibleToAuthenticate())
}

func TestView_SubstitutesDefaultAvatar(t *testing.T) {
	const fallback = "https://example.com/default.png"

	account := &Account{ID: 7, Username: "ana"}
	assert.Equal(t, &AccountView{ID: 7, Username: "ana", Avatar: fallback}, account.View(fallback))

	empty := ""
	account.AvatarRef = &empty
	assert.Equal(t, fallback, account.View(fallback).Avatar)

	avatar := "/uploads/avatars/user-7.png"
	account.AvatarRef = &avatar
	assert.Equal(t, avatar, account.View(fallback).Avatar)
	assert.Equal(t, avatar, account.AdminView(fallback).Avatar)
}
