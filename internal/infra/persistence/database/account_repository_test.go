package database

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"morrison/config"
	"morrison/internal/domain/entity"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/repository"
	"morrison/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "accounts.db"), slog.Default(), nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite, MigrateUp))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createAccount(t *testing.T, repo repository.AccountRepository, username string) *entity.Account {
	t.Helper()

	account := &entity.Account{Username: username, PasswordHash: "hash-" + username}
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func strPtr(s string) *string { return &s }

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	avatar := "/uploads/avatars/ana.png"
	account := &entity.Account{Username: "ana", PasswordHash: "hash", AvatarRef: &avatar}
	require.NoError(t, repo.Create(ctx, account))
	assert.Positive(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	byName, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byName.ID)
	assert.Equal(t, "hash", byName.PasswordHash)
	require.NotNil(t, byName.AvatarRef)
	assert.Equal(t, avatar, *byName.AvatarRef)
	assert.False(t, byName.Banned)
	assert.False(t, byName.Disabled)

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", byID.Username)
}

func TestAccountRepository_NotFound(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "ghost")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	_, err = repo.UpdateFields(ctx, 999, repository.AccountUpdate{AvatarRef: strPtr("x")})
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))

	_, err = repo.SetModerationFlag(ctx, "ghost", entity.FlagBanned, true)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	createAccount(t, repo, "ana")

	err := repo.Create(context.Background(), &entity.Account{Username: "ana", PasswordHash: "other"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountRepository_UsernameIsCaseSensitive(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	createAccount(t, repo, "ana")
	createAccount(t, repo, "Ana")

	_, err := repo.FindByUsername(context.Background(), "ANA")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_ConcurrentRegistration(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := repo.Create(context.Background(), &entity.Account{Username: "race", PasswordHash: "hash"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrUsernameTaken):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	var count int64
	require.NoError(t, db.Model(&model.AccountModel{}).Where("username = ?", "race").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAccountRepository_UpdateFieldsIsMinimal(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	original := createAccount(t, repo, "ana")

	updated, err := repo.UpdateFields(ctx, original.ID, repository.AccountUpdate{AvatarRef: strPtr("/uploads/a.png")})
	require.NoError(t, err)
	assert.Equal(t, "ana", updated.Username)
	assert.Equal(t, original.PasswordHash, updated.PasswordHash)
	require.NotNil(t, updated.AvatarRef)
	assert.Equal(t, "/uploads/a.png", *updated.AvatarRef)

	updated, err = repo.UpdateFields(ctx, original.ID, repository.AccountUpdate{
		Username:     strPtr("ana2"),
		PasswordHash: strPtr("new-hash"),
	})
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "ana2", updated.Username)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Equal(t, "/uploads/a.png", *updated.AvatarRef, "avatar untouched")

	_, err = repo.FindByUsername(ctx, "ana")
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_UpdateFieldsCollisionIsAtomic(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()

	ana := createAccount(t, repo, "ana")
	createAccount(t, repo, "bob")

	_, err := repo.UpdateFields(ctx, ana.ID, repository.AccountUpdate{
		Username:     strPtr("bob"),
		PasswordHash: strPtr("should-not-land"),
		AvatarRef:    strPtr("/uploads/nope.png"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	reloaded, err := repo.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", reloaded.Username)
	assert.Equal(t, ana.PasswordHash, reloaded.PasswordHash)
	assert.Nil(t, reloaded.AvatarRef)
}

func TestAccountRepository_UpdateFieldsEmpty(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ana := createAccount(t, repo, "ana")

	got, err := repo.UpdateFields(context.Background(), ana.ID, repository.AccountUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)
}

func TestAccountRepository_SetModerationFlag(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))
	ctx := context.Background()
	createAccount(t, repo, "ana")

	account, err := repo.SetModerationFlag(ctx, "ana", entity.FlagBanned, true)
	require.NoError(t, err)
	assert.True(t, account.Banned)
	assert.False(t, account.Disabled)

	account, err = repo.SetModerationFlag(ctx, "ana", entity.FlagDisabled, true)
	require.NoError(t, err)
	assert.True(t, account.Banned)
	assert.True(t, account.Disabled)

	account, err = repo.SetModerationFlag(ctx, "ana", entity.FlagBanned, false)
	require.NoError(t, err)
	assert.False(t, account.Banned)
	assert.True(t, account.Disabled)

	_, err = repo.SetModerationFlag(ctx, "ana", entity.ModerationFlag("admin"), true)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountRepository_List(t *testing.T) {
	repo := NewAccountRepository(newTestDB(t))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)

	createAccount(t, repo, "carol")
	createAccount(t, repo, "ana")

	accounts, err = repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "carol", accounts[0].Username)
	assert.Equal(t, "ana", accounts[1].Username)
}

func TestMigrate_UnknownInput(t *testing.T) {
	db := newTestDB(t)

	assert.Error(t, Migrate(context.Background(), db, "mysql", MigrateUp))
	assert.Error(t, Migrate(context.Background(), db, config.DriverSQLite, "sideways"))
	assert.NoError(t, Migrate(context.Background(), db, config.DriverSQLite, MigrateStatus))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := Open(cfg, slog.Default())
	assert.Error(t, err)
}
