package database

import (
	"context"
	"embed"
	"sync"

	"morrison/config"
	"morrison/internal/errors"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migration commands understood by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// goose keeps its dialect and filesystem in package globals.
var gooseMu sync.Mutex

// Migrate runs a goose command against the embedded migrations for driver.
func Migrate(ctx context.Context, db *gorm.DB, driver, command string) error {
	var dialect, dir string
	switch driver {
	case config.DriverPostgres:
		dialect, dir = "postgres", "migrations/postgres"
	case config.DriverSQLite:
		dialect, dir = "sqlite3", "migrations/sqlite"
	default:
		return errors.Errorf("no migrations for driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, sqlDB, dir)
	case MigrateDown:
		err = goose.DownContext(ctx, sqlDB, dir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, sqlDB, dir)
	default:
		return errors.Errorf("unknown migration command %q", command)
	}

	return errors.Wrapf(err, "goose %s", command)
}
