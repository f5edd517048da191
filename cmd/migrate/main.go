package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"morrison/config"
	logs "morrison/internal/infra/log"
	"morrison/internal/infra/persistence/database"

	"github.com/pkg/errors"
)

// Supported commands:
// - up:     apply all pending migrations
// - down:   roll back the latest migration
// - status: print applied and pending migrations

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(context.Background(), flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %+v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	switch command {
	case database.MigrateUp, database.MigrateDown, database.MigrateStatus:
	default:
		return errors.Errorf("unknown command %q", command)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	if err := database.Migrate(ctx, db, cfg.Database.Driver, command); err != nil {
		return err
	}

	logger.Info("Migration finished", slog.String("command", command), slog.String("driver", cfg.Database.Driver))

	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status>")
}
