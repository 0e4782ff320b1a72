package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"eventhub/config"
	"eventhub/internal/errors"
	logs "eventhub/internal/infra/log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger, os.Args[1:]); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, args []string) error {
	if cfg.Migrate == nil || cfg.Migrate.DatabaseURL == "" {
		return errors.New("migrate.databaseUrl is not configured")
	}

	m, err := migrate.New(cfg.Migrate.Source, cfg.Migrate.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "failed to initialize migrations")
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			logger.Warn("Failed to close migration resources",
				slog.Any("source_error", sourceErr),
				slog.Any("database_error", dbErr),
			)
		}
	}()

	switch args[0] {
	case "up":
		return report(logger, m.Up(), "Migrations applied")
	case "down":
		return report(logger, m.Steps(-1), "Last migration rolled back")
	case "goto":
		if len(args) < 2 {
			return errors.New("goto requires a version")
		}
		version, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid version %q", args[1])
		}

		return report(logger, m.Migrate(uint(version)), "Migrated to version "+args[1])
	case "status":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("No migrations applied yet")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read migration version")
		}
		logger.Info("Current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command %q", args[0])
	}
}

func report(logger *slog.Logger, err error, success string) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No change: database is already up to date")

		return nil
	}
	if err != nil {
		return errors.WithStack(err)
	}
	logger.Info(success)

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("Commands:")
	fmt.Println("  up     - apply all pending migrations")
	fmt.Println("  down   - roll back the last migration")
	fmt.Println("  goto N - migrate to version N")
	fmt.Println("  status - print the current version")
}
