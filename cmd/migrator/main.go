package main

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/fastprodman/cashinreward/internal/infra/logging"
	"github.com/fastprodman/cashinreward/pkg/envconf"
)

//go:embed migrations/*.sql
var baseFS embed.FS

type migratorConfig struct {
	DSN       string     `env:"PG_DSN"`
	LogLevel  slog.Level `env:"APP_LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"APP_LOG_FORMAT" envDefault:"json"`
	// Down rolls every migration back instead of applying them.
	Down bool `env:"MIGRATE_DOWN" envDefault:"false"`
}

func main() {
	err := migrateAll()
	if err != nil {
		slog.Error("migration run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migration run finished successfully")
}

func migrateAll() error {
	_ = godotenv.Load()

	cfg := new(migratorConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.DSN == "" {
		return errors.New("PG_DSN must not be empty")
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	//nolint:errcheck
	defer db.Close()

	err = db.Ping()
	if err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("init postgres driver: %w", err)
	}

	err = runMigrations(driver, baseFS, "migrations", cfg.Down)
	if err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	slog.Info("migrations applied", "down", cfg.Down)

	return nil
}

func runMigrations(driver database.Driver, fsys embed.FS, dir string, down bool) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}
