package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fastprodman/cashinreward/internal/api"
	"github.com/fastprodman/cashinreward/internal/auth"
	"github.com/fastprodman/cashinreward/internal/catalog"
	"github.com/fastprodman/cashinreward/internal/infra/logging"
	"github.com/fastprodman/cashinreward/internal/infra/pgutils"
	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/services/audit"
	"github.com/fastprodman/cashinreward/internal/services/wallet"
	"github.com/fastprodman/cashinreward/pkg/envconf"
	"github.com/fastprodman/cashinreward/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	// A missing .env is fine; real environment variables win either way.
	_ = godotenv.Load()

	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return errors.New("init config: JWT_SECRET must not be empty")
	}

	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Domain ---
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	opts := []wallet.Option{
		wallet.WithLogger(log),
		wallet.WithDelayScale(cfg.SubmitDelayScale),
	}

	// --- Infra ---
	var journal api.JournalReader

	if cfg.Postgres.Enabled() {
		db, err := pgutils.OpenDB(ctx, cfg.Postgres)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}

		shutdownqueue.Add("postgres", func(context.Context) error {
			return db.Close()
		})

		j := audit.New(db)
		journal = j
		opts = append(opts, wallet.WithJournal(j))

		log.Info("audit journal enabled")
	}

	svc := wallet.New(ledger.New(), cat, opts...)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	// --- HTTP server ---
	h := api.NewHandler(svc, tokens, journal, log)
	srv := api.NewServer(cfg.Port, api.NewRouter(h, cfg.CORS.AllowedOrigins))

	shutdownqueue.Add("http server", func(c context.Context) error {
		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	log.Info("API started", "port", cfg.Port)

	select {
	case <-ctx.Done():
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
