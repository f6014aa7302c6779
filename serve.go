package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/minidom/api"
	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/Drolfothesgnir/minidom/metrics"
	"github.com/Drolfothesgnir/minidom/tmpstore"
	"github.com/Drolfothesgnir/minidom/token"
	"github.com/Drolfothesgnir/minidom/util"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service.

The database schema is migrated on every start. Parse results are cached in
Redis, the documents are stored in PostgreSQL. The service shuts down
gracefully on SIGINT and SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals...)
	defer stop()

	// Postgres connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		return err
	}

	store := db.NewStore(conn)

	// running db migrations every time the server starts
	// it's idempotent, so the schema establishes only once if no new versions added
	if err := runDBMigration(config.MigrationURL, config.DBSource); err != nil {
		store.Shutdown()
		return err
	}

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	if err := runGinServer(ctx, waitGroup, config, store); err != nil {
		store.Shutdown()
		return err
	}

	return waitGroup.Wait()
}

func runDBMigration(migrationURL string, dbSource string) error {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}
	defer mig.Close()

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Info().Msg("db migrated successfully")
	return nil
}

func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) error {
	cache := tmpstore.NewStore(&config)

	tokenMaker, err := token.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return err
	}

	service, err := api.NewService(config, store, tokenMaker, cache, metrics.New())
	if err != nil {
		return err
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		// closing the db connection pool and the redis client
		store.Shutdown()
		if cerr := cache.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("cannot close redis client")
		}

		log.Info().Msg("HTTP server is stopped")

		return err
	})

	return nil
}
