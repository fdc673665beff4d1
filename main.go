package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/app"
	"github.com/placementcell/placement-dashboard/internal/config"
	"github.com/placementcell/placement-dashboard/internal/database"
	"github.com/placementcell/placement-dashboard/internal/presentation"
	"github.com/placementcell/placement-dashboard/pkg/logger"
)

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	migrateDirection := migrateCmd.String("direction", "up", "direction of migration (up/down)")
	migrateForce := migrateCmd.Int("force", -1, "force the schema version after a failed migration")

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			migrateCmd.Parse(os.Args[2:])
			runMigrations(*migrateDirection, *migrateForce)
			return
		case "dashboard":
			runDashboard()
			return
		case "serve":
		default:
			l := logger.New()
			l.Fatal().Msgf("Unknown command %q. Use 'serve', 'migrate' or 'dashboard'", os.Args[1])
		}
	}

	cfg, log := loadConfig()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")

	application, err := app.New(cfg, log, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to run application")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown gracefully")
	}

	log.Info().Msg("Placement dashboard stopped")
}

func loadConfig() (*config.Config, zerolog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New()
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return cfg, logger.NewWithConfig(cfg.Logging.Level, cfg.Logging.Pretty, cfg.Logging.NoColor)
}

func runMigrations(direction string, force int) {
	cfg, log := loadConfig()

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	migrator, err := database.NewMigrator(db, cfg.Database.Driver)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create migrator")
	}
	defer migrator.Close()

	msg, err := migrateSchema(migrator, direction, force)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	log.Info().Msg(msg)
}

type schemaMigrator interface {
	Up() error
	Down() error
	Force(version int) error
}

// migrateSchema applies one migrate invocation. A non-negative force version only
// resets the recorded version and skips the direction.
func migrateSchema(m schemaMigrator, direction string, force int) (string, error) {
	if force >= 0 {
		if err := m.Force(force); err != nil {
			return "", err
		}
		return fmt.Sprintf("Migration version forced to %d", force), nil
	}

	switch direction {
	case "up":
		if err := m.Up(); err != nil {
			return "", err
		}
		return "Migrations applied successfully", nil
	case "down":
		if err := m.Down(); err != nil {
			return "", err
		}
		return "Migrations rolled back successfully", nil
	default:
		return "", fmt.Errorf("invalid migration direction %q, use 'up' or 'down'", direction)
	}
}

func runDashboard() {
	cfg, log := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := presentation.NewClient(cfg.Client, log)

	dashboard, err := client.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch dashboard data")
		os.Exit(1)
	}

	if err := presentation.Render(os.Stdout, presentation.BuildView(dashboard)); err != nil {
		log.Fatal().Err(err).Msg("Failed to render dashboard")
	}
}
