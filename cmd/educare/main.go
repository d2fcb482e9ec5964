package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/educare/internal/cli"
	"github.com/alexanderramin/educare/internal/config"
	"github.com/alexanderramin/educare/internal/db"
	"github.com/alexanderramin/educare/internal/model"
	"github.com/alexanderramin/educare/internal/predictor"
	"github.com/alexanderramin/educare/internal/repository"
	"github.com/alexanderramin/educare/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app.Configure = func(configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := newLogger(cfg.Logging)
		observer := service.NewSlogUseCaseObserver(logger)

		// Model artifacts are optional; a broken set degrades to the heuristic.
		outcomeModel, notice := model.NewLoader(cfg.Model.ArtifactDir).Model()
		if notice != "" {
			logger.Warn("model artifacts unavailable", "dir", cfg.Model.ArtifactDir, "notice", notice)
		}
		p := predictor.New(outcomeModel, predictor.NewRandSource(cfg.Feedback.Seed))

		var uow db.UnitOfWork
		if cfg.History.Enabled {
			database, err = db.OpenDB(cfg.Storage.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			uow = db.NewSQLiteUnitOfWork(database)
			repo := repository.NewSQLitePredictionRepo(database)
			app.History = service.NewHistoryService(repo, cfg.History.DefaultLimit, observer)
		}

		app.Predictions = service.NewPredictionService(p, uow, []string{notice}, observer)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
