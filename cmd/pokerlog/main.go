package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/pokerlog/internal/cli"
	"github.com/alexanderramin/pokerlog/internal/config"
	"github.com/alexanderramin/pokerlog/internal/db"
	"github.com/alexanderramin/pokerlog/internal/repository"
	"github.com/alexanderramin/pokerlog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path and logging come from env vars and an optional .env file.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	ids := service.NewIdentityProvider()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, ids, observers...),
		Stats:    service.NewStatsService(sessionRepo, observers...),
		Backup:   service.NewBackupService(sessionRepo, uow, ids, observers...),
	}

	// Prompts and the dashboard need a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
