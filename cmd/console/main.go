package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dmitrijs2005/versioncheck/internal/buildinfo"
	"github.com/dmitrijs2005/versioncheck/internal/client/cli"
	"github.com/dmitrijs2005/versioncheck/internal/client/client"
	"github.com/dmitrijs2005/versioncheck/internal/client/config"
	"github.com/dmitrijs2005/versioncheck/internal/client/credstore"
	"github.com/dmitrijs2005/versioncheck/internal/client/services"
	"github.com/dmitrijs2005/versioncheck/internal/client/session"
	"github.com/dmitrijs2005/versioncheck/internal/filex"
	"github.com/dmitrijs2005/versioncheck/internal/logging"
	"github.com/dmitrijs2005/versioncheck/internal/observability"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	if err := observability.InitSentry(cfg.SentryDSN, cfg.Environment, buildinfo.Version); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	defer observability.FlushSentry()

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return err
	}
	db, err := credstore.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer db.Close()

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	tokens := client.NewTokenClient(cfg.APIBaseURL, httpClient)
	manager := session.NewManager(credstore.NewSQLiteStore(db, nil), tokens, httpClient, session.Options{
		AccessMaxAge:    cfg.AccessTokenMaxAge,
		RefreshMaxAge:   cfg.RefreshTokenMaxAge,
		UserEmailMaxAge: cfg.UserEmailMaxAge,
		Logger:          logger,
	})
	api := client.NewAPIClient(cfg.APIBaseURL, manager)

	app := cli.NewApp(
		services.NewAuthService(tokens, manager),
		services.NewCatalogService(api),
		observability.NewSentryReporter(nil),
		logger,
		os.Stdin,
		os.Stdout,
	)
	logger.Info(ctx, "console started", "api", cfg.APIBaseURL, "database", cfg.DatabasePath)
	app.Run(ctx)
	return nil
}
