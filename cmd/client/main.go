package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/sensitivv/internal/buildinfo"
	"github.com/dmitrijs2005/sensitivv/internal/client/cli"
	"github.com/dmitrijs2005/sensitivv/internal/client/client"
	"github.com/dmitrijs2005/sensitivv/internal/client/config"
	"github.com/dmitrijs2005/sensitivv/internal/client/services"
	"github.com/dmitrijs2005/sensitivv/internal/client/session"
	"github.com/dmitrijs2005/sensitivv/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	api := client.NewHTTPClient(cfg.APIURL, cfg.RequestTimeout)
	sessions := services.NewSessionController(api, session.NewStore(db), logger)
	catalog := services.NewCatalogService(api)

	cli.NewApp(sessions, catalog, api, logger).Run(ctx)
}
