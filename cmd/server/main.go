package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sensitivv/internal/buildinfo"
	"github.com/dmitrijs2005/sensitivv/internal/logging"
	"github.com/dmitrijs2005/sensitivv/internal/server"
	"github.com/dmitrijs2005/sensitivv/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
