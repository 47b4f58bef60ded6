package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/waqarulwahab/autoport/internal/buildinfo"
	"github.com/waqarulwahab/autoport/internal/client/cli"
	"github.com/waqarulwahab/autoport/internal/client/config"
	"github.com/waqarulwahab/autoport/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
