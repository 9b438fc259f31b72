package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/gophfit/internal/buildinfo"
	"github.com/dmitrijs2005/gophfit/internal/logging"
	"github.com/dmitrijs2005/gophfit/internal/tracker/cli"
	"github.com/dmitrijs2005/gophfit/internal/tracker/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log, color.Output)
	if err != nil {
		log.Error(ctx, "failed to start", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx, os.Stdin)

}
