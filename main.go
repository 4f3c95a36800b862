// Package main implements a converter between CPR cartridge containers and raw BIN ROM dumps
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/cprgoconv/internal/cli"
	"github.com/retroenv/cprgoconv/internal/config"
	"github.com/retroenv/cprgoconv/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts.Quiet)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts.Quiet)

	if err := pipeline.New(logger).Execute(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			os.Exit(1)
		}
		logger.Error("Conversion failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, quiet bool) {
	if quiet {
		return
	}
	logger.Info("cprgoconv - CPR/BIN cartridge converter",
		log.String("version", buildinfo.Version(version, commit, date)))
}
