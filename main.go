// Package main implements the main entry point for a flat linker image to LoROM converter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/lorommap/internal/cli"
	"github.com/retroenv/lorommap/internal/config"
	"github.com/retroenv/lorommap/internal/fileprocessor"
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
			fileprocessor.PrintBanner(os.Stdout, opts, buildinfo.Version(version, commit, date))
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(os.Stdout, opts, buildinfo.Version(version, commit, date))

	processor := fileprocessor.New(logger, os.Stdout)
	if _, err := processor.ProcessFile(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
		} else {
			logger.Error("Converting failed", log.Err(err))
		}
		os.Exit(1)
	}
}
