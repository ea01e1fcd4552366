// Command skylapse is the entrypoint for the satellite timelapse builder.
// It parses flags, validates config, and either runs system diagnostics
// (--check) or the list/fetch/encode pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/skylapse/internal/check"
	"github.com/backmassage/skylapse/internal/config"
	"github.com/backmassage/skylapse/internal/display"
	"github.com/backmassage/skylapse/internal/logging"
	"github.com/backmassage/skylapse/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load config from defaults, optional file, and CLI flags; exit on
	// parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "skylapse: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "skylapse: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skylapse: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for system check, run it and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// 3. Output directory is created if needed.
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}

	log.Info("=== Skylapse v%s (%s) ===", version, commit)
	log.Info("Source: %s", cfg.SourceURL)
	log.Info("Out:    %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	// 4. Ensure ffmpeg and libx264 work before touching the network.
	if !cfg.DryRun {
		if err := check.CheckDeps(&cfg); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	// 5. Run the pipeline. Ctrl-C cancels in-flight fetches and the encoder.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}
	return 0
}
