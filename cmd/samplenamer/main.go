// Command samplenamer generates sample filenames for a note range and
// renumbers existing audio filenames as round-robin sets.
//
// With no arguments it opens the interactive session; "generate" and
// "convert" run once and print the names to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/samplenamer/internal/config"
	"github.com/backmassage/samplenamer/internal/display"
	"github.com/backmassage/samplenamer/internal/logging"
	"github.com/backmassage/samplenamer/internal/pipeline"
	"github.com/backmassage/samplenamer/internal/tui"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "samplenamer: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "samplenamer: %v\n", err)
		return 1
	}

	if cfg.Command == config.CommandTUI {
		if err := tui.Run(&cfg); err != nil {
			fmt.Fprintf(os.Stderr, "samplenamer: %v\n", err)
			return 1
		}
		return 0
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "samplenamer: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. Names go to stdout, everything else
	// through log.
	if cfg.Verbose {
		display.PrintBanner(os.Stderr, version)
	}
	log.Debug("samplenamer v%s (%s), command %s", version, commit, cfg.Command)

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so
	// input collection stops between sources.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Run the command.
	var stats pipeline.RunStats
	switch cfg.Command {
	case config.CommandGenerate:
		stats, err = pipeline.RunGenerate(ctx, &cfg, log, os.Stdout)
	case config.CommandConvert:
		stats, err = pipeline.RunConvert(ctx, &cfg, log, os.Stdout)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted")
		} else if !errors.Is(err, pipeline.ErrInvalidRange) &&
			!errors.Is(err, pipeline.ErrAllDisabled) &&
			!errors.Is(err, pipeline.ErrNoFiles) {
			// Empty-result errors were already explained by the runner.
			log.Error("%v", err)
		}
		return 1
	}
	log.Debug("Done: %d of %d written", stats.Written, stats.Total)
	return 0
}
