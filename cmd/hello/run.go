package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hello/internal/config"
	"github.com/vovakirdan/tui-hello/internal/core"
	"github.com/vovakirdan/tui-hello/internal/cycler"
	"github.com/vovakirdan/tui-hello/internal/logging"
	"github.com/vovakirdan/tui-hello/internal/page"
	"github.com/vovakirdan/tui-hello/internal/platform/tui"
)

func runPage(_ *cobra.Command, _ []string) {
	if err := showPage(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showPage() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if err := core.DefaultPalette.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc := page.Default()

	if settings.Display.Headless {
		return runHeadless(ctx, doc, settings)
	}
	return runTUI(ctx, doc, settings)
}

// loadSettings reads the settings file and applies command-line overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}

	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	if flagHeadless {
		settings.Display.Headless = true
	}
	// Nothing to draw on
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		settings.Display.Headless = true
	}

	return settings, settings.Validate()
}

func runTUI(ctx context.Context, doc *page.Document, settings config.Settings) error {
	logger, closeLog, err := logging.ForTUI(settings.Log)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	// Get terminal size for the first frame
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(ctx, doc, cfg, settings.Display, logger); err != nil {
		return fmt.Errorf("running page: %w", err)
	}
	return nil
}

func runHeadless(ctx context.Context, doc *page.Document, settings config.Settings) error {
	logger, err := logging.New(os.Stderr, settings.Log)
	if err != nil {
		return err
	}

	runner := cycler.NewRunner(cycler.Attach(doc),
		cycler.WithLogger(logger),
		cycler.WithOnTick(func(tick uint64, color string) {
			fmt.Printf("%d %s\n", tick, color)
		}),
	)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
