package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/guessipedia/guessipedia/internal/config"
	"github.com/guessipedia/guessipedia/internal/game"
	"github.com/guessipedia/guessipedia/internal/geocoding"
	"github.com/guessipedia/guessipedia/internal/telemetry"
	"github.com/guessipedia/guessipedia/internal/ui"
	"github.com/guessipedia/guessipedia/internal/wiki"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("Telemetry shutdown failed", "error", err)
		}
	}()

	geocoder, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:   geocoding.ProviderType(cfg.Geocoder),
		APIKey: cfg.GeocoderAPIKey,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating geocoding provider: %w", err)
	}
	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.Geocoder)

	articles := wiki.New(logger, cfg.WikiLanguage, cfg.WikiTimeout, cfg.SampleRadius)

	colored := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	printer := ui.NewPrinter(os.Stdout, colored)

	return game.New(logger, articles, geocoder, printer, os.Stdin).Run(ctx)
}

func init() {
	rootCmd.AddCommand(playCmd)
}
