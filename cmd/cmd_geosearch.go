package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guessipedia/guessipedia/internal/config"
	"github.com/guessipedia/guessipedia/internal/geo"
	"github.com/guessipedia/guessipedia/internal/geocoding"
	"github.com/guessipedia/guessipedia/internal/models"
	"github.com/guessipedia/guessipedia/internal/wiki"
)

var geosearchOptions struct {
	lat       string
	lon       string
	radius    int
	limit     int
	summaries bool
}

var geosearchCmd = &cobra.Command{
	Use:   "geosearch [address]",
	Short: "List geotagged Wikipedia articles near a place",
	Long: `
geosearch lists the geotagged Wikipedia articles around a point, the same
lookup the game uses to build its rounds. The point is either an address
resolved through the configured geocoder, or explicit --lat/--lon
coordinates. Coordinates accept decimal degrees with an optional hemisphere
suffix, e.g. --lat 60.45N --lon 22.26E.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg := config.MustLoad()
		logger := setupLogger(cfg.Env)

		position, err := resolvePosition(ctx, cfg, logger, args)
		if err != nil {
			return err
		}

		client := wiki.New(logger, cfg.WikiLanguage, cfg.WikiTimeout, cfg.SampleRadius)
		articles, err := client.SearchNearby(ctx, position, geosearchOptions.radius, geosearchOptions.limit)
		if err != nil {
			return fmt.Errorf("searching near %s: %w", position, err)
		}
		if len(articles) == 0 {
			cmd.Printf("No geotagged articles within %dm of %s.\n", geosearchOptions.radius, position)
			return nil
		}

		for _, article := range articles {
			cmd.Printf("%s (%s)\n", article.Title, article.Position)
			if geosearchOptions.summaries {
				cmd.Printf("  %s\n", client.Summary(ctx, article.PageID, 2))
			}
		}

		return nil
	},
}

// resolvePosition picks the search point: explicit coordinates win over the
// address argument.
func resolvePosition(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	args []string,
) (models.Coordinates, error) {
	if geosearchOptions.lat != "" || geosearchOptions.lon != "" {
		position, err := geo.Parse(geosearchOptions.lat, geosearchOptions.lon)
		if err != nil {
			return models.Coordinates{}, fmt.Errorf("parsing --lat/--lon: %w", err)
		}
		return position, nil
	}

	if len(args) == 0 {
		return models.Coordinates{}, errors.New("an address argument or --lat/--lon is required")
	}

	geocoder, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:   geocoding.ProviderType(cfg.Geocoder),
		APIKey: cfg.GeocoderAPIKey,
		Logger: logger,
	})
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("creating geocoding provider: %w", err)
	}

	coords, err := geocoder.Geocode(ctx, args[0])
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("resolving %q: %w", args[0], err)
	}

	return *coords, nil
}

func init() {
	rootCmd.AddCommand(geosearchCmd)
	geosearchCmd.Flags().StringVar(&geosearchOptions.lat, "lat", "",
		"latitude, decimal degrees with optional N/S suffix")
	geosearchCmd.Flags().StringVar(&geosearchOptions.lon, "lon", "",
		"longitude, decimal degrees with optional E/W suffix")
	geosearchCmd.Flags().IntVar(&geosearchOptions.radius, "radius", wiki.DefaultSampleRadius,
		"search radius in meters")
	geosearchCmd.Flags().IntVar(&geosearchOptions.limit, "limit", 10,
		"maximum number of articles to list")
	geosearchCmd.Flags().BoolVar(&geosearchOptions.summaries, "summaries", false,
		"print a short summary for each article")
}
