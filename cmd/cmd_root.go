// Package cmd wires the command line surface: the root command, the game
// itself and the geosearch helper.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Environment names accepted in GUESSIPEDIA_ENV.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

var rootCmd = &cobra.Command{
	Use:   "guessipedia",
	Short: "terminal geography trivia powered by Wikipedia",
	Long: `
guessipedia is a terminal trivia game. Each round draws two random geotagged
Wikipedia articles and asks which one lies further north, further east, or
closer to you. Correct answers earn points and the highest total wins.

Running guessipedia without a subcommand starts a game.
`,
	RunE: runPlay,
}

var Version = "dev"

var noColor bool

func Execute(version string) {
	Version = version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setupLogger initializes a logger for the given environment. Logs go to
// stderr: stdout belongs to the game output.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	default:
		log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))

		return log
	}
}
