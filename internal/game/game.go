// Package game drives the trivia loop: player setup, round-robin rounds,
// scoring and the final verdict. Everything is synchronous and
// single-threaded; the only state is the player list owned by the Game.
package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/guessipedia/guessipedia/internal/geocoding"
	"github.com/guessipedia/guessipedia/internal/models"
	"github.com/guessipedia/guessipedia/internal/telemetry"
	"github.com/guessipedia/guessipedia/internal/ui"
)

const (
	pointsPerCorrectAnswer = 10
	summarySentences       = 2
	articlesPerRound       = 2
)

// ArticleSource supplies the random geotagged articles and text summaries a
// round is built from. Summaries degrade to placeholders internally and
// never fail.
type ArticleSource interface {
	RandomArticles(ctx context.Context, count int) ([]models.Article, error)
	Summary(ctx context.Context, pageID int64, maxSentences int) string
}

// Game orchestrates one run of the trivia game.
type Game struct {
	log      *slog.Logger
	source   ArticleSource
	geocoder geocoding.Provider
	ui       *ui.Printer
	in       *bufio.Reader
	rand     *rand.Rand
	tracer   trace.Tracer
}

// New assembles a game from its collaborators. Input is read line-wise from
// input, typically os.Stdin.
func New(
	log *slog.Logger,
	source ArticleSource,
	geocoder geocoding.Provider,
	printer *ui.Printer,
	input io.Reader,
) *Game {
	seed := uint64(time.Now().UnixNano())
	return &Game{
		log:      log,
		source:   source,
		geocoder: geocoder,
		ui:       printer,
		in:       bufio.NewReader(input),
		rand:     rand.New(rand.NewPCG(seed, seed>>32)),
		tracer:   telemetry.Tracer("game"),
	}
}

// Run plays a full game: intro, setup, all rounds for all players in order,
// then the results. A quit request ends the game gracefully; only transport
// failures during article sampling end it with an error.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()

	g.ui.Banner()

	rounds, err := g.readCount("rounds")
	if err != nil {
		return g.farewell(err)
	}

	players, err := g.setupPlayers(ctx)
	if err != nil {
		return g.farewell(err)
	}

	span.SetAttributes(
		attribute.Int("game.rounds", rounds),
		attribute.Int("game.players", len(players)),
	)

	for i := range players {
		for r := 0; r < rounds; r++ {
			if err := g.playRound(ctx, &players[i], g.pickKind()); err != nil {
				if errors.Is(err, ErrQuit) {
					g.ui.Infof("\nThanks for playing!\n")
					g.announceResults(players)
					return nil
				}
				return err
			}
		}
	}

	g.announceResults(players)
	return nil
}

// setupPlayers asks how many players there are and registers each one:
// a name and a geocoded home location, confirmed on the world map.
func (g *Game) setupPlayers(ctx context.Context) ([]Player, error) {
	count, err := g.readCount("players")
	if err != nil {
		return nil, err
	}

	titler := cases.Title(language.English)
	players := make([]Player, 0, count)
	for i := 0; i < count; i++ {
		g.ui.Promptf("\nPlayer %d enter your name: ", i+1)
		name, err := g.readLine()
		if err != nil {
			return nil, err
		}
		name = titler.String(name)

		location, err := g.askLocation(ctx, name)
		if err != nil {
			return nil, err
		}

		g.ui.WorldMap(fmt.Sprintf("You are here, %s!", location),
			ui.Marker{Position: location, Symbol: '@', Kind: ui.MarkerPlayer})
		players = append(players, Player{Name: name, Location: location})
	}
	return players, nil
}

// askLocation keeps prompting for an address until the geocoder resolves
// one. Lookups that fail for transport reasons re-prompt the same way a miss
// does; nothing here is fatal.
func (g *Game) askLocation(ctx context.Context, name string) (models.Coordinates, error) {
	for {
		g.ui.Promptf("%s enter your location: ", name)
		address, err := g.readLine()
		if err != nil {
			return models.Coordinates{}, err
		}

		coords, err := g.geocoder.Geocode(ctx, address)
		switch {
		case err == nil:
			return *coords, nil
		case errors.Is(err, geocoding.ErrNoResult):
			g.ui.Badf("Couldn't find your location %s, please try again.\n", address)
		default:
			g.log.WarnContext(ctx, "Geocoding failed", "address", address, "error", err)
			g.ui.Badf("Something went wrong looking up %s, please try again.\n", address)
		}
	}
}

// announceResults prints every player's total and crowns the winner, or
// lists all tied names as a draw.
func (g *Game) announceResults(players []Player) {
	if len(players) == 0 {
		return
	}

	g.ui.Printf("\n")
	best := players[0].Score
	for _, p := range players {
		g.ui.Printf("%s has %d points\n", g.ui.Name(p.Name), p.Score)
		if p.Score > best {
			best = p.Score
		}
	}

	var winners []string
	for _, p := range players {
		if p.Score == best {
			winners = append(winners, p.Name)
		}
	}

	if len(winners) == 1 {
		g.ui.Goodf("\n%s has the highest score with %d points. 🎉\n", winners[0], best)
		return
	}
	g.ui.Goodf("\nIt is a draw! %s have %d points. 🎉\n", strings.Join(winners, ", "), best)
}

// farewell turns a quit request into a clean exit.
func (g *Game) farewell(err error) error {
	if errors.Is(err, ErrQuit) {
		g.ui.Infof("\nThanks for playing!\n")
		return nil
	}
	return err
}
