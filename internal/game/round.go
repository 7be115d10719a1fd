package game

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/guessipedia/guessipedia/internal/geo"
	"github.com/guessipedia/guessipedia/internal/models"
	"github.com/guessipedia/guessipedia/internal/ui"
)

// QuestionKind is the category of a round's question.
type QuestionKind int

const (
	KindNorth QuestionKind = iota
	KindEast
	KindDistance
)

func (k QuestionKind) String() string {
	switch k {
	case KindNorth:
		return "north"
	case KindEast:
		return "east"
	case KindDistance:
		return "distance"
	default:
		return "unknown"
	}
}

func (g *Game) pickKind() QuestionKind {
	return QuestionKind(g.rand.IntN(3))
}

// playRound runs a single round for one player: fetch a fresh article pair,
// ask the question, take the answer, judge it and update the score. When an
// article carries coordinates outside the valid ranges the round is voided
// and nobody scores.
func (g *Game) playRound(ctx context.Context, player *Player, kind QuestionKind) error {
	ctx, span := g.tracer.Start(ctx, "game.round")
	defer span.End()
	span.SetAttributes(
		attribute.String("round.player", player.Name),
		attribute.String("round.kind", kind.String()),
	)

	articles, err := g.source.RandomArticles(ctx, articlesPerRound)
	if err != nil {
		return fmt.Errorf("fetching article pair: %w", err)
	}
	first, second := articles[0], articles[1]

	g.askQuestion(player, kind)
	answer, err := g.collectAnswer(ctx, player, first, second)
	if err != nil {
		return err
	}

	verdict, reveal, err := g.judge(kind, player, first, second)
	if err != nil {
		g.log.WarnContext(ctx, "Round voided, article coordinates out of range", "error", err)
		g.ui.Badf("The locations in this round could not be verified, so nobody scores.\n\n")
		span.SetAttributes(attribute.Bool("round.void", true))
		return nil
	}
	if reveal != "" {
		g.ui.Printf("%s\n", reveal)
	}

	points := 0
	if answer == verdict {
		points = pointsPerCorrectAnswer
		g.ui.Goodf("Correct %s", g.ui.Name(player.Name))
	} else {
		g.ui.Badf("Incorrect %s", g.ui.Name(player.Name))
	}
	player.Score += points
	g.ui.Printf(" you win %d points. You have %d points\n\n", points, player.Score)

	span.SetAttributes(
		attribute.String("round.verdict", verdict.String()),
		attribute.Bool("round.correct", points > 0),
		attribute.Int("round.points", points),
	)
	return nil
}

func (g *Game) askQuestion(player *Player, kind QuestionKind) {
	switch kind {
	case KindNorth:
		g.ui.Questionf(player.Name, "which location is further north?")
	case KindEast:
		g.ui.Questionf(player.Name, "which location is further east from the international dateline in the pacific?")
	case KindDistance:
		g.ui.Questionf(player.Name, "which location is closer to you?")
	}
}

// collectAnswer presents both options with their summaries, reads a 1/2
// choice and then shows the contestant locations next to the player on the
// world map.
func (g *Game) collectAnswer(ctx context.Context, player *Player, first, second models.Article) (geo.Verdict, error) {
	g.ui.Option(1, first.Title, g.source.Summary(ctx, first.PageID, summarySentences))
	g.ui.Option(2, second.Title, g.source.Summary(ctx, second.PageID, summarySentences))

	answer, err := g.readChoice()
	if err != nil {
		return geo.Tie, err
	}

	g.ui.WorldMap("The two places and you are here!",
		ui.Marker{Position: player.Location, Symbol: '@', Kind: ui.MarkerPlayer},
		ui.Marker{Position: first.Position, Symbol: '1', Kind: ui.MarkerPlace},
		ui.Marker{Position: second.Position, Symbol: '2', Kind: ui.MarkerPlace},
	)
	return answer, nil
}

// judge validates both article positions and computes the round's verdict.
// Distance rounds also return a reveal line with both distances rounded to
// whole kilometers.
func (g *Game) judge(kind QuestionKind, player *Player, first, second models.Article) (geo.Verdict, string, error) {
	posA, err := geo.New(first.Position.Latitude, first.Position.Longitude)
	if err != nil {
		return geo.Tie, "", fmt.Errorf("%s: %w", first.Title, err)
	}
	posB, err := geo.New(second.Position.Latitude, second.Position.Longitude)
	if err != nil {
		return geo.Tie, "", fmt.Errorf("%s: %w", second.Title, err)
	}

	switch kind {
	case KindNorth:
		return geo.CompareNorth(posA, posB), "", nil
	case KindEast:
		return geo.CompareEast(posA, posB), "", nil
	default:
		verdict, distA, distB := geo.CompareDistance(player.Location, posA, posB)
		reveal := fmt.Sprintf("Your distance to %s %s is: %dkm, and your distance to %s %s is: %dkm",
			first.Title, posA, int(math.Round(distA)),
			second.Title, posB, int(math.Round(distB)))
		return verdict, reveal, nil
	}
}
