package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guessipedia/guessipedia/internal/geo"
)

// ErrQuit signals that the player asked to leave the game. Closing stdin is
// treated the same way.
var ErrQuit = errors.New("player quit the game")

func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrQuit
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// readCount prompts for a positive count and re-prompts until it gets one.
func (g *Game) readCount(what string) (int, error) {
	for {
		g.ui.Promptf("Enter the number of %s: ", what)
		line, err := g.readLine()
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(line, "q") {
			return 0, ErrQuit
		}

		count, err := strconv.Atoi(line)
		if err != nil || count < 1 {
			g.ui.Badf("Invalid input, the input must be a positive number!\n")
			continue
		}
		return count, nil
	}
}

// readChoice reads a 1/2 answer, re-prompting on anything else. "q" quits.
func (g *Game) readChoice() (geo.Verdict, error) {
	for {
		g.ui.Promptf("Answer: ")
		line, err := g.readLine()
		if err != nil {
			return geo.Tie, err
		}

		switch strings.ToLower(line) {
		case "1":
			return geo.First, nil
		case "2":
			return geo.Second, nil
		case "q":
			return geo.Tie, ErrQuit
		}
		g.ui.Badf("Invalid input. Please enter only 1 or 2.\n")
	}
}
