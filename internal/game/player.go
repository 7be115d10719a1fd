package game

import "github.com/guessipedia/guessipedia/internal/models"

// Player is one participant: a display name, the geocoded home location
// used for distance questions, and the running point total. Scores only ever
// grow and live for a single process run.
type Player struct {
	Name     string
	Location models.Coordinates
	Score    int
}
