// Package geocoding resolves free-text addresses into coordinates so players
// can register where they are playing from.
package geocoding

import (
	"context"
	"errors"

	"github.com/guessipedia/guessipedia/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and an address string as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// ErrNoResult is returned by any provider when the address simply has no
// match. Callers should treat it as "not found" and re-prompt the player,
// as opposed to a transport failure.
var ErrNoResult = errors.New("no match found for the address")
