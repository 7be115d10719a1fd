// Package geo holds the pure geographic core of the game: normalizing raw
// coordinate input into validated degree pairs and comparing validated
// positions by latitude, longitude and geodesic distance.
//
// Validation happens once, at the boundary: Parse and New are the only ways
// to obtain coordinates, so every comparison below operates on values that
// are already known to be in range. An invalid pair is a parse error, never
// a sentinel coordinate.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/guessipedia/guessipedia/internal/models"
)

// Valid coordinate ranges in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Errors returned for rejected coordinate input.
var (
	ErrMalformed  = errors.New("malformed coordinate")
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Parse normalizes a raw latitude/longitude pair into validated coordinates.
//
// Each component is a decimal numeral with an optional trailing hemisphere
// letter: N/S for latitude, E/W for longitude. S and W negate the value and
// must not be combined with a leading minus sign; the resulting
// double-negative numeral is rejected as malformed. There is no partial
// validity: if either component fails, the whole pair is rejected.
func Parse(rawLat, rawLon string) (models.Coordinates, error) {
	lat, err := normalize(rawLat, 'N', 'S')
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := normalize(rawLon, 'E', 'W')
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("longitude: %w", err)
	}
	return New(lat, lon)
}

// New validates a numeric degree pair, rejecting values outside the
// latitude [-90, 90] and longitude [-180, 180] ranges. The boundaries
// themselves are valid.
func New(lat, lon float64) (models.Coordinates, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) ||
		lat < MinLatitude || lat > MaxLatitude ||
		lon < MinLongitude || lon > MaxLongitude {
		return models.Coordinates{}, fmt.Errorf("%w: lat=%v lon=%v", ErrOutOfRange, lat, lon)
	}
	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// normalize strips an optional hemisphere suffix, applying the sign it
// implies, and parses the remaining numeral.
func normalize(raw string, positive, negative byte) (float64, error) {
	numeral := raw
	if n := len(numeral); n > 0 {
		switch numeral[n-1] {
		case negative:
			numeral = "-" + numeral[:n-1]
		case positive:
			numeral = numeral[:n-1]
		}
	}
	value, err := strconv.ParseFloat(numeral, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	return value, nil
}
