package geo

import (
	"github.com/pymaxion/geographiclib-go/geodesic"

	"github.com/guessipedia/guessipedia/internal/models"
)

// Verdict is the correct-answer outcome of a comparison between two
// positions, independent of what the player guessed.
type Verdict int

const (
	// Tie means neither position wins the comparison.
	Tie Verdict = iota
	// First means the first position wins.
	First
	// Second means the second position wins.
	Second
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	switch v {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "tie"
	}
}

// CompareNorth reports which of two positions lies further north.
// Only latitude is considered; strictly greater latitude wins and equal
// latitudes tie.
func CompareNorth(a, b models.Coordinates) Verdict {
	switch {
	case a.Latitude > b.Latitude:
		return First
	case a.Latitude < b.Latitude:
		return Second
	}
	return Tie
}

// CompareEast reports which of two positions lies further east.
//
// This is a plain comparison of signed longitude: two points on opposite
// sides of the antimeridian are NOT judged by shortest angular distance.
// That is a rule of the game, not an oversight.
func CompareEast(a, b models.Coordinates) Verdict {
	switch {
	case a.Longitude > b.Longitude:
		return First
	case a.Longitude < b.Longitude:
		return Second
	}
	return Tie
}

// Distance returns the geodesic distance between a and b in kilometers,
// solved on the WGS-84 ellipsoid. The value is full precision; round only
// for display.
func Distance(a, b models.Coordinates) float64 {
	const metersPerKilometer = 1000.0
	r := geodesic.WGS84.Inverse(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	return r.S12 / metersPerKilometer
}

// CompareDistance reports which of a and b is strictly closer to ref,
// attaching both raw distances in kilometers. Equal distances tie.
// Distances are compared at full precision, not at display rounding.
func CompareDistance(ref, a, b models.Coordinates) (Verdict, float64, float64) {
	distA := Distance(ref, a)
	distB := Distance(ref, b)
	switch {
	case distA < distB:
		return First, distA, distB
	case distB < distA:
		return Second, distA, distB
	}
	return Tie, distA, distB
}
