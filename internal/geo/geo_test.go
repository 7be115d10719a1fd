package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guessipedia/guessipedia/internal/geo"
	"github.com/guessipedia/guessipedia/internal/models"
)

func coord(t *testing.T, lat, lon float64) models.Coordinates {
	t.Helper()
	c, err := geo.New(lat, lon)
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		rawLat  string
		rawLon  string
		wantLat float64
		wantLon float64
		wantErr bool
	}{
		{name: "plain numerals", rawLat: "10", rawLon: "10", wantLat: 10, wantLon: 10},
		{name: "signed latitude", rawLat: "-10", rawLon: "10", wantLat: -10, wantLon: 10},
		{name: "south and east suffixes", rawLat: "10S", rawLon: "10E", wantLat: -10, wantLon: 10},
		{name: "north and west suffixes", rawLat: "10.0N", rawLon: "10.0W", wantLat: 10, wantLon: -10},
		{name: "fractional degrees", rawLat: "60.45S", rawLon: "172.5W", wantLat: -60.45, wantLon: -172.5},
		{name: "minus combined with suffix", rawLat: "10.0N", rawLon: "-10.0W", wantErr: true},
		{name: "latitude out of range", rawLat: "181.0N", rawLon: "180.0W", wantErr: true},
		{name: "longitude out of range", rawLat: "10", rawLon: "180.5", wantErr: true},
		{name: "not a number", rawLat: "north", rawLon: "10", wantErr: true},
		{name: "empty components", rawLat: "", rawLon: "", wantErr: true},
		{name: "bare suffix", rawLat: "S", rawLon: "10", wantErr: true},
		{name: "latitude boundary south", rawLat: "90S", rawLon: "0", wantLat: -90, wantLon: 0},
		{name: "longitude boundary west", rawLat: "0", rawLon: "180W", wantLat: 0, wantLon: -180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geo.Parse(tc.rawLat, tc.rawLon)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLat, got.Latitude)
			assert.Equal(t, tc.wantLon, got.Longitude)
		})
	}
}

func TestParse_SuffixEquivalentToSign(t *testing.T) {
	suffixed, err := geo.Parse("10S", "10E")
	require.NoError(t, err)
	signed, err := geo.New(-10, 10)
	require.NoError(t, err)
	assert.Equal(t, signed, suffixed)
}

func TestNew_RangeCheck(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "south pole is valid", lat: -90, lon: 10},
		{name: "north pole is valid", lat: 90, lon: 10},
		{name: "antimeridian both signs valid", lat: 0, lon: 180},
		{name: "latitude too far north", lat: 90.0001, lon: 0, wantErr: true},
		{name: "latitude too far south", lat: -91, lon: 0, wantErr: true},
		{name: "longitude too far east", lat: 0, lon: 181, wantErr: true},
		{name: "longitude too far west", lat: 0, lon: -180.5, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geo.New(tc.lat, tc.lon)
			if tc.wantErr {
				assert.ErrorIs(t, err, geo.ErrOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompareNorth(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Coordinates
		want geo.Verdict
	}{
		{name: "equal latitudes tie", a: models.Coordinates{Latitude: 10, Longitude: 10}, b: models.Coordinates{Latitude: 10, Longitude: 10}, want: geo.Tie},
		{name: "second further north", a: models.Coordinates{Latitude: -10, Longitude: 10}, b: models.Coordinates{Latitude: 10, Longitude: 10}, want: geo.Second},
		{name: "first beats the south pole", a: models.Coordinates{Latitude: 80, Longitude: 10}, b: models.Coordinates{Latitude: -90, Longitude: 10}, want: geo.First},
		{name: "longitude is ignored", a: models.Coordinates{Latitude: 0, Longitude: -170}, b: models.Coordinates{Latitude: -1, Longitude: 170}, want: geo.First},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geo.CompareNorth(tc.a, tc.b))
		})
	}
}

func TestCompareEast(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Coordinates
		want geo.Verdict
	}{
		{name: "equal longitudes tie", a: models.Coordinates{Latitude: 10, Longitude: 10}, b: models.Coordinates{Latitude: 10, Longitude: 10}, want: geo.Tie},
		{name: "first further east", a: models.Coordinates{Latitude: -10, Longitude: 100}, b: models.Coordinates{Latitude: 10, Longitude: 10}, want: geo.First},
		{name: "both west of meridian", a: models.Coordinates{Latitude: 18, Longitude: -10}, b: models.Coordinates{Latitude: 0, Longitude: -12}, want: geo.First},
		// Signed longitudes are compared as-is: no antimeridian wraparound.
		{name: "antimeridian is not wrapped", a: models.Coordinates{Latitude: 0, Longitude: 179}, b: models.Coordinates{Latitude: 0, Longitude: -179}, want: geo.First},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geo.CompareEast(tc.a, tc.b))
		})
	}
}

// Swapping the arguments must swap First and Second and keep ties.
func TestCompare_SwapSymmetry(t *testing.T) {
	pairs := [][2]models.Coordinates{
		{{Latitude: 10, Longitude: 20}, {Latitude: -30, Longitude: 40}},
		{{Latitude: 5, Longitude: 5}, {Latitude: 5, Longitude: 5}},
		{{Latitude: -90, Longitude: -180}, {Latitude: 90, Longitude: 180}},
		{{Latitude: 0, Longitude: 179}, {Latitude: 0, Longitude: -179}},
	}
	swap := map[geo.Verdict]geo.Verdict{
		geo.First:  geo.Second,
		geo.Second: geo.First,
		geo.Tie:    geo.Tie,
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.Equal(t, swap[geo.CompareNorth(a, b)], geo.CompareNorth(b, a))
		assert.Equal(t, swap[geo.CompareEast(a, b)], geo.CompareEast(b, a))
	}
}

func TestDistance(t *testing.T) {
	t.Run("identical points are zero", func(t *testing.T) {
		for _, c := range []models.Coordinates{
			{Latitude: 0, Longitude: 0},
			{Latitude: 60.45, Longitude: 22.26},
			{Latitude: -33.9, Longitude: 151.2},
		} {
			assert.InDelta(t, 0, geo.Distance(c, c), 1e-6)
		}
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		d := geo.Distance(coord(t, 0, 0), coord(t, 0, 1))
		assert.InDelta(t, 111.32, d, 0.05)
	})

	t.Run("one degree of latitude on the meridian", func(t *testing.T) {
		d := geo.Distance(coord(t, 0, 0), coord(t, 1, 0))
		assert.InDelta(t, 110.57, d, 0.05)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := coord(t, 60.45, 22.26)
		b := coord(t, 28.29, -16.62)
		assert.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-9)
	})
}

func TestCompareDistance(t *testing.T) {
	t.Run("reference itself is closest", func(t *testing.T) {
		verdict, distA, distB := geo.CompareDistance(
			coord(t, 0, 0), coord(t, 0, 0), coord(t, 10, 10))
		assert.Equal(t, geo.First, verdict)
		assert.InDelta(t, 0, distA, 1e-6)
		assert.Greater(t, distB, 1000.0)
	})

	t.Run("smaller longitude offset wins at high latitude", func(t *testing.T) {
		verdict, distA, distB := geo.CompareDistance(
			coord(t, 60, 20), coord(t, 60, -60), coord(t, 60, 60))
		assert.Equal(t, geo.Second, verdict)
		assert.Greater(t, distA, distB)
	})

	t.Run("mirrored points tie", func(t *testing.T) {
		verdict, distA, distB := geo.CompareDistance(
			coord(t, 0, 0), coord(t, 60, -60), coord(t, 60, 60))
		assert.Equal(t, geo.Tie, verdict)
		assert.InDelta(t, distA, distB, 1e-6)
	})

	t.Run("identical pair ties", func(t *testing.T) {
		verdict, _, _ := geo.CompareDistance(
			coord(t, 0, 0), coord(t, 0, 0), coord(t, 0, 0))
		assert.Equal(t, geo.Tie, verdict)
	})
}
