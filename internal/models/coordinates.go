package models

import "fmt"

// Coordinates represents a geographical point defined by its latitude and longitude,
// both in decimal degrees.
type Coordinates struct {
	Latitude  float64 // Latitude of the geographical point.
	Longitude float64 // Longitude of the geographical point.
}

// String renders the point in the hemisphere notation shown to players,
// e.g. "10.00°S 10.00°E".
func (c Coordinates) String() string {
	lat := fmt.Sprintf("%.2f°N", c.Latitude)
	if c.Latitude < 0 {
		lat = fmt.Sprintf("%.2f°S", -c.Latitude)
	}
	lon := fmt.Sprintf("%.2f°E", c.Longitude)
	if c.Longitude < 0 {
		lon = fmt.Sprintf("%.2f°W", -c.Longitude)
	}
	return lat + " " + lon
}
