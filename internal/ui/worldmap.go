package ui

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/guessipedia/guessipedia/internal/models"
)

// Equirectangular ASCII world map, '#' land and '.' water, uniform row width.
//
//go:embed worldmap.txt
var worldMapArt string

// MarkerKind selects the style a map marker is drawn with.
type MarkerKind int

const (
	// MarkerPlayer marks the player's own location.
	MarkerPlayer MarkerKind = iota
	// MarkerPlace marks an article location.
	MarkerPlace
)

// Marker is a symbol plotted on the world map at a geographic position.
type Marker struct {
	Position models.Coordinates
	Symbol   rune
	Kind     MarkerKind
}

// WorldMap draws the world map with the given markers plotted by linear
// latitude/longitude projection, followed by a caption. Positions outside
// the drawable area are clamped to the nearest edge.
func (p *Printer) WorldMap(caption string, markers ...Marker) {
	grid := mapGrid()
	rows := len(grid)
	cols := len(grid[0])

	type cell struct{ row, col int }
	plotted := make(map[cell]Marker, len(markers))
	for _, m := range markers {
		row := clamp(int((90-m.Position.Latitude)/180*float64(rows)), 0, rows-1)
		col := clamp(int((m.Position.Longitude+180)/360*float64(cols)), 0, cols-1)
		plotted[cell{row, col}] = m
	}

	var b strings.Builder
	for row := range grid {
		for col, r := range grid[row] {
			if m, ok := plotted[cell{row, col}]; ok {
				if m.Kind == MarkerPlayer {
					b.WriteString(p.good.Sprint(string(m.Symbol)))
				} else {
					b.WriteString(p.bad.Sprint(string(m.Symbol)))
				}
				continue
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(p.out, b.String())
	if caption != "" {
		p.info.Fprintln(p.out, caption)
	}
}

// mapGrid parses the embedded art into rune rows.
func mapGrid() [][]rune {
	lines := strings.Split(strings.TrimRight(worldMapArt, "\n"), "\n")
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	return grid
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
