// Package frogchase implements the Frog Chase level: a frog hops across an
// 80-pixel tile grid, around rocks and mystery doors, to reach its house
// before the pelican catches it.
//
// The package holds game logic only. Hosts feed key events through
// core.InputFrame and read the result back through Frame or Render.
package frogchase

import (
	"fmt"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// GridPosition is a tile coordinate. Col maps to the X axis and Row to Y.
type GridPosition struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Tile is shorthand for GridPosition{Col: col, Row: row}.
func Tile(col, row int) GridPosition {
	return GridPosition{Col: col, Row: row}
}

// Origin returns the top-left pixel of the tile.
func (g GridPosition) Origin(tileSize int) core.Point {
	return core.Pt(g.Col*tileSize, g.Row*tileSize)
}

// String formats the position as (col,row).
func (g GridPosition) String() string {
	return fmt.Sprintf("(%d,%d)", g.Col, g.Row)
}

func fromConfigTile(t config.Tile) GridPosition {
	return GridPosition{Col: t.Col, Row: t.Row}
}
