package frogchase

import (
	"math/rand"

	"github.com/vovakirdan/frog-chase/internal/config"
)

// RandomPlacer draws grid positions from a shared random source.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer wraps rng. The placer does not reseed it.
func NewRandomPlacer(rng *rand.Rand) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

// Place returns a column in [minCol, maxCol) and a row in [minRow, maxRow).
// An empty range yields its minimum.
func (p *RandomPlacer) Place(minCol, maxCol, minRow, maxRow int) GridPosition {
	return GridPosition{
		Col: p.between(minCol, maxCol),
		Row: p.between(minRow, maxRow),
	}
}

// PlaceIn is Place over a configured range.
func (p *RandomPlacer) PlaceIn(r config.TileRange) GridPosition {
	return p.Place(r.MinCol, r.MaxCol, r.MinRow, r.MaxRow)
}

func (p *RandomPlacer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo)
}
