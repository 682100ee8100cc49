package frogchase

import (
	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// MarkerKind identifies one of the four mystery doors.
type MarkerKind int

const (
	MarkerHome  MarkerKind = iota // leads home: a second way to win
	MarkerBird                    // the pelican waits behind it
	MarkerDown1                   // trapdoor back to the first recovery tile
	MarkerDown2                   // trapdoor back to the second recovery tile
)

// MarkerKinds lists every kind in evaluation order.
var MarkerKinds = [...]MarkerKind{MarkerHome, MarkerBird, MarkerDown1, MarkerDown2}

func (k MarkerKind) String() string {
	switch k {
	case MarkerHome:
		return "home"
	case MarkerBird:
		return "bird"
	case MarkerDown1:
		return "down1"
	case MarkerDown2:
		return "down2"
	default:
		return "unknown"
	}
}

// HazardMarker is a door placed on one tile for the duration of a round.
type HazardMarker struct {
	Kind MarkerKind
	Tile GridPosition
}

// Target is the frog position that triggers the door: the tile origin plus
// the offset of the frog's hop lattice.
func (m HazardMarker) Target(tileSize int, offset core.Point) core.Point {
	return m.Tile.Origin(tileSize).Add(offset)
}

// Window is the inclusive trigger area around Target.
func (m HazardMarker) Window(tileSize int, offset core.Point, tolerance int) core.Window {
	return core.WindowAround(m.Target(tileSize, offset), tolerance)
}

// Reroll moves the door to a fresh tile inside r.
func (m *HazardMarker) Reroll(p *RandomPlacer, r config.TileRange) {
	m.Tile = p.PlaceIn(r)
}

// Markers holds one door of each kind, indexed by MarkerKind.
type Markers [len(MarkerKinds)]HazardMarker

// RollMarkers places the doors for a new round. The home door is fixed;
// the others are re-rolled inside cfg.Range.
func RollMarkers(p *RandomPlacer, cfg config.MarkerConfig) Markers {
	var ms Markers
	for _, k := range MarkerKinds {
		ms[k].Kind = k
		if k == MarkerHome {
			ms[k].Tile = fromConfigTile(cfg.Home)
			continue
		}
		ms[k].Reroll(p, cfg.Range)
	}
	return ms
}

// Get returns the door of kind k.
func (ms *Markers) Get(k MarkerKind) HazardMarker {
	return ms[k]
}
