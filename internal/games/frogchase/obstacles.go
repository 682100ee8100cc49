package frogchase

import (
	"slices"

	"github.com/vovakirdan/frog-chase/internal/config"
)

// ObstacleRules controls one population batch.
type ObstacleRules struct {
	Draws  int
	Range  config.TileRange
	Reject GridPosition
}

// ObstacleRulesFrom converts the config section.
func ObstacleRulesFrom(cfg config.ObstacleConfig) ObstacleRules {
	return ObstacleRules{
		Draws:  cfg.Draws,
		Range:  cfg.Range,
		Reject: fromConfigTile(cfg.Reject),
	}
}

// ObstacleSet maps a column to the rows holding a rock in that column.
// A row may appear more than once.
type ObstacleSet struct {
	cols  map[int][]int
	count int
}

// NewObstacleSet creates an empty set.
func NewObstacleSet() *ObstacleSet {
	return &ObstacleSet{cols: make(map[int][]int)}
}

// Add inserts a rock without checking for duplicates.
func (s *ObstacleSet) Add(p GridPosition) {
	s.cols[p.Col] = append(s.cols[p.Col], p.Row)
	s.count++
}

// Populate performs rules.Draws draws and inserts every one that is not the
// rejected tile. It never clears existing entries. Returns the accepted count.
func (s *ObstacleSet) Populate(p *RandomPlacer, rules ObstacleRules) int {
	accepted := 0
	for range rules.Draws {
		pos := p.PlaceIn(rules.Range)
		if pos == rules.Reject {
			continue
		}
		s.Add(pos)
		accepted++
	}
	return accepted
}

// All returns every rock ordered by column, then by insertion within a column.
func (s *ObstacleSet) All() []GridPosition {
	cols := make([]int, 0, len(s.cols))
	for c := range s.cols {
		cols = append(cols, c)
	}
	slices.Sort(cols)

	out := make([]GridPosition, 0, s.count)
	for _, c := range cols {
		for _, r := range s.cols[c] {
			out = append(out, GridPosition{Col: c, Row: r})
		}
	}
	return out
}

// RemoveIf deletes every entry matching pred and returns how many went.
func (s *ObstacleSet) RemoveIf(pred func(GridPosition) bool) int {
	removed := 0
	for c, rows := range s.cols {
		kept := rows[:0]
		for _, r := range rows {
			if pred(GridPosition{Col: c, Row: r}) {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == 0 {
			delete(s.cols, c)
		} else {
			s.cols[c] = kept
		}
	}
	s.count -= removed
	return removed
}

// Contains reports whether at least one rock sits on p.
func (s *ObstacleSet) Contains(p GridPosition) bool {
	return slices.Contains(s.cols[p.Col], p.Row)
}

// Len counts entries, duplicates included.
func (s *ObstacleSet) Len() int {
	return s.count
}
