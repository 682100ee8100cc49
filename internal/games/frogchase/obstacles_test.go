package frogchase

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/frog-chase/internal/config"
)

func newPlacer(seed int64) *RandomPlacer {
	return NewRandomPlacer(rand.New(rand.NewSource(seed)))
}

func TestPlaceStaysInHalfOpenRange(t *testing.T) {
	p := newPlacer(7)
	seenCols := map[int]bool{}
	seenRows := map[int]bool{}

	for range 2000 {
		pos := p.Place(1, 3, 2, 8)
		if pos.Col < 1 || pos.Col >= 3 || pos.Row < 2 || pos.Row >= 8 {
			t.Fatalf("Place returned %v outside [1,3)x[2,8)", pos)
		}
		seenCols[pos.Col] = true
		seenRows[pos.Row] = true
	}
	if len(seenCols) != 2 || len(seenRows) != 6 {
		t.Errorf("expected every column and row to appear, got cols=%v rows=%v", seenCols, seenRows)
	}
}

func TestPlaceEmptyRangeReturnsMinimum(t *testing.T) {
	if got := newPlacer(1).Place(4, 4, 6, 2); got != Tile(4, 6) {
		t.Errorf("Place on empty range = %v, expected (4,6)", got)
	}
}

func TestRollMarkers(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig().Markers

	for seed := int64(0); seed < 200; seed++ {
		ms := RollMarkers(newPlacer(seed), cfg)
		if home := ms.Get(MarkerHome); home.Tile != Tile(7, 3) || home.Kind != MarkerHome {
			t.Fatalf("seed %d: home marker = %+v, expected fixed (7,3)", seed, home)
		}
		for _, k := range []MarkerKind{MarkerBird, MarkerDown1, MarkerDown2} {
			m := ms.Get(k)
			if m.Kind != k {
				t.Fatalf("seed %d: marker kind %v stored under %v", seed, m.Kind, k)
			}
			if m.Tile.Col < 1 || m.Tile.Col >= 3 || m.Tile.Row < 2 || m.Tile.Row >= 8 {
				t.Fatalf("seed %d: %v marker at %v outside [1,3)x[2,8)", seed, k, m.Tile)
			}
		}
	}
}

func TestMarkerTarget(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	m := HazardMarker{Kind: MarkerHome, Tile: Tile(7, 3)}
	if got := m.Target(cfg.Screen.TileSize, cfg.Markers.Offset); got.X != 580 || got.Y != 270 {
		t.Errorf("home target = %v, expected (580, 270)", got)
	}
}

func TestPopulateRejectsTile(t *testing.T) {
	s := NewObstacleSet()
	rules := ObstacleRules{
		Draws:  500,
		Range:  config.TileRange{MinCol: 8, MaxCol: 10, MinRow: 4, MaxRow: 6},
		Reject: Tile(9, 5),
	}

	accepted := s.Populate(newPlacer(3), rules)
	if s.Contains(Tile(9, 5)) {
		t.Fatal("rejected tile (9,5) was inserted")
	}
	if accepted != s.Len() {
		t.Errorf("accepted = %d, Len = %d", accepted, s.Len())
	}
	if accepted == rules.Draws {
		t.Error("expected some draws to hit the rejected tile")
	}
}

func TestPopulateDefaultRules(t *testing.T) {
	rules := ObstacleRulesFrom(config.DefaultFrogChaseConfig().Obstacles)
	s := NewObstacleSet()

	if n := s.Populate(newPlacer(11), rules); n != 40 {
		t.Errorf("accepted %d draws, expected all 40", n)
	}
	for _, p := range s.All() {
		if p.Col < 3 || p.Col >= 8 || p.Row < 1 || p.Row >= 9 {
			t.Errorf("rock %v outside [3,8)x[1,9)", p)
		}
	}

	s.Populate(newPlacer(12), rules)
	if s.Len() != 80 {
		t.Errorf("Populate should be additive, Len = %d", s.Len())
	}
}

func TestObstacleSetOrderingAndDuplicates(t *testing.T) {
	s := NewObstacleSet()
	s.Add(Tile(5, 1))
	s.Add(Tile(3, 2))
	s.Add(Tile(5, 0))
	s.Add(Tile(5, 1))

	want := []GridPosition{Tile(3, 2), Tile(5, 1), Tile(5, 0), Tile(5, 1)}
	if got := s.All(); !slices.Equal(got, want) {
		t.Errorf("All() = %v, expected %v", got, want)
	}

	if n := s.RemoveIf(func(p GridPosition) bool { return p == Tile(5, 1) }); n != 2 {
		t.Errorf("RemoveIf removed %d, expected both duplicates", n)
	}
	if s.Len() != 2 || s.Contains(Tile(5, 1)) {
		t.Errorf("after RemoveIf: Len = %d, All = %v", s.Len(), s.All())
	}

	s.RemoveIf(func(GridPosition) bool { return true })
	if s.Len() != 0 || len(s.All()) != 0 {
		t.Error("removing everything should leave an empty set")
	}
}

func TestReconcileWithGoal(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	r := NewRoundState(1, cfg, newPlacer(5))
	r.Obstacles.Add(Tile(5, 8))
	r.Obstacles.Add(Tile(5, 8))
	before := r.Obstacles.Len()

	removed := r.ReconcileWithGoal(Tile(5, 8))
	if removed < 2 {
		t.Errorf("removed %d, expected at least the 2 planted rocks", removed)
	}
	if r.Obstacles.Contains(Tile(5, 8)) || r.Obstacles.Len() != before-removed {
		t.Error("goal tile should be clear after reconcile")
	}
	if r.ReconcileWithGoal(Tile(5, 8)) != 0 {
		t.Error("second reconcile should be a no-op")
	}
}
