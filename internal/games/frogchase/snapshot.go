package frogchase

import "github.com/vovakirdan/frog-chase/internal/core"

// SpriteFrame is a sprite's position and hitbox.
type SpriteFrame struct {
	Position core.Point `json:"position"`
	Box      core.Rect  `json:"box"`
}

// MarkerFrame is one door as the host should draw it.
type MarkerFrame struct {
	Kind   string       `json:"kind"`
	Tile   GridPosition `json:"tile"`
	Window core.Window  `json:"window"`
}

// Frame is everything a host needs to present one tick. It is a copy and
// safe to hand to another goroutine.
type Frame struct {
	Tick      uint64         `json:"tick"`
	Round     int            `json:"round"`
	Mode      string         `json:"mode"`
	Phase     string         `json:"phase"`
	Signal    string         `json:"signal"`
	Cue       string         `json:"cue,omitempty"`
	Player    SpriteFrame    `json:"player"`
	Pursuer   SpriteFrame    `json:"pursuer"`
	Obstacles []GridPosition `json:"obstacles"`
	Markers   []MarkerFrame  `json:"markers"`
	Goal      core.Window    `json:"goal"`
	House     core.Point     `json:"house"`
	TileSize  int            `json:"tile_size"`
	Plan      int            `json:"plan"`
	Executing bool           `json:"executing"`
	Steps     int            `json:"steps"`
	Hazards   int            `json:"hazards"`
	Outcome   string         `json:"outcome"`
	Trigger   string         `json:"trigger,omitempty"`
	Score     int            `json:"score"`
	Paused    bool           `json:"paused"`
}

// Frame returns the current snapshot. It is also used for determinism checks.
func (g *Game) Frame() Frame {
	r := g.round
	markers := make([]MarkerFrame, 0, len(r.Markers))
	for _, m := range r.Markers {
		markers = append(markers, MarkerFrame{
			Kind:   m.Kind.String(),
			Tile:   m.Tile,
			Window: g.evaluator.MarkerWindow(m),
		})
	}

	return Frame{
		Tick:      g.tick,
		Round:     r.Number,
		Mode:      g.cfg.Movement.Mode,
		Phase:     g.phase.String(),
		Signal:    g.signal.String(),
		Cue:       g.cue.String(),
		Player:    SpriteFrame{Position: r.Frog.Position(), Box: r.Frog.Box()},
		Pursuer:   SpriteFrame{Position: r.Pelican.Position(), Box: r.Pelican.Box()},
		Obstacles: r.Obstacles.All(),
		Markers:   markers,
		Goal:      g.cfg.Outcome.Goal,
		House:     g.cfg.Outcome.House,
		TileSize:  g.cfg.Screen.TileSize,
		Plan:      len(g.plan),
		Executing: g.executing,
		Steps:     r.Steps,
		Hazards:   r.Hazards,
		Outcome:   r.Outcome.String(),
		Trigger:   string(r.Trigger),
		Score:     r.Score,
		Paused:    g.paused,
	}
}
