package config

import (
	_ "embed"

	"github.com/vovakirdan/frog-chase/internal/core"
)

//go:embed defaults/frogchase.yaml
var defaultFrogChaseYAML []byte

// DefaultFrogChaseConfig returns the built-in level and rules.
func DefaultFrogChaseConfig() FrogChaseConfig {
	return FrogChaseConfig{
		Screen: ScreenConfig{
			Width:           1024,
			Height:          728,
			TileSize:        80,
			RightMargin:     100,
			BottomOvershoot: 50,
		},
		Sprite: SpriteConfig{
			Width:    104,
			Height:   96,
			Velocity: 80,
		},
		Movement: MovementConfig{
			Mode:    ModePlanned,
			MaxPlan: 64,
		},
		Collision: CollisionConfig{
			SlackX: 50,
			SlackY: 67,
		},
		Obstacles: ObstacleConfig{
			Draws:  40,
			Range:  TileRange{MinCol: 3, MaxCol: 8, MinRow: 1, MaxRow: 9},
			Reject: Tile{Col: 9, Row: 5},
		},
		Markers: MarkerConfig{
			Home:      Tile{Col: 7, Row: 3},
			Range:     TileRange{MinCol: 1, MaxCol: 3, MinRow: 2, MaxRow: 8},
			Offset:    core.Pt(20, 30),
			Tolerance: 10,
		},
		Outcome: OutcomeConfig{
			Goal:        core.Window{MinX: 400, MaxX: 420, MinY: 650, MaxY: 670},
			GoalTile:    Tile{Col: 5, Row: 8},
			House:       core.Pt(400, 640),
			Start:       core.Pt(20, 30),
			WinRest:     core.Pt(410, 648),
			HomeWinRest: core.Pt(420, 670),
			BirdRest:    core.Pt(815, 10),
			Down1Rest:   core.Pt(20, 430),
			Down2Rest:   core.Pt(20, 510),
			PursuerHome: core.Pt(815, 10),
		},
		Pursuer: PursuerConfig{
			Policy:      PursuerLiteral,
			Speed:       80,
			CatchRadius: 40,
		},
		Timing: TimingConfig{
			StepTicks:   6,
			ResultTicks: 24,
			HazardTicks: 12,
		},
		Scoring: ScoringConfig{
			Base:          1000,
			StepPenalty:   25,
			HazardPenalty: 100,
			Floor:         100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFrogChaseYAML
}
