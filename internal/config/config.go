// Package config provides YAML-based configuration loading and difficulty
// presets for Frog Chase.
package config

import "github.com/vovakirdan/frog-chase/internal/core"

// FrogChaseConfig contains all tunables for the level, movement and outcome rules.
type FrogChaseConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Movement  MovementConfig  `yaml:"movement"`
	Collision CollisionConfig `yaml:"collision"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Markers   MarkerConfig    `yaml:"markers"`
	Outcome   OutcomeConfig   `yaml:"outcome"`
	Pursuer   PursuerConfig   `yaml:"pursuer"`
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// Tile is a grid coordinate in tile units.
type Tile struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// TileRange is a half-open sub-rectangle of the grid: [MinCol,MaxCol) x [MinRow,MaxRow).
type TileRange struct {
	MinCol int `yaml:"min_col"`
	MaxCol int `yaml:"max_col"`
	MinRow int `yaml:"min_row"`
	MaxRow int `yaml:"max_row"`
}

// ScreenConfig defines the logical playfield in pixels.
// RightMargin and BottomOvershoot are deliberately asymmetric: the right edge
// stops short of the screen while the bottom edge lets the sprite overshoot.
type ScreenConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	TileSize        int `yaml:"tile_size"`
	RightMargin     int `yaml:"right_margin"`
	BottomOvershoot int `yaml:"bottom_overshoot"`
}

// SpriteConfig defines the frog and pelican hitbox and step size.
type SpriteConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Velocity int `yaml:"velocity"`
}

// Movement modes.
const (
	ModePlanned  = "planned"  // queue moves, Enter executes them
	ModeRealtime = "realtime" // input applies every step
)

// MovementConfig selects how input drives the frog.
type MovementConfig struct {
	Mode    string `yaml:"mode"`
	MaxPlan int    `yaml:"max_plan"` // maximum queued key events in planned mode
}

// CollisionConfig is the slack tolerance pair for rock overlap.
type CollisionConfig struct {
	SlackX int `yaml:"slack_x"`
	SlackY int `yaml:"slack_y"`
}

// ObstacleConfig defines rock placement.
type ObstacleConfig struct {
	Draws  int       `yaml:"draws"`
	Range  TileRange `yaml:"range"`
	Reject Tile      `yaml:"reject"`
}

// MarkerConfig defines the mystery door cards.
type MarkerConfig struct {
	Home      Tile       `yaml:"home"`
	Range     TileRange  `yaml:"range"`     // re-roll range for bird, down1 and down2
	Offset    core.Point `yaml:"offset"`    // trigger point relative to the tile origin
	Tolerance int        `yaml:"tolerance"` // half-width of marker and safe-spot windows
}

// OutcomeConfig holds the literal coordinates of the level script.
type OutcomeConfig struct {
	Goal        core.Window `yaml:"goal"`
	GoalTile    Tile        `yaml:"goal_tile"`
	House       core.Point  `yaml:"house"`
	Start       core.Point  `yaml:"start"`
	WinRest     core.Point  `yaml:"win_rest"`
	HomeWinRest core.Point  `yaml:"home_win_rest"`
	BirdRest    core.Point  `yaml:"bird_rest"`
	Down1Rest   core.Point  `yaml:"down1_rest"`
	Down2Rest   core.Point  `yaml:"down2_rest"`
	PursuerHome core.Point  `yaml:"pursuer_home"`
}

// Pursuer policies.
const (
	PursuerLiteral   = "literal"
	PursuerProximity = "proximity"
	PursuerOff       = "off"
)

// PursuerConfig selects how the pelican behaves on unscripted positions.
type PursuerConfig struct {
	Policy      string `yaml:"policy"`
	Speed       int    `yaml:"speed"`        // pixels per evaluated frame (proximity)
	CatchRadius int    `yaml:"catch_radius"` // per-axis catch distance (proximity)
}

// TimingConfig is expressed in platform ticks.
type TimingConfig struct {
	StepTicks   int `yaml:"step_ticks"`   // ticks between movement frames
	ResultTicks int `yaml:"result_ticks"` // hold on Won/Lost before game over
	HazardTicks int `yaml:"hazard_ticks"` // flash after a hazard hit
}

// ScoringConfig defines the score of a won round.
type ScoringConfig struct {
	Base          int `yaml:"base"`
	StepPenalty   int `yaml:"step_penalty"`
	HazardPenalty int `yaml:"hazard_penalty"`
	Floor         int `yaml:"floor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
