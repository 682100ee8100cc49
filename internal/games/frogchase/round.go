package frogchase

import (
	"github.com/vovakirdan/frog-chase/internal/config"
)

// RoundState is everything that lives for exactly one round. A new value is
// built for every round so nothing carries over, rocks included.
type RoundState struct {
	Number    int
	Obstacles *ObstacleSet
	Markers   Markers
	Frog      *MovableEntity
	Pelican   *MovableEntity

	Steps   int // executed moves
	Hazards int // trapdoors hit
	Outcome Outcome
	Trigger Trigger
	Score   int
}

// NewRoundState places rocks and doors and puts both sprites at their start.
func NewRoundState(number int, cfg config.FrogChaseConfig, p *RandomPlacer) *RoundState {
	r := &RoundState{
		Number:    number,
		Obstacles: NewObstacleSet(),
		Markers:   RollMarkers(p, cfg.Markers),
		Frog: NewMovableEntity(cfg.Outcome.Start,
			cfg.Sprite.Width, cfg.Sprite.Height, cfg.Sprite.Velocity),
		Pelican: NewMovableEntity(cfg.Outcome.PursuerHome,
			cfg.Sprite.Width, cfg.Sprite.Height, cfg.Sprite.Velocity),
	}
	r.Obstacles.Populate(p, ObstacleRulesFrom(cfg.Obstacles))
	return r
}

// ReconcileWithGoal drops any rock on the goal tile so the house stays
// reachable. Returns the number removed.
func (r *RoundState) ReconcileWithGoal(goal GridPosition) int {
	return r.Obstacles.RemoveIf(func(p GridPosition) bool { return p == goal })
}

// Finished reports whether the round has a final verdict.
func (r *RoundState) Finished() bool {
	return r.Outcome == OutcomeWon || r.Outcome == OutcomeLost
}

// ScoreFor rates a won round: fewer moves and trapdoors score higher.
func ScoreFor(cfg config.ScoringConfig, steps, hazards int) int {
	return max(cfg.Floor, cfg.Base-cfg.StepPenalty*steps-cfg.HazardPenalty*hazards)
}
