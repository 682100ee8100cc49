package frogchase

import (
	"fmt"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// Outcome is the verdict of one evaluation.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeHazard
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeHazard:
		return "hazard"
	default:
		return "none"
	}
}

// Trigger names the check that produced an outcome.
type Trigger string

const (
	TriggerNone    Trigger = ""
	TriggerGoal    Trigger = "goal"
	TriggerHome    Trigger = "home"
	TriggerBird    Trigger = "bird"
	TriggerDown1   Trigger = "down1"
	TriggerDown2   Trigger = "down2"
	TriggerSafe    Trigger = "safe"
	TriggerPursuer Trigger = "pursuer"
)

// Evaluation is the result of OutcomeEvaluator.Evaluate.
type Evaluation struct {
	Outcome Outcome
	Trigger Trigger
}

// PursuerPolicy decides what the pelican does when the frog stops outside
// every scripted window and every safe spot.
type PursuerPolicy interface {
	Name() string
	// Chase returns the pelican's next position and whether it caught the frog.
	Chase(pelican, frog core.Point) (core.Point, bool)
}

// LiteralPursuer lands on the frog straight away.
type LiteralPursuer struct{}

func (LiteralPursuer) Name() string { return config.PursuerLiteral }

func (LiteralPursuer) Chase(_, frog core.Point) (core.Point, bool) {
	return frog, true
}

// ProximityPursuer flies toward the frog at Speed pixels per axis and catches
// it once both axes are within Radius.
type ProximityPursuer struct {
	Speed  int
	Radius int
}

func (ProximityPursuer) Name() string { return config.PursuerProximity }

func (p ProximityPursuer) Chase(pelican, frog core.Point) (core.Point, bool) {
	next := core.Pt(approach(pelican.X, frog.X, p.Speed), approach(pelican.Y, frog.Y, p.Speed))
	caught := core.Abs(next.X-frog.X) <= p.Radius && core.Abs(next.Y-frog.Y) <= p.Radius
	return next, caught
}

func approach(from, to, speed int) int {
	d := to - from
	if core.Abs(d) <= speed {
		return to
	}
	return from + core.Sign(d)*speed
}

// NoPursuer never moves and never catches.
type NoPursuer struct{}

func (NoPursuer) Name() string { return config.PursuerOff }

func (NoPursuer) Chase(pelican, _ core.Point) (core.Point, bool) {
	return pelican, false
}

// NewPursuerPolicy maps the configured policy name to an implementation.
func NewPursuerPolicy(cfg config.PursuerConfig) (PursuerPolicy, error) {
	switch cfg.Policy {
	case config.PursuerLiteral, "":
		return LiteralPursuer{}, nil
	case config.PursuerProximity:
		return ProximityPursuer{Speed: cfg.Speed, Radius: cfg.CatchRadius}, nil
	case config.PursuerOff:
		return NoPursuer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown pursuer policy %q", core.ErrAssetLoad, cfg.Policy)
	}
}

// OutcomeEvaluator checks the frog's resting position against the goal, the
// doors and the safe spots, in that order, and moves the sprites accordingly.
// Every check is an inclusive window.
type OutcomeEvaluator struct {
	goal      core.Window
	out       config.OutcomeConfig
	tileSize  int
	offset    core.Point
	tolerance int
	safe      []core.Window
	policy    PursuerPolicy
}

// NewOutcomeEvaluator builds an evaluator for the level in cfg.
func NewOutcomeEvaluator(cfg config.FrogChaseConfig, policy PursuerPolicy) *OutcomeEvaluator {
	tol := cfg.Markers.Tolerance
	return &OutcomeEvaluator{
		goal:      cfg.Outcome.Goal,
		out:       cfg.Outcome,
		tileSize:  cfg.Screen.TileSize,
		offset:    cfg.Markers.Offset,
		tolerance: tol,
		safe: []core.Window{
			core.WindowAround(cfg.Outcome.Start, tol),
			core.WindowAround(cfg.Outcome.Down1Rest, tol),
			core.WindowAround(cfg.Outcome.Down2Rest, tol),
		},
		policy: policy,
	}
}

// Policy returns the pursuer policy in use.
func (e *OutcomeEvaluator) Policy() PursuerPolicy {
	return e.policy
}

// MarkerWindow returns the trigger window of m.
func (e *OutcomeEvaluator) MarkerWindow(m HazardMarker) core.Window {
	return m.Window(e.tileSize, e.offset, e.tolerance)
}

// IsSafe reports whether p is the start or a recovery tile.
func (e *OutcomeEvaluator) IsSafe(p core.Point) bool {
	for _, w := range e.safe {
		if w.Contains(p) {
			return true
		}
	}
	return false
}

// Evaluate inspects the frog's position in r, repositions the frog and the
// pelican as the matching rule dictates and returns the verdict. The goal is
// checked first, then the home door, the bird door and the two trapdoors.
func (e *OutcomeEvaluator) Evaluate(r *RoundState) Evaluation {
	p := r.Frog.Position()

	switch {
	case e.goal.Contains(p):
		r.Frog.SetPosition(e.out.WinRest)
		r.Pelican.SetPosition(e.out.PursuerHome)
		return Evaluation{Outcome: OutcomeWon, Trigger: TriggerGoal}
	case e.MarkerWindow(r.Markers.Get(MarkerHome)).Contains(p):
		r.Frog.SetPosition(e.out.HomeWinRest)
		r.Pelican.SetPosition(e.out.PursuerHome)
		return Evaluation{Outcome: OutcomeWon, Trigger: TriggerHome}
	case e.MarkerWindow(r.Markers.Get(MarkerBird)).Contains(p):
		r.Frog.SetPosition(e.out.BirdRest)
		r.Pelican.SetPosition(e.out.BirdRest)
		return Evaluation{Outcome: OutcomeLost, Trigger: TriggerBird}
	case e.MarkerWindow(r.Markers.Get(MarkerDown1)).Contains(p):
		r.Frog.SetPosition(e.out.Down1Rest)
		r.Pelican.SetPosition(e.out.PursuerHome)
		return Evaluation{Outcome: OutcomeHazard, Trigger: TriggerDown1}
	case e.MarkerWindow(r.Markers.Get(MarkerDown2)).Contains(p):
		r.Frog.SetPosition(e.out.Down2Rest)
		r.Pelican.SetPosition(e.out.PursuerHome)
		return Evaluation{Outcome: OutcomeHazard, Trigger: TriggerDown2}
	case e.IsSafe(p):
		r.Pelican.SetPosition(e.out.PursuerHome)
		return Evaluation{Outcome: OutcomeNone, Trigger: TriggerSafe}
	}

	next, caught := e.policy.Chase(r.Pelican.Position(), p)
	r.Pelican.SetPosition(next)
	if caught {
		return Evaluation{Outcome: OutcomeLost, Trigger: TriggerPursuer}
	}
	return Evaluation{Outcome: OutcomeNone}
}
