package frogchase

import (
	"errors"
	"testing"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// fixedRound builds a round with no rocks and doors on known tiles:
// bird (2,4) -> (180,350), down1 (1,2) -> (100,190), down2 (2,7) -> (180,590).
func fixedRound(cfg config.FrogChaseConfig) *RoundState {
	cfg.Obstacles.Draws = 0
	r := NewRoundState(1, cfg, newPlacer(1))
	r.Markers = Markers{
		{Kind: MarkerHome, Tile: Tile(7, 3)},
		{Kind: MarkerBird, Tile: Tile(2, 4)},
		{Kind: MarkerDown1, Tile: Tile(1, 2)},
		{Kind: MarkerDown2, Tile: Tile(2, 7)},
	}
	return r
}

func evaluateAt(t *testing.T, cfg config.FrogChaseConfig, policy PursuerPolicy, frog core.Point) (*RoundState, Evaluation) {
	t.Helper()
	r := fixedRound(cfg)
	r.Frog.SetPosition(frog)
	return r, NewOutcomeEvaluator(cfg, policy).Evaluate(r)
}

func TestEvaluateScriptedOutcomes(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()

	tests := []struct {
		name     string
		frog     core.Point
		outcome  Outcome
		trigger  Trigger
		frogRest core.Point
	}{
		{"goal window", core.Pt(410, 660), OutcomeWon, TriggerGoal, core.Pt(410, 648)},
		{"goal window corner", core.Pt(420, 670), OutcomeWon, TriggerGoal, core.Pt(410, 648)},
		{"home door", core.Pt(580, 270), OutcomeWon, TriggerHome, core.Pt(420, 670)},
		{"bird door", core.Pt(180, 350), OutcomeLost, TriggerBird, core.Pt(815, 10)},
		{"down1 trapdoor", core.Pt(100, 190), OutcomeHazard, TriggerDown1, core.Pt(20, 430)},
		{"down2 trapdoor", core.Pt(180, 590), OutcomeHazard, TriggerDown2, core.Pt(20, 510)},
		{"near bird door", core.Pt(185, 355), OutcomeLost, TriggerBird, core.Pt(815, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, ev := evaluateAt(t, cfg, LiteralPursuer{}, tc.frog)
			if ev.Outcome != tc.outcome || ev.Trigger != tc.trigger {
				t.Errorf("Evaluate(%v) = %+v, expected %v/%v", tc.frog, ev, tc.outcome, tc.trigger)
			}
			if r.Frog.Position() != tc.frogRest {
				t.Errorf("frog moved to %v, expected %v", r.Frog.Position(), tc.frogRest)
			}
		})
	}
}

func TestEvaluateBirdSendsPelicanToCorner(t *testing.T) {
	r, _ := evaluateAt(t, config.DefaultFrogChaseConfig(), LiteralPursuer{}, core.Pt(180, 350))
	if r.Pelican.Position() != core.Pt(815, 10) {
		t.Errorf("pelican at %v, expected (815, 10)", r.Pelican.Position())
	}
}

func TestEvaluateEndingsSendPelicanHome(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()

	tests := []struct {
		name    string
		frog    core.Point
		trigger Trigger
	}{
		{"goal", core.Pt(410, 660), TriggerGoal},
		{"home door", core.Pt(580, 270), TriggerHome},
		{"down1 trapdoor", core.Pt(100, 190), TriggerDown1},
		{"down2 trapdoor", core.Pt(180, 590), TriggerDown2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := fixedRound(cfg)
			r.Pelican.SetPosition(core.Pt(300, 300))
			r.Frog.SetPosition(tc.frog)

			ev := NewOutcomeEvaluator(cfg, ProximityPursuer{Speed: 80, Radius: 40}).Evaluate(r)
			if ev.Trigger != tc.trigger {
				t.Fatalf("Evaluate(%v) = %+v, expected %v", tc.frog, ev, tc.trigger)
			}
			if r.Pelican.Position() != cfg.Outcome.PursuerHome {
				t.Errorf("pelican at %v, expected %v", r.Pelican.Position(), cfg.Outcome.PursuerHome)
			}
		})
	}
}

func TestEvaluateDoorPrecedence(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	r := fixedRound(cfg)
	r.Markers[MarkerDown1].Tile = r.Markers[MarkerBird].Tile
	r.Frog.SetPosition(core.Pt(180, 350))

	if ev := NewOutcomeEvaluator(cfg, NoPursuer{}).Evaluate(r); ev.Trigger != TriggerBird {
		t.Errorf("bird door should win over a trapdoor on the same tile, got %+v", ev)
	}
}

func TestEvaluateExactTolerance(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	cfg.Markers.Tolerance = 0

	_, ev := evaluateAt(t, cfg, NoPursuer{}, core.Pt(181, 350))
	if ev.Outcome != OutcomeNone {
		t.Errorf("tolerance 0 should require an exact hit, got %+v", ev)
	}
	_, ev = evaluateAt(t, cfg, NoPursuer{}, core.Pt(180, 350))
	if ev.Trigger != TriggerBird {
		t.Errorf("exact hit should trigger the bird door, got %+v", ev)
	}
}

func TestEvaluateSafeSpotsSendPelicanHome(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()

	for _, p := range []core.Point{core.Pt(20, 30), core.Pt(20, 430), core.Pt(20, 510)} {
		r := fixedRound(cfg)
		r.Pelican.SetPosition(core.Pt(300, 300))
		r.Frog.SetPosition(p)

		ev := NewOutcomeEvaluator(cfg, LiteralPursuer{}).Evaluate(r)
		if ev.Outcome != OutcomeNone || ev.Trigger != TriggerSafe {
			t.Errorf("safe spot %v: %+v", p, ev)
		}
		if r.Pelican.Position() != cfg.Outcome.PursuerHome {
			t.Errorf("safe spot %v: pelican at %v, expected home", p, r.Pelican.Position())
		}
	}
}

func TestEvaluatePursuerPolicies(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	open := core.Pt(100, 30)

	r, ev := evaluateAt(t, cfg, LiteralPursuer{}, open)
	if ev.Outcome != OutcomeLost || ev.Trigger != TriggerPursuer {
		t.Errorf("literal pursuer: %+v, expected a catch", ev)
	}
	if r.Pelican.Position() != open {
		t.Errorf("literal pursuer should land on the frog, pelican at %v", r.Pelican.Position())
	}

	r, ev = evaluateAt(t, cfg, NoPursuer{}, open)
	if ev.Outcome != OutcomeNone {
		t.Errorf("disabled pursuer: %+v, expected no outcome", ev)
	}
	if r.Pelican.Position() != cfg.Outcome.PursuerHome {
		t.Errorf("disabled pursuer moved to %v", r.Pelican.Position())
	}
}

func TestProximityPursuerClosesIn(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	r := fixedRound(cfg)
	r.Frog.SetPosition(core.Pt(100, 30))
	e := NewOutcomeEvaluator(cfg, ProximityPursuer{Speed: 80, Radius: 40})

	caughtAt := 0
	for i := 1; i <= 20; i++ {
		if ev := e.Evaluate(r); ev.Outcome == OutcomeLost {
			caughtAt = i
			break
		}
	}
	// 815 -> 100 in 80 px strides closes to within 40 px on the ninth move.
	if caughtAt != 9 {
		t.Errorf("caught after %d evaluations, expected 9", caughtAt)
	}
	if r.Pelican.Position() != core.Pt(100, 30) {
		t.Errorf("pelican at %v, expected on the frog", r.Pelican.Position())
	}
}

func TestNewPursuerPolicy(t *testing.T) {
	tests := map[string]string{
		"":                      config.PursuerLiteral,
		config.PursuerLiteral:   config.PursuerLiteral,
		config.PursuerProximity: config.PursuerProximity,
		config.PursuerOff:       config.PursuerOff,
	}
	for in, want := range tests {
		p, err := NewPursuerPolicy(config.PursuerConfig{Policy: in, Speed: 80, CatchRadius: 40})
		if err != nil || p.Name() != want {
			t.Errorf("NewPursuerPolicy(%q) = %v, %v; expected %s", in, p, err, want)
		}
	}

	if _, err := NewPursuerPolicy(config.PursuerConfig{Policy: "eagle"}); !errors.Is(err, core.ErrAssetLoad) {
		t.Errorf("unknown policy: expected ErrAssetLoad, got %v", err)
	}
}

func TestScoreFor(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig().Scoring
	if got := ScoreFor(cfg, 4, 1); got != 800 {
		t.Errorf("ScoreFor(4, 1) = %d, expected 800", got)
	}
	if got := ScoreFor(cfg, 100, 5); got != cfg.Floor {
		t.Errorf("ScoreFor(100, 5) = %d, expected floor %d", got, cfg.Floor)
	}
}
