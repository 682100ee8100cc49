package frogchase

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

func testConfig() config.FrogChaseConfig {
	cfg := config.DefaultFrogChaseConfig()
	cfg.Timing = config.TimingConfig{StepTicks: 1, ResultTicks: 2, HazardTicks: 2}
	return cfg
}

func newTestGame(t *testing.T, cfg config.FrogChaseConfig, seed int64) *Game {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

// placeDoors pins the doors away from the test paths:
// down1 (1,0) -> (100,30), bird (2,7) -> (180,590), down2 (2,6) -> (180,510).
func placeDoors(g *Game) {
	g.round.Markers = Markers{
		{Kind: MarkerHome, Tile: Tile(7, 3)},
		{Kind: MarkerBird, Tile: Tile(2, 7)},
		{Kind: MarkerDown1, Tile: Tile(1, 0)},
		{Kind: MarkerDown2, Tile: Tile(2, 6)},
	}
}

func keys(events ...[]core.KeyEvent) core.InputFrame {
	f := core.NewInputFrame()
	for _, e := range events {
		f.Push(e...)
	}
	return f
}

func taps(k core.Key, n int) []core.KeyEvent {
	var out []core.KeyEvent
	for range n {
		out = append(out, core.Tap(k)...)
	}
	return out
}

func idle(g *Game, n int) {
	for range n {
		g.Step(core.NewInputFrame())
	}
}

func start(t *testing.T, g *Game) {
	t.Helper()
	g.Step(keys(core.Tap(core.KeyEnter)))
	if g.Phase() != PhasePlaying || g.Cue() != CueCroak {
		t.Fatalf("Enter on intro: phase=%v cue=%v", g.Phase(), g.Cue())
	}
}

func TestIntroWaitsForEnter(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	if g.Signal() != SignalShowIntro {
		t.Errorf("after Reset signal = %v, expected show_intro", g.Signal())
	}

	g.Step(keys(core.Tap(core.KeyRight)))
	if g.Phase() != PhaseIntro || g.Signal() != SignalShowIntro {
		t.Errorf("arrows on intro should do nothing, phase=%v", g.Phase())
	}

	start(t, g)
	if g.Signal() != SignalPlaying {
		t.Errorf("signal = %v, expected playing", g.Signal())
	}
}

func TestPlannedRoundToGoal(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	placeDoors(g)
	start(t, g)

	// Along the top row to x=420, then straight down to the goal.
	g.Step(keys(taps(core.KeyRight, 5), taps(core.KeyDown, 8)))
	if g.PlanLen() != 26 {
		t.Fatalf("PlanLen = %d, expected 26", g.PlanLen())
	}
	if g.Round().Frog.Position() != core.Pt(20, 30) {
		t.Fatal("frog should not move before Enter")
	}

	g.Step(keys(core.Tap(core.KeyEnter)))
	if !g.Executing() {
		t.Fatal("Enter should start the plan")
	}

	idle(g, 1)
	if g.Cue() != CueWhoosh || g.Round().Frog.Position() != core.Pt(100, 30) {
		t.Fatalf("first press: cue=%v frog=%v", g.Cue(), g.Round().Frog.Position())
	}
	idle(g, 1)
	if g.Cue() != CueWhoosh || g.Round().Steps != 1 {
		t.Fatalf("a replayed release should whoosh without a hop: cue=%v steps=%d", g.Cue(), g.Round().Steps)
	}

	idle(g, 23)
	if g.Phase() != PhasePlaying {
		t.Fatalf("outcome should wait for the last planned event, phase=%v", g.Phase())
	}
	if g.Round().Frog.Position() != core.Pt(420, 670) {
		t.Fatalf("frog at %v before the last event, expected (420, 670)", g.Round().Frog.Position())
	}

	idle(g, 1)
	if g.Phase() != PhaseWon || g.Signal() != SignalWon || g.Cue() != CueVictory {
		t.Fatalf("expected won, got phase=%v signal=%v cue=%v", g.Phase(), g.Signal(), g.Cue())
	}
	r := g.Round()
	if r.Steps != 13 || r.Trigger != TriggerGoal {
		t.Errorf("steps=%d trigger=%v, expected 13 steps via goal", r.Steps, r.Trigger)
	}
	if r.Score != 675 || g.State().Score != 675 {
		t.Errorf("score = %d, expected 675", r.Score)
	}
	if r.Frog.Position() != core.Pt(410, 648) {
		t.Errorf("frog at %v, expected win rest (410, 648)", r.Frog.Position())
	}

	idle(g, 1)
	if g.Phase() != PhaseWon {
		t.Fatal("result should hold for ResultTicks")
	}
	idle(g, 1)
	if g.Phase() != PhaseGameOver || g.Signal() != SignalGameOver || !g.State().GameOver {
		t.Fatalf("expected game over, got phase=%v", g.Phase())
	}
}

func TestPlannedMoveCaughtByPelican(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	placeDoors(g)
	start(t, g)

	g.Step(keys(core.Tap(core.KeyDown), core.Tap(core.KeyEnter)))
	idle(g, 1)
	if g.Phase() != PhasePlaying {
		t.Fatalf("press executed, release pending: phase=%v", g.Phase())
	}
	idle(g, 1)
	if g.Phase() != PhaseLost || g.Round().Trigger != TriggerPursuer || g.Cue() != CueLaugh {
		t.Fatalf("expected pelican catch, got phase=%v trigger=%v", g.Phase(), g.Round().Trigger)
	}
	if g.Round().Pelican.Position() != core.Pt(20, 110) || g.State().Score != 0 {
		t.Errorf("pelican at %v score %d", g.Round().Pelican.Position(), g.State().Score)
	}
}

func TestEscapeClearsPlan(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	start(t, g)

	g.Step(keys(taps(core.KeyRight, 3)))
	g.Step(keys(core.Tap(core.KeyEscape)))
	if g.PlanLen() != 0 {
		t.Errorf("PlanLen after Esc = %d", g.PlanLen())
	}

	g.Step(keys(core.Tap(core.KeyEnter)))
	if g.Executing() {
		t.Error("Enter with an empty plan should not execute")
	}
}

func TestPlanIsCapped(t *testing.T) {
	cfg := testConfig()
	cfg.Movement.MaxPlan = 4
	g := newTestGame(t, cfg, 1)
	start(t, g)

	g.Step(keys(taps(core.KeyRight, 10)))
	if g.PlanLen() != 4 {
		t.Errorf("PlanLen = %d, expected cap 4", g.PlanLen())
	}
}

func TestTrapdoorRecoversAndContinues(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	placeDoors(g)
	start(t, g)

	g.Step(keys(core.Tap(core.KeyRight), core.Tap(core.KeyEnter)))
	idle(g, 2)
	if g.Phase() != PhaseHazardHit || g.Signal() != SignalPlaying {
		t.Fatalf("expected hazard hit, got phase=%v signal=%v", g.Phase(), g.Signal())
	}
	r := g.Round()
	if r.Frog.Position() != core.Pt(20, 430) || r.Hazards != 1 || r.Finished() {
		t.Errorf("frog=%v hazards=%d finished=%v", r.Frog.Position(), r.Hazards, r.Finished())
	}

	idle(g, 2)
	if g.Phase() != PhasePlaying {
		t.Fatalf("hazard flash should end, phase=%v", g.Phase())
	}

	// The round goes on from the recovery tile.
	g.Step(keys(core.Tap(core.KeyRight), core.Tap(core.KeyEnter)))
	idle(g, 2)
	if g.Phase() != PhaseLost {
		t.Errorf("open tile should be caught, phase=%v", g.Phase())
	}
}

func TestBirdDoorLoses(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	placeDoors(g)
	g.round.Markers[MarkerBird].Tile = Tile(1, 0)
	start(t, g)

	g.Step(keys(core.Tap(core.KeyRight), core.Tap(core.KeyEnter)))
	idle(g, 2)
	r := g.Round()
	if g.Phase() != PhaseLost || r.Trigger != TriggerBird {
		t.Fatalf("expected bird loss, got phase=%v trigger=%v", g.Phase(), r.Trigger)
	}
	if r.Frog.Position() != core.Pt(815, 10) || r.Pelican.Position() != core.Pt(815, 10) {
		t.Errorf("frog=%v pelican=%v, expected both at (815, 10)", r.Frog.Position(), r.Pelican.Position())
	}
}

func TestGameOverRestartAndQuit(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	placeDoors(g)
	start(t, g)
	first := g.Round()

	g.Step(keys(core.Tap(core.KeyDown), core.Tap(core.KeyEnter)))
	idle(g, 4)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", g.Phase())
	}

	g.Step(keys(core.Tap(core.KeyYes)))
	if g.Signal() != SignalRestartRequested || g.Phase() != PhaseIntro {
		t.Fatalf("Y should restart, signal=%v phase=%v", g.Signal(), g.Phase())
	}
	r := g.Round()
	if r == first || r.Number != 2 || r.Steps != 0 || r.Outcome != OutcomeNone {
		t.Errorf("restart should build a fresh round, got %+v", r)
	}
	if r.Frog.Position() != core.Pt(20, 30) {
		t.Errorf("frog at %v after restart", r.Frog.Position())
	}
	if n := r.Obstacles.Len(); n == 0 || n > 40 {
		t.Errorf("fresh round has %d rocks, expected one batch of at most 40", n)
	}

	placeDoors(g)
	start(t, g)
	g.Step(keys(core.Tap(core.KeyDown), core.Tap(core.KeyEnter)))
	idle(g, 4)
	g.Step(keys(core.Tap(core.KeyNo)))
	if g.Signal() != SignalQuit || !g.State().Quit {
		t.Errorf("N should quit, signal=%v", g.Signal())
	}
	idle(g, 1)
	if g.Signal() != SignalQuit {
		t.Error("quit should be sticky")
	}
}

func TestQuitActionAnyPhase(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)

	if res := g.Step(in); !res.State.Quit || g.Signal() != SignalQuit {
		t.Errorf("quit action ignored: %+v", res.State)
	}
}

func TestPauseFreezesPlan(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	placeDoors(g)
	start(t, g)
	g.Step(keys(taps(core.KeyRight, 2), core.Tap(core.KeyEnter)))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action should pause while playing")
	}

	idle(g, 10)
	if g.Round().Frog.Position() != core.Pt(20, 30) || g.PlanLen() != 4 {
		t.Errorf("plan advanced while paused: frog=%v plan=%d", g.Round().Frog.Position(), g.PlanLen())
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRealtimeMode(t *testing.T) {
	cfg := testConfig()
	cfg.Movement.Mode = config.ModeRealtime
	cfg.Pursuer.Policy = config.PursuerOff
	g := newTestGame(t, cfg, 1)
	placeDoors(g)
	g.round.Markers[MarkerDown1].Tile = Tile(6, 6)

	if g.ID() != GameIDRealtime || !strings.Contains(g.Title(), "Realtime") {
		t.Errorf("ID=%q Title=%q", g.ID(), g.Title())
	}
	start(t, g)

	g.Step(keys([]core.KeyEvent{core.Press(core.KeyRight)}))
	if g.Round().Frog.Position() != core.Pt(100, 30) || g.Cue() != CueWhoosh {
		t.Fatalf("held key should hop at once, frog at %v", g.Round().Frog.Position())
	}
	idle(g, 1)
	g.Step(keys([]core.KeyEvent{core.Release(core.KeyRight)}))
	idle(g, 3)
	if g.Round().Frog.Position() != core.Pt(180, 30) {
		t.Errorf("frog at %v, expected two hops then rest", g.Round().Frog.Position())
	}
	if g.Round().Steps != 2 || g.Phase() != PhasePlaying {
		t.Errorf("steps=%d phase=%v", g.Round().Steps, g.Phase())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFrogChaseConfig()
	cfg.Pursuer.Policy = "eagle"
	if _, err := New(cfg); !errors.Is(err, core.ErrAssetLoad) {
		t.Errorf("New with bad policy: expected ErrAssetLoad, got %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	script := func(g *Game) {
		start(t, g)
		g.Step(keys(taps(core.KeyRight, 3), taps(core.KeyDown, 2), core.Tap(core.KeyEnter)))
		idle(g, 20)
		g.Step(keys(core.Tap(core.KeyYes)))
		idle(g, 3)
	}

	g1 := newTestGame(t, testConfig(), 424242)
	g2 := newTestGame(t, testConfig(), 424242)
	if !reflect.DeepEqual(g1.Frame(), g2.Frame()) {
		t.Fatal("frames differ right after Reset")
	}

	script(g1)
	script(g2)
	if !reflect.DeepEqual(g1.Frame(), g2.Frame()) {
		t.Errorf("frames diverged:\n%+v\n%+v", g1.Frame(), g2.Frame())
	}

	g3 := newTestGame(t, testConfig(), 7)
	if reflect.DeepEqual(g1.Frame().Obstacles, g3.Frame().Obstacles) {
		t.Error("different seeds should place different rocks")
	}
}

func TestFrameReportsRound(t *testing.T) {
	g := newTestGame(t, testConfig(), 99)
	f := g.Frame()

	if f.Round != 1 || f.Phase != "intro" || f.Signal != "show_intro" || f.Mode != config.ModePlanned {
		t.Errorf("unexpected frame header: %+v", f)
	}
	if len(f.Markers) != 4 || f.Markers[0].Kind != "home" {
		t.Errorf("markers = %+v", f.Markers)
	}
	if f.Player.Box != core.NewRect(20, 30, 104, 96) || f.Pursuer.Position != core.Pt(815, 10) {
		t.Errorf("sprites = %+v / %+v", f.Player, f.Pursuer)
	}
	for _, p := range f.Obstacles {
		if p == Tile(5, 8) {
			t.Error("frame should never show a rock on the goal tile")
		}
	}
}
