package frogchase

import (
	"math/rand"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// Game IDs, also used as score keys.
const (
	GameID         = "frogchase"
	GameIDRealtime = "frogchase_realtime"
)

// Phase is the round state machine.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseWon
	PhaseHazardHit
	PhaseLost
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseHazardHit:
		return "hazard_hit"
	case PhaseLost:
		return "lost"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Signal is what the host should act on after a Step. Exactly one is
// produced per frame.
type Signal int

const (
	SignalShowIntro Signal = iota
	SignalPlaying
	SignalWon
	SignalLost
	SignalGameOver
	SignalRestartRequested
	SignalQuit
)

func (s Signal) String() string {
	switch s {
	case SignalShowIntro:
		return "show_intro"
	case SignalPlaying:
		return "playing"
	case SignalWon:
		return "won"
	case SignalLost:
		return "lost"
	case SignalGameOver:
		return "game_over"
	case SignalRestartRequested:
		return "restart_requested"
	case SignalQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Cue is a one-frame sound hint. Hosts without audio may log it.
type Cue int

const (
	CueNone Cue = iota
	CueCroak
	CueWhoosh
	CueVictory
	CueLaugh
)

func (c Cue) String() string {
	switch c {
	case CueCroak:
		return "croak"
	case CueWhoosh:
		return "whoosh"
	case CueVictory:
		return "victory"
	case CueLaugh:
		return "laugh"
	default:
		return ""
	}
}

// Game runs Frog Chase rounds back to back from a single random stream.
type Game struct {
	id        string
	cfg       config.FrogChaseConfig
	checker   CollisionChecker
	bounds    Bounds
	evaluator *OutcomeEvaluator
	goalTile  GridPosition

	rng    *rand.Rand
	placer *RandomPlacer
	round  *RoundState
	rounds int

	phase      Phase
	phaseTicks int
	signal     Signal
	cue        Cue
	lastEval   Evaluation
	lastMove   MoveResult

	// Planned mode
	plan       []core.KeyEvent
	executing  bool
	stepTicker int

	tick    uint64
	paused  bool
	quit    bool
	screenW int
	screenH int
}

// New creates a game for cfg. The game is not playable until Reset.
func New(cfg config.FrogChaseConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := NewPursuerPolicy(cfg.Pursuer)
	if err != nil {
		return nil, err
	}

	id := GameID
	if cfg.Movement.Mode == config.ModeRealtime {
		id = GameIDRealtime
	}

	return &Game{
		id:        id,
		cfg:       cfg,
		checker:   NewCollisionChecker(cfg.Collision, cfg.Screen.TileSize),
		bounds:    BoundsFor(cfg.Screen),
		evaluator: NewOutcomeEvaluator(cfg, policy),
		goalTile:  fromConfigTile(cfg.Outcome.GoalTile),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == GameIDRealtime {
		return "Frog Chase (Realtime)"
	}
	return "Frog Chase"
}

// Reset seeds the random source and starts the first round on the intro
// screen. Later rounds keep drawing from the same source.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.placer = NewRandomPlacer(g.rng)
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.rounds = 0
	g.paused = false
	g.quit = false
	g.startRound()
	g.signal = SignalShowIntro
}

func (g *Game) startRound() {
	g.rounds++
	g.round = NewRoundState(g.rounds, g.cfg, g.placer)
	g.round.ReconcileWithGoal(g.goalTile)
	g.setPhase(PhaseIntro)
	g.plan = g.plan[:0]
	g.executing = false
	g.stepTicker = 0
	g.lastEval = Evaluation{}
	g.lastMove = MoveResult{}
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.phaseTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.cue = CueNone

	if g.quit || input.Has(core.ActionQuit) {
		g.quit = true
		g.signal = SignalQuit
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		g.signal = g.phaseSignal()
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseIntro:
		if input.Pressed(core.KeyEnter) {
			g.setPhase(PhasePlaying)
			g.cue = CueCroak
		}
	case PhasePlaying:
		g.stepPlaying(input)
	case PhaseHazardHit:
		g.phaseTicks++
		if g.phaseTicks >= g.cfg.Timing.HazardTicks {
			g.setPhase(PhasePlaying)
		}
	case PhaseWon, PhaseLost:
		g.phaseTicks++
		if g.phaseTicks >= g.cfg.Timing.ResultTicks {
			g.setPhase(PhaseGameOver)
		}
	case PhaseGameOver:
		switch {
		case input.Pressed(core.KeyYes):
			g.startRound()
			g.signal = SignalRestartRequested
			return core.StepResult{State: g.State()}
		case input.Pressed(core.KeyNo):
			g.quit = true
			g.signal = SignalQuit
			return core.StepResult{State: g.State()}
		}
	}

	g.signal = g.phaseSignal()
	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(input core.InputFrame) {
	g.round.ReconcileWithGoal(g.goalTile)

	if g.cfg.Movement.Mode == config.ModeRealtime {
		g.stepRealtime(input)
		return
	}
	g.stepPlanned(input)
}

// stepPlanned records arrow transitions until Enter, then replays one
// recorded event every StepTicks. The outcome is only checked once the plan
// has drained.
func (g *Game) stepPlanned(input core.InputFrame) {
	if !g.executing {
		for _, ev := range input.Keys {
			switch {
			case ev.Repeat:
			case ev.Key.IsArrow():
				if len(g.plan) < g.cfg.Movement.MaxPlan {
					g.plan = append(g.plan, ev)
				}
			case ev.Key == core.KeyEscape && ev.Type == core.KeyPressed:
				g.plan = g.plan[:0]
			case ev.Key == core.KeyEnter && ev.Type == core.KeyPressed && len(g.plan) > 0:
				g.executing = true
				g.stepTicker = 0
				return
			}
		}
		return
	}

	// Input is ignored while the plan runs.
	g.stepTicker++
	if g.stepTicker < g.cfg.Timing.StepTicks {
		return
	}
	g.stepTicker = 0

	ev := g.plan[0]
	g.plan = g.plan[1:]
	g.round.Frog.HandleInput(ev)
	g.advance()
	// Every replayed event whooshes, releases included.
	g.cue = CueWhoosh

	if len(g.plan) == 0 {
		g.executing = false
		g.round.Frog.Stop()
		g.evaluate()
	}
}

// stepRealtime feeds key transitions straight to the frog and moves it every
// StepTicks.
func (g *Game) stepRealtime(input core.InputFrame) {
	for _, ev := range input.Keys {
		g.round.Frog.HandleInput(ev)
	}

	g.stepTicker++
	if g.stepTicker < g.cfg.Timing.StepTicks {
		return
	}
	g.stepTicker = 0

	g.advance()
	g.evaluate()
}

func (g *Game) advance() {
	if g.round.Frog.Velocity() == (core.Point{}) {
		g.lastMove = MoveResult{}
		return
	}
	g.lastMove = g.round.Frog.Move(g.round.Obstacles.All(), g.checker, g.bounds)
	g.round.Steps++
	g.cue = CueWhoosh
}

func (g *Game) evaluate() {
	ev := g.evaluator.Evaluate(g.round)
	g.lastEval = ev

	switch ev.Outcome {
	case OutcomeWon:
		g.finish(ev, ScoreFor(g.cfg.Scoring, g.round.Steps, g.round.Hazards))
		g.cue = CueVictory
		g.setPhase(PhaseWon)
	case OutcomeLost:
		g.finish(ev, 0)
		g.cue = CueLaugh
		g.setPhase(PhaseLost)
	case OutcomeHazard:
		g.round.Hazards++
		g.round.Frog.Stop()
		g.plan = g.plan[:0]
		g.executing = false
		g.cue = CueCroak
		g.setPhase(PhaseHazardHit)
	}
}

func (g *Game) finish(ev Evaluation, score int) {
	g.round.Outcome = ev.Outcome
	g.round.Trigger = ev.Trigger
	g.round.Score = score
	g.round.Frog.Stop()
	g.plan = g.plan[:0]
	g.executing = false
}

func (g *Game) phaseSignal() Signal {
	switch g.phase {
	case PhaseIntro:
		return SignalShowIntro
	case PhaseWon:
		return SignalWon
	case PhaseLost:
		return SignalLost
	case PhaseGameOver:
		return SignalGameOver
	default:
		return SignalPlaying
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.round != nil {
		score = g.round.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Signal returns the signal produced by the last Step.
func (g *Game) Signal() Signal { return g.signal }

// Cue returns the cue produced by the last Step, or CueNone.
func (g *Game) Cue() Cue { return g.cue }

// Round returns the round in progress.
func (g *Game) Round() *RoundState { return g.round }

// Config returns the rules the game was built with.
func (g *Game) Config() config.FrogChaseConfig { return g.cfg }

// LastEvaluation returns the most recent outcome check.
func (g *Game) LastEvaluation() Evaluation { return g.lastEval }

// LastMove returns the result of the most recent executed move.
func (g *Game) LastMove() MoveResult { return g.lastMove }

// PlanLen returns the number of queued key events.
func (g *Game) PlanLen() int { return len(g.plan) }

// Executing reports whether a plan is being replayed.
func (g *Game) Executing() bool { return g.executing }
