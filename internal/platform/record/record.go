// Package record saves finished rounds for the presentation hosts.
package record

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frog-chase/internal/core"
	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
	"github.com/vovakirdan/frog-chase/internal/registry"
	"github.com/vovakirdan/frog-chase/internal/storage"
)

// Recorder writes the score and round history once per game over.
// A nil Store makes it a no-op.
type Recorder struct {
	Store  *storage.Store
	Logger *log.Logger
	Seed   int64

	saved bool
}

// Observe is called after every Step with the state it returned.
// It reports whether a round was written.
func (r *Recorder) Observe(g registry.Game, st core.GameState) bool {
	if !st.GameOver {
		r.saved = false
		return false
	}
	if r.saved {
		return false
	}
	r.saved = true
	if r.Store == nil {
		return false
	}

	if st.Score > 0 {
		if _, err := r.Store.SaveScore(g.ID(), st.Score); err != nil {
			r.warn("save score failed", "err", err)
		}
	}

	fg, ok := g.(*frogchase.Game)
	if !ok {
		return false
	}
	rec := RoundFor(fg, r.Seed)
	if _, err := r.Store.SaveRound(rec); err != nil {
		r.warn("save round failed", "err", err)
		return false
	}
	if r.Logger != nil {
		r.Logger.Info("round recorded", "round", rec.Round, "outcome", rec.Outcome, "trigger", rec.Trigger, "score", rec.Score)
	}
	return true
}

func (r *Recorder) warn(msg string, kv ...any) {
	if r.Logger != nil {
		r.Logger.Warn(msg, kv...)
	}
}

// RoundFor builds a history record from the game's current round.
func RoundFor(g *frogchase.Game, seed int64) storage.RoundRecord {
	rd := g.Round()
	return storage.RoundRecord{
		GameID:  g.ID(),
		Seed:    seed,
		Round:   rd.Number,
		Outcome: rd.Outcome.String(),
		Trigger: string(rd.Trigger),
		Steps:   rd.Steps,
		Hazards: rd.Hazards,
		Score:   rd.Score,
	}
}
