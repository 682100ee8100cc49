package frogchase

import (
	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// Bounds is the area a sprite may occupy. A move is reverted when the sprite
// would cross Left/Top or push its right edge past Right or its bottom edge
// past Bottom.
type Bounds struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// BoundsFor derives movement bounds from the screen. The right edge stops
// RightMargin short of the screen while the bottom may overshoot by
// BottomOvershoot.
func BoundsFor(s config.ScreenConfig) Bounds {
	return Bounds{
		Right:  s.Width - s.RightMargin,
		Bottom: s.Height + s.BottomOvershoot,
	}
}

// MoveResult reports what happened to one Move call.
type MoveResult struct {
	MovedX   bool
	MovedY   bool
	BlockedX bool
	BlockedY bool
	Collided bool // a rock caused at least one of the blocks
}

// Moved reports whether the position changed.
func (r MoveResult) Moved() bool {
	return r.MovedX || r.MovedY
}

// MovableEntity is a sprite with a pixel position and a velocity built from
// the arrow keys currently held.
type MovableEntity struct {
	pos  core.Point
	vel  core.Point
	w, h int
	step int
	held map[core.Key]bool
}

// NewMovableEntity places a w×h sprite at pos. Each held arrow adds step
// pixels per move on its axis.
func NewMovableEntity(pos core.Point, w, h, step int) *MovableEntity {
	return &MovableEntity{
		pos:  pos,
		w:    w,
		h:    h,
		step: step,
		held: make(map[core.Key]bool),
	}
}

// HandleInput updates velocity from an arrow key transition and reports
// whether it changed. Repeats, presses of a key already held and releases of
// a key not held are ignored so auto-repeat cannot drift the velocity.
func (e *MovableEntity) HandleInput(ev core.KeyEvent) bool {
	if !ev.Key.IsArrow() || ev.Repeat {
		return false
	}

	sign := 1
	switch ev.Type {
	case core.KeyPressed:
		if e.held[ev.Key] {
			return false
		}
		e.held[ev.Key] = true
	case core.KeyReleased:
		if !e.held[ev.Key] {
			return false
		}
		delete(e.held, ev.Key)
		sign = -1
	default:
		return false
	}

	d := sign * e.step
	switch ev.Key {
	case core.KeyLeft:
		e.vel.X -= d
	case core.KeyRight:
		e.vel.X += d
	case core.KeyUp:
		e.vel.Y -= d
	case core.KeyDown:
		e.vel.Y += d
	}
	return true
}

// Move applies the X velocity, then the Y velocity. Each axis is reverted on
// its own when it breaks the bounds or hits a rock.
func (e *MovableEntity) Move(obstacles []GridPosition, checker CollisionChecker, bounds Bounds) MoveResult {
	var res MoveResult

	if e.vel.X != 0 {
		e.pos.X += e.vel.X
		hit := checker.AnyOverlap(e.Box(), obstacles)
		if e.pos.X < bounds.Left || e.pos.X+e.w > bounds.Right || hit {
			e.pos.X -= e.vel.X
			res.BlockedX = true
			res.Collided = res.Collided || hit
		} else {
			res.MovedX = true
		}
	}

	if e.vel.Y != 0 {
		e.pos.Y += e.vel.Y
		hit := checker.AnyOverlap(e.Box(), obstacles)
		if e.pos.Y < bounds.Top || e.pos.Y+e.h > bounds.Bottom || hit {
			e.pos.Y -= e.vel.Y
			res.BlockedY = true
			res.Collided = res.Collided || hit
		} else {
			res.MovedY = true
		}
	}

	return res
}

// Position returns the top-left pixel.
func (e *MovableEntity) Position() core.Point {
	return e.pos
}

// SetPosition teleports the sprite without touching its velocity.
func (e *MovableEntity) SetPosition(p core.Point) {
	e.pos = p
}

// Velocity returns the current per-move displacement.
func (e *MovableEntity) Velocity() core.Point {
	return e.vel
}

// Box returns the sprite's bounding box at its current position.
func (e *MovableEntity) Box() core.Rect {
	return core.NewRect(e.pos.X, e.pos.Y, e.w, e.h)
}

// Held reports whether k is currently pressed.
func (e *MovableEntity) Held(k core.Key) bool {
	return e.held[k]
}

// Stop zeroes the velocity and forgets held keys.
func (e *MovableEntity) Stop() {
	e.vel = core.Point{}
	clear(e.held)
}
