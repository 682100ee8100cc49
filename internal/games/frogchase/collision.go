package frogchase

import (
	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// CollisionChecker tests the frog against rock tiles. A rock only counts once
// the boxes overlap by more than SlackY vertically and SlackX horizontally,
// which shrinks each rock's footprint on every side.
type CollisionChecker struct {
	SlackX   int
	SlackY   int
	TileSize int
}

// NewCollisionChecker builds a checker from the collision section.
func NewCollisionChecker(cfg config.CollisionConfig, tileSize int) CollisionChecker {
	return CollisionChecker{SlackX: cfg.SlackX, SlackY: cfg.SlackY, TileSize: tileSize}
}

// TileBox converts a rock tile to its pixel box.
func (c CollisionChecker) TileBox(p GridPosition) core.Rect {
	o := p.Origin(c.TileSize)
	return core.NewRect(o.X, o.Y, c.TileSize, c.TileSize)
}

// Overlaps applies the slack rule to one pair of boxes.
func (c CollisionChecker) Overlaps(entity, obstacle core.Rect) bool {
	return entity.Bottom()-obstacle.Y > c.SlackY &&
		obstacle.Bottom()-entity.Y > c.SlackY &&
		entity.Right()-obstacle.X > c.SlackX &&
		obstacle.Right()-entity.X > c.SlackX
}

// AnyOverlap scans the rocks once and stops at the first hit.
func (c CollisionChecker) AnyOverlap(entity core.Rect, obstacles []GridPosition) bool {
	for _, p := range obstacles {
		if c.Overlaps(entity, c.TileBox(p)) {
			return true
		}
	}
	return false
}
