package engine

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/bulletcraft/internal/core"
)

// SpawnBrickRow appends one row of bricks at the top of the field.
// Brick health is round × the configured multiplier.
func (e *Engine) SpawnBrickRow() {
	if e.state.GameOver {
		return
	}

	bc := e.cfg.Bricks
	health := e.difficulty.BrickHealth(bc.HealthMultiplier, e.ctrl.Round())

	for i := range bc.PerRow {
		x := bc.Left + float64(i)*(bc.Width+bc.Spacing)
		e.state.Bricks = append(e.state.Bricks, &Brick{
			ID:        "brick-" + uuid.NewString(),
			Rect:      core.NewRect(x, bc.Top, bc.Width, bc.Height),
			Health:    health,
			MaxHealth: health,
		})
	}

	e.logger.Debug("brick row spawned", "round", e.ctrl.Round(), "health", health, "bricks", len(e.state.Bricks))
}

// MoveBricksDown shifts every brick one grid unit down, then charges the
// player one health for each brick that reached the player line.
func (e *Engine) MoveBricksDown() {
	if e.state.GameOver {
		return
	}

	for _, b := range e.state.Bricks {
		b.Rect.Y += e.cfg.Bricks.GridSize
		b.Row++
	}
	e.checkBricksTouchBottom()
}

func (e *Engine) checkBricksTouchBottom() {
	line := e.state.Player.Position.Y
	kept := e.state.Bricks[:0]

	for _, b := range e.state.Bricks {
		if b.Rect.Bottom() >= line {
			e.state.Player.Health--
			e.logger.Warn("brick reached the player", "health", e.state.Player.Health)
			continue
		}
		kept = append(kept, b)
	}
	clearTail(e.state.Bricks, len(kept))
	e.state.Bricks = kept

	if e.state.Player.Health <= 0 {
		e.endGame()
	}
}

// damageBrick applies damage and reports whether the brick was destroyed.
// Destroyed bricks are removed in cleanup.
func (e *Engine) damageBrick(b *Brick, damage int) bool {
	if b.Health <= 0 {
		return false
	}
	b.Health -= damage
	if b.Health > 0 {
		return false
	}
	e.state.Score += e.cfg.Bricks.Points
	return true
}

// clearTail nils out the pointers past n so the old backing array does not
// keep removed entities alive.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
