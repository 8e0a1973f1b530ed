package engine

import (
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/module"
	"github.com/vovakirdan/bulletcraft/internal/program"
)

// updateBullets integrates bullet motion. Bullets bounce off the left, right
// and top edges losing some speed; the bottom edge is open.
func (e *Engine) updateBullets(dt float64) {
	w := e.cfg.Canvas.Width
	decay := e.cfg.Bullets.BorderDecay

	for _, b := range e.state.Bullets {
		b.Position = b.Position.Add(b.Velocity.Scale(dt))

		if b.Position.X-b.Radius < 0 {
			b.Position.X = b.Radius
			b.Velocity.X = -b.Velocity.X * decay
		}
		if b.Position.X+b.Radius > w {
			b.Position.X = w - b.Radius
			b.Velocity.X = -b.Velocity.X * decay
		}
		if b.Position.Y-b.Radius < 0 {
			b.Position.Y = b.Radius
			b.Velocity.Y = -b.Velocity.Y * decay
		}
	}
}

// updateRings expands AOE rings, damages every brick a ring touches once,
// and drops rings past their maximum radius.
func (e *Engine) updateRings(dt float64) {
	kept := e.state.Rings[:0]

	for _, r := range e.state.Rings {
		r.Radius += r.ExpandSpeed * dt
		if r.Radius >= r.MaxRadius {
			continue
		}
		for _, b := range e.state.Bricks {
			if b.Health <= 0 || r.damaged[b.ID] {
				continue
			}
			if core.CircleRect(r.Center, r.Radius, b.Rect) {
				r.damaged[b.ID] = true
				e.damageBrick(b, r.Damage)
			}
		}
		kept = append(kept, r)
	}

	clearTail(e.state.Rings, len(kept))
	e.state.Rings = kept
}

// checkCollisions resolves bullet-vs-brick hits. Each bullet interacts with
// at most one brick per tick. Bullets spawned by triggers join the live list
// after the pass.
func (e *Engine) checkCollisions() {
	var spawned []*program.Bullet
	kept := e.state.Bullets[:0]

	for _, b := range e.state.Bullets {
		brick := e.firstHit(b)
		if brick == nil {
			kept = append(kept, b)
			continue
		}

		e.damageBrick(brick, b.Damage)

		if b.HasTrigger() {
			burst := e.proc.CreateTriggeredBullets(b.Trigger, b.Position)
			spawned = append(spawned, burst...)
			e.logger.Debug("collision trigger", "bullet", b.ID, "spawned", len(burst))
			b.Trigger = nil
		}

		if b.BaseType == module.AOE {
			e.spawnRing(b.Position)
		}

		if b.BounceCount > 0 {
			if bounceOff(b, brick.Rect) {
				b.BounceCount--
			}
			kept = append(kept, b)
		}
	}

	clearTail(e.state.Bullets, len(kept))
	e.state.Bullets = append(kept, spawned...)
}

func (e *Engine) firstHit(b *program.Bullet) *Brick {
	for _, brick := range e.state.Bricks {
		if brick.Health > 0 && core.CircleRect(b.Position, b.Radius, brick.Rect) {
			return brick
		}
	}
	return nil
}

// bounceOff reflects the bullet velocity about the normal pointing from the
// brick centre to the bullet and moves the bullet clear of the brick.
// Speed is preserved. It reports whether the velocity was reflected; a
// bullet already moving away from the brick is only pushed out.
func bounceOff(b *program.Bullet, r core.Rect) bool {
	n := b.Position.Sub(r.Center()).Normalize()
	if n == (core.Vec2{}) {
		n = b.Velocity.Scale(-1).Normalize()
	}

	reflected := b.Velocity.Dot(n) < 0
	if reflected {
		b.Velocity = b.Velocity.Reflect(n)
	}

	for i := 0; i < 8 && core.CircleRect(b.Position, b.Radius, r); i++ {
		b.Position = b.Position.Add(n.Scale(b.Radius))
	}
	return reflected
}

func (e *Engine) spawnRing(at core.Vec2) {
	e.state.Rings = append(e.state.Rings, &AOERing{
		ID:          "aoe-" + uuid.NewString(),
		Center:      at,
		MaxRadius:   e.cfg.AOE.MaxRadius,
		ExpandSpeed: e.cfg.AOE.ExpandSpeed,
		Damage:      e.cfg.AOE.Damage,
		damaged:     make(map[string]bool),
	})
}

// cleanup removes destroyed bricks and entities that left the field.
func (e *Engine) cleanup() {
	limit := e.cfg.Canvas.Height + e.cfg.Bullets.CleanupMargin

	bricks := e.state.Bricks[:0]
	for _, b := range e.state.Bricks {
		if b.Health > 0 {
			bricks = append(bricks, b)
		}
	}
	clearTail(e.state.Bricks, len(bricks))
	e.state.Bricks = bricks

	minVY := e.cfg.Bullets.MinVerticalSpeed
	bullets := e.state.Bullets[:0]
	for _, b := range e.state.Bullets {
		if b.Position.Y < limit && math.Abs(b.Velocity.Y) >= minVY {
			bullets = append(bullets, b)
		}
	}
	clearTail(e.state.Bullets, len(bullets))
	e.state.Bullets = bullets

	marbles := e.state.Marbles[:0]
	for _, m := range e.state.Marbles {
		if m.Position.Y > limit {
			e.state.PendingMarbles--
			continue
		}
		marbles = append(marbles, m)
	}
	clearTail(e.state.Marbles, len(marbles))
	e.state.Marbles = marbles
}
