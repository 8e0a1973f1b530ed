package engine

import (
	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/phase"
)

// Aim limits in degrees. 0° points right and -90° straight up; shots are
// kept off the horizontal so they always leave the field eventually.
const (
	MinAim = -170.0
	MaxAim = -10.0
)

// AimDirection returns the unit vector for an aim angle clamped to the limits.
func AimDirection(deg float64) core.Vec2 {
	return core.FromAngle(core.ClampF(deg, MinAim, MaxAim))
}

// Autopilot plays without input. It fires at the lowest brick whenever the
// field is clear of its own bullets and forces a phase that has been stuck
// for too long.
type Autopilot struct {
	MaxWait int // ticks a phase may last before it is forced; 0 disables

	last  phase.Phase
	round int
	ticks int
}

// Act performs at most one command on e.
func (a *Autopilot) Act(e *Engine) {
	s := e.State()
	if s.GameOver {
		return
	}

	if s.Phase != a.last || s.Round != a.round {
		a.last, a.round, a.ticks = s.Phase, s.Round, 0
	}
	a.ticks++

	if a.MaxWait > 0 && a.ticks > a.MaxWait {
		e.NextPhase()
		return
	}

	if s.Phase != phase.PlayerAction || len(s.Bullets) > 0 || e.queue.bullets() > 0 {
		return
	}

	for i, slot := range s.Slots {
		if !slot.CanFire() {
			continue
		}
		e.SwitchBulletSlot(i)
		if err := e.ShootBullet(a.aim(s)); err != nil {
			e.logger.Debug("autopilot shot rejected", "slot", slot.ID, "error", err)
		}
		return
	}
}

// aim points at the lowest living brick, or straight up.
func (a *Autopilot) aim(s *GameState) core.Vec2 {
	var target *Brick
	for _, b := range s.Bricks {
		if target == nil || b.Rect.Bottom() > target.Rect.Bottom() {
			target = b
		}
	}
	if target == nil {
		return AimDirection(-90)
	}
	return AimDirection(target.Rect.Center().Sub(s.Player.Position).Angle())
}
