package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/module"
	"github.com/vovakirdan/bulletcraft/internal/program"
)

// bumperModules is the module cycle laid over the bumper field, layer by layer.
var bumperModules = []module.Type{
	module.Normal,
	module.Normal,
	module.Piercing,
	module.AOE,
	module.BouncePlus,
	module.ScatterPlus,
	module.VolleyPlus,
	module.CollisionTrigger,
}

// startLoading sets up the bumper field, tops up programmed slots and
// schedules the marble drops.
func (e *Engine) startLoading() {
	e.initBumpers()

	for _, s := range e.state.Slots {
		if len(s.Program) > 0 && s.EnergyCost > 0 && s.Energy < s.EnergyCost {
			s.Energy = s.EnergyCost
		}
	}

	n := e.cfg.Marbles.PerPhase
	e.state.PendingMarbles = n
	for i := range n {
		e.queue.push(emission{
			due:    e.state.Elapsed + time.Duration(i)*e.cfg.Marbles.LaunchInterval,
			marble: true,
		})
	}

	e.logger.Debug("loading started", "bumpers", len(e.state.Bumpers), "marbles", n)
}

// endLoading discards marbles that are still falling or not yet launched,
// which happens when the loading phase is forced to end early.
func (e *Engine) endLoading() {
	e.queue.dropMarbles()
	clearTail(e.state.Marbles, 0)
	e.state.Marbles = e.state.Marbles[:0]
	e.state.PendingMarbles = 0
}

// initBumpers lays out the bumper field. Bumpers in a layer are spread
// evenly across the canvas width.
func (e *Engine) initBumpers() {
	e.state.Bumpers = e.state.Bumpers[:0]

	idx := 0
	for _, layer := range e.cfg.Bumpers.Layers {
		spacing := e.cfg.Canvas.Width / float64(layer.Count+1)
		for i := range layer.Count {
			t := bumperModules[idx%len(bumperModules)]
			e.state.Bumpers = append(e.state.Bumpers, &Bumper{
				ID:           "bumper-" + uuid.NewString(),
				Position:     core.V(spacing*float64(i+1), layer.Y),
				Radius:       e.cfg.Bumpers.Radius,
				Module:       module.New(t),
				BaseCooldown: e.cfg.Bumpers.Cooldown,
			})
			idx++
		}
	}
}

// launchMarble drops one marble from the top centre with a random sideways speed.
func (e *Engine) launchMarble() {
	mc := e.cfg.Marbles
	e.state.Marbles = append(e.state.Marbles, &Marble{
		ID:       "marble-" + uuid.NewString(),
		Position: core.V(e.cfg.Canvas.Width/2, mc.LaunchY),
		Velocity: core.V(e.rng.Range(mc.MinSpeedX, mc.MaxSpeedX), 0),
		Radius:   mc.Radius,
	})
}

// updateMarbles applies gravity, side walls, bumper hits and slot intake.
// Marbles that land in a slot are consumed immediately.
func (e *Engine) updateMarbles(dt float64) {
	w := e.cfg.Canvas.Width
	decay := e.cfg.Bullets.BorderDecay
	kept := e.state.Marbles[:0]

	for _, m := range e.state.Marbles {
		m.Velocity.Y += e.cfg.Marbles.Gravity * dt
		m.Position = m.Position.Add(m.Velocity.Scale(dt))

		if m.Position.X-m.Radius < 0 {
			m.Position.X = m.Radius
			m.Velocity.X = -m.Velocity.X * decay
		}
		if m.Position.X+m.Radius > w {
			m.Position.X = w - m.Radius
			m.Velocity.X = -m.Velocity.X * decay
		}

		e.checkMarbleBumpers(m)

		if slot := e.slotAt(m.Position); slot != nil {
			e.deposit(m, slot)
			continue
		}
		kept = append(kept, m)
	}

	clearTail(e.state.Marbles, len(kept))
	e.state.Marbles = kept
}

func (e *Engine) checkMarbleBumpers(m *Marble) {
	for _, b := range e.state.Bumpers {
		if !b.Ready() || !core.CircleCircle(m.Position, m.Radius, b.Position, b.Radius) {
			continue
		}
		e.hitBumper(m, b)
	}
}

// hitBumper bounces the marble away from the bumper, hands it a copy of the
// bumper's module and puts the bumper on an escalating cooldown.
func (e *Engine) hitBumper(m *Marble, b *Bumper) {
	n := m.Position.Sub(b.Position).Normalize()
	if n == (core.Vec2{}) {
		n = core.V(0, -1)
	}
	speed := m.Velocity.Len()
	m.Velocity = n.Scale(speed * e.cfg.Marbles.BounceDecay)

	m.Collected = append(m.Collected, b.Module.Clone())
	m.Bounces++

	b.Cooldown = b.BaseCooldown + time.Duration(b.HitCount)*e.cfg.Bumpers.Escalation
	b.HitCount++
}

func (e *Engine) slotAt(p core.Vec2) *BulletSlot {
	for _, s := range e.state.Slots {
		if s.Rect().Contains(p) {
			return s
		}
	}
	return nil
}

// deposit empties a marble into a slot. An empty slot adopts the collected
// modules as its program and is charged to its cost; a programmed slot only
// gains energy, at reduced efficiency.
func (e *Engine) deposit(m *Marble, s *BulletSlot) {
	per := e.cfg.Slots.EnergyPerModule

	if len(s.Program) == 0 {
		s.Program = program.Program(m.Collected).Clone()
		s.EnergyCost = program.EnergyCost(s.Program, per)
		s.Energy = s.EnergyCost
	} else {
		s.Energy += float64(len(m.Collected)) * per * e.cfg.Slots.FullSlotEfficiency
	}

	e.state.PendingMarbles--
	e.logger.Debug("marble deposited", "slot", s.ID, "modules", len(m.Collected), "energy", s.Energy)
}

func (e *Engine) updateBumperCooldowns(dt time.Duration) {
	for _, b := range e.state.Bumpers {
		if b.Cooldown > 0 {
			b.Cooldown = max(0, b.Cooldown-dt)
		}
	}
}
