package program

import "github.com/vovakirdan/bulletcraft/internal/module"

// FiringGroup is one base module together with the modifiers placed before it
// and an optional collision-trigger sub-program.
type FiringGroup struct {
	Modifiers           []module.Module
	Base                module.Module
	HasCollisionTrigger bool
	Trigger             Program
}

// scan is the accumulator threaded through ParseGroups.
type scan struct {
	groups    []FiringGroup
	modifiers []module.Module
	trigger   Program
	pending   bool // a collision trigger is waiting for the next group
}

func (s scan) step(p Program, i int) scan {
	m := p[i]

	switch {
	case m.Type == module.CollisionTrigger:
		// Not a modifier of the next shot; it captures the tail instead.
		// A later trigger replaces an unconsumed one.
		s.pending = true
		s.trigger = p[i+1:].Clone()

	case m.IsModifier:
		s.modifiers = append(s.modifiers, m)

	default:
		g := FiringGroup{
			Modifiers: append([]module.Module(nil), s.modifiers...),
			Base:      m,
		}
		if s.pending {
			g.HasCollisionTrigger = true
			g.Trigger = s.trigger
			s.pending = false
			s.trigger = nil
		}
		s.groups = append(s.groups, g)
		s.modifiers = nil
	}

	return s
}

// ParseGroups splits p into firing groups, one per base module, in order.
// Modifiers before the first base module attach to group 1; modifiers between
// base modules i and i+1 attach to group i+1; trailing modifiers are dropped.
func ParseGroups(p Program) []FiringGroup {
	var s scan
	for i := range p {
		s = s.step(p, i)
	}
	return s.groups
}
