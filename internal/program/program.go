// Package program compiles bullet programs into firing groups and projectiles.
//
// A program is an ordered module sequence. Modifiers accumulate until a base
// module closes a firing group; a collision trigger hands the rest of the
// sequence to the next group as a sub-program fired from its first impact.
package program

import (
	"errors"

	"github.com/vovakirdan/bulletcraft/internal/module"
)

var (
	// ErrInvalidProgram is returned for programs without a base module.
	ErrInvalidProgram = errors.New("program: at least one base module is required")
	// ErrEmptyProgram is returned when a program yields no firing groups.
	ErrEmptyProgram = errors.New("program: no firing groups")
)

// Program is an ordered sequence of module instances.
type Program []module.Module

// Of builds a program of fresh instances of the given types.
func Of(types ...module.Type) Program {
	p := make(Program, len(types))
	for i, t := range types {
		p[i] = module.New(t)
	}
	return p
}

// Clone returns a copy that shares no backing array with p.
// Module values are copied as-is; IDs are preserved.
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	return append(Program(nil), p...)
}

// HasBase reports whether p contains at least one base module.
func (p Program) HasBase() bool {
	for _, m := range p {
		if m.IsBase() {
			return true
		}
	}
	return false
}

// Types lists the module types in order.
func (p Program) Types() []module.Type {
	out := make([]module.Type, len(p))
	for i, m := range p {
		out[i] = m.Type
	}
	return out
}

// String renders the program compactly, e.g. "B+ V+ N".
func (p Program) String() string {
	if len(p) == 0 {
		return "(empty)"
	}
	s := ""
	for i, m := range p {
		if i > 0 {
			s += " "
		}
		s += m.Type.Short()
	}
	return s
}

// Validate checks that p can be fired.
// It never mutates p and always gives the same answer for the same input.
func Validate(p Program) error {
	if !p.HasBase() {
		return ErrInvalidProgram
	}
	return nil
}

// EnergyCost returns the energy one shot of p consumes.
func EnergyCost(p Program, perModule float64) float64 {
	return float64(len(p)) * perModule
}
