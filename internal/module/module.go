// Package module defines the catalogue of bullet program modules.
//
// The catalogue is a fixed table of templates keyed by Type. Instances handed
// to players are copies of a template with a fresh ID; the table itself is
// never mutated.
package module

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Type identifies a module kind.
type Type string

// Base module types. Exactly one terminates each firing group.
const (
	Normal   Type = "NORMAL"
	Piercing Type = "PIERCING"
	AOE      Type = "AOE"
)

// Modifier module types. They affect the nearest base module to their right.
const (
	BouncePlus       Type = "BOUNCE_PLUS"
	ScatterPlus      Type = "SCATTER_PLUS"
	VolleyPlus       Type = "VOLLEY_PLUS"
	CollisionTrigger Type = "COLLISION_TRIGGER"
)

// Rarity grades a module for display and drop weighting.
type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Module is a single program element.
type Module struct {
	ID          string
	Type        Type
	Name        string
	Description string
	IsModifier  bool
	Rarity      Rarity
}

// order fixes the catalogue listing order.
var order = []Type{Normal, Piercing, AOE, BouncePlus, ScatterPlus, VolleyPlus, CollisionTrigger}

var catalogue = map[Type]Module{
	Normal: {
		ID:          "normal",
		Type:        Normal,
		Name:        "Normal Shot",
		Description: "Damages the brick it hits, then disappears",
		Rarity:      Common,
	},
	Piercing: {
		ID:          "piercing",
		Type:        Piercing,
		Name:        "Piercing Shot",
		Description: "Keeps going through three extra impacts",
		Rarity:      Uncommon,
	},
	AOE: {
		ID:          "aoe",
		Type:        AOE,
		Name:        "Blast Shot",
		Description: "Releases an expanding ring on impact that damages nearby bricks",
		Rarity:      Rare,
	},
	BouncePlus: {
		ID:          "bounce-plus",
		Type:        BouncePlus,
		Name:        "Bounce +1",
		Description: "The next shot bounces one more time",
		IsModifier:  true,
		Rarity:      Common,
	},
	ScatterPlus: {
		ID:          "scatter-plus",
		Type:        ScatterPlus,
		Name:        "Scatter +1",
		Description: "The next shot splits into one more direction",
		IsModifier:  true,
		Rarity:      Uncommon,
	},
	VolleyPlus: {
		ID:          "volley-plus",
		Type:        VolleyPlus,
		Name:        "Volley +1",
		Description: "Fires one more copy of the next shot at once",
		IsModifier:  true,
		Rarity:      Rare,
	},
	CollisionTrigger: {
		ID:          "collision-trigger",
		Type:        CollisionTrigger,
		Name:        "On Impact",
		Description: "Everything to the right fires from the first impact point",
		IsModifier:  true,
		Rarity:      Epic,
	},
}

// Lookup returns the template for a type.
func Lookup(t Type) (Module, bool) {
	m, ok := catalogue[t]
	return m, ok
}

// MustLookup returns the template for a type.
// Panics on an unknown type: callers only hold types from this package.
func MustLookup(t Type) Module {
	m, ok := catalogue[t]
	if !ok {
		panic(fmt.Sprintf("module: unknown type %q", t))
	}
	return m
}

// New creates a fresh instance of the given module type.
func New(t Type) Module {
	m := MustLookup(t)
	m.ID = m.ID + "-" + uuid.NewString()
	return m
}

// Clone copies an existing instance under a fresh ID.
func (m Module) Clone() Module {
	return New(m.Type)
}

// IsBase reports whether the module defines a fireable projectile.
func (m Module) IsBase() bool {
	return !m.IsModifier
}

// All returns every template in catalogue order.
func All() []Module {
	out := make([]Module, 0, len(order))
	for _, t := range order {
		out = append(out, catalogue[t])
	}
	return out
}

// Types returns every module type in catalogue order.
func Types() []Type {
	return append([]Type(nil), order...)
}

// BaseModules returns the base templates.
func BaseModules() []Module {
	var out []Module
	for _, m := range All() {
		if !m.IsModifier {
			out = append(out, m)
		}
	}
	return out
}

// Modifiers returns the modifier templates.
func Modifiers() []Module {
	var out []Module
	for _, m := range All() {
		if m.IsModifier {
			out = append(out, m)
		}
	}
	return out
}

// ParseType converts a user-supplied name to a Type.
// Accepts the canonical form ("BOUNCE_PLUS") as well as lower-case and
// dashed spellings ("bounce-plus").
func ParseType(s string) (Type, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	t := Type(norm)
	if _, ok := catalogue[t]; !ok {
		return "", fmt.Errorf("module: unknown type %q", s)
	}
	return t, nil
}

// Short returns a compact label for dense displays.
func (t Type) Short() string {
	switch t {
	case Normal:
		return "N"
	case Piercing:
		return "P"
	case AOE:
		return "A"
	case BouncePlus:
		return "B+"
	case ScatterPlus:
		return "S+"
	case VolleyPlus:
		return "V+"
	case CollisionTrigger:
		return "T>"
	default:
		return "?"
	}
}
