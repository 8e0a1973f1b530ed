package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bulletcraft/internal/module"
)

// Loadout assigns starting programs to slots.
//
//	slots:
//	  slot-a: [bounce-plus, normal]
//	  slot-b: [VOLLEY_PLUS, PIERCING]
type Loadout struct {
	Slots map[string][]string `yaml:"slots"`
}

// LoadLoadout reads and checks a loadout file.
func LoadLoadout(path string) (Loadout, error) {
	var l Loadout

	data, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("failed to read loadout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("failed to parse loadout %s: %w", path, err)
	}
	if _, err := l.Programs(); err != nil {
		return l, fmt.Errorf("loadout %s: %w", path, err)
	}
	return l, nil
}

// Programs resolves the module names of every slot.
func (l Loadout) Programs() (map[string][]module.Type, error) {
	out := make(map[string][]module.Type, len(l.Slots))
	for slot, names := range l.Slots {
		types := make([]module.Type, 0, len(names))
		for _, n := range names {
			t, err := module.ParseType(n)
			if err != nil {
				return nil, fmt.Errorf("slot %s: %w", slot, err)
			}
			types = append(types, t)
		}
		out[slot] = types
	}
	return out, nil
}

// SlotIDs returns the slot IDs in the loadout in sorted order.
func (l Loadout) SlotIDs() []string {
	ids := make([]string, 0, len(l.Slots))
	for id := range l.Slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
