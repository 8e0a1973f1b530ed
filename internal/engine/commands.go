package engine

import (
	"fmt"

	"github.com/vovakirdan/bulletcraft/internal/config"
	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/module"
	"github.com/vovakirdan/bulletcraft/internal/program"
)

// ShootBullet fires the selected slot towards dir. The first firing group is
// released immediately and the rest are scheduled on the simulation clock.
// On failure nothing but ErrorMessage changes.
func (e *Engine) ShootBullet(dir core.Vec2) error {
	if e.state.GameOver {
		return ErrGameOver
	}

	slot := e.state.CurrentBulletSlot()

	if err := program.Validate(slot.Program); err != nil {
		return e.reject(slot, fmt.Errorf("%s: %w", slot.ID, err))
	}
	if slot.Energy < slot.EnergyCost {
		return e.reject(slot, fmt.Errorf("%s has %.0f of %.0f: %w", slot.ID, slot.Energy, slot.EnergyCost, ErrInsufficientEnergy))
	}

	groups := e.proc.CreateDelayedBulletGroups(slot.Program, e.state.Player.Position, dir)
	fired := 0
	for _, g := range groups {
		fired += len(g.Bullets)
		if g.Delay <= 0 {
			e.state.Bullets = append(e.state.Bullets, g.Bullets...)
			continue
		}
		e.queue.push(emission{due: e.state.Elapsed + g.Delay, bullets: g.Bullets})
	}

	slot.Energy -= slot.EnergyCost
	e.state.ShotFired = true
	e.state.ErrorMessage = ""

	e.logger.Debug("shot fired", "slot", slot.ID, "program", slot.Program, "groups", len(groups), "bullets", fired)
	return nil
}

func (e *Engine) reject(slot *BulletSlot, err error) error {
	e.state.ErrorMessage = err.Error()
	e.logger.Warn("shot rejected", "slot", slot.ID, "error", err)
	return err
}

// SwitchBulletSlot selects a slot. Out-of-range indexes are ignored.
func (e *Engine) SwitchBulletSlot(index int) {
	if index < 0 || index >= len(e.state.Slots) {
		return
	}
	e.state.CurrentSlot = index
}

// UpdateSlotProgram replaces a slot's program. The energy cost follows the
// new program at once; stored energy is left as it is. Inventory bookkeeping
// is the caller's business, see EditSlot.
func (e *Engine) UpdateSlotProgram(slotID string, modules []module.Module) error {
	slot, ok := e.state.Slot(slotID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slotID)
	}

	slot.Program = program.Program(modules).Clone()
	slot.EnergyCost = program.EnergyCost(slot.Program, e.cfg.Slots.EnergyPerModule)
	return nil
}

// EditSlot rewrites a slot program from the module inventory. Modules in the
// old program go back to the inventory and the new ones are taken out of it.
func (e *Engine) EditSlot(slotID string, types []module.Type) error {
	slot, ok := e.state.Slot(slotID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slotID)
	}

	avail := make(map[module.Type]int, len(e.state.Inventory))
	for t, n := range e.state.Inventory {
		avail[t] = n
	}
	for _, m := range slot.Program {
		avail[m.Type]++
	}
	for _, t := range types {
		if _, ok := module.Lookup(t); !ok {
			return fmt.Errorf("engine: unknown module %q", t)
		}
		avail[t]--
		if avail[t] < 0 {
			return fmt.Errorf("%w: %s", ErrInventoryExhausted, t)
		}
	}

	mods := make([]module.Module, len(types))
	for i, t := range types {
		mods[i] = module.New(t)
	}
	if err := e.UpdateSlotProgram(slotID, mods); err != nil {
		return err
	}
	e.state.Inventory = avail

	e.logger.Debug("slot edited", "slot", slotID, "program", slot.Program)
	return nil
}

// ApplyLoadout edits every slot named by l in slot ID order. On success the
// loadout is kept and applied again by every Reset; on failure the slots
// before the failing one stay edited.
func (e *Engine) ApplyLoadout(l config.Loadout) error {
	progs, err := l.Programs()
	if err != nil {
		return err
	}
	for _, id := range l.SlotIDs() {
		if err := e.EditSlot(id, progs[id]); err != nil {
			return err
		}
	}
	e.loadout = &l
	return nil
}
