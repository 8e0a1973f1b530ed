package engine

import (
	"time"

	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/module"
	"github.com/vovakirdan/bulletcraft/internal/phase"
	"github.com/vovakirdan/bulletcraft/internal/program"
)

// Player is the fixed turret at the bottom of the canvas.
type Player struct {
	Position  core.Vec2
	Health    int
	MaxHealth int
}

// Brick is a destructible target.
type Brick struct {
	ID        string
	Rect      core.Rect
	Health    int
	MaxHealth int
	Row       int // rounds survived
}

// Marble falls through the bumper field collecting modules.
type Marble struct {
	ID        string
	Position  core.Vec2
	Velocity  core.Vec2
	Radius    float64
	Collected []module.Module
	Bounces   int
}

// Bumper awards a copy of its module to every marble that hits it.
type Bumper struct {
	ID           string
	Position     core.Vec2
	Radius       float64
	Module       module.Module
	Cooldown     time.Duration
	BaseCooldown time.Duration
	HitCount     int
}

// Ready reports whether the bumper can be hit.
func (b *Bumper) Ready() bool {
	return b.Cooldown <= 0
}

// AOERing is the expanding blast left by an AOE bullet.
type AOERing struct {
	ID          string
	Center      core.Vec2
	Radius      float64
	MaxRadius   float64
	ExpandSpeed float64
	Damage      int
	damaged     map[string]bool
}

// BulletSlot holds a program and the energy to fire it.
type BulletSlot struct {
	ID         string
	Name       string
	Position   core.Vec2 // top-left corner
	Width      float64
	Height     float64
	Program    program.Program
	Energy     float64
	EnergyCost float64
}

// Rect returns the marble intake area of the slot.
func (s *BulletSlot) Rect() core.Rect {
	return core.NewRect(s.Position.X, s.Position.Y, s.Width, s.Height)
}

// CanFire reports whether the slot holds a valid program and enough energy.
func (s *BulletSlot) CanFire() bool {
	return program.Validate(s.Program) == nil && s.Energy >= s.EnergyCost
}

// Shots returns how many times the slot can fire with its current energy.
func (s *BulletSlot) Shots() int {
	if s.EnergyCost <= 0 || program.Validate(s.Program) != nil {
		return 0
	}
	return int(s.Energy / s.EnergyCost)
}

// GameState is the root aggregate. The engine is its only mutator;
// everything else treats it as read-only.
type GameState struct {
	Phase phase.Phase
	Round int

	Player  Player
	Bricks  []*Brick
	Bullets []*program.Bullet
	Marbles []*Marble
	Bumpers []*Bumper
	Rings   []*AOERing
	Slots   []*BulletSlot

	CurrentSlot int
	Inventory   map[module.Type]int

	Score          int
	GameOver       bool
	ErrorMessage   string
	PendingMarbles int
	ShotFired      bool // a shot was fired during the current PLAYER_ACTION

	Elapsed  time.Duration // simulation clock
	Tick     uint64
	DebugLog []string
}

// Slot returns the slot with the given ID.
func (s *GameState) Slot(id string) (*BulletSlot, bool) {
	for _, slot := range s.Slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return nil, false
}

// CurrentBulletSlot returns the selected slot.
func (s *GameState) CurrentBulletSlot() *BulletSlot {
	return s.Slots[s.CurrentSlot]
}

// AnySlotCanFire reports whether at least one slot can fire.
func (s *GameState) AnySlotCanFire() bool {
	for _, slot := range s.Slots {
		if slot.CanFire() {
			return true
		}
	}
	return false
}

var slotIDs = []string{"slot-a", "slot-b", "slot-c"}
var slotNames = []string{"Slot A", "Slot B", "Slot C"}

// newState builds the state of a fresh run.
func (e *Engine) newState() *GameState {
	w, h := e.cfg.Canvas.Width, e.cfg.Canvas.Height

	slots := make([]*BulletSlot, len(slotIDs))
	for i := range slots {
		slots[i] = &BulletSlot{
			ID:       slotIDs[i],
			Name:     slotNames[i],
			Position: core.V(e.cfg.Slots.X[i], h-e.cfg.Slots.BottomOffset),
			Width:    e.cfg.Slots.Width,
			Height:   e.cfg.Slots.Height,
		}
	}

	inv := make(map[module.Type]int, len(e.cfg.Inventory))
	for t, n := range e.cfg.Inventory {
		inv[t] = n
	}

	return &GameState{
		Phase: phase.BrickSpawn,
		Round: 1,
		Player: Player{
			Position:  core.V(w/2, h-e.cfg.Player.BottomOffset),
			Health:    e.cfg.Player.Health,
			MaxHealth: e.cfg.Player.Health,
		},
		Slots:     slots,
		Inventory: inv,
	}
}
