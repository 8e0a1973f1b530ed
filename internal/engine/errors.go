package engine

import "errors"

var (
	// ErrInsufficientEnergy is returned when the selected slot cannot pay for a shot.
	ErrInsufficientEnergy = errors.New("engine: insufficient energy")
	// ErrUnknownSlot is returned for slot IDs that do not exist.
	ErrUnknownSlot = errors.New("engine: unknown slot")
	// ErrInventoryExhausted is returned when an edit needs more modules than are owned.
	ErrInventoryExhausted = errors.New("engine: not enough modules in inventory")
	// ErrGameOver is returned by commands issued after the run ended.
	ErrGameOver = errors.New("engine: game over")
)
