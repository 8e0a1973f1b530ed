// Package phase implements the four-stage round cycle.
//
//	BRICK_SPAWN → BULLET_LOADING → PLAYER_ACTION → BRICK_ACTION → BRICK_SPAWN …
//
// GAME_OVER can be entered from any phase and is terminal.
package phase

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Phase is a stage of the round cycle.
type Phase int

const (
	BrickSpawn Phase = iota
	BulletLoading
	PlayerAction
	BrickAction
	GameOver
)

// String returns the canonical upper-case name.
func (p Phase) String() string {
	switch p {
	case BrickSpawn:
		return "BRICK_SPAWN"
	case BulletLoading:
		return "BULLET_LOADING"
	case PlayerAction:
		return "PLAYER_ACTION"
	case BrickAction:
		return "BRICK_ACTION"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// next returns the successor in the fixed cycle.
func (p Phase) next() Phase {
	switch p {
	case BrickSpawn:
		return BulletLoading
	case BulletLoading:
		return PlayerAction
	case PlayerAction:
		return BrickAction
	case BrickAction:
		return BrickSpawn
	default:
		return p
	}
}

// Handler runs the side effects of entering a phase.
type Handler interface {
	EnterBrickSpawn()
	EnterBulletLoading()
	EnterPlayerAction()
	EnterBrickAction()
}

// Conditions is what the auto-advance policy looks at.
type Conditions struct {
	MarblesActive  int  // marbles in flight
	MarblesPending int  // marbles not yet launched or not yet consumed
	BulletsActive  int  // bullets in flight
	BulletsQueued  int  // bullets in scheduled groups
	ShotFired      bool // a shot was fired during this PLAYER_ACTION
	CanFire        bool // some slot has a valid program and enough energy
}

// debugLogSize bounds the transition log.
const debugLogSize = 32

// Controller drives the cycle and dispatches phase entry to a Handler.
type Controller struct {
	phase   Phase
	round   int
	handler Handler
	logger  *log.Logger
	history []string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController returns a controller at BRICK_SPAWN, round 1.
// The BRICK_SPAWN handler is not run; call Start for that.
func NewController(h Handler, opts ...Option) *Controller {
	c := &Controller{
		phase:   BrickSpawn,
		round:   1,
		handler: h,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start runs the handler of the current phase.
func (c *Controller) Start() {
	c.record(fmt.Sprintf("round %d: start in %s", c.round, c.phase))
	c.enter(c.phase)
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Round returns the current round, starting at 1.
func (c *Controller) Round() int {
	return c.round
}

// IsOver reports whether the controller reached GAME_OVER.
func (c *Controller) IsOver() bool {
	return c.phase == GameOver
}

// History returns the most recent transition lines, oldest first.
func (c *Controller) History() []string {
	return append([]string(nil), c.history...)
}

// Next moves to the following phase and runs its handler.
// Completing BRICK_ACTION starts a new round. No-op after GAME_OVER.
func (c *Controller) Next() Phase {
	if c.phase == GameOver {
		return c.phase
	}

	from := c.phase
	c.phase = from.next()
	if from == BrickAction {
		c.round++
	}

	c.record(fmt.Sprintf("round %d: %s -> %s", c.round, from, c.phase))
	c.logger.Debug("phase transition", "from", from, "to", c.phase, "round", c.round)

	c.enter(c.phase)
	return c.phase
}

// Force is the manual short-circuit. It behaves like Next.
func (c *Controller) Force() Phase {
	if c.phase != GameOver {
		c.logger.Debug("forced advance", "phase", c.phase)
	}
	return c.Next()
}

// EndGame enters GAME_OVER unconditionally. No handler runs.
func (c *Controller) EndGame() {
	if c.phase == GameOver {
		return
	}
	c.record(fmt.Sprintf("round %d: %s -> %s", c.round, c.phase, GameOver))
	c.logger.Info("game over", "phase", c.phase, "round", c.round)
	c.phase = GameOver
}

// CanAdvance reports whether the current phase has finished on its own.
func (c *Controller) CanAdvance(cond Conditions) bool {
	switch c.phase {
	case BrickSpawn, BrickAction:
		return true
	case BulletLoading:
		return cond.MarblesActive == 0 && cond.MarblesPending == 0
	case PlayerAction:
		if cond.BulletsActive > 0 || cond.BulletsQueued > 0 {
			return false
		}
		return cond.ShotFired || !cond.CanFire
	default:
		return false
	}
}

// AutoAdvance performs at most one transition if the current phase is done.
func (c *Controller) AutoAdvance(cond Conditions) bool {
	if !c.CanAdvance(cond) {
		return false
	}
	c.Next()
	return true
}

func (c *Controller) enter(p Phase) {
	if c.handler == nil {
		return
	}
	switch p {
	case BrickSpawn:
		c.handler.EnterBrickSpawn()
	case BulletLoading:
		c.handler.EnterBulletLoading()
	case PlayerAction:
		c.handler.EnterPlayerAction()
	case BrickAction:
		c.handler.EnterBrickAction()
	}
}

func (c *Controller) record(line string) {
	c.history = append(c.history, line)
	if len(c.history) > debugLogSize {
		c.history = c.history[len(c.history)-debugLogSize:]
	}
}
