// Package engine owns the authoritative game state and advances it one tick
// at a time. It is single-threaded: callers drive it from one goroutine via
// Update and the command methods.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bulletcraft/internal/config"
	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/phase"
	"github.com/vovakirdan/bulletcraft/internal/program"
)

// Engine runs one game.
type Engine struct {
	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	proc       *program.Processor
	difficulty *config.DifficultyManager
	logger     *log.Logger

	state *GameState
	ctrl  *phase.Controller
	queue emissionQueue
	rng   *core.RNG

	loadout *config.Loadout
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine and starts the first round.
func New(cfg config.GameConfig, rt core.RuntimeConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		runtime: rt,
		proc: program.NewProcessor(program.Params{
			BulletSpeed:   cfg.Bullets.Speed,
			BulletRadius:  cfg.Bullets.Radius,
			Damage:        cfg.Bullets.Damage,
			GroupInterval: cfg.Bullets.GroupInterval,
			VolleySpread:  cfg.Bullets.VolleySpread,
			ScatterSpread: cfg.Bullets.ScatterSpread,
		}),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Reset()
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.GameConfig {
	return e.cfg
}

// Processor exposes the program compiler, e.g. for aim previews.
func (e *Engine) Processor() *program.Processor {
	return e.proc
}

// State returns the live state. Callers must not mutate it.
func (e *Engine) State() *GameState {
	return e.state
}

// Reset discards the current run, including any scheduled emissions, and
// starts over at round 1.
func (e *Engine) Reset() {
	e.queue.clear()
	e.rng = core.NewRNG(e.runtime.Seed)
	e.state = e.newState()
	e.ctrl = phase.NewController(handler{e}, phase.WithLogger(e.logger.WithPrefix("phase")))
	if e.loadout != nil {
		if err := e.ApplyLoadout(*e.loadout); err != nil {
			e.logger.Warn("loadout not applied", "error", err)
		}
	}
	e.ctrl.Start()
	e.sync()

	e.logger.Debug("run started", "seed", e.runtime.Seed, "health", e.state.Player.Health)
}

// NextPhase forces the next phase.
func (e *Engine) NextPhase() {
	e.ctrl.Force()
	e.sync()
}

// Update advances the simulation by dt.
func (e *Engine) Update(dt time.Duration) {
	if e.state.GameOver || dt <= 0 {
		return
	}

	e.state.Tick++
	e.state.Elapsed += dt
	secs := dt.Seconds()

	e.drainEmissions()
	e.updateBullets(secs)
	e.updateMarbles(secs)
	e.updateRings(secs)
	e.updateBumperCooldowns(dt)
	e.checkCollisions()
	e.cleanup()

	if e.ctrl.AutoAdvance(e.conditions()) {
		e.sync()
	}
}

// conditions gathers what the phase controller needs to decide on auto-advance.
func (e *Engine) conditions() phase.Conditions {
	return phase.Conditions{
		MarblesActive:  len(e.state.Marbles),
		MarblesPending: max(e.state.PendingMarbles, 0),
		BulletsActive:  len(e.state.Bullets),
		BulletsQueued:  e.queue.bullets(),
		ShotFired:      e.state.ShotFired,
		CanFire:        e.state.AnySlotCanFire(),
	}
}

// QueuedEmissions returns the number of scheduled deferred inserts.
func (e *Engine) QueuedEmissions() int {
	return e.queue.size()
}

// sync mirrors the controller into the state.
func (e *Engine) sync() {
	e.state.Phase = e.ctrl.Phase()
	e.state.Round = e.ctrl.Round()
	e.state.GameOver = e.ctrl.IsOver()
	e.state.DebugLog = e.ctrl.History()
}

// endGame enters GAME_OVER and drops pending emissions.
func (e *Engine) endGame() {
	e.ctrl.EndGame()
	e.queue.clear()
	e.sync()
	e.logger.Info("run finished", "score", e.state.Score, "round", e.state.Round)
}

// handler adapts the engine to phase.Handler without exporting the hooks.
type handler struct{ e *Engine }

func (h handler) EnterBrickSpawn() {
	h.e.SpawnBrickRow()
}

func (h handler) EnterBulletLoading() {
	h.e.startLoading()
}

func (h handler) EnterPlayerAction() {
	h.e.endLoading()
	h.e.state.ShotFired = false
}

func (h handler) EnterBrickAction() {
	h.e.MoveBricksDown()
}
