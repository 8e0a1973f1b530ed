package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/engine"
	"github.com/vovakirdan/bulletcraft/internal/phase"
	"github.com/vovakirdan/bulletcraft/internal/storage"
)

// aimStep is how far one aim key press turns the turret, in degrees.
const aimStep = 3.0

// Options configures a game Model.
type Options struct {
	Store      *storage.Store // may be nil
	Difficulty string         // recorded with the run
	Logger     *log.Logger
}

// Model is the Bubble Tea model for a game of bulletcraft.
type Model struct {
	eng        *engine.Engine
	screen     *core.Screen
	config     core.RuntimeConfig
	store      *storage.Store
	difficulty string
	logger     *log.Logger

	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame

	aim       float64
	paused    bool
	quitting  bool
	highScore int
	runSaved  bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model around eng.
func NewModel(eng *engine.Engine, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		eng:        eng,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		store:      opts.Store,
		difficulty: opts.Difficulty,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		aim:        -90,
	}
	m.help.Width = cfg.ScreenW

	if m.store != nil {
		if hs, err := m.store.HighScore(); err == nil {
			m.highScore = hs
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Everything except quit, help and
// screenshots is applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies the buffered input and advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()
	m.inputFrame.Clear()

	if !m.paused {
		m.eng.Update(frameInterval(m.config.TickRate))
	}

	s := m.eng.State()
	if s.GameOver && !m.runSaved {
		m.saveRun(s)
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) applyInput() {
	f := m.inputFrame
	s := m.eng.State()

	if f.Has(core.ActionRestart) && s.GameOver {
		m.eng.Reset()
		m.runSaved = false
		m.paused = false
		return
	}
	if f.Has(core.ActionPause) && !s.GameOver {
		m.paused = !m.paused
	}
	if m.paused || s.GameOver {
		return
	}

	if f.Has(core.ActionAimLeft) {
		m.aim = max(m.aim-aimStep, engine.MinAim)
	}
	if f.Has(core.ActionAimRight) {
		m.aim = min(m.aim+aimStep, engine.MaxAim)
	}
	for _, a := range []core.Action{core.ActionSlot1, core.ActionSlot2, core.ActionSlot3} {
		if f.Has(a) {
			m.eng.SwitchBulletSlot(a.SlotIndex())
		}
	}
	if f.Has(core.ActionFire) && s.Phase == phase.PlayerAction {
		// Failures are shown through the state's error message.
		_ = m.eng.ShootBullet(engine.AimDirection(m.aim))
	}
	if f.Has(core.ActionNextPhase) {
		m.eng.NextPhase()
	}
}

// saveRun records a finished run. Runs that scored nothing are not kept.
func (m *Model) saveRun(s *engine.GameState) {
	if m.store == nil || s.Score == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Score:      s.Score,
		Round:      s.Round,
		Difficulty: m.difficulty,
		Seed:       m.config.Seed,
	})
	if err != nil {
		m.logger.Error("cannot save run", "error", err)
		return
	}
	m.highScore = max(m.highScore, s.Score)
}

// spread returns the angular width of the selected slot's first group.
func (m Model) spread() float64 {
	slot := m.eng.State().CurrentBulletSlot()
	cfg, err := m.eng.Processor().Process(slot.Program)
	if err != nil {
		return 0
	}
	return m.eng.Processor().Spread(cfg)
}

func (m Model) draw() {
	canvas := m.eng.Config().Canvas
	DrawGame(m.screen, m.eng.State(), canvas.Width, canvas.Height, DrawOptions{
		Aim:       m.aim,
		Spread:    m.spread(),
		Paused:    m.paused,
		HighScore: m.highScore,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bulletcraft", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("round%d_%s.txt", m.eng.State().Round, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for eng.
func Run(eng *engine.Engine, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(eng, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
