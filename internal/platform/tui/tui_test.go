package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bulletcraft/internal/config"
	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/engine"
	"github.com/vovakirdan/bulletcraft/internal/module"
	"github.com/vovakirdan/bulletcraft/internal/phase"
	"github.com/vovakirdan/bulletcraft/internal/program"
	"github.com/vovakirdan/bulletcraft/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a aims left", runes("a"), core.ActionAimLeft, false},
		{"left arrow aims left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft, false},
		{"d aims right", runes("d"), core.ActionAimRight, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"1 selects slot A", runes("1"), core.ActionSlot1, false},
		{"3 selects slot C", runes("3"), core.ActionSlot3, false},
		{"n forces phase", runes("n"), core.ActionNextPhase, false},
		{"r restarts", runes("r"), core.ActionRestart, false},
		{"q quits", runes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x is unbound", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestProjection(t *testing.T) {
	p := NewProjection(800, 600, 80, 30)

	x, y := p.Cell(core.V(400, 300))
	if x != 40 || y != 15 {
		t.Errorf("Cell(centre) = (%d, %d), expected (40, 15)", x, y)
	}

	_, _, w, h := p.Rect(core.NewRect(0, 0, 5, 5))
	if w != 1 || h != 1 {
		t.Errorf("tiny rect = %dx%d, expected at least 1x1", w, h)
	}
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *engine.Engine) {
	t.Helper()
	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = 100, 40
	rt.Seed = 99
	eng := engine.New(config.DefaultGameConfig(), rt)
	return NewModel(eng, rt, Options{Store: store, Difficulty: "normal"}), eng
}

func toPlayerAction(t *testing.T, eng *engine.Engine) {
	t.Helper()
	for i := 0; eng.State().Phase != phase.PlayerAction; i++ {
		if i > 8 {
			t.Fatal("could not reach PLAYER_ACTION")
		}
		eng.NextPhase()
	}
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelFiresOnTick(t *testing.T) {
	m, eng := newTestModel(t, nil)
	toPlayerAction(t, eng)

	if err := eng.UpdateSlotProgram("slot-a", program.Of(module.Normal)); err != nil {
		t.Fatal(err)
	}
	eng.State().Slots[0].Energy = 10

	m = step(m, runes("a"))
	m = step(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(eng.State().Bullets) != 0 {
		t.Fatal("keys must not act before the next tick")
	}

	m = step(m, TickMsg{})
	if m.aim != -90-aimStep {
		t.Errorf("aim = %v, expected %v", m.aim, -90-aimStep)
	}
	if !eng.State().ShotFired {
		t.Error("fire key should have shot")
	}
	if eng.State().Slots[0].Energy != 0 {
		t.Errorf("Energy = %v, expected 0", eng.State().Slots[0].Energy)
	}
}

func TestModelAimStaysInLimits(t *testing.T) {
	m, eng := newTestModel(t, nil)
	toPlayerAction(t, eng)

	for range 100 {
		m = step(m, runes("d"))
		m = step(m, TickMsg{})
	}
	if m.aim != engine.MaxAim {
		t.Errorf("aim = %v, expected %v", m.aim, engine.MaxAim)
	}
}

func TestModelPause(t *testing.T) {
	m, eng := newTestModel(t, nil)

	m = step(m, runes("p"))
	m = step(m, TickMsg{})
	tick := eng.State().Tick

	m = step(m, TickMsg{})
	if eng.State().Tick != tick {
		t.Error("engine advanced while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say so")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m, eng := newTestModel(t, store)
	eng.State().Score = 70
	eng.State().Player.Health = 1
	// Pile bricks onto the player line until the run ends.
	for i := 0; !eng.State().GameOver; i++ {
		if i > 200 {
			t.Fatal("run never ended")
		}
		eng.SpawnBrickRow()
		eng.MoveBricksDown()
	}

	m = step(m, TickMsg{})
	m = step(m, TickMsg{})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Score != 70 || runs[0].Difficulty != "normal" || runs[0].Seed != 99 {
		t.Errorf("saved run = %+v", runs[0])
	}
	if m.highScore != 70 {
		t.Errorf("highScore = %d, expected 70", m.highScore)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over view should say so")
	}
}

func TestDrawGameHUD(t *testing.T) {
	rt := core.DefaultConfig()
	eng := engine.New(config.DefaultGameConfig(), rt)
	scr := core.NewScreen(100, 30)

	DrawGame(scr, eng.State(), 800, 600, DrawOptions{Aim: -90})

	status := scr.Row(scr.Height() - hudRows + 1)
	if !strings.Contains(status, "Round 1") || !strings.Contains(status, eng.State().Phase.String()) {
		t.Errorf("status row = %q", status)
	}
	slots := scr.Row(scr.Height() - 1)
	if !strings.Contains(slots, "Slot A") || !strings.Contains(slots, "(empty)") {
		t.Errorf("slot row = %q", slots)
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	eng := engine.New(config.DefaultGameConfig(), core.DefaultConfig())
	scr := core.NewScreen(20, 4)

	DrawGame(scr, eng.State(), 800, 600, DrawOptions{})
	if !strings.HasPrefix(scr.Row(0), "terminal too small") {
		t.Errorf("row 0 = %q", scr.Row(0))
	}
}

func TestMenuResult(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res := next.(MenuModel).Result()
	if res.Quit || res.WantsScoreboard || res.Preset != config.DifficultyEasy {
		t.Errorf("Result() = %+v, expected easy preset", res)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runes("q"))
	if !next.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}
}

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.Run{
		{Score: 120, Round: 7, Difficulty: "hard", Seed: 5},
		{Score: 40, Round: 2},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "120" || rows[0][3] != "hard" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][3] != "normal" {
		t.Errorf("empty difficulty shown as %q, expected normal", rows[1][3])
	}
}
