package phase

import (
	"strings"
	"testing"
)

type fakeHandler struct {
	calls   []Phase
	onEnter func(Phase)
}

func (f *fakeHandler) hit(p Phase) {
	f.calls = append(f.calls, p)
	if f.onEnter != nil {
		f.onEnter(p)
	}
}

func (f *fakeHandler) EnterBrickSpawn()    { f.hit(BrickSpawn) }
func (f *fakeHandler) EnterBulletLoading() { f.hit(BulletLoading) }
func (f *fakeHandler) EnterPlayerAction()  { f.hit(PlayerAction) }
func (f *fakeHandler) EnterBrickAction()   { f.hit(BrickAction) }

func TestFullCycleIncrementsRound(t *testing.T) {
	h := &fakeHandler{}
	c := NewController(h)

	if c.Phase() != BrickSpawn || c.Round() != 1 {
		t.Fatalf("initial = %s round %d, expected BRICK_SPAWN round 1", c.Phase(), c.Round())
	}

	want := []Phase{BulletLoading, PlayerAction, BrickAction, BrickSpawn}
	for i, w := range want {
		if got := c.Force(); got != w {
			t.Fatalf("step %d: Force() = %s, expected %s", i, got, w)
		}
	}

	if c.Round() != 2 {
		t.Errorf("Round() = %d, expected 2", c.Round())
	}
	if len(h.calls) != 4 {
		t.Fatalf("handler called %d times, expected 4", len(h.calls))
	}
	for i, w := range want {
		if h.calls[i] != w {
			t.Errorf("handler call %d = %s, expected %s", i, h.calls[i], w)
		}
	}
}

func TestStartRunsCurrentHandler(t *testing.T) {
	h := &fakeHandler{}
	c := NewController(h)
	c.Start()

	if len(h.calls) != 1 || h.calls[0] != BrickSpawn {
		t.Errorf("Start() calls = %v, expected [BRICK_SPAWN]", h.calls)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	for _, from := range []Phase{BrickSpawn, BulletLoading, PlayerAction, BrickAction} {
		t.Run(from.String(), func(t *testing.T) {
			h := &fakeHandler{}
			c := NewController(h)
			for c.Phase() != from {
				c.Next()
			}
			h.calls = nil

			c.EndGame()
			if !c.IsOver() {
				t.Fatalf("Phase() = %s, expected GAME_OVER", c.Phase())
			}

			c.Next()
			c.Force()
			if c.AutoAdvance(Conditions{}) {
				t.Error("AutoAdvance() advanced from GAME_OVER")
			}
			if c.Phase() != GameOver {
				t.Errorf("Phase() = %s after GAME_OVER", c.Phase())
			}
			if len(h.calls) != 0 {
				t.Errorf("handler ran after GAME_OVER: %v", h.calls)
			}
		})
	}
}

func TestHandlerCanEndGame(t *testing.T) {
	var c *Controller
	h := &fakeHandler{onEnter: func(p Phase) {
		if p == BrickAction {
			c.EndGame()
		}
	}}
	c = NewController(h)

	c.Next()
	c.Next()
	if got := c.Next(); got != GameOver {
		t.Errorf("Next() = %s, expected GAME_OVER", got)
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name  string
		phase Phase
		cond  Conditions
		want  bool
	}{
		{"spawn always", BrickSpawn, Conditions{}, true},
		{"brick action always", BrickAction, Conditions{BulletsActive: 3}, true},
		{"loading with marbles", BulletLoading, Conditions{MarblesActive: 1}, false},
		{"loading pending", BulletLoading, Conditions{MarblesPending: 2}, false},
		{"loading done", BulletLoading, Conditions{}, true},
		{"player waiting to fire", PlayerAction, Conditions{CanFire: true}, false},
		{"player cannot fire", PlayerAction, Conditions{}, true},
		{"bullets in flight", PlayerAction, Conditions{ShotFired: true, BulletsActive: 1}, false},
		{"bullets queued", PlayerAction, Conditions{ShotFired: true, BulletsQueued: 2}, false},
		{"shot resolved", PlayerAction, Conditions{ShotFired: true, CanFire: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(nil)
			for c.Phase() != tc.phase {
				c.Next()
			}
			if got := c.CanAdvance(tc.cond); got != tc.want {
				t.Errorf("CanAdvance(%+v) in %s = %v, expected %v", tc.cond, tc.phase, got, tc.want)
			}
		})
	}
}

func TestAutoAdvanceOneStep(t *testing.T) {
	c := NewController(nil)

	if !c.AutoAdvance(Conditions{}) {
		t.Fatal("BRICK_SPAWN should auto-complete")
	}
	if c.Phase() != BulletLoading {
		t.Errorf("Phase() = %s, expected BULLET_LOADING after one step", c.Phase())
	}
}

func TestHistoryBounded(t *testing.T) {
	c := NewController(nil)
	for range 100 {
		c.Next()
	}

	h := c.History()
	if len(h) != debugLogSize {
		t.Fatalf("History() has %d lines, expected %d", len(h), debugLogSize)
	}
	if !strings.Contains(h[len(h)-1], "->") {
		t.Errorf("last line %q should describe a transition", h[len(h)-1])
	}
}
