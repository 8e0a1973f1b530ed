package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/engine"
	"github.com/vovakirdan/bulletcraft/internal/module"
	"github.com/vovakirdan/bulletcraft/internal/phase"
	"github.com/vovakirdan/bulletcraft/internal/program"
)

// hudRows is the number of screen rows below the playfield.
const hudRows = 3

// aimLength is the length of the aim guide in canvas units.
const aimLength = 160.0

// Projection maps canvas coordinates onto screen cells.
type Projection struct {
	canvasW, canvasH float64
	cols, rows       int
}

// NewProjection fits a canvas into a cols×rows cell area.
func NewProjection(canvasW, canvasH float64, cols, rows int) Projection {
	return Projection{canvasW: canvasW, canvasH: canvasH, cols: max(cols, 1), rows: max(rows, 1)}
}

// Cell returns the screen cell containing canvas point p.
func (p Projection) Cell(v core.Vec2) (x, y int) {
	x = int(math.Floor(v.X / p.canvasW * float64(p.cols)))
	y = int(math.Floor(v.Y / p.canvasH * float64(p.rows)))
	return x, y
}

// Rect returns the cell box covering r, at least one cell wide and tall.
func (p Projection) Rect(r core.Rect) (x, y, w, h int) {
	x, y = p.Cell(core.V(r.X, r.Y))
	x2, y2 := p.Cell(core.V(r.Right(), r.Bottom()))
	return x, y, max(x2-x, 1), max(y2-y, 1)
}

// DrawOptions carries presentation state that is not part of the game.
type DrawOptions struct {
	Aim       float64 // degrees
	Spread    float64 // degrees covered by the selected slot's first group
	Paused    bool
	HighScore int
}

// DrawGame paints the playfield and HUD of s onto scr.
func DrawGame(scr *core.Screen, s *engine.GameState, canvasW, canvasH float64, opts DrawOptions) {
	scr.Clear()

	rows := scr.Height() - hudRows
	if rows < 4 {
		scr.DrawText(0, 0, "terminal too small")
		return
	}
	proj := NewProjection(canvasW, canvasH, scr.Width(), rows)

	drawSlots(scr, proj, s)
	if s.Phase == phase.BulletLoading {
		drawBumpers(scr, proj, s.Bumpers)
	}
	drawBricks(scr, proj, s.Bricks)
	if s.Phase == phase.PlayerAction && !s.GameOver {
		drawAim(scr, proj, s.Player.Position, opts)
	}
	drawRings(scr, proj, s.Rings)
	drawMarbles(scr, proj, s.Marbles)
	drawBullets(scr, proj, s.Bullets)

	px, py := proj.Cell(s.Player.Position)
	scr.SetColored(px, py, '▲', core.ColorGreen)

	drawHUD(scr, rows, s, opts)

	if s.GameOver {
		msg := fmt.Sprintf(" GAME OVER  score %d  round %d  (r to restart) ", s.Score, s.Round)
		scr.DrawTextColored((scr.Width()-len([]rune(msg)))/2, rows/2, msg, core.ColorRed)
	} else if opts.Paused {
		scr.DrawTextCentered(rows/2, " PAUSED ")
	}
}

func drawBricks(scr *core.Screen, proj Projection, bricks []*engine.Brick) {
	for _, b := range bricks {
		x, y, w, h := proj.Rect(b.Rect)
		c := brickColor(b)
		for j := range h {
			scr.DrawHLine(x, y+j, w, '█', c)
		}
		label := fmt.Sprint(b.Health)
		if len(label) <= w {
			scr.DrawTextColored(x+(w-len(label))/2, y+h/2, label, core.ColorWhite)
		}
	}
}

// brickColor shades a brick by remaining health.
func brickColor(b *engine.Brick) core.Color {
	if b.MaxHealth <= 0 {
		return core.ColorRed
	}
	switch ratio := float64(b.Health) / float64(b.MaxHealth); {
	case ratio > 0.66:
		return core.ColorRed
	case ratio > 0.33:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

func drawBumpers(scr *core.Screen, proj Projection, bumpers []*engine.Bumper) {
	for _, b := range bumpers {
		x, y := proj.Cell(b.Position)
		c := moduleColor(b.Module.Type)
		if !b.Ready() {
			c = core.ColorGray
		}
		label := b.Module.Type.Short()
		scr.DrawTextColored(x-len(label)/2, y, label, c)
	}
}

func drawMarbles(scr *core.Screen, proj Projection, marbles []*engine.Marble) {
	for _, m := range marbles {
		x, y := proj.Cell(m.Position)
		scr.SetColored(x, y, '●', core.ColorWhite)
	}
}

func drawBullets(scr *core.Screen, proj Projection, bullets []*program.Bullet) {
	for _, b := range bullets {
		x, y := proj.Cell(b.Position)
		r := '•'
		if b.HasTrigger() {
			r = '◆'
		}
		scr.SetColored(x, y, r, moduleColor(b.BaseType))
	}
}

func drawRings(scr *core.Screen, proj Projection, rings []*engine.AOERing) {
	for _, ring := range rings {
		for a := 0.0; a < 360; a += 15 {
			x, y := proj.Cell(ring.Center.Add(core.FromAngle(a).Scale(ring.Radius)))
			scr.SetColored(x, y, '·', core.ColorOrange)
		}
	}
}

func drawSlots(scr *core.Screen, proj Projection, s *engine.GameState) {
	for i, slot := range s.Slots {
		x, y, w, h := proj.Rect(slot.Rect())
		c := core.ColorGray
		if i == s.CurrentSlot {
			c = core.ColorYellow
		}
		if h < 2 {
			scr.DrawHLine(x, y, w, '▔', c)
			continue
		}
		scr.DrawBox(x, y, w, h, c)
		scr.DrawTextColored(x+1, y, slot.Name, c)
	}
}

// drawAim draws the aim guide and, for spread programs, the outer edges of
// the fan.
func drawAim(scr *core.Screen, proj Projection, from core.Vec2, opts DrawOptions) {
	aim := core.ClampF(opts.Aim, engine.MinAim, engine.MaxAim)
	guide := func(deg float64, r rune, c core.Color) {
		dir := core.FromAngle(deg)
		for d := 20.0; d <= aimLength; d += 12 {
			x, y := proj.Cell(from.Add(dir.Scale(d)))
			scr.SetColored(x, y, r, c)
		}
	}

	if opts.Spread > 0 {
		guide(aim-opts.Spread/2, '·', core.ColorGray)
		guide(aim+opts.Spread/2, '·', core.ColorGray)
	}
	guide(aim, '∙', core.ColorCyan)
}

func drawHUD(scr *core.Screen, top int, s *engine.GameState, opts DrawOptions) {
	scr.DrawHLine(0, top, scr.Width(), '─', core.ColorGray)

	status := fmt.Sprintf("Round %d  %s  Score %d  Best %d  HP %d/%d",
		s.Round, s.Phase, s.Score, max(opts.HighScore, s.Score), s.Player.Health, s.Player.MaxHealth)
	if s.Phase == phase.BulletLoading {
		status += fmt.Sprintf("  Marbles %d", max(s.PendingMarbles, 0))
	}
	scr.DrawTextColored(0, top+1, status, phaseColor(s.Phase))

	var slots []string
	for i, slot := range s.Slots {
		mark := " "
		if i == s.CurrentSlot {
			mark = ">"
		}
		slots = append(slots, fmt.Sprintf("%s%s: %s %.0f/%.0f x%d", mark, slot.Name, slot.Program, slot.Energy, slot.EnergyCost, slot.Shots()))
	}
	line := strings.Join(slots, "  ")
	scr.DrawTextColored(0, top+2, line, core.ColorWhite)
	if s.ErrorMessage != "" {
		scr.DrawTextColored(len([]rune(line))+2, top+2, s.ErrorMessage, core.ColorRed)
	}
}

func moduleColor(t module.Type) core.Color {
	switch t {
	case module.Normal:
		return core.ColorWhite
	case module.Piercing:
		return core.ColorCyan
	case module.AOE:
		return core.ColorOrange
	case module.BouncePlus:
		return core.ColorGreen
	case module.ScatterPlus:
		return core.ColorMagenta
	case module.VolleyPlus:
		return core.ColorBlue
	case module.CollisionTrigger:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

func phaseColor(p phase.Phase) core.Color {
	switch p {
	case phase.BrickSpawn:
		return core.ColorMagenta
	case phase.BulletLoading:
		return core.ColorBlue
	case phase.PlayerAction:
		return core.ColorGreen
	case phase.BrickAction:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}
