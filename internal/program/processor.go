package program

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/module"
)

// Default bounce budgets per base type.
var baseBounces = map[module.Type]int{
	module.Normal:   0,
	module.Piercing: 3,
	module.AOE:      0,
}

// Params holds the fixed numbers the processor turns programs into bullets with.
type Params struct {
	BulletSpeed   float64       // px/s
	BulletRadius  float64       // px
	Damage        int           // per hit, independent of modifiers
	GroupInterval time.Duration // delay between consecutive firing groups
	VolleySpread  float64       // degrees
	ScatterSpread float64       // degrees
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		BulletSpeed:   500,
		BulletRadius:  5,
		Damage:        1,
		GroupInterval: 200 * time.Millisecond,
		VolleySpread:  20,
		ScatterSpread: 30,
	}
}

// Config is the resolved numeric description of one firing group.
type Config struct {
	BaseType            module.Type
	BounceCount         int
	ScatterCount        int
	VolleyCount         int
	Damage              int
	HasCollisionTrigger bool
	Trigger             Program
}

// Projectiles returns how many bullets one shot of c produces.
func (c Config) Projectiles() int {
	return c.VolleyCount * c.ScatterCount
}

// Bullet is a live projectile.
type Bullet struct {
	ID          string
	Position    core.Vec2
	Velocity    core.Vec2
	Radius      float64
	BounceCount int
	Damage      int
	BaseType    module.Type
	Program     Program // copy of the source program
	Trigger     Program // nil once fired or when absent
}

// HasTrigger reports whether the bullet still carries an unfired sub-program.
func (b *Bullet) HasTrigger() bool {
	return len(b.Trigger) > 0
}

// DelayedGroup is a batch of bullets released Delay after the shot.
type DelayedGroup struct {
	Bullets []*Bullet
	Delay   time.Duration
}

// Processor compiles programs into bullets.
type Processor struct {
	params Params
}

// NewProcessor creates a processor with the given tuning.
func NewProcessor(p Params) *Processor {
	return &Processor{params: p}
}

// Params returns the processor's tuning.
func (pr *Processor) Params() Params {
	return pr.params
}

// ProcessGroup resolves the modifiers of g into a Config.
func (pr *Processor) ProcessGroup(g FiringGroup) Config {
	bounces, ok := baseBounces[g.Base.Type]
	if !ok {
		panic(fmt.Sprintf("program: %q is not a base module", g.Base.Type))
	}

	cfg := Config{
		BaseType:            g.Base.Type,
		BounceCount:         bounces,
		ScatterCount:        1,
		VolleyCount:         1,
		Damage:              pr.params.Damage,
		HasCollisionTrigger: g.HasCollisionTrigger,
		Trigger:             g.Trigger.Clone(),
	}

	for _, m := range g.Modifiers {
		switch m.Type {
		case module.BouncePlus:
			cfg.BounceCount++
		case module.ScatterPlus:
			cfg.ScatterCount++
		case module.VolleyPlus:
			cfg.VolleyCount++
		}
	}

	return cfg
}

// Process returns the config of the first firing group of p.
func (pr *Processor) Process(p Program) (Config, error) {
	groups := ParseGroups(p)
	if len(groups) == 0 {
		return Config{}, ErrEmptyProgram
	}
	return pr.ProcessGroup(groups[0]), nil
}

// GenerateAngles spreads count angles evenly over spread degrees centred on
// base. A single angle is base itself.
func GenerateAngles(base float64, count int, spread float64) []float64 {
	if count <= 1 {
		return []float64{base}
	}

	angles := make([]float64, count)
	step := spread / float64(count-1)
	start := base - spread/2
	for i := range angles {
		angles[i] = start + step*float64(i)
	}
	return angles
}

// CreateBullets instantiates the bullets of one firing group fired from pos
// towards dir. Scatter angles are nested inside each volley angle.
func (pr *Processor) CreateBullets(cfg Config, pos, dir core.Vec2, prog Program) []*Bullet {
	base := dir.Angle()
	bullets := make([]*Bullet, 0, cfg.Projectiles())

	for _, va := range GenerateAngles(base, cfg.VolleyCount, pr.params.VolleySpread) {
		for _, sa := range GenerateAngles(va, cfg.ScatterCount, pr.params.ScatterSpread) {
			bullets = append(bullets, pr.newBullet(cfg, pos, sa, prog))
		}
	}

	return bullets
}

// CreateDelayedBulletGroups compiles every firing group of p. Group i is
// released i×GroupInterval after the shot.
func (pr *Processor) CreateDelayedBulletGroups(p Program, pos, dir core.Vec2) []DelayedGroup {
	groups := ParseGroups(p)
	out := make([]DelayedGroup, 0, len(groups))

	for i, g := range groups {
		cfg := pr.ProcessGroup(g)
		out = append(out, DelayedGroup{
			Bullets: pr.CreateBullets(cfg, pos, dir, p),
			Delay:   time.Duration(i) * pr.params.GroupInterval,
		})
	}

	return out
}

// CreateTriggeredBullets compiles a trigger sub-program into a radial burst
// centred on pos. Each group fires max(scatter, volley) bullets spread evenly
// around the full circle; nested triggers carry over to the new bullets.
// The first heading of group g is 90 + 45/n + 90g/n degrees: no heading is
// ever horizontal, and up to four groups of equal size never share one.
func (pr *Processor) CreateTriggeredBullets(trigger Program, pos core.Vec2) []*Bullet {
	var bullets []*Bullet

	for gi, g := range ParseGroups(trigger) {
		cfg := pr.ProcessGroup(g)
		n := max(cfg.ScatterCount, cfg.VolleyCount, 1)
		spread := radialSpread(n)
		start := burstHeading + (45+90*float64(gi))/float64(n)
		for _, a := range GenerateAngles(start+spread/2, n, spread) {
			bullets = append(bullets, pr.newBullet(cfg, pos, a, trigger))
		}
	}

	return bullets
}

// burstHeading is straight down, in degrees.
const burstHeading = 90.0

// radialSpread keeps the first and last burst angles from landing on the
// same heading.
func radialSpread(n int) float64 {
	if n <= 1 {
		return 0
	}
	return 360 - 360/float64(n)
}

func (pr *Processor) newBullet(cfg Config, pos core.Vec2, angle float64, prog Program) *Bullet {
	return &Bullet{
		ID:          "bullet-" + uuid.NewString(),
		Position:    pos,
		Velocity:    core.FromAngle(angle).Scale(pr.params.BulletSpeed),
		Radius:      pr.params.BulletRadius,
		BounceCount: cfg.BounceCount,
		Damage:      cfg.Damage,
		BaseType:    cfg.BaseType,
		Program:     prog.Clone(),
		Trigger:     cfg.Trigger.Clone(),
	}
}

// Spread is the angular extent in degrees covered by a group's bullets, for
// aim previews.
func (pr *Processor) Spread(cfg Config) float64 {
	var s float64
	if cfg.VolleyCount > 1 {
		s += pr.params.VolleySpread
	}
	if cfg.ScatterCount > 1 {
		s += pr.params.ScatterSpread
	}
	return math.Min(s, 360)
}
