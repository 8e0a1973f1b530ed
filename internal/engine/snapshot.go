package engine

import "math"

// Snapshot is a flat copy of the state for determinism checks and run
// summaries. Entity IDs are random and left out.
type Snapshot struct {
	Tick           uint64
	Elapsed        int64 // nanoseconds
	Phase          int
	Round          int
	Score          int
	Health         int
	GameOver       bool
	CurrentSlot    int
	PendingMarbles int
	Queued         int

	// Each brick is 3 values: X, Y, Health
	BrickData []float64
	// Each bullet is 5 values: X, Y, VX, VY, BounceCount
	BulletData []float64
	// Each marble is 5 values: X, Y, VX, VY, collected count
	MarbleData []float64
	// Each slot is 3 values: Energy, EnergyCost, program length
	SlotData []float64
	// Each ring is 3 values: X, Y, Radius
	RingData []float64

	RNGState uint64
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := e.state

	bricks := make([]float64, 0, len(s.Bricks)*3)
	for _, b := range s.Bricks {
		bricks = append(bricks, b.Rect.X, b.Rect.Y, float64(b.Health))
	}

	bullets := make([]float64, 0, len(s.Bullets)*5)
	for _, b := range s.Bullets {
		bullets = append(bullets, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, float64(b.BounceCount))
	}

	marbles := make([]float64, 0, len(s.Marbles)*5)
	for _, m := range s.Marbles {
		marbles = append(marbles, m.Position.X, m.Position.Y, m.Velocity.X, m.Velocity.Y, float64(len(m.Collected)))
	}

	slots := make([]float64, 0, len(s.Slots)*3)
	for _, sl := range s.Slots {
		slots = append(slots, sl.Energy, sl.EnergyCost, float64(len(sl.Program)))
	}

	rings := make([]float64, 0, len(s.Rings)*3)
	for _, r := range s.Rings {
		rings = append(rings, r.Center.X, r.Center.Y, r.Radius)
	}

	return Snapshot{
		Tick:           s.Tick,
		Elapsed:        int64(s.Elapsed),
		Phase:          int(s.Phase),
		Round:          s.Round,
		Score:          s.Score,
		Health:         s.Player.Health,
		GameOver:       s.GameOver,
		CurrentSlot:    s.CurrentSlot,
		PendingMarbles: s.PendingMarbles,
		Queued:         e.queue.size(),

		BrickData:  bricks,
		BulletData: bullets,
		MarbleData: marbles,
		SlotData:   slots,
		RingData:   rings,

		RNGState: e.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Elapsed)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurrentSlot)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingMarbles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Queued)         //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, data := range [][]float64{snap.BrickData, snap.BulletData, snap.MarbleData, snap.SlotData, snap.RingData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + snap.RNGState

	return h
}
