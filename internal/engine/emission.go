package engine

import (
	"sort"
	"time"

	"github.com/vovakirdan/bulletcraft/internal/program"
)

// emission is a deferred insert into the live state.
// Exactly one of bullets or marble is set.
type emission struct {
	due     time.Duration
	bullets []*program.Bullet
	marble  bool
}

// emissionQueue holds deferred inserts ordered by due time, then by
// insertion order. It is drained at the start of every tick.
type emissionQueue struct {
	items []emission
}

// push inserts e after every entry due at or before it.
func (q *emissionQueue) push(e emission) {
	i := sort.Search(len(q.items), func(i int) bool {
		return q.items[i].due > e.due
	})
	q.items = append(q.items, emission{})
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = e
}

// popDue removes and returns every entry due at or before now.
func (q *emissionQueue) popDue(now time.Duration) []emission {
	n := sort.Search(len(q.items), func(i int) bool {
		return q.items[i].due > now
	})
	if n == 0 {
		return nil
	}
	due := append([]emission(nil), q.items[:n]...)
	q.items = append(q.items[:0], q.items[n:]...)
	return due
}

func (q *emissionQueue) clear() {
	q.items = nil
}

// dropMarbles discards every scheduled marble launch.
func (q *emissionQueue) dropMarbles() {
	kept := q.items[:0]
	for _, it := range q.items {
		if !it.marble {
			kept = append(kept, it)
		}
	}
	q.items = kept
}

func (q *emissionQueue) size() int {
	return len(q.items)
}

// bullets counts the bullets still waiting to be released.
func (q *emissionQueue) bullets() int {
	n := 0
	for _, it := range q.items {
		n += len(it.bullets)
	}
	return n
}

// marbles counts the marbles still waiting to be launched.
func (q *emissionQueue) marbles() int {
	n := 0
	for _, it := range q.items {
		if it.marble {
			n++
		}
	}
	return n
}

// drainEmissions applies every due entry to the state.
func (e *Engine) drainEmissions() {
	for _, it := range e.queue.popDue(e.state.Elapsed) {
		if it.marble {
			e.launchMarble()
			continue
		}
		e.state.Bullets = append(e.state.Bullets, it.bullets...)
	}
}
