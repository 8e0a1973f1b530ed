package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/bulletcraft/internal/program"
)

func TestEmissionQueueOrder(t *testing.T) {
	var q emissionQueue
	a := []*program.Bullet{{ID: "a"}}
	b := []*program.Bullet{{ID: "b"}}
	c := []*program.Bullet{{ID: "c"}}

	q.push(emission{due: 300 * time.Millisecond, bullets: c})
	q.push(emission{due: 100 * time.Millisecond, bullets: a})
	q.push(emission{due: 100 * time.Millisecond, bullets: b})
	q.push(emission{due: 200 * time.Millisecond, marble: true})

	if q.size() != 4 || q.bullets() != 3 || q.marbles() != 1 {
		t.Fatalf("size %d bullets %d marbles %d", q.size(), q.bullets(), q.marbles())
	}

	if got := q.popDue(50 * time.Millisecond); len(got) != 0 {
		t.Errorf("popDue(50ms) = %d entries, expected 0", len(got))
	}

	got := q.popDue(200 * time.Millisecond)
	if len(got) != 3 {
		t.Fatalf("popDue(200ms) = %d entries, expected 3", len(got))
	}
	if got[0].bullets[0].ID != "a" || got[1].bullets[0].ID != "b" || !got[2].marble {
		t.Errorf("entries out of order: %+v", got)
	}
	if q.size() != 1 {
		t.Errorf("size = %d, expected 1 left", q.size())
	}

	q.push(emission{due: time.Second, marble: true})
	q.dropMarbles()
	if q.size() != 1 || q.marbles() != 0 {
		t.Errorf("dropMarbles left %d entries, %d marbles", q.size(), q.marbles())
	}

	q.clear()
	if q.size() != 0 {
		t.Error("clear() left entries")
	}
}
