package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestCircleRect(t *testing.T) {
	r := NewRect(10, 10, 20, 10)

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", V(20, 15), 1, true},
		{"touching left edge from outside", V(5, 15), 5, false},
		{"overlapping left edge", V(6, 15), 5, true},
		{"near corner outside", V(6, 6), 5, false},
		{"overlapping corner", V(7, 7), 5, true},
		{"far below", V(20, 40), 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleRect(tc.center, tc.radius, r); got != tc.expected {
				t.Errorf("CircleRect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleCircle(t *testing.T) {
	if !CircleCircle(V(0, 0), 5, V(8, 0), 4) {
		t.Error("circles 8 apart with radii 5+4 should overlap")
	}
	if CircleCircle(V(0, 0), 5, V(9, 0), 4) {
		t.Error("circles exactly touching should not overlap")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(V(0, 0)) {
		t.Error("top-left corner should be contained")
	}
	if !r.Contains(V(10, 10)) {
		t.Error("bottom-right corner should be contained")
	}
	if r.Contains(V(10.1, 5)) {
		t.Error("point right of rect should not be contained")
	}
}

func TestRectCenterAndClosestPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	c := r.Center()
	if c.X != 5 || c.Y != 10 {
		t.Errorf("Center() = %v, expected (5, 10)", c)
	}

	p := r.ClosestPoint(V(-5, 25))
	if p.X != 0 || p.Y != 20 {
		t.Errorf("ClosestPoint() = %v, expected (0, 20)", p)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !near(n.X, 0.6) || !near(n.Y, 0.8) {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}

	z := Vec2{}.Normalize()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestVecReflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec2
		expected Vec2
	}{
		{"head-on vertical", V(0, -5), V(0, 1), V(0, 5)},
		{"glancing off floor", V(3, 4), V(0, -1), V(3, -4)},
		{"off right wall", V(2, 1), V(-1, 0), V(-2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Reflect(tc.n)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Reflect() = %v, expected %v", got, tc.expected)
			}
			if !near(got.Len(), tc.v.Len()) {
				t.Errorf("Reflect() changed magnitude: %v -> %v", tc.v.Len(), got.Len())
			}
		})
	}
}

func TestAngleRoundTrip(t *testing.T) {
	for _, deg := range []float64{-170, -90, -45, 0, 30, 90, 135} {
		got := FromAngle(deg).Angle()
		if !near(got, deg) {
			t.Errorf("FromAngle(%v).Angle() = %v", deg, got)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{-200, -170, -10, -170},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("RNG diverged at step %d", i)
		}
	}

	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(-100, 100)
		if v < -100 || v >= 100 {
			t.Fatalf("Range() = %v, out of [-100, 100)", v)
		}
	}
}
