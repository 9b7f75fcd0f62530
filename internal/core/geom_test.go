package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 40, H: 60},
			b:        Box{X: 20, Y: 30, W: 40, H: 60},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{X: 0, Y: 0, W: 40, H: 60},
			b:        Box{X: 100, Y: 0, W: 40, H: 60},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Box{X: 0, Y: 0, W: 40, H: 60},
			b:        Box{X: 0, Y: 61, W: 40, H: 60},
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        Box{X: 0, Y: 0, W: 40, H: 60},
			b:        Box{X: 40, Y: 0, W: 40, H: 60},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 100, H: 100},
			b:        Box{X: 10, Y: 10, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdgesAndCenter(t *testing.T) {
	b := Box{X: 100, Y: 500, W: 40, H: 60}

	if b.Right() != 140 {
		t.Errorf("Right() = %f, expected 140", b.Right())
	}
	if b.Bottom() != 560 {
		t.Errorf("Bottom() = %f, expected 560", b.Bottom())
	}
	c := b.Center()
	if c.X != 120 || c.Y != 530 {
		t.Errorf("Center() = (%f, %f), expected (120, 530)", c.X, c.Y)
	}
}

func TestVec2(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 1}

	if got := a.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 3}) {
		t.Errorf("Sub() = %+v, expected {2 3}", got)
	}
	if got := a.Add(b); got != (Vec2{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v, expected {4 5}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 760.0, 5.5},
		{-4.0, 0.0, 760.0, 0.0},
		{804.0, 0.0, 760.0, 760.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
