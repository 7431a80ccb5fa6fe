package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{1, 1 + Epsilon/2, true},
		{1, 1 + 2*Epsilon, false},
		{-3, -3 - Epsilon/2, true},
		{0, math.NaN(), false},
		{math.Inf(1), math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := ApproxEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("ApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestApproxZero(t *testing.T) {
	if !ApproxZero(1e-7) {
		t.Errorf("expected 1e-7 to be approximately zero")
	}
	if ApproxZero(1e-5) {
		t.Errorf("expected 1e-5 not to be approximately zero")
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(r3.Vector{X: 1.5, Y: -2, Z: 0})
	expected := "(1.500000, -2.000000, 0.000000)"
	if got != expected {
		t.Errorf("FormatVector failed: expected %v, got %v", expected, got)
	}
}

func TestFormatPoint(t *testing.T) {
	got := FormatPoint(OffPlane)
	expected := "(+Inf, +Inf)"
	if got != expected {
		t.Errorf("FormatPoint failed: expected %v, got %v", expected, got)
	}

	got = FormatPoint(r2.Point{X: 0.5, Y: 0})
	expected = "(0.500000, 0.000000)"
	if got != expected {
		t.Errorf("FormatPoint failed: expected %v, got %v", expected, got)
	}
}
