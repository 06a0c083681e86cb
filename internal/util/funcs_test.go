package util

import (
	"math"
	"testing"
)

func TestFract(t *testing.T) {
	tests := []struct {
		x    float32
		want float32
	}{
		{0.0, 0.0},
		{0.25, 0.25},
		{1.0, 0.0},
		{3.75, 0.75},
		{-0.25, 0.75},
		{-3.0, 0.0},
		{-1.5, 0.5},
	}

	for _, tt := range tests {
		got := Fract(tt.x)
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Fract(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

// Fract precisa devolver sempre um valor em [0, 1), mesmo para negativos.
func TestFractRange(t *testing.T) {
	for x := float32(-100.0); x < 100.0; x += 0.37 {
		f := Fract(x)
		if f < 0 || f >= 1 {
			t.Fatalf("Fract(%v) = %v fora de [0, 1)", x, f)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		start, end, amount float32
		want               float32
	}{
		{0, 10, 0.0, 0},
		{0, 10, 0.5, 5},
		{0, 10, 1.0, 10},
		{5, -5, 0.5, 0},
		{0, 10, 2.0, 20}, // extrapolação não é limitada
	}

	for _, tt := range tests {
		got := Lerp(tt.start, tt.end, tt.amount)
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.amount, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}
