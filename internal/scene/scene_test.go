package scene

import (
	"math"
	"testing"
)

func TestBuildGridCount(t *testing.T) {
	tests := []struct {
		gridSize int
		want     int
	}{
		{1, 1},
		{2, 4},
		{3, 9},
		{10, 100},
	}

	for _, tt := range tests {
		w := BuildGrid(tt.gridSize, 1.5, DefaultStartColor, DefaultEndColor)
		if len(w.Boxes) != tt.want {
			t.Errorf("BuildGrid(%d): %d cubos, esperado %d", tt.gridSize, len(w.Boxes), tt.want)
		}
	}
}

func TestBuildGridPositions(t *testing.T) {
	const gridSize = 4
	const spacing = float32(1.5)

	w := BuildGrid(gridSize, spacing, DefaultStartColor, DefaultEndColor)

	for i, b := range w.Boxes {
		row := i / gridSize
		col := i % gridSize

		wantX := float32(row) * spacing
		wantZ := float32(col) * spacing

		if b.Pos.X != wantX || b.Pos.Y != 0 || b.Pos.Z != wantZ {
			t.Errorf("cubo (%d,%d): posição (%v, %v, %v), esperado (%v, 0, %v)",
				row, col, b.Pos.X, b.Pos.Y, b.Pos.Z, wantX, wantZ)
		}
	}
}

func TestBuildGridColors(t *testing.T) {
	const gridSize = 3
	start := HSL{H: 0.1, S: 1.0, L: 0.5}
	end := HSL{H: 0.3, S: 0.8, L: 0.4}

	w := BuildGrid(gridSize, 1.5, start, end)

	for i, b := range w.Boxes {
		row := i / gridSize
		col := i % gridSize
		f := float32(col - row)

		want := LerpHSL(start, end, f)
		if b.Color != want {
			t.Errorf("cubo (%d,%d): cor %+v, esperado %+v", row, col, b.Color, want)
		}
	}

	// A diagonal principal (col == row) tem fator zero: cor inicial pura.
	if w.Boxes[0].Color != start {
		t.Errorf("cubo (0,0): cor %+v, esperado a cor inicial %+v", w.Boxes[0].Color, start)
	}
}

func TestCenter(t *testing.T) {
	w := BuildGrid(10, 1.5, DefaultStartColor, DefaultEndColor)
	c := w.Center()

	want := float32(9) * 1.5 / 2.0
	if c.X != want || c.Y != 0 || c.Z != want {
		t.Errorf("Center() = (%v, %v, %v), esperado (%v, 0, %v)", c.X, c.Y, c.Z, want, want)
	}
}

func TestLerpHSLExtrapolates(t *testing.T) {
	a := HSL{H: 0.0, S: 1.0, L: 0.5}
	b := HSL{H: 0.1, S: 1.0, L: 0.5}

	got := LerpHSL(a, b, 5.0)
	if math.Abs(float64(got.H-0.5)) > 1e-6 {
		t.Errorf("LerpHSL com fator 5: H = %v, esperado 0.5", got.H)
	}

	got = LerpHSL(a, b, -3.0)
	if math.Abs(float64(got.H-(-0.3))) > 1e-6 {
		t.Errorf("LerpHSL com fator -3: H = %v, esperado -0.3", got.H)
	}
}
