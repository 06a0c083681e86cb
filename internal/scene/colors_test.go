package scene

import "testing"

func TestHSLToColor(t *testing.T) {
	tests := []struct {
		name    string
		c       HSL
		r, g, b uint8
	}{
		{"vermelho", HSL{H: 0.0, S: 1.0, L: 0.5}, 255, 0, 0},
		{"verde", HSL{H: 1.0 / 3.0, S: 1.0, L: 0.5}, 0, 255, 0},
		{"azul", HSL{H: 2.0 / 3.0, S: 1.0, L: 0.5}, 0, 0, 255},
		{"branco", HSL{H: 0.0, S: 0.0, L: 1.0}, 255, 255, 255},
		{"preto", HSL{H: 0.0, S: 1.0, L: 0.0}, 0, 0, 0},
		{"cinza médio", HSL{H: 0.42, S: 0.0, L: 0.5}, 128, 128, 128},
	}

	for _, tt := range tests {
		got := tt.c.ToColor()
		if got.R != tt.r || got.G != tt.g || got.B != tt.b || got.A != 255 {
			t.Errorf("%s: ToColor() = (%d, %d, %d, %d), esperado (%d, %d, %d, 255)",
				tt.name, got.R, got.G, got.B, got.A, tt.r, tt.g, tt.b)
		}
	}
}

// A matiz dá a volta: H e H+1 são a mesma cor, e valores fora de [0, 1]
// de saturação/luminosidade saturam em vez de estourar.
func TestHSLToColorNormalizes(t *testing.T) {
	a := HSL{H: 0.25, S: 1.0, L: 0.5}.ToColor()
	b := HSL{H: 1.25, S: 1.0, L: 0.5}.ToColor()
	c := HSL{H: -0.75, S: 1.0, L: 0.5}.ToColor()
	if a != b || a != c {
		t.Errorf("matiz não deu a volta: %v, %v, %v", a, b, c)
	}

	d := HSL{H: 0.0, S: 3.0, L: 0.5}.ToColor()
	e := HSL{H: 0.0, S: 1.0, L: 0.5}.ToColor()
	if d != e {
		t.Errorf("saturação não saturou: %v vs %v", d, e)
	}

	f := HSL{H: 0.1, S: 1.0, L: 7.0}.ToColor()
	if f.R != 255 || f.G != 255 || f.B != 255 {
		t.Errorf("luminosidade acima de 1 deveria dar branco, veio %v", f)
	}
}
