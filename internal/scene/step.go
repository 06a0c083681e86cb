package scene

import (
	"math"

	"CubeWave/internal/util"
)

// Step avança a animação em um frame. A ordem é a mesma do loop de
// render: meshes secundários (se a tecla está segurada), depois cada
// cubo do grid na ordem da lista, e por fim o tempo decorrido.
func (w *World) Step() {
	if w.KeyHeld {
		for _, s := range w.Spinners {
			s.Rot.Y += SpinnerRotStep
		}
	}

	// Offset de centralização em Z: a fase da onda é medida a partir
	// do meio do grid, não da origem.
	center := float32(w.GridSize) * w.Spacing / 2.0

	f := util.Fract(w.Elapsed)
	drift := f * (-f) * HueDriftScale // Sempre ≤ 0

	for i, b := range w.Boxes {
		b.Rot.Y += RotStepY
		b.Rot.X += RotStepX

		// Deriva de matiz: saturação e luminosidade ficam intactas;
		// a matiz dá a volta em [0, 1).
		b.Color.H = util.Fract(b.Color.H + drift)

		// Onda senoidal viajando pelas linhas, defasada pela
		// profundidade e alternando o sentido pela paridade da linha.
		zc := b.Pos.Z - center
		h := float32(math.Sin(float64(w.Elapsed+zc*WavePhaseScale))) * WaveAmplitude

		row := i / w.GridSize
		if row%2 == 0 {
			b.Pos.Y = h
		} else {
			b.Pos.Y = -h
		}
	}

	w.Elapsed += TimeStep
}

// HandleKeys aplica a transição da flag de tecla segurada. Apertar
// espaço liga; soltar QUALQUER tecla desliga, não só o espaço — a
// assimetria é proposital.
func (w *World) HandleKeys(spacePressed, anyReleased bool) {
	if spacePressed {
		w.KeyHeld = true
	}
	if anyReleased {
		w.KeyHeld = false
	}
}
