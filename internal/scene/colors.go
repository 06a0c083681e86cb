package scene

import (
	"CubeWave/internal/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HSL representa uma cor no modelo matiz/saturação/luminosidade.
// H é uma fração de volta (0.0 a 1.0), S e L vão de 0.0 a 1.0.
// Raylib só oferece conversão HSV (rl.ColorFromHSV), então a conversão
// HSL fica aqui no pacote.
type HSL struct {
	H, S, L float32
}

// LerpHSL interpola linearmente cada componente entre a e b.
// O fator não é limitado a [0, 1]; valores fora extrapolam e são
// normalizados apenas na conversão para RGB (matiz dá a volta,
// saturação e luminosidade saturam).
func LerpHSL(a, b HSL, t float32) HSL {
	return HSL{
		H: util.Lerp(a.H, b.H, t),
		S: util.Lerp(a.S, b.S, t),
		L: util.Lerp(a.L, b.L, t),
	}
}

// hueToChannel resolve um canal RGB a partir dos intermediários p/q.
func hueToChannel(p, q, t float32) float32 {
	t = util.Fract(t)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// ToColor converte a cor HSL para rl.Color (RGBA 8 bits, alpha opaco).
func (c HSL) ToColor() rl.Color {
	h := util.Fract(c.H)
	s := util.Clamp(c.S, 0, 1)
	l := util.Clamp(c.L, 0, 1)

	if s == 0 {
		// Sem saturação é tom de cinza
		v := uint8(l*255.0 + 0.5)
		return rl.NewColor(v, v, v, 255)
	}

	var q float32
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	r := hueToChannel(p, q, h+1.0/3.0)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-1.0/3.0)

	return rl.NewColor(
		uint8(r*255.0+0.5),
		uint8(g*255.0+0.5),
		uint8(b*255.0+0.5),
		255,
	)
}
