package util

import "math"

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Fract retorna a parte fracionária de x (x - floor(x)).
// Para qualquer x finito o resultado está em [0, 1).
func Fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
