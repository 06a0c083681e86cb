package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Constantes da animação. Os incrementos são fixos por frame (não
// escalados por dt): o contador de tempo e as rotações avançam a mesma
// quantidade a cada callback de frame.
const (
	TimeStep       = 0.01 // Avanço do tempo decorrido por frame
	RotStepX       = 0.02 // Rotação X de cada cubo por frame (radianos)
	RotStepY       = 0.01 // Rotação Y de cada cubo por frame (radianos)
	SpinnerRotStep = 0.05 // Rotação Y dos meshes secundários com a tecla segurada
	WaveAmplitude  = 5.0  // Altura máxima da onda senoidal
	WavePhaseScale = 0.25 // Defasagem da onda por unidade de profundidade (Z)
	HueDriftScale  = 1.0 / 20.0
)

// Cores padrão do gradiente do grid (matiz em frações de volta).
var (
	DefaultStartColor = HSL{H: 0.0, S: 1.0, L: 0.5}  // Vermelho
	DefaultEndColor   = HSL{H: 0.66, S: 1.0, L: 0.5} // Azul
)

// Box é um cubo do grid: posição e rotação em ângulos de Euler
// (radianos), mais o estado de cor próprio. A geometria é compartilhada
// entre todos os cubos; só a cor é individual.
type Box struct {
	Pos   rl.Vector3
	Rot   rl.Vector3
	Color HSL
}

// World guarda todo o estado da cena que a animação muta por frame.
// É construído uma única vez e atualizado exclusivamente por Step, o
// que permite testar as regras de animação sem janela aberta.
type World struct {
	GridSize int
	Spacing  float32

	Boxes []*Box

	// Spinners é a lista de meshes secundários girada enquanto a tecla
	// de espaço está segurada. Nada a popula por padrão.
	Spinners []*Box

	Elapsed float32
	KeyHeld bool
}

// BuildGrid monta o grid de gridSize × gridSize cubos. Acontece uma
// única vez na inicialização; a lista fica com tamanho fixo depois.
//
// O cubo (row, col) fica em (row·spacing, 0, col·spacing) e recebe a
// cor interpolada em HSL entre start e end com fator (col − row). O
// fator passa de [0, 1] nas bordas do grid de propósito: a matiz dá a
// volta e o gradiente se repete pela diagonal.
func BuildGrid(gridSize int, spacing float32, start, end HSL) *World {
	w := &World{
		GridSize: gridSize,
		Spacing:  spacing,
		Boxes:    make([]*Box, 0, gridSize*gridSize),
	}

	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			t := float32(col - row)
			w.Boxes = append(w.Boxes, &Box{
				Pos:   rl.Vector3{X: float32(row) * spacing, Y: 0, Z: float32(col) * spacing},
				Color: LerpHSL(start, end, t),
			})
		}
	}

	return w
}

// Center retorna o centro do grid no plano XZ (alvo inicial da câmera).
func (w *World) Center() rl.Vector3 {
	half := float32(w.GridSize-1) * w.Spacing / 2.0
	return rl.Vector3{X: half, Y: 0, Z: half}
}
