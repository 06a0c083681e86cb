package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleResize sincroniza as dimensões guardadas com a janela. Roda no
// começo do update para valer antes do draw do frame: o raylib já
// recalcula a projeção a partir do framebuffer atual, então o aspect
// ratio da câmera acompanha sozinho — a cópia no config é o que o HUD
// e o arquivo salvo leem.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}

	a.Config.WindowWidth = int32(rl.GetScreenWidth())
	a.Config.WindowHeight = int32(rl.GetScreenHeight())

	log.Printf("[App] Janela redimensionada para %dx%d",
		a.Config.WindowWidth, a.Config.WindowHeight)
}
