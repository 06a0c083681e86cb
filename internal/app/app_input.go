package app

import (
	"log"

	"CubeWave/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxKeycode cobre a faixa de teclas do raylib (GLFW vai até KB_MENU=348).
const maxKeycode = 349

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	// Processa input (WASD, Mouse, Zoom)
	a.Cam.HandleInput(dt)

	// Atualiza interpolação da câmera
	a.Cam.Update(dt)

	// Alternar projeção com P
	if rl.IsKeyPressed(rl.KeyP) {
		if a.Cam.Mode == camera.ModePerspective {
			a.Cam.SetMode(camera.ModeOrthographic)
			log.Println("[Camera] Modo Ortográfico")
		} else {
			a.Cam.SetMode(camera.ModePerspective)
			log.Println("[Camera] Modo Perspectiva")
		}
	}
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// Flag de tecla segurada: espaço liga, soltar QUALQUER tecla
	// desliga (ver scene.HandleKeys)
	a.World.HandleKeys(rl.IsKeyPressed(rl.KeySpace), anyKeyReleased())

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle grid de referência
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// ESC: Alternar Pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StateViewing {
			a.State = StatePaused
			log.Println("[App] Animação pausada")
		} else if a.State == StatePaused {
			a.State = StateViewing
			log.Println("[App] Retomando animação")
		}
	}
}

// anyKeyReleased varre a faixa de keycodes procurando qualquer tecla
// solta neste frame. Raylib não expõe um evento de key-up, então a
// varredura é a forma de preservar a regra "soltar qualquer tecla".
func anyKeyReleased() bool {
	for key := int32(0); key < maxKeycode; key++ {
		if rl.IsKeyReleased(key) {
			return true
		}
	}
	return false
}
