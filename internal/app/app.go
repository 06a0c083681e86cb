package app

import (
	"log"

	"CubeWave/internal/camera"
	"CubeWave/internal/config"
	"CubeWave/internal/render"
	"CubeWave/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Visualizando a cena
	StatePaused                  // Pausado
)

// App é a aplicação principal do CubeWave: dona da janela, da câmera,
// do renderizador e do estado da cena pelo tempo de vida inteiro.
type App struct {
	Config *config.Config
	State  AppState

	// Controlador de câmera orbital
	Cam *camera.Controller

	// Estado da cena (grid de cubos + animação)
	World *scene.World

	renderer   *render.Renderer
	frameCount int
	quit       bool
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StateViewing,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r) // Re-throw para o sistema mostrar o erro se necessário
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC pausa em vez de fechar

	log.Println("[CubeWave] Janela inicializada com sucesso")
	log.Printf("[CubeWave] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	// Montar o grid de cubos (acontece uma única vez)
	a.World = scene.BuildGrid(a.Config.GridSize, a.Config.Spacing,
		scene.DefaultStartColor, scene.DefaultEndColor)
	log.Printf("[CubeWave] Grid %dx%d montado (%d cubos)",
		a.Config.GridSize, a.Config.GridSize, len(a.World.Boxes))

	// Inicializar sistema de câmera apontando para o centro do grid
	a.Cam = camera.New()
	a.Cam.Fovy = a.Config.FOV
	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.RotateSpeed = a.Config.CameraSensitivity
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed
	a.Cam.SetTarget(a.World.Center())

	a.renderer = render.NewRenderer(a.Config)

	// Loop principal
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	// Cleanup
	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	// Redimensionamento precisa valer antes do próximo draw
	a.handleResize()

	switch a.State {
	case StateViewing:
		a.updateCamera()
		a.updateInput()
		a.World.Step()
	case StatePaused:
		a.updateInput() // Permite detectar ESC para despausar
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[CubeWave] Erro ao salvar configurações: %v", err)
	}
}
