package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"CubeWave/internal/app"
	"CubeWave/internal/config"
)

func main() {
	// IMPORTANTE para estabilidade: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	gridSize := flag.Int("grid", 0, "Lado do grid de cubos (padrão: 10)")
	logFile := flag.String("logfile", "", "Gravar logs em arquivo")
	flag.Parse()

	// Configurar Log em Arquivo (opcional)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(f)
		}
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          CubeWave v0.1.0             ║")
	log.Println("║   Grid de cubos animados em 3D       ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *gridSize > 0 {
		cfg.GridSize = *gridSize
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	application.Run()
}
