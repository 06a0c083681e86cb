package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do CubeWave.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Grid de cubos
	GridSize int     `json:"grid_size"`
	Spacing  float32 `json:"spacing"`

	// Câmera
	FOV               float32 `json:"fov"`
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`

	// Iluminação (direcional + ambiente)
	LightDir       [3]float32 `json:"light_dir"`
	LightColor     [3]float32 `json:"light_color"`
	LightIntensity float32    `json:"light_intensity"`
	AmbientColor   [3]float32 `json:"ambient_color"`
	AmbientLevel   float32    `json:"ambient_level"`

	// Material base (tint dos meshes secundários)
	BaseColor [3]float32 `json:"base_color"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "CubeWave",
		Fullscreen:   false,
		TargetFPS:    60,

		GridSize: 10,
		Spacing:  1.5,

		FOV:               45.0,
		CameraSpeed:       50.0,
		CameraSensitivity: 2.0,
		ZoomSpeed:         10.0,

		LightDir:       [3]float32{-0.5, -1.0, -0.3},
		LightColor:     [3]float32{1.0, 1.0, 1.0},
		LightIntensity: 0.9,
		AmbientColor:   [3]float32{1.0, 1.0, 1.0},
		AmbientLevel:   0.35,

		BaseColor: [3]float32{0.8, 0.8, 0.85},

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
