package render

import (
	"log"
	"unsafe"

	"CubeWave/internal/config"
	"CubeWave/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer guarda os recursos de GPU da cena: o shader de iluminação
// (uma luz direcional + ambiente) e o modelo de cubo compartilhado por
// todos os cubos do grid. A cor varia por draw call via tint.
type Renderer struct {
	LightShader rl.Shader

	cubeModel rl.Model

	// Cor dos meshes secundários (material base)
	spinnerColor rl.Color

	ready bool
}

// NewRenderer cria o renderizador e sobe os recursos para a GPU.
// Precisa da janela aberta; sem ela fica em modo inerte.
func NewRenderer(cfg *config.Config) *Renderer {
	r := &Renderer{
		spinnerColor: colorFromRGB(cfg.BaseColor),
	}

	if !rl.IsWindowReady() {
		log.Printf("[Renderer] AVISO: janela não inicializada, renderizador inerte")
		return r
	}

	r.LightShader = rl.LoadShaderFromMemory(lightVertexShader, lightFragmentShader)

	// Locs é um ponteiro bruto (*int32) que aponta para um array em C
	locs := unsafe.Slice(r.LightShader.Locs, 32)
	locs[12] = rl.GetShaderLocation(r.LightShader, "colDiffuse") // SHADER_LOC_COLOR_DIFFUSE

	// A luz é fixa durante toda a execução: uniforms definidos uma vez
	dirLoc := rl.GetShaderLocation(r.LightShader, "lightDir")
	rl.SetShaderValue(r.LightShader, dirLoc, cfg.LightDir[:], rl.ShaderUniformVec3)

	colorLoc := rl.GetShaderLocation(r.LightShader, "lightColor")
	rl.SetShaderValue(r.LightShader, colorLoc, cfg.LightColor[:], rl.ShaderUniformVec3)

	intensityLoc := rl.GetShaderLocation(r.LightShader, "lightIntensity")
	rl.SetShaderValue(r.LightShader, intensityLoc, []float32{cfg.LightIntensity}, rl.ShaderUniformFloat)

	ambColorLoc := rl.GetShaderLocation(r.LightShader, "ambientColor")
	rl.SetShaderValue(r.LightShader, ambColorLoc, cfg.AmbientColor[:], rl.ShaderUniformVec3)

	ambLevelLoc := rl.GetShaderLocation(r.LightShader, "ambientLevel")
	rl.SetShaderValue(r.LightShader, ambLevelLoc, []float32{cfg.AmbientLevel}, rl.ShaderUniformFloat)

	// Geometria compartilhada: um único cubo para o grid inteiro
	mesh := rl.GenMeshCube(1.0, 1.0, 1.0)
	r.cubeModel = rl.LoadModelFromMesh(mesh)
	if r.cubeModel.Materials != nil {
		r.cubeModel.Materials.Shader = r.LightShader
	}

	r.ready = true
	log.Printf("[Renderer] Shader de iluminação e cubo compartilhado carregados")
	return r
}

// Draw desenha o mundo dentro de um bloco Mode3D.
func (r *Renderer) Draw(cam rl.Camera3D, w *scene.World, showGrid bool) {
	rl.BeginMode3D(cam)

	// Grid de referência no chão
	if showGrid {
		rl.DrawGrid(40, w.Spacing)
	}

	if r.ready {
		for _, b := range w.Boxes {
			r.cubeModel.Transform = boxTransform(b)
			rl.DrawModel(r.cubeModel, b.Pos, 1.0, b.Color.ToColor())
		}

		for _, s := range w.Spinners {
			r.cubeModel.Transform = boxTransform(s)
			rl.DrawModel(r.cubeModel, s.Pos, 1.0, r.spinnerColor)
		}
	}

	rl.EndMode3D()
}

// Unload libera os recursos de GPU.
func (r *Renderer) Unload() {
	if !r.ready {
		return
	}
	rl.UnloadModel(r.cubeModel) // Inclui o mesh do cubo
	rl.UnloadShader(r.LightShader)
	r.ready = false
}

// boxTransform monta a matriz de rotação do cubo a partir dos ângulos
// de Euler (a translação entra pelo parâmetro de posição do DrawModel).
func boxTransform(b *scene.Box) rl.Matrix {
	m := mgl32.HomogRotate3DY(b.Rot.Y).
		Mul4(mgl32.HomogRotate3DX(b.Rot.X)).
		Mul4(mgl32.HomogRotate3DZ(b.Rot.Z))
	return matToRaylib(m)
}

// matToRaylib converte mgl32.Mat4 para rl.Matrix. As duas representações
// são column-major com o mesmo índice linear, então a cópia é direta.
func matToRaylib(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// colorFromRGB converte um triplo 0.0-1.0 do config em rl.Color.
func colorFromRGB(c [3]float32) rl.Color {
	return rl.NewColor(uint8(c[0]*255.0+0.5), uint8(c[1]*255.0+0.5), uint8(c[2]*255.0+0.5), 255)
}
