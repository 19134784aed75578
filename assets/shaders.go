package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// RadialShader fills a rectangle with a radial gradient of up to three stops
	RadialShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if RadialShader != nil {
		return nil
	}

	radialSrc, err := shaderFS.ReadFile("shaders/radial.kage")
	if err != nil {
		return fmt.Errorf("read radial shader: %w", err)
	}
	RadialShader, err = ebiten.NewShader(radialSrc)
	if err != nil {
		return fmt.Errorf("compile radial shader: %w", err)
	}

	return nil
}
