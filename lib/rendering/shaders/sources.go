package shaders

import (
	"embed"
	"fmt"
	"os"

	"github.com/cr1ms0nh3ad/quadwire/lib/config"
)

//go:embed *.frag *.vert
var shaderDir embed.FS

// Sources holds one vertex/fragment pair of GLSL source text.
type Sources struct {
	Vertex   string
	Fragment string
}

// Embedded returns the shader pair compiled into the binary.
func Embedded() Sources {
	return Sources{
		Vertex:   mustRead("quad.vert"),
		Fragment: mustRead("quad.frag"),
	}
}

// Load returns the configured on-disk shader pair, or the embedded pair
// when no files are configured.
func Load(cfg *config.ShaderCfg) (Sources, error) {
	if cfg.VertexFile == "" {
		return Embedded(), nil
	}

	var s Sources
	vert, err := readFile(cfg.VertexFile)
	if err != nil {
		return s, fmt.Errorf("could not read vertex shader: %w", err)
	}
	frag, err := readFile(cfg.FragmentFile)
	if err != nil {
		return s, fmt.Errorf("could not read fragment shader: %w", err)
	}
	s.Vertex = vert
	s.Fragment = frag
	return s, nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func mustRead(name string) string {
	b, err := shaderDir.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded shader %s is missing: %s", name, err))
	}
	return string(b)
}
