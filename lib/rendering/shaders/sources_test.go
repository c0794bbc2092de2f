package shaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cr1ms0nh3ad/quadwire/lib/config"
)

func TestEmbeddedSources(t *testing.T) {
	s := Embedded()

	assert.Contains(t, s.Vertex, "#version 330 core")
	assert.Contains(t, s.Vertex, "gl_Position")
	assert.Contains(t, s.Fragment, "#version 330 core")
	assert.Contains(t, s.Fragment, "FragColor")
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	s, err := Load(&config.ShaderCfg{})
	require.NoError(t, err)
	assert.Equal(t, Embedded(), s)
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "custom.vert")
	frag := filepath.Join(dir, "custom.frag")
	require.NoError(t, os.WriteFile(vert, []byte("// custom vertex\n"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("// custom fragment\n"), 0o644))

	s, err := Load(&config.ShaderCfg{VertexFile: vert, FragmentFile: frag})
	require.NoError(t, err)
	assert.Equal(t, "// custom vertex\n", s.Vertex)
	assert.Equal(t, "// custom fragment\n", s.Fragment)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(&config.ShaderCfg{
		VertexFile:   filepath.Join(t.TempDir(), "nope.vert"),
		FragmentFile: filepath.Join(t.TempDir(), "nope.frag"),
	})
	assert.ErrorContains(t, err, "vertex shader")
}
