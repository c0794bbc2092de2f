package config

import (
	"fmt"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/cr1ms0nh3ad/quadwire/lib/utils"
)

type Config struct {
	Window      WindowCfg  `yaml:"window"`
	Context     ContextCfg `yaml:"context"`
	ClearColour string     `yaml:"clear_colour"`
	Wireframe   bool       `yaml:"wireframe"`
	Shaders     ShaderCfg  `yaml:"shaders"`
	Api         *ApiCfg    `yaml:"api"`
}

type WindowCfg struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ContextCfg struct {
	Major       int  `yaml:"major"`
	Minor       int  `yaml:"minor"`
	CoreProfile bool `yaml:"core_profile"`
}

// ShaderCfg optionally points the renderer at on-disk shader sources
// instead of the embedded defaults. Watch enables rebuilding the program
// when either file is rewritten.
type ShaderCfg struct {
	VertexFile   string `yaml:"vertex_file"`
	FragmentFile string `yaml:"fragment_file"`
	Watch        bool   `yaml:"watch"`
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}

// Default reproduces the fixed configuration the programs ship with:
// a 1024x1024 window, a 3.3 core context and a black clear colour.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Width:  1024,
			Height: 1024,
			Title:  "quadwire",
		},
		Context: ContextCfg{
			Major:       3,
			Minor:       3,
			CoreProfile: true,
		},
		ClearColour: "#000000ff",
		Wireframe:   true,
	}
}

// Parse decodes a YAML file over the defaults and validates the result.
func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			return
		}
	}(f)

	cfg := Default()
	m := yaml.NewDecoder(f)
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("window title must not be empty")
	}
	if c.Context.Major < 3 || (c.Context.Major == 3 && c.Context.Minor < 3) {
		return fmt.Errorf("context version %d.%d is too old, 3.3 is the minimum", c.Context.Major, c.Context.Minor)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if (c.Shaders.VertexFile == "") != (c.Shaders.FragmentFile == "") {
		return fmt.Errorf("vertex_file and fragment_file must be given together")
	}
	if c.Shaders.Watch && c.Shaders.VertexFile == "" {
		return fmt.Errorf("shader watching needs vertex_file and fragment_file")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Window: %dx%d (%s)\n", c.Window.Width, c.Window.Height, c.Window.Title))
	b.WriteString(fmt.Sprintf("Context: %d.%d", c.Context.Major, c.Context.Minor))
	if c.Context.CoreProfile {
		b.WriteString(" core")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Clear colour: %s\n", c.ClearColour))
	if c.Wireframe {
		b.WriteString("Wireframe: on\n")
	}
	if c.Shaders.VertexFile != "" {
		b.WriteString(fmt.Sprintf("Shaders: %s + %s", c.Shaders.VertexFile, c.Shaders.FragmentFile))
		if c.Shaders.Watch {
			b.WriteString(" (watched)")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Shaders: embedded\n")
	}
	if c.Api != nil {
		b.WriteString(fmt.Sprintf("Api: %s\n", c.Api.Bind))
	}
	return b.String()
}
