package app

import (
	"fmt"
	"log/slog"

	"github.com/cr1ms0nh3ad/quadwire/lib/api"
	"github.com/cr1ms0nh3ad/quadwire/lib/config"
	"github.com/cr1ms0nh3ad/quadwire/lib/frameloop"
	"github.com/cr1ms0nh3ad/quadwire/lib/metrics"
	"github.com/cr1ms0nh3ad/quadwire/lib/rendering"
	"github.com/cr1ms0nh3ad/quadwire/lib/rendering/shaders"
	"github.com/cr1ms0nh3ad/quadwire/lib/stats"
	"github.com/cr1ms0nh3ad/quadwire/lib/utils"
	"github.com/cr1ms0nh3ad/quadwire/lib/window"
)

// RunClear opens a window and clears it to the configured colour every
// frame until an exit request. The whole of the first program.
func RunClear(cfg *config.Config) error {
	win, err := window.Open(cfg)
	if err != nil {
		return fmt.Errorf("could not open window: %w", err)
	}
	defer win.Terminate()

	err = rendering.Init()
	if err != nil {
		return err
	}

	renderer := rendering.NewClearRenderer(utils.ColourParse(cfg.ClearColour))

	st := stats.New()
	loop := frameloop.New(win, renderer, st)
	api.ServeInBackground(cfg.Api, loop, st)

	renderer.SetViewport(win.FramebufferSize())
	loop.Run()

	slog.Info(fmt.Sprintf("rendered %d frames in %.1fs", st.Frames, st.Uptime))
	return nil
}

// RunQuad additionally builds the shader program, uploads the static
// quad and draws it in wireframe mode every frame.
func RunQuad(cfg *config.Config) error {
	win, err := window.Open(cfg)
	if err != nil {
		return fmt.Errorf("could not open window: %w", err)
	}
	defer win.Terminate()

	err = rendering.Init()
	if err != nil {
		return err
	}

	srcs, err := shaders.Load(&cfg.Shaders)
	if err != nil {
		return err
	}

	program, diags := shaders.Build(srcs)
	metrics.ShaderBuildResult(diags.Failed())
	if diags.Failed() {
		// the reference behaviour: keep going with whatever the driver
		// left us, the diagnostics are already logged
		slog.Warn("shader build failed, rendering output is undefined", slog.String("module", "shaders"))
	}

	vertices, indices := rendering.Quad()
	buffers, err := rendering.NewBufferSet(vertices, indices, rendering.PositionLayout())
	if err != nil {
		program.Delete()
		return fmt.Errorf("could not upload quad: %w", err)
	}

	renderer := rendering.NewQuadRenderer(utils.ColourParse(cfg.ClearColour), program, buffers, cfg.Wireframe)
	defer renderer.Delete()

	st := stats.New()
	loop := frameloop.New(win, renderer, st)
	api.ServeInBackground(cfg.Api, loop, st)

	if cfg.Shaders.Watch {
		reload := make(chan struct{}, 1)
		err = shaders.Watch(&cfg.Shaders, reload)
		if err != nil {
			return err
		}
		loop.SetReload(reload, func() {
			rebuild(cfg, renderer)
		})
	}

	renderer.SetViewport(win.FramebufferSize())
	loop.Run()

	slog.Info(fmt.Sprintf("rendered %d frames in %.1fs", st.Frames, st.Uptime))
	return nil
}

// rebuild runs on the loop thread after a shader watch notification.
// A failed rebuild keeps the previous program bound.
func rebuild(cfg *config.Config, renderer *rendering.QuadRenderer) {
	srcs, err := shaders.Load(&cfg.Shaders)
	if err != nil {
		slog.Error(fmt.Sprintf("could not reload shader sources: %s", err), slog.String("module", "shaders"))
		return
	}

	program, diags := shaders.Build(srcs)
	metrics.ShaderBuildResult(diags.Failed())
	if diags.Failed() {
		program.Delete()
		slog.Warn("shader rebuild failed, keeping previous program", slog.String("module", "shaders"))
		return
	}

	renderer.SwapProgram(program)
	slog.Info("shader program reloaded", slog.String("module", "shaders"))
}
