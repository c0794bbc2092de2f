package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cr1ms0nh3ad/quadwire/lib/config"
)

// ExitKey closes the window when observed pressed during input sampling.
const ExitKey = glfw.KeyBackspace

type resize struct {
	width  int
	height int
}

// Window wraps the GLFW window and its GL context. All methods must be
// called from the thread that owns the context.
type Window struct {
	glfw *glfw.Window

	// resizes reported by GLFW during PollEvents, drained by TakeResize
	pending []resize

	terminated bool
}

// Open initialises GLFW, applies the context hints from the config and
// creates the window with a current context. On failure nothing is left
// acquired.
func Open(cfg *config.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not initialise glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Context.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Context.Minor)
	if cfg.Context.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	win.MakeContextCurrent()

	w := &Window{glfw: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, resize{width: width, height: height})
	})

	slog.Debug(fmt.Sprintf("created %dx%d window", cfg.Window.Width, cfg.Window.Height), slog.String("module", "window"))

	return w, nil
}

// ProcessInput samples the exit key and flags the window for closing
// when it is currently pressed.
func (w *Window) ProcessInput() {
	if w.glfw.GetKey(ExitKey) == glfw.Press {
		w.glfw.SetShouldClose(true)
	}
}

func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.glfw.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// TakeResize drains the resizes queued since the last call and returns
// the most recent one. ok is false when nothing was queued.
func (w *Window) TakeResize() (width, height int, ok bool) {
	if len(w.pending) == 0 {
		return 0, 0, false
	}
	last := w.pending[len(w.pending)-1]
	w.pending = w.pending[:0]
	return last.width, last.height, true
}

// FramebufferSize returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfw.GetFramebufferSize()
}

// Terminate destroys the window and shuts GLFW down. Safe to call more
// than once; only the first call does anything.
func (w *Window) Terminate() {
	if w.terminated {
		return
	}
	w.terminated = true
	w.glfw.Destroy()
	glfw.Terminate()
}
