package frameloop

import (
	"log/slog"
	"sync/atomic"

	"github.com/cr1ms0nh3ad/quadwire/lib/metrics"
	"github.com/cr1ms0nh3ad/quadwire/lib/stats"
	"github.com/cr1ms0nh3ad/quadwire/lib/utils"
)

// Surface is the window-system side of the loop: input sampling,
// presentation and event delivery.
type Surface interface {
	ProcessInput()
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	TakeResize() (width, height int, ok bool)
}

// Renderer produces the frame contents between clear and present.
type Renderer interface {
	SetViewport(width, height int)
	Clear()
	Draw()
}

type State int

const (
	Running State = iota
	Stopped
)

// Loop drives the steady-state frame cycle. Single-threaded: Run and
// Step must stay on the thread owning the GL context. RequestStop is
// the only method safe to call from elsewhere.
type Loop struct {
	surface  Surface
	renderer Renderer
	stats    *stats.Stats

	state State
	stop  atomic.Bool

	deltaTimer utils.DeltaTimer

	reload   <-chan struct{}
	onReload func()
}

func New(surface Surface, renderer Renderer, st *stats.Stats) *Loop {
	return &Loop{
		surface:  surface,
		renderer: renderer,
		stats:    st,
		state:    Running,
	}
}

// SetReload wires a shader-watch notification channel into the loop.
// onReload runs on the loop thread when a notification arrives.
func (l *Loop) SetReload(ch <-chan struct{}, onReload func()) {
	l.reload = ch
	l.onReload = onReload
}

func (l *Loop) State() State {
	return l.state
}

// RequestStop asks the loop to stop before its next frame. Safe to call
// from any goroutine.
func (l *Loop) RequestStop() {
	l.stop.Store(true)
}

// Run iterates until the surface reports an exit request or RequestStop
// is called.
func (l *Loop) Run() {
	for l.Step() {
	}
}

// Step runs one iteration and reports whether the loop is still
// running. The order is fixed: sample input and evaluate the exit
// condition, clear, draw, present, poll events, then apply any resize
// so the next clear never uses a stale viewport.
func (l *Loop) Step() bool {
	if l.state == Stopped {
		return false
	}

	l.surface.ProcessInput()
	if l.stop.Load() || l.surface.ShouldClose() {
		l.state = Stopped
		slog.Info("exit requested, stopping frame loop", slog.String("module", "frameloop"))
		return false
	}

	l.renderer.Clear()
	l.renderer.Draw()
	l.surface.SwapBuffers()
	l.surface.PollEvents()

	if width, height, ok := l.surface.TakeResize(); ok {
		l.renderer.SetViewport(width, height)
		l.stats.Resize()
		metrics.ResizeEvents.Inc()
	}

	select {
	case <-l.reload:
		l.onReload()
	default:
	}

	l.stats.Frame(l.deltaTimer.Next())
	metrics.FramesRendered.Inc()
	return true
}
