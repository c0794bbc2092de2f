package frameloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cr1ms0nh3ad/quadwire/lib/stats"
)

type recorder struct {
	events []string
}

func (r *recorder) add(ev string) {
	r.events = append(r.events, ev)
}

// fakeSurface models the windowing provider: the exit key reads pressed
// starting with the (exitAfter+1)-th input sample, and a resize can be
// delivered during a chosen PollEvents call.
type fakeSurface struct {
	rec *recorder

	exitAfter int
	sampled   int
	closed    bool

	polls        int
	resizeAtPoll int
	resizeTo     [2]int
	pending      bool
}

func (s *fakeSurface) ProcessInput() {
	s.rec.add("input")
	s.sampled++
	if s.sampled > s.exitAfter {
		s.closed = true
	}
}

func (s *fakeSurface) ShouldClose() bool {
	return s.closed
}

func (s *fakeSurface) SwapBuffers() {
	s.rec.add("swap")
}

func (s *fakeSurface) PollEvents() {
	s.rec.add("poll")
	s.polls++
	if s.resizeAtPoll != 0 && s.polls == s.resizeAtPoll {
		s.pending = true
	}
}

func (s *fakeSurface) TakeResize() (int, int, bool) {
	if !s.pending {
		return 0, 0, false
	}
	s.pending = false
	return s.resizeTo[0], s.resizeTo[1], true
}

type fakeRenderer struct {
	rec *recorder

	viewport        [2]int
	clears          int
	draws           int
	viewportAtClear [][2]int
}

func (r *fakeRenderer) SetViewport(width, height int) {
	r.rec.add("viewport")
	r.viewport = [2]int{width, height}
}

func (r *fakeRenderer) Clear() {
	r.rec.add("clear")
	r.clears++
	r.viewportAtClear = append(r.viewportAtClear, r.viewport)
}

func (r *fakeRenderer) Draw() {
	r.rec.add("draw")
	r.draws++
}

func newLoop(exitAfter int) (*Loop, *fakeSurface, *fakeRenderer) {
	rec := &recorder{}
	surface := &fakeSurface{rec: rec, exitAfter: exitAfter}
	renderer := &fakeRenderer{rec: rec, viewport: [2]int{1024, 1024}}
	return New(surface, renderer, stats.New()), surface, renderer
}

func TestIterationOrder(t *testing.T) {
	loop, surface, _ := newLoop(1)
	loop.Run()

	// one full frame in fixed order, then the exit sample
	assert.Equal(t, []string{"input", "clear", "draw", "swap", "poll", "input"}, surface.rec.events)
}

func TestStopsExactlyOnce(t *testing.T) {
	loop, _, renderer := newLoop(3)
	loop.Run()

	require.Equal(t, Stopped, loop.State())
	assert.Equal(t, 3, renderer.draws)
	assert.Equal(t, 3, renderer.clears)

	// terminal: further steps do nothing
	assert.False(t, loop.Step())
	assert.Equal(t, 3, renderer.draws)
}

func TestExitKeyOnFirstFrame(t *testing.T) {
	// the key is already down when the program starts; the first input
	// sample happens before any events were polled, so exactly one
	// frame gets cleared and drawn
	loop, _, renderer := newLoop(1)
	loop.Run()

	assert.Equal(t, 1, renderer.clears)
	assert.Equal(t, 1, renderer.draws)
	assert.Equal(t, Stopped, loop.State())
}

func TestResizeAppliedBeforeNextClear(t *testing.T) {
	loop, surface, renderer := newLoop(3)
	surface.resizeAtPoll = 1
	surface.resizeTo = [2]int{640, 480}
	loop.Run()

	require.Len(t, renderer.viewportAtClear, 3)
	assert.Equal(t, [2]int{1024, 1024}, renderer.viewportAtClear[0])

	// every clear after the processed resize sees the new viewport
	assert.Equal(t, [2]int{640, 480}, renderer.viewportAtClear[1])
	assert.Equal(t, [2]int{640, 480}, renderer.viewportAtClear[2])
}

func TestResizeUpdatesViewport(t *testing.T) {
	rec := &recorder{}
	surface := &fakeSurface{rec: rec, exitAfter: 2}
	renderer := &fakeRenderer{rec: rec}
	loop := New(surface, renderer, stats.New())

	surface.resizeAtPoll = 1
	surface.resizeTo = [2]int{800, 600}
	loop.Run()

	assert.Equal(t, [2]int{800, 600}, renderer.viewport)
}

func TestRequestStopPreventsDraw(t *testing.T) {
	loop, _, renderer := newLoop(100)
	loop.RequestStop()
	loop.Run()

	assert.Equal(t, Stopped, loop.State())
	assert.Zero(t, renderer.clears)
	assert.Zero(t, renderer.draws)
}

func TestReloadHookRunsOnLoopThread(t *testing.T) {
	loop, _, _ := newLoop(2)

	reload := make(chan struct{}, 1)
	reload <- struct{}{}

	reloads := 0
	loop.SetReload(reload, func() {
		reloads++
	})
	loop.Run()

	assert.Equal(t, 1, reloads)
}

func TestStatsReceiveMeasuredDeltas(t *testing.T) {
	st := stats.New()
	rec := &recorder{}
	surface := &fakeSurface{rec: rec, exitAfter: 1}
	loop := New(surface, &fakeRenderer{rec: rec}, st)

	// pretend the previous frame was presented two seconds ago
	loop.deltaTimer.Set(time.Now().Add(-2 * time.Second))
	loop.Run()

	assert.Equal(t, uint64(1), st.Frames)
	assert.GreaterOrEqual(t, st.Uptime, 2.0)
	assert.Equal(t, uint64(1), st.FPS)
}

func TestStatsCountFramesAndResizes(t *testing.T) {
	st := stats.New()
	rec := &recorder{}
	surface := &fakeSurface{rec: rec, exitAfter: 5}
	surface.resizeAtPoll = 2
	surface.resizeTo = [2]int{512, 512}
	loop := New(surface, &fakeRenderer{rec: rec}, st)
	loop.Run()

	assert.Equal(t, uint64(5), st.Frames)
	assert.Equal(t, uint64(1), st.Resizes)
}
