package stats

import (
	"time"
)

type Stats struct {
	Frames  uint64  `json:"frames"`
	Resizes uint64  `json:"resizes"`
	Uptime  float64 `json:"uptime"`
	FPS     uint64  `json:"fps"`

	frameCounter  uint64
	windowElapsed time.Duration
}

func New() *Stats {
	return &Stats{}
}

// Frame records one presented frame and the measured time since the
// previous one. Uptime and FPS both derive from the accumulated deltas.
func (s *Stats) Frame(dt time.Duration) {
	s.Frames++
	s.frameCounter++
	s.windowElapsed += dt
	if s.windowElapsed > 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.windowElapsed = 0
	}
	s.Uptime += dt.Seconds()
}

func (s *Stats) Resize() {
	s.Resizes++
}
