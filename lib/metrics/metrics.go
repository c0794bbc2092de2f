package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadwire_frames_rendered_total",
		Help: "Total number of frames cleared and presented",
	})
	DrawCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadwire_draw_calls_total",
		Help: "Total number of indexed draw calls issued",
	})
	ResizeEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quadwire_resize_events_total",
		Help: "Total number of framebuffer resizes applied to the viewport",
	})
	ShaderBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quadwire_shader_builds_total",
		Help: "Total number of shader program builds, by result",
	}, []string{"result"})
)

func ShaderBuildResult(failed bool) {
	if failed {
		ShaderBuilds.WithLabelValues("failure").Inc()
	} else {
		ShaderBuilds.WithLabelValues("success").Inc()
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
