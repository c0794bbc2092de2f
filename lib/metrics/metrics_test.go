package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestShaderBuildResult(t *testing.T) {
	failures := testutil.ToFloat64(ShaderBuilds.WithLabelValues("failure"))
	successes := testutil.ToFloat64(ShaderBuilds.WithLabelValues("success"))

	ShaderBuildResult(true)
	ShaderBuildResult(false)
	ShaderBuildResult(false)

	assert.Equal(t, failures+1, testutil.ToFloat64(ShaderBuilds.WithLabelValues("failure")))
	assert.Equal(t, successes+2, testutil.ToFloat64(ShaderBuilds.WithLabelValues("success")))
}

func TestHandlerExposesCounters(t *testing.T) {
	FramesRendered.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Contains(t, rec.Body.String(), "quadwire_frames_rendered_total")
	assert.Contains(t, rec.Body.String(), "quadwire_draw_calls_total")
}
