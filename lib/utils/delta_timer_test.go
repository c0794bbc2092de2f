package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaTimerFirstCallIsZero(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next())
}

func TestDeltaTimerMeasuresElapsed(t *testing.T) {
	var d DeltaTimer
	d.Set(time.Now().Add(-time.Second))

	dt := d.Next()
	assert.GreaterOrEqual(t, dt, time.Second)
	assert.Less(t, dt, 2*time.Second)

	// the reference timestamp moved forward
	assert.Less(t, d.Next(), time.Second)
}
