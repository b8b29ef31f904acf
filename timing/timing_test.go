package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOneBeatAt60IsOneSecond(t *testing.T) {
	assert.InDelta(t, 1.0, SecondsForTicks(96, 60, 96), 1e-9)
}

func TestOneBeatAt120IsHalfSecond(t *testing.T) {
	assert.InDelta(t, 0.5, SecondsForTicks(96, 120, 96), 1e-9)
}

func TestSecondsForTicks(t *testing.T) {
	cases := []struct {
		ticks, bpm, ppq int
		want            float64
	}{
		{0, 120, 96, 0},
		{384, 120, 96, 2},
		{48, 60, 96, 0.5},
		{960, 90, 480, 4.0 / 3.0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, SecondsForTicks(c.ticks, c.bpm, c.ppq), 1e-9)
	}
}

func TestSecondsForTicksPanicsOnZeroTempo(t *testing.T) {
	assert.Panics(t, func() { SecondsForTicks(96, 0, 96) })
	assert.Panics(t, func() { SecondsForTicks(96, 120, 0) })
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, Duration(96, 120, 96))
	assert.Equal(t, 250*time.Millisecond, Duration(48, 120, 96))
}

func TestPPQ(t *testing.T) {
	assert.Equal(t, 96, PPQ(384))
}
