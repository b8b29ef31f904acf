package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/motif/render"
	"github.com/jsphweid/motif/sequencer"
)

func TestCreate(t *testing.T) {
	rec := render.NewRecorder()
	seq, err := sequencer.New(rec, sequencer.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, Create(seq))
	tracks := seq.Tracks()
	require.Len(t, tracks, 3)

	assert := assert.New(t)
	assert.Equal(16, tracks[0].Len())
	assert.Equal(8, tracks[1].Len())
	assert.Equal(4, tracks[2].Len())
	for _, tr := range tracks {
		assert.Equal(4*384, tr.End())
	}
	assert.Equal(4*384, seq.Duration())

	require.NoError(t, seq.RenderComposition())
	// 16 melody notes, 8 bass notes, three triads and one seventh chord
	assert.Len(rec.Notes(), 16+8+3*3+4)
}

func TestCreateFollowsResolution(t *testing.T) {
	for _, tpw := range []int{384, 768, 1920} {
		rec := render.NewRecorder()
		seq, err := sequencer.New(rec, sequencer.Options{Tempo: 120, TicksPerWholeNote: tpw})
		require.NoError(t, err)
		require.NoError(t, Create(seq))

		// four bars last eight seconds at 120 bpm whatever the resolution
		assert.Equal(t, 4*tpw, seq.Duration(), tpw)
		assert.InDelta(t, 8.0, seq.Seconds(seq.Duration()), 1e-9, tpw)
	}
}
