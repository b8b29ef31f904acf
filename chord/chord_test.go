package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/motif/model"
)

func TestCreateChordKeySortsACopy(t *testing.T) {
	notes := model.Notes{67, 60, 64}

	assert := assert.New(t)
	assert.Equal("60-64-67", CreateChordKey(notes))
	assert.Equal(model.Notes{67, 60, 64}, notes)
	assert.Equal("", CreateChordKey(nil))
	assert.Equal("60", CreateChordKey(model.Notes{60}))
}

func TestParseChordKey(t *testing.T) {
	notes, err := ParseChordKey("64-60-60")
	require.NoError(t, err)
	assert.Equal(t, model.Notes{64, 60, 60}, notes)

	for _, bad := range []string{"", "60--64", "60-x", "128", "-1"} {
		_, err := ParseChordKey(bad)
		assert.ErrorIs(t, err, ErrBadChord, bad)
	}
}

func TestChordKeyRoundTrip(t *testing.T) {
	notes, err := ParseChordKey(CreateChordKey(model.Notes{72, 48, 55}))
	require.NoError(t, err)
	assert.Equal(t, model.Notes{48, 55, 72}, notes)
}

func TestFromSymbol(t *testing.T) {
	cases := []struct {
		symbol string
		octave int
		want   model.Notes
	}{
		{"C", 4, model.Notes{60, 64, 67}},
		{"Am", 3, model.Notes{57, 60, 64}},
		{"F#m", 4, model.Notes{66, 69, 73}},
		{"Bbmaj7", 3, model.Notes{58, 62, 65, 69}},
		{"G7", 2, model.Notes{43, 47, 50, 53}},
		{"Dsus4", 4, model.Notes{62, 67, 69}},
		{"Bdim", 4, model.Notes{71, 74, 77}},
		{"Caug", 5, model.Notes{72, 76, 80}},
	}
	for _, c := range cases {
		t.Run(c.symbol, func(t *testing.T) {
			notes, err := FromSymbol(c.symbol, c.octave)
			require.NoError(t, err)
			assert.Equal(t, c.want, notes)
		})
	}
}

func TestFromSymbolErrors(t *testing.T) {
	for _, bad := range []string{"", "H", "Cxyz", "C#mm"} {
		_, err := FromSymbol(bad, 4)
		assert.ErrorIs(t, err, ErrBadChord, bad)
	}
	_, err := FromSymbol("G", 10)
	assert.ErrorIs(t, err, ErrBadChord)
}
