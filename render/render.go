// Package render holds the backends a sequencer can flatten a composition
// into: an in-memory recorder, a Standard MIDI File writer and a live MIDI port.
package render

import (
	"math"

	"github.com/jsphweid/motif/util"
)

// Note is one scheduled note. Start and End are absolute ticks.
type Note struct {
	Pitch         int
	Volume        float64
	ConstantBend  int
	PreBend       int
	PreBendLength int
	Start         float64
	End           float64
}

// bendRange is the pitch bend range in cents assumed for every channel
const bendRange = 200

// Velocity maps a [0, 1] volume to a MIDI velocity. Anything audible gets at
// least 1 since velocity 0 means note off.
func Velocity(volume float64) uint8 {
	v := int(math.Round(volume * 127))
	return uint8(util.Clamp(v, 1, 127))
}

// Bend maps a bend in cents to a 14-bit signed pitch bend value
func Bend(cents int) int16 {
	v := cents * 8192 / bendRange
	return int16(util.Clamp(v, -8192, 8191))
}

func channelFor(track int) uint8 {
	ch := track % 15
	// skip the GM percussion channel
	if ch >= 9 {
		ch++
	}
	return uint8(ch)
}
