package sample

import (
	"github.com/jsphweid/motif/chord"
	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/sequencer"
)

// General MIDI programs used by the demo
const (
	piano    = 0
	bass     = 33
	ensemble = 48
)

const (
	octaveBass = 2
	octavePad  = 4
)

var progression = []string{"C", "Am", "F", "G7"}

var melody = []int{64, 67, 72, 71, 69, 72, 76, 74, 72, 69, 65, 69, 71, 74, 67, 65}

// Create adds a four bar demo to seq: a melody in quarters, a bass line and a
// sustained chord per bar. Lengths follow the sequencer's resolution.
func Create(seq *sequencer.Sequencer) error {
	quarter := seq.PPQ()
	half := 2 * quarter
	whole := 4 * quarter

	lead := seq.AddTrack()
	lead.SetInstrument(piano)
	for i, pitch := range melody {
		start := quarter
		if i == 0 {
			start = 0
		}
		lead.Add(model.NewNote(pitch, start, quarter, 0.8))
	}

	low := seq.AddTrack()
	low.SetInstrument(bass)
	pad := seq.AddTrack()
	pad.SetInstrument(ensemble)

	for bar, symbol := range progression {
		start := whole
		if bar == 0 {
			start = 0
		}

		notes, err := chord.FromSymbol(symbol, octaveBass)
		if err != nil {
			return err
		}
		// the bass moves every half bar
		rootStart := half
		if bar == 0 {
			rootStart = 0
		}
		low.Add(model.NewNote(notes[0], rootStart, half, 0.9))
		fifth := model.NewNote(notes[2], half, half, 0.7)
		fifth.SetBend(0, -50, quarter/4)
		low.Add(fifth)

		notes, err = chord.FromSymbol(symbol, octavePad)
		if err != nil {
			return err
		}
		pad.Add(model.NewChord(start, whole, 0.5, notes...))
	}
	return nil
}
