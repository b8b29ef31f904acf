package model

import "iter"

// Kind tags the payload carried by an Event
type Kind uint8

const (
	KindNote Kind = iota + 1
	KindChord
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindChord:
		return "chord"
	default:
		return "unknown"
	}
}

// Envelope is the timing, volume and bend shared by every playable event.
// Start is in ticks relative to the start of the previous event in the same
// track. Volume is expected in [0, 1]; values outside are passed through.
type Envelope struct {
	Start         int
	Length        int
	Volume        float64
	ConstantBend  int
	PreBend       int
	PreBendLength int
}

// Event is a note or a chord. Use NewNote or NewChord to build one.
type Event struct {
	Kind Kind
	Envelope

	pitch   int
	pitches Notes
}

func NewNote(pitch, start, length int, volume float64) Event {
	return Event{
		Kind:     KindNote,
		Envelope: newEnvelope(start, length, volume),
		pitch:    pitch,
	}
}

func newEnvelope(start, length int, volume float64) Envelope {
	if length < 0 {
		length = 0
	}
	return Envelope{Start: start, Length: length, Volume: volume}
}

// Playable reports whether the sequencer knows how to emit this event
func (e Event) Playable() bool {
	return e.Kind == KindNote || e.Kind == KindChord
}

// Pitch is the note's pitch; for a chord it is the first pitch, or -1 if empty
func (e Event) Pitch() int {
	if e.Kind == KindChord {
		if len(e.pitches) == 0 {
			return -1
		}
		return e.pitches[0]
	}
	return e.pitch
}

// SetPitch changes a note's pitch. It has no effect on a chord; use AddPitch.
func (e *Event) SetPitch(pitch int) {
	if e.Kind != KindNote {
		return
	}
	e.pitch = pitch
}

func (e *Event) SetLength(length int) {
	if length < 0 {
		length = 0
	}
	e.Length = length
}

func (e *Event) SetBend(constant, pre, preLength int) {
	e.ConstantBend = constant
	e.PreBend = pre
	e.PreBendLength = preLength
}

// Pitches yields every pitch in insertion order: one for a note, zero or
// more for a chord. The sequence can be ranged over any number of times.
func (e Event) Pitches() iter.Seq[int] {
	return func(yield func(int) bool) {
		switch e.Kind {
		case KindNote:
			yield(e.pitch)
		case KindChord:
			for _, p := range e.pitches {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// clone returns a copy that shares no memory with e
func (e Event) clone() Event {
	if e.pitches != nil {
		p := append(Notes(nil), e.pitches...)
		e.pitches = p[:len(p):len(p)]
	}
	return e
}
