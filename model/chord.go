package model

type Notes = []int

// NewChord builds a chord; pitches keep their order and duplicates are kept
func NewChord(start, length int, volume float64, pitches ...int) Event {
	return Event{
		Kind:     KindChord,
		Envelope: newEnvelope(start, length, volume),
		pitches:  append(Notes{}, pitches...),
	}
}

// AddPitch appends a pitch to a chord. It has no effect on a note.
func (e *Event) AddPitch(pitch int) {
	if e.Kind != KindChord {
		return
	}
	e.pitches = append(e.pitches, pitch)
}

// PitchCount is the number of renderer notes the event expands to
func (e Event) PitchCount() int {
	switch e.Kind {
	case KindNote:
		return 1
	case KindChord:
		return len(e.pitches)
	default:
		return 0
	}
}

// Notes returns a copy of the chord's pitches
func (e Event) Notes() Notes {
	var res Notes
	for p := range e.Pitches() {
		res = append(res, p)
	}
	return res
}
