package model

import "iter"

// Track is an ordered list of events played by one instrument.
// A Track is not safe for concurrent use.
type Track struct {
	instrument int
	events     []Event
}

func NewTrack(instrument int) *Track {
	return &Track{instrument: instrument}
}

// Add appends a copy of e
func (t *Track) Add(e Event) {
	t.events = append(t.events, e.clone())
}

func (t *Track) Instrument() int {
	return t.instrument
}

func (t *Track) SetInstrument(instrument int) {
	t.instrument = instrument
}

func (t *Track) Len() int {
	return len(t.events)
}

// Events yields the track's events in insertion order
func (t *Track) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range t.events {
			if !yield(e) {
				return
			}
		}
	}
}

// End is the absolute tick at which the last sounding event ends
func (t *Track) End() int {
	var cursor, end int
	for _, e := range t.events {
		if !e.Playable() {
			continue
		}
		cursor += e.Start
		if cursor+e.Length > end {
			end = cursor + e.Length
		}
	}
	return end
}
