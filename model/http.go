package model

// EventRequest describes one event in a render request. Chords may list
// their pitches directly, as a chord key such as "60-64-67", or as a symbol
// such as "Am7" spelled from middle C's octave.
type EventRequest struct {
	Kind          string  `json:"kind"`
	Start         int     `json:"start"`
	Length        int     `json:"length"`
	Volume        float64 `json:"volume"`
	Pitch         int     `json:"pitch,omitempty"`
	Pitches       Notes   `json:"pitches,omitempty"`
	Chord         string  `json:"chord,omitempty"`
	Symbol        string  `json:"symbol,omitempty"`
	ConstantBend  int     `json:"constant_bend,omitempty"`
	PreBend       int     `json:"pre_bend,omitempty"`
	PreBendLength int     `json:"pre_bend_length,omitempty"`
}

type TrackRequest struct {
	Instrument int            `json:"instrument"`
	Events     []EventRequest `json:"events"`
}

type RenderRequest struct {
	Tempo  int            `json:"tempo,omitempty"`
	Tracks []TrackRequest `json:"tracks"`
}

// CallResult is one flattened renderer call
type CallResult struct {
	Op         string  `json:"op"`
	Instrument int     `json:"instrument,omitempty"`
	Pitch      int     `json:"pitch,omitempty"`
	Volume     float64 `json:"volume,omitempty"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

type RenderResponse struct {
	ID      string       `json:"id"`
	Tempo   int          `json:"tempo"`
	Seconds float64      `json:"seconds"`
	Calls   []CallResult `json:"calls"`
}

type SecondsResponse struct {
	Ticks   int     `json:"ticks"`
	Tempo   int     `json:"tempo"`
	PPQ     int     `json:"ppq"`
	Seconds float64 `json:"seconds"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
