package render

import "fmt"

type Op string

const (
	OpBeginComposition  Op = "begin_composition"
	OpBeginTrack        Op = "begin_track"
	OpEmitNote          Op = "emit_note"
	OpEmitChordEnvelope Op = "emit_chord_envelope"
	OpRenderAll         Op = "render_all"
	OpStop              Op = "stop"
)

// Call is one recorded renderer invocation. Only the fields relevant to Op
// are set.
type Call struct {
	Op         Op
	Instrument int
	Note       Note
	Length     int
	Volume     float64
	Seconds    float64
	// tempo in effect when RenderAll was called
	Tempo int
}

func (c Call) String() string {
	switch c.Op {
	case OpBeginTrack:
		return fmt.Sprintf("%s instrument=%d", c.Op, c.Instrument)
	case OpEmitNote:
		return fmt.Sprintf("%s pitch=%d [%g, %g) volume=%g", c.Op, c.Note.Pitch, c.Note.Start, c.Note.End, c.Note.Volume)
	case OpEmitChordEnvelope:
		return fmt.Sprintf("%s length=%d volume=%g seconds=%g", c.Op, c.Length, c.Volume, c.Seconds)
	case OpRenderAll:
		return fmt.Sprintf("%s tempo=%d", c.Op, c.Tempo)
	default:
		return string(c.Op)
	}
}

// Recorder keeps every call in order instead of producing sound.
// Names defaults to the General MIDI table.
type Recorder struct {
	Calls []Call
	Names func(index int) string

	tempo int
}

func NewRecorder() *Recorder {
	return &Recorder{tempo: 120}
}

func (r *Recorder) BeginComposition() error {
	r.Calls = append(r.Calls, Call{Op: OpBeginComposition})
	return nil
}

func (r *Recorder) BeginTrack(instrument int) error {
	r.Calls = append(r.Calls, Call{Op: OpBeginTrack, Instrument: instrument})
	return nil
}

func (r *Recorder) EmitNote(n Note) error {
	r.Calls = append(r.Calls, Call{Op: OpEmitNote, Note: n})
	return nil
}

func (r *Recorder) EmitChordEnvelope(length int, volume, seconds float64) error {
	r.Calls = append(r.Calls, Call{Op: OpEmitChordEnvelope, Length: length, Volume: volume, Seconds: seconds})
	return nil
}

func (r *Recorder) RenderAll() error {
	r.Calls = append(r.Calls, Call{Op: OpRenderAll, Tempo: r.tempo})
	return nil
}

func (r *Recorder) Stop() error {
	r.Calls = append(r.Calls, Call{Op: OpStop})
	return nil
}

func (r *Recorder) Tempo() int {
	return r.tempo
}

func (r *Recorder) SetTempo(bpm int) error {
	if bpm <= 0 {
		return fmt.Errorf("invalid tempo %d", bpm)
	}
	r.tempo = bpm
	return nil
}

func (r *Recorder) InstrumentName(index int) string {
	if r.Names != nil {
		return r.Names(index)
	}
	return InstrumentName(index)
}

// Notes returns only the EmitNote calls
func (r *Recorder) Notes() []Note {
	var res []Note
	for _, c := range r.Calls {
		if c.Op == OpEmitNote {
			res = append(res, c.Note)
		}
	}
	return res
}

// Ops returns the operation of every call, in order
func (r *Recorder) Ops() []Op {
	res := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		res[i] = c.Op
	}
	return res
}

func (r *Recorder) Reset() {
	r.Calls = nil
}
