// Package sequencer flattens a multi-track composition of relative-time
// events into an ordered stream of absolute-time renderer calls.
//
// A Sequencer is not safe for concurrent use. Only Stop may be called while
// another goroutine is blocked in a render, and only if the renderer allows it.
package sequencer

import (
	"errors"
	"fmt"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/debug"
	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/render"
	"github.com/jsphweid/motif/timing"
	"github.com/jsphweid/motif/util"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidTempo      = errors.New("tempo must be positive")
	ErrUnknownInstrument = errors.New("unknown instrument")
)

// Renderer receives the flattened composition. Calls arrive in this order:
// BeginComposition, then per track BeginTrack followed by its notes, then
// RenderAll.
type Renderer interface {
	BeginComposition() error
	BeginTrack(instrument int) error
	EmitNote(n render.Note) error
	EmitChordEnvelope(length int, volume, seconds float64) error
	RenderAll() error
	Stop() error
	Tempo() int
	SetTempo(bpm int) error
	// InstrumentName returns "" past the last instrument
	InstrumentName(index int) string
}

type Options struct {
	Tempo             int
	TicksPerWholeNote int
	Instrument        int
}

func DefaultOptions() Options {
	return Options{
		Tempo:             constants.DefaultTempo,
		TicksPerWholeNote: constants.DefaultTicksPerWholeNote,
	}
}

type Sequencer struct {
	renderer          Renderer
	instruments       *model.Registry
	tracks            []*model.Track
	tempo             int
	ticksPerWholeNote int
	instrument        int
}

// New builds a sequencer around r. The instrument table is read from r once.
func New(r Renderer, opts Options) (*Sequencer, error) {
	if opts.TicksPerWholeNote <= 0 || opts.TicksPerWholeNote%4 != 0 {
		return nil, fmt.Errorf("%w: ticks per whole note %d is not a positive multiple of 4",
			ErrInvalidArgument, opts.TicksPerWholeNote)
	}
	if opts.Tempo <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTempo, opts.Tempo)
	}

	s := &Sequencer{
		renderer:          r,
		instruments:       model.NewRegistry(r.InstrumentName, constants.MaxInstruments),
		ticksPerWholeNote: opts.TicksPerWholeNote,
	}
	if err := s.SetInstrument(opts.Instrument); err != nil {
		return nil, err
	}
	if err := s.SetTempo(opts.Tempo); err != nil {
		return nil, err
	}
	debug.Log("sequencer", "created tempo=%d ppq=%d instruments=%d", s.tempo, s.PPQ(), s.instruments.Len())
	return s, nil
}

// AddTrack appends an empty track using the current default instrument
func (s *Sequencer) AddTrack() *model.Track {
	t := model.NewTrack(s.instrument)
	s.tracks = append(s.tracks, t)
	return t
}

func (s *Sequencer) Tracks() []*model.Track {
	return append([]*model.Track(nil), s.tracks...)
}

func (s *Sequencer) Instruments() *model.Registry {
	return s.instruments
}

func (s *Sequencer) Instrument() int {
	return s.instrument
}

// SetInstrument changes the default instrument. It does not touch existing
// tracks.
func (s *Sequencer) SetInstrument(index int) error {
	if _, ok := s.instruments.Get(index); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownInstrument, index)
	}
	s.instrument = index
	return nil
}

func (s *Sequencer) Tempo() int {
	return s.tempo
}

func (s *Sequencer) SetTempo(bpm int) error {
	if bpm <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTempo, bpm)
	}
	if err := s.renderer.SetTempo(bpm); err != nil {
		return fmt.Errorf("setting renderer tempo: %w", err)
	}
	s.tempo = bpm
	return nil
}

func (s *Sequencer) TicksPerWholeNote() int {
	return s.ticksPerWholeNote
}

func (s *Sequencer) PPQ() int {
	return timing.PPQ(s.ticksPerWholeNote)
}

// Seconds converts ticks to seconds at the current tempo
func (s *Sequencer) Seconds(ticks int) float64 {
	return timing.SecondsForTicks(ticks, s.tempo, s.PPQ())
}

// Duration is the absolute tick at which the longest track ends
func (s *Sequencer) Duration() int {
	var end int
	for _, t := range s.tracks {
		end = util.Max(end, t.End())
	}
	return end
}

// RenderComposition sends every track to the renderer. A sequencer without
// tracks still produces BeginComposition and RenderAll.
func (s *Sequencer) RenderComposition() error {
	return s.renderTracks(s.tracks)
}

func (s *Sequencer) renderTracks(tracks []*model.Track) error {
	if err := s.renderer.BeginComposition(); err != nil {
		return fmt.Errorf("beginning composition: %w", err)
	}

	for i, t := range tracks {
		if err := s.renderer.BeginTrack(t.Instrument()); err != nil {
			return fmt.Errorf("beginning track %d: %w", i, err)
		}

		var cursor, emitted int
		for e := range t.Events() {
			if !e.Playable() {
				debug.Log("sequencer", "track=%d skipping %s event", i, e.Kind)
				continue
			}
			cursor += e.Start
			n, err := s.emit(e, cursor)
			if err != nil {
				return fmt.Errorf("track %d: %w", i, err)
			}
			emitted += n
		}
		debug.Log("sequencer", "track=%d instrument=%d events=%d notes=%d", i, t.Instrument(), t.Len(), emitted)
	}

	if err := s.renderer.RenderAll(); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// emit sends one EmitNote per pitch of e, all sharing [at, at+Length)
func (s *Sequencer) emit(e model.Event, at int) (int, error) {
	var count int
	for pitch := range e.Pitches() {
		n := render.Note{
			Pitch:         pitch,
			Volume:        e.Volume,
			ConstantBend:  e.ConstantBend,
			PreBend:       e.PreBend,
			PreBendLength: e.PreBendLength,
			Start:         float64(at),
			End:           float64(at + e.Length),
		}
		if err := s.renderer.EmitNote(n); err != nil {
			return count, fmt.Errorf("emitting pitch %d at %d: %w", pitch, at, err)
		}
		count++
	}
	return count, nil
}

// Stop asks the renderer to cut any ongoing playback short
func (s *Sequencer) Stop() error {
	return s.renderer.Stop()
}
