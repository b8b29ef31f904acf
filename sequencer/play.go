package sequencer

import (
	"fmt"

	"github.com/jsphweid/motif/model"
)

// Play sounds a single pitch with the default instrument, starting now
func (s *Sequencer) Play(pitch, length int, volume float64) error {
	return s.PlayNote(model.NewNote(pitch, 0, length, volume))
}

// PlayNote sounds one event over [0, Length) outside of any track. The
// event's Start is ignored.
func (s *Sequencer) PlayNote(e model.Event) error {
	if e.Kind != model.KindNote {
		return fmt.Errorf("%w: PlayNote needs a note, got %s", ErrInvalidArgument, e.Kind)
	}
	return s.oneOff(e)
}

// PlayChord sounds every pitch of the chord over [0, Length) and then passes
// the chord's envelope to the renderer.
func (s *Sequencer) PlayChord(e model.Event) error {
	if e.Kind != model.KindChord {
		return fmt.Errorf("%w: PlayChord needs a chord, got %s", ErrInvalidArgument, e.Kind)
	}
	return s.oneOff(e)
}

func (s *Sequencer) oneOff(e model.Event) error {
	if err := s.renderer.BeginComposition(); err != nil {
		return fmt.Errorf("beginning composition: %w", err)
	}
	if err := s.renderer.BeginTrack(s.instrument); err != nil {
		return fmt.Errorf("beginning track: %w", err)
	}
	if _, err := s.emit(e, 0); err != nil {
		return err
	}
	if e.Kind == model.KindChord {
		seconds := s.Seconds(e.Length)
		if err := s.renderer.EmitChordEnvelope(e.Length, e.Volume, seconds); err != nil {
			return fmt.Errorf("emitting chord envelope: %w", err)
		}
	}
	if err := s.renderer.RenderAll(); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}
