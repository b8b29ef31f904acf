package sequencer

import (
	"fmt"

	"github.com/jsphweid/motif/debug"
	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/midi"
)

// PlayFile imports a Standard MIDI File and flattens its tracks through the
// renderer. The file's tempo, if it has one, is used for this render only.
// The sequencer's own tracks and tempo are left alone.
func (s *Sequencer) PlayFile(path string) (err error) {
	if err := file.CheckPlayable(path); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	imported, err := midi.ToTracks(parsed, s.PPQ())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, path, err)
	}

	if imported.Tempo > 0 && imported.Tempo != s.tempo {
		prev := s.tempo
		if err := s.SetTempo(imported.Tempo); err != nil {
			return err
		}
		defer func() {
			if restoreErr := s.SetTempo(prev); restoreErr != nil && err == nil {
				err = restoreErr
			}
		}()
	}
	debug.Log("sequencer", "playing %s tracks=%d tempo=%d", path, len(imported.Tracks), s.tempo)
	return s.renderTracks(imported.Tracks)
}
