package midi

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/motif/debug"
	"github.com/jsphweid/motif/model"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		switch r := recover().(type) {
		case nil:
		case string:
			s, e = nil, errors.New(r)
		case error:
			s, e = nil, errors.Wrap(r, "parsing midi file")
		default:
			s, e = nil, errors.Errorf("parsing midi file: %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}

	return res, nil
}

// Imported is an SMF converted into sequencer tracks
type Imported struct {
	Tracks []*model.Track
	// first tempo found in the file, 0 if there is none
	Tempo int
}

type noteKey struct {
	channel uint8
	key     uint8
}

type pendingNote struct {
	start    int64
	velocity uint8
}

type absNote struct {
	pitch    uint8
	start    int64
	end      int64
	velocity uint8
}

// ToTracks converts every SMF track holding notes into a model.Track.
// Ticks are rescaled to ppq. Notes sharing start, end and velocity become
// one chord, and each event's start is made relative to the previous one.
func ToTracks(s *smf.SMF, ppq int) (*Imported, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v", s.TimeFormat)
	}
	resolution := int64(ticks.Resolution())
	if resolution == 0 {
		return nil, errors.New("midi file has zero resolution")
	}
	scale := func(t int64) int {
		return int(t * int64(ppq) / resolution)
	}

	res := &Imported{}
	for i, track := range s.Tracks {
		var absTicks int64
		var notes []absNote
		instrument := -1
		pending := make(map[noteKey][]pendingNote)

		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity, program uint8
			var bpm float64
			switch {
			case event.Message.GetMetaTempo(&bpm):
				if res.Tempo == 0 {
					res.Tempo = int(math.Round(bpm))
				}
			case event.Message.GetProgramChange(&channel, &program):
				if instrument < 0 {
					instrument = int(program)
				}
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				k := noteKey{channel, key}
				pending[k] = append(pending[k], pendingNote{start: absTicks, velocity: velocity})
			case event.Message.GetNoteEnd(&channel, &key):
				k := noteKey{channel, key}
				queue := pending[k]
				if len(queue) == 0 {
					continue
				}
				notes = append(notes, absNote{pitch: key, start: queue[0].start, end: absTicks, velocity: queue[0].velocity})
				pending[k] = queue[1:]
			}
		}

		if len(notes) == 0 {
			continue
		}
		if instrument < 0 {
			instrument = 0
		}
		res.Tracks = append(res.Tracks, buildTrack(notes, instrument, scale))
		debug.Log("import", "track=%d notes=%d instrument=%d", i, len(notes), instrument)
	}
	return res, nil
}

func buildTrack(notes []absNote, instrument int, scale func(int64) int) *model.Track {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].start < notes[j].start
	})

	t := model.NewTrack(instrument)
	var prev int
	for i := 0; i < len(notes); {
		j := i + 1
		for j < len(notes) && sameEnvelope(notes[i], notes[j]) {
			j++
		}

		start := scale(notes[i].start)
		length := scale(notes[i].end) - start
		volume := float64(notes[i].velocity) / 127
		if j-i == 1 {
			t.Add(model.NewNote(int(notes[i].pitch), start-prev, length, volume))
		} else {
			var pitches model.Notes
			for _, n := range notes[i:j] {
				pitches = append(pitches, int(n.pitch))
			}
			t.Add(model.NewChord(start-prev, length, volume, pitches...))
		}
		prev = start
		i = j
	}
	return t
}

func sameEnvelope(a, b absNote) bool {
	return a.start == b.start && a.end == b.end && a.velocity == b.velocity
}
