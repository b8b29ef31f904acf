package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/motif/debug"
)

var ErrNoTrack = errors.New("note emitted before any track was begun")

// message ordering within a single tick
const (
	prioProgram = iota
	prioNoteOff
	prioBend
	prioNoteOn
)

type timedMessage struct {
	tick  uint32
	prio  int
	order int
	msg   []byte
}

type smfTrack struct {
	instrument int
	channel    uint8
	messages   []timedMessage
}

func (t *smfTrack) add(tick uint32, prio int, msg []byte) {
	t.messages = append(t.messages, timedMessage{tick: tick, prio: prio, order: len(t.messages), msg: msg})
}

// SMF renders a composition into a Standard MIDI File (format 1). The file is
// built on RenderAll and written to the configured writer, if any.
type SMF struct {
	out    io.Writer
	ppq    int
	tempo  int
	tracks []*smfTrack
	last   *smf.SMF
}

// NewSMF creates a writer with the given ticks per quarter note. out may be
// nil, in which case the rendered file is only available through Last.
func NewSMF(out io.Writer, ppq int) *SMF {
	return &SMF{out: out, ppq: ppq, tempo: 120}
}

func (s *SMF) BeginComposition() error {
	s.tracks = nil
	s.last = nil
	return nil
}

func (s *SMF) BeginTrack(instrument int) error {
	t := &smfTrack{
		instrument: instrument,
		channel:    channelFor(len(s.tracks)),
	}
	program := uint8(instrument & 0x7f)
	t.add(0, prioProgram, midi.ProgramChange(t.channel, program))
	s.tracks = append(s.tracks, t)
	return nil
}

func toTick(f float64) uint32 {
	if f <= 0 {
		return 0
	}
	return uint32(math.Round(f))
}

// scheduleNote queues the bend, note on and note off messages for n. Every
// note carries its bend; sortMessages drops the ones that change nothing.
func scheduleNote(add func(tick uint32, prio int, msg []byte), channel uint8, n Note) {
	start, end := toTick(n.Start), toTick(n.End)
	key := uint8(n.Pitch & 0x7f)

	constant := Bend(n.ConstantBend)
	if n.PreBendLength > 0 && n.PreBend != n.ConstantBend {
		add(start, prioBend, midi.Pitchbend(channel, Bend(n.PreBend)))
		relax := start + uint32(n.PreBendLength)
		if relax > end {
			relax = end
		}
		add(relax, prioBend, midi.Pitchbend(channel, constant))
	} else {
		add(start, prioBend, midi.Pitchbend(channel, constant))
	}

	add(start, prioNoteOn, midi.NoteOn(channel, key, Velocity(n.Volume)))
	add(end, prioNoteOff, midi.NoteOff(channel, key))
}

// sortMessages returns the messages in playing order with every pitch bend
// that does not change its channel's current bend removed. Channels start
// unbent.
func sortMessages(messages []timedMessage) []timedMessage {
	sorted := append([]timedMessage(nil), messages...)
	sort.SliceStable(sorted, func(a, b int) bool {
		ma, mb := sorted[a], sorted[b]
		if ma.tick != mb.tick {
			return ma.tick < mb.tick
		}
		if ma.prio != mb.prio {
			return ma.prio < mb.prio
		}
		return ma.order < mb.order
	})

	bends := make(map[uint8]int16)
	res := sorted[:0]
	for _, m := range sorted {
		var ch uint8
		var rel int16
		var abs uint16
		if midi.Message(m.msg).GetPitchBend(&ch, &rel, &abs) {
			if bends[ch] == rel {
				continue
			}
			bends[ch] = rel
		}
		res = append(res, m)
	}
	return res
}

func (s *SMF) EmitNote(n Note) error {
	if len(s.tracks) == 0 {
		return ErrNoTrack
	}
	t := s.tracks[len(s.tracks)-1]
	scheduleNote(t.add, t.channel, n)
	return nil
}

// EmitChordEnvelope has no representation in a MIDI file
func (s *SMF) EmitChordEnvelope(length int, volume, seconds float64) error {
	return nil
}

func (s *SMF) RenderAll() error {
	file := smf.New()
	file.TimeFormat = smf.MetricTicks(s.ppq)

	var tempoTrack smf.Track
	tempoTrack.Add(0, smf.MetaTempo(float64(s.tempo)))
	tempoTrack.Close(0)
	if err := file.Add(tempoTrack); err != nil {
		return fmt.Errorf("error adding tempo track: %w", err)
	}

	for i, t := range s.tracks {
		messages := sortMessages(t.messages)

		var track smf.Track
		track.Add(0, smf.MetaInstrument(InstrumentName(t.instrument)))
		var prev uint32
		for _, m := range messages {
			track.Add(m.tick-prev, m.msg)
			prev = m.tick
		}
		track.Close(0)
		if err := file.Add(track); err != nil {
			return fmt.Errorf("error adding track %d: %w", i, err)
		}
		debug.Log("smf", "track=%d channel=%d messages=%d", i, t.channel, len(messages))
	}

	s.last = file
	if s.out == nil {
		return nil
	}
	if _, err := file.WriteTo(s.out); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}

func (s *SMF) Stop() error {
	return nil
}

func (s *SMF) Tempo() int {
	return s.tempo
}

func (s *SMF) SetTempo(bpm int) error {
	if bpm <= 0 {
		return fmt.Errorf("invalid tempo %d", bpm)
	}
	s.tempo = bpm
	return nil
}

func (s *SMF) InstrumentName(index int) string {
	return InstrumentName(index)
}

// Last returns the file built by the most recent RenderAll
func (s *SMF) Last() *smf.SMF {
	return s.last
}
