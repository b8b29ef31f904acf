package render

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"

	"github.com/jsphweid/motif/debug"
	"github.com/jsphweid/motif/timing"
)

// Sender delivers one message to a MIDI output, e.g. the func returned by
// midi.SendTo.
type Sender func(msg midi.Message) error

// ErrStopped is returned by RenderAll when Stop cut playback short
var ErrStopped = errors.New("playback stopped")

// Port plays a composition in real time through a Sender. RenderAll blocks
// until the last note ends or Stop is called from another goroutine.
type Port struct {
	send  Sender
	ppq   int
	tempo int

	tracks   int
	channel  uint8
	messages []timedMessage

	mu       sync.Mutex
	stopChan chan struct{}
}

func NewPort(send Sender, ppq int) *Port {
	return &Port{send: send, ppq: ppq, tempo: 120}
}

func (p *Port) BeginComposition() error {
	p.tracks = 0
	p.messages = nil
	return nil
}

func (p *Port) BeginTrack(instrument int) error {
	p.channel = channelFor(p.tracks)
	p.tracks++
	p.add(0, prioProgram, midi.ProgramChange(p.channel, uint8(instrument&0x7f)))
	return nil
}

func (p *Port) add(tick uint32, prio int, msg []byte) {
	p.messages = append(p.messages, timedMessage{tick: tick, prio: prio, order: len(p.messages), msg: msg})
}

func (p *Port) EmitNote(n Note) error {
	if p.tracks == 0 {
		return ErrNoTrack
	}
	scheduleNote(p.add, p.channel, n)
	return nil
}

func (p *Port) EmitChordEnvelope(length int, volume, seconds float64) error {
	debug.Log("port", "chord envelope length=%d volume=%g seconds=%g", length, volume, seconds)
	return nil
}

// RenderAll plays every scheduled message at its wall-clock time
func (p *Port) RenderAll() error {
	stop := make(chan struct{})
	p.mu.Lock()
	p.stopChan = stop
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.stopChan = nil
		p.mu.Unlock()
	}()

	messages := sortMessages(p.messages)

	sounding := make(map[[2]uint8]int)
	t0 := time.Now()
	for _, m := range messages {
		wait := timing.Duration(float64(m.tick), p.tempo, p.ppq) - time.Since(t0)
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-stop:
				timer.Stop()
				return p.stopped(sounding)
			case <-timer.C:
			}
		} else {
			select {
			case <-stop:
				return p.stopped(sounding)
			default:
			}
		}

		msg := midi.Message(m.msg)
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			sounding[[2]uint8{ch, key}]++
		case msg.GetNoteEnd(&ch, &key):
			if sounding[[2]uint8{ch, key}] > 0 {
				sounding[[2]uint8{ch, key}]--
			}
		}
		if err := p.send(msg); err != nil {
			return fmt.Errorf("error sending %v: %w", msg, err)
		}
	}
	return nil
}

// stopped releases every held note and reports the interruption
func (p *Port) stopped(sounding map[[2]uint8]int) error {
	if err := p.silence(sounding); err != nil {
		return err
	}
	return ErrStopped
}

// silence sends a note off for every note still held
func (p *Port) silence(sounding map[[2]uint8]int) error {
	for k, n := range sounding {
		for ; n > 0; n-- {
			if err := p.send(midi.NoteOff(k[0], k[1])); err != nil {
				return err
			}
		}
	}
	debug.Log("port", "stopped, released %d keys", len(sounding))
	return nil
}

// Stop interrupts a RenderAll in progress. It is a no-op otherwise.
func (p *Port) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopChan != nil {
		close(p.stopChan)
		p.stopChan = nil
	}
	return nil
}

func (p *Port) Tempo() int {
	return p.tempo
}

func (p *Port) SetTempo(bpm int) error {
	if bpm <= 0 {
		return fmt.Errorf("invalid tempo %d", bpm)
	}
	p.tempo = bpm
	return nil
}

func (p *Port) InstrumentName(index int) string {
	return InstrumentName(index)
}
