package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/motif/debug"
	"github.com/jsphweid/motif/render"
	"github.com/jsphweid/motif/sequencer"
)

// openPort finds an output port by number or by name
func openPort(name string) (render.Sender, error) {
	var (
		out drivers.Out
		err error
	)
	if n, convErr := strconv.Atoi(name); convErr == nil {
		out, err = midi.OutPort(n)
	} else {
		out, err = midi.FindOutPort(name)
	}
	if err != nil {
		return nil, fmt.Errorf("can't find MIDI output %q: %w", name, err)
	}

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("can't open MIDI output %q: %w", name, err)
	}
	debug.Log("port", "opened %s", out)
	return send, nil
}

// stopOnInterrupt stops seq on ctrl-c. Call the returned func once playback
// is over.
func stopOnInterrupt(seq *sequencer.Sequencer) func() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			if err := seq.Stop(); err != nil {
				debug.Log("port", "stop: %v", err)
			}
		case <-done:
		}
	}()
	return func() {
		close(done)
		cancel()
	}
}
