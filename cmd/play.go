package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/render"
	"github.com/jsphweid/motif/sequencer"
	"github.com/jsphweid/motif/timing"
)

var (
	playPort string
	playMax  int
)

func init() {
	playCmd.Flags().StringVarP(&playPort, "port", "p", "", "MIDI output port, by name or number (default from config, else 0)")
	playCmd.Flags().IntVar(&playMax, "max", 0, "play at most this many files from a directory")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <file.mid|dir>",
	Short: "Plays MIDI files through a MIDI port",
	Long:  `Plays a MIDI file, or every MIDI file below a directory, through a MIDI output port.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := file.Resolve(args[0], playMax)
		if err != nil {
			return err
		}

		port := playPort
		if port == "" {
			port = cfg.Port
		}
		if port == "" {
			port = "0"
		}

		defer midi.CloseDriver()
		send, err := openPort(port)
		if err != nil {
			return err
		}
		seq, err := newSequencer(render.NewPort(send, timing.PPQ(cfg.TicksPerWholeNote)))
		if err != nil {
			return err
		}
		release := stopOnInterrupt(seq)
		defer release()

		return playFiles(cmd.OutOrStdout(), seq, paths)
	},
}

// playFiles plays paths in order. A stop ends the whole run, not just the
// current file.
func playFiles(w io.Writer, seq *sequencer.Sequencer, paths []string) error {
	for _, path := range paths {
		fmt.Fprintf(w, "playing %s\n", path)
		err := seq.PlayFile(path)
		if errors.Is(err, render.ErrStopped) {
			fmt.Fprintln(w, "stopped")
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
