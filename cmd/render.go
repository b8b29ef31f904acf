package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"github.com/jsphweid/motif/render"
	"github.com/jsphweid/motif/sample"
	"github.com/jsphweid/motif/timing"
)

var (
	renderOut    string
	renderPort   string
	renderDryRun bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output .mid file (default <output dir>/<uuid>.mid)")
	renderCmd.Flags().StringVarP(&renderPort, "port", "p", "", "play through a MIDI output port instead of writing a file")
	renderCmd.Flags().BoolVar(&renderDryRun, "dry-run", false, "print the renderer calls instead of producing sound")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders the demo composition",
	Long:  `Renders the demo composition to a Standard MIDI File, a MIDI port, or the terminal.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case renderDryRun:
			return renderDry(cmd.OutOrStdout())
		case renderPort != "":
			return renderToPort(renderPort)
		default:
			return renderToFile(cmd.OutOrStdout(), renderOut)
		}
	},
}

func renderDry(w io.Writer) error {
	rec := render.NewRecorder()
	seq, err := newSequencer(rec)
	if err != nil {
		return err
	}
	if err := sample.Create(seq); err != nil {
		return err
	}
	if err := seq.RenderComposition(); err != nil {
		return err
	}
	printCalls(w, rec.Calls)
	return nil
}

func renderToFile(w io.Writer, path string) error {
	if path == "" {
		path = filepath.Join(cfg.OutputDir, uuid.New().String()+".mid")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seq, err := newSequencer(render.NewSMF(f, timing.PPQ(cfg.TicksPerWholeNote)))
	if err != nil {
		return err
	}
	if err := sample.Create(seq); err != nil {
		return err
	}
	if err := seq.RenderComposition(); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s (%d tracks, %.2fs)\n", path, len(seq.Tracks()), seq.Seconds(seq.Duration()))
	return f.Close()
}

func renderToPort(name string) error {
	defer midi.CloseDriver()
	send, err := openPort(name)
	if err != nil {
		return err
	}

	seq, err := newSequencer(render.NewPort(send, timing.PPQ(cfg.TicksPerWholeNote)))
	if err != nil {
		return err
	}
	if err := sample.Create(seq); err != nil {
		return err
	}
	release := stopOnInterrupt(seq)
	defer release()
	if err := seq.RenderComposition(); err != nil && !errors.Is(err, render.ErrStopped) {
		return err
	}
	return nil
}
