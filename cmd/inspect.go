package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/render"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Imports a MIDI file and prints the renderer calls it flattens to.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := render.NewRecorder()
		seq, err := newSequencer(rec)
		if err != nil {
			return err
		}
		if err := seq.PlayFile(args[0]); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		printCalls(w, rec.Calls)
		fmt.Fprintf(w, "tempo: %v\n", rec.Calls[len(rec.Calls)-1].Tempo)
		fmt.Fprintf(w, "notes: %v\n", len(rec.Notes()))
		return nil
	},
}
