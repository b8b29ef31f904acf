package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/render"
)

func init() {
	rootCmd.AddCommand(instrumentsCmd)
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "Lists instruments",
	Long:  `Lists the instrument table every renderer shares (General MIDI programs).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := newSequencer(render.NewRecorder())
		if err != nil {
			return err
		}
		printInstruments(cmd.OutOrStdout(), seq.Instruments().All())
		return nil
	},
}
