package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/timing"
)

var (
	secondsBPM int
	secondsPPQ int
)

func init() {
	secondsCmd.Flags().IntVar(&secondsBPM, "bpm", 0, "tempo (default from config)")
	secondsCmd.Flags().IntVar(&secondsPPQ, "ppq", 0, "ticks per quarter note (default from config)")
	rootCmd.AddCommand(secondsCmd)
}

var secondsCmd = &cobra.Command{
	Use:   "seconds <ticks>",
	Short: "Converts ticks to seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticks, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("ticks must be an integer: %w", err)
		}
		bpm, ppq := secondsBPM, secondsPPQ
		if bpm == 0 {
			bpm = cfg.Tempo
		}
		if ppq == 0 {
			ppq = timing.PPQ(cfg.TicksPerWholeNote)
		}
		if bpm < 0 || ppq < 0 {
			return fmt.Errorf("bpm and ppq must be positive")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", timing.SecondsForTicks(ticks, bpm, ppq))
		return nil
	},
}
