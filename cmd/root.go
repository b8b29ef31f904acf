package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/config"
	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/debug"
	"github.com/jsphweid/motif/sequencer"
)

var (
	cfgPath   string
	debugFlag bool
	cfg       = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "motif",
	Short: "Composition sequencer",
	Long: `motif flattens multi-track compositions of notes and chords into
absolute-time note streams and renders them to MIDI files or MIDI ports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugFlag || constants.DebugEnabled() {
			debug.Enable(cmd.ErrOrStderr())
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		debug.Log("config", "loaded %s tempo=%d ticksPerWholeNote=%d", cfgPath, cfg.Tempo, cfg.TicksPerWholeNote)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", constants.GetConfigPath(), "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug logs to stderr")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newSequencer(r sequencer.Renderer) (*sequencer.Sequencer, error) {
	return sequencer.New(r, sequencer.Options{
		Tempo:             cfg.Tempo,
		TicksPerWholeNote: cfg.TicksPerWholeNote,
		Instrument:        cfg.Instrument,
	})
}
