package constants

import (
	"os"
	"path/filepath"
)

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetConfigPath() string {
	path := os.Getenv("MOTIF_CONFIG")
	if path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "motif.yaml"
	}
	return filepath.Join(home, ".config", "motif", "config.yaml")
}

func DebugEnabled() bool {
	return os.Getenv("MOTIF_DEBUG") == "1"
}

const DefaultTempo = 120

// 384 ticks per whole note, i.e. 96 per quarter
const DefaultTicksPerWholeNote = 384

// NOTE: BeginTrack/ProgramChange only addresses the General MIDI bank
const MaxInstruments = 128

const DefaultAddr = ":8080"
