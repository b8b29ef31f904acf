package timing

import (
	"fmt"
	"time"
)

// PPQ returns ticks per quarter note for a ticks-per-whole-note resolution.
func PPQ(ticksPerWholeNote int) int {
	return ticksPerWholeNote / 4
}

// SecondsForTicks converts a length in ticks to seconds at the given tempo.
// beatsPerMinute and ticksPerQuarterNote must both be positive.
func SecondsForTicks(lengthInTicks, beatsPerMinute, ticksPerQuarterNote int) float64 {
	return float64(lengthInTicks) / ticksPerSecond(beatsPerMinute, ticksPerQuarterNote)
}

// Duration is SecondsForTicks as a time.Duration. Fractional ticks are
// accepted since renderers receive absolute times as float64.
func Duration(ticks float64, beatsPerMinute, ticksPerQuarterNote int) time.Duration {
	seconds := ticks / ticksPerSecond(beatsPerMinute, ticksPerQuarterNote)
	return time.Duration(seconds * float64(time.Second))
}

func ticksPerSecond(beatsPerMinute, ticksPerQuarterNote int) float64 {
	if beatsPerMinute <= 0 {
		panic(fmt.Sprintf("timing: beats per minute must be positive, got %d", beatsPerMinute))
	}
	if ticksPerQuarterNote <= 0 {
		panic(fmt.Sprintf("timing: ticks per quarter note must be positive, got %d", ticksPerQuarterNote))
	}
	beatsPerSecond := float64(beatsPerMinute) / 60
	return beatsPerSecond * float64(ticksPerQuarterNote)
}
