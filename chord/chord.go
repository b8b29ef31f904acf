package chord

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/motif/model"
)

var ErrBadChord = errors.New("bad chord")

// CreateChordKey joins the pitches, lowest first, with dashes: "60-64-67".
// notes is not modified.
func CreateChordKey(notes model.Notes) string {
	sorted := append(model.Notes(nil), notes...)
	sort.Ints(sorted)
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// ParseChordKey reads a dash separated pitch list. Order and duplicates are
// kept, so "64-60" stays [64 60].
func ParseChordKey(key string) (model.Notes, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrBadChord)
	}
	var res model.Notes
	for _, part := range strings.Split(key, "-") {
		pitch, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a pitch", ErrBadChord, part)
		}
		if pitch < 0 || pitch > 127 {
			return nil, fmt.Errorf("%w: pitch %d out of range", ErrBadChord, pitch)
		}
		res = append(res, pitch)
	}
	return res, nil
}

var roots = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// semitones above the root, longest suffixes first so "maj7" wins over "m"
var qualities = []struct {
	suffix    string
	intervals []int
}{
	{"maj7", []int{0, 4, 7, 11}},
	{"min7", []int{0, 3, 7, 10}},
	{"sus2", []int{0, 2, 7}},
	{"sus4", []int{0, 5, 7}},
	{"dim7", []int{0, 3, 6, 9}},
	{"dim", []int{0, 3, 6}},
	{"aug", []int{0, 4, 8}},
	{"min", []int{0, 3, 7}},
	{"maj", []int{0, 4, 7}},
	{"m7", []int{0, 3, 7, 10}},
	{"7", []int{0, 4, 7, 10}},
	{"m", []int{0, 3, 7}},
	{"", []int{0, 4, 7}},
}

// FromSymbol spells a chord symbol such as "C", "F#m", "Bbmaj7" or "Gsus4"
// in root position. The root sits in octave, where octave 4 puts C at 60.
func FromSymbol(symbol string, octave int) (model.Notes, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrBadChord)
	}
	root, ok := roots[symbol[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown root in %q", ErrBadChord, symbol)
	}
	rest := symbol[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		root++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		root--
		rest = rest[1:]
	}

	base := (octave+1)*12 + root
	for _, q := range qualities {
		if rest != q.suffix {
			continue
		}
		res := make(model.Notes, 0, len(q.intervals))
		for _, interval := range q.intervals {
			pitch := base + interval
			if pitch < 0 || pitch > 127 {
				return nil, fmt.Errorf("%w: %q in octave %d is out of range", ErrBadChord, symbol, octave)
			}
			res = append(res, pitch)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown quality %q", ErrBadChord, rest)
}
