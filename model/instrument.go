package model

// Instrument is a handle into the renderer's instrument table
type Instrument struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Registry is the instrument table, built once when a sequencer is created
type Registry struct {
	instruments []Instrument
}

// NewRegistry reads names from lookup, starting at index 0, until lookup
// returns an empty name or max entries have been read.
func NewRegistry(lookup func(index int) string, max int) *Registry {
	r := &Registry{}
	for i := 0; i < max; i++ {
		name := lookup(i)
		if name == "" {
			break
		}
		r.instruments = append(r.instruments, Instrument{Index: i, Name: name})
	}
	return r
}

func (r *Registry) Len() int {
	return len(r.instruments)
}

// Get returns the instrument at index, and false if there is none
func (r *Registry) Get(index int) (Instrument, bool) {
	if index < 0 || index >= len(r.instruments) {
		return Instrument{}, false
	}
	return r.instruments[index], true
}

// All returns a copy of the table in index order
func (r *Registry) All() []Instrument {
	return append([]Instrument(nil), r.instruments...)
}
