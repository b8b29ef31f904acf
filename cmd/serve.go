package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/motif/chord"
	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/render"
	"github.com/jsphweid/motif/timing"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long:  `Serves POST /render, GET /instruments and GET /seconds.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.Addr
		}
		log.Printf("listening on %s", addr)
		return http.ListenAndServe(addr, cors.Default().Handler(NewRouter()))
	},
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/instruments", HandleInstruments).Methods("GET")
	router.HandleFunc("/seconds", HandleSeconds).Methods("GET")
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func toEvent(er model.EventRequest) (model.Event, error) {
	var e model.Event
	switch er.Kind {
	case "", "note":
		if er.Pitch < 0 || er.Pitch > 127 {
			return e, fmt.Errorf("pitch out of range: %d", er.Pitch)
		}
		e = model.NewNote(er.Pitch, er.Start, er.Length, er.Volume)
	case "chord":
		pitches := er.Pitches
		var err error
		switch {
		case er.Chord != "":
			pitches, err = chord.ParseChordKey(er.Chord)
		case er.Symbol != "":
			pitches, err = chord.FromSymbol(er.Symbol, 4)
		}
		if err != nil {
			return e, err
		}
		for _, p := range pitches {
			if p < 0 || p > 127 {
				return e, fmt.Errorf("pitch out of range: %d", p)
			}
		}
		e = model.NewChord(er.Start, er.Length, er.Volume, pitches...)
	default:
		return e, fmt.Errorf("unknown event kind %q", er.Kind)
	}
	if er.Start < 0 || er.Length < 0 {
		return e, fmt.Errorf("start and length must not be negative")
	}
	e.SetBend(er.ConstantBend, er.PreBend, er.PreBendLength)
	return e, nil
}

func toCallResult(c render.Call) model.CallResult {
	res := model.CallResult{Op: string(c.Op)}
	switch c.Op {
	case render.OpBeginTrack:
		res.Instrument = c.Instrument
	case render.OpEmitNote:
		res.Pitch = c.Note.Pitch
		res.Volume = c.Note.Volume
		res.Start = c.Note.Start
		res.End = c.Note.End
	}
	return res
}

// HandleRender flattens the posted composition and returns the call stream
func HandleRender(w http.ResponseWriter, r *http.Request) {
	var input model.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	rec := render.NewRecorder()
	seq, err := newSequencer(rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if input.Tempo != 0 {
		if err := seq.SetTempo(input.Tempo); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	for i, tr := range input.Tracks {
		if _, ok := seq.Instruments().Get(tr.Instrument); !ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("track %d: unknown instrument %d", i, tr.Instrument))
			return
		}
		track := seq.AddTrack()
		track.SetInstrument(tr.Instrument)
		for j, er := range tr.Events {
			e, err := toEvent(er)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Errorf("track %d event %d: %w", i, j, err))
				return
			}
			track.Add(e)
		}
	}

	if err := seq.RenderComposition(); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	calls := make([]model.CallResult, 0, len(rec.Calls))
	for _, c := range rec.Calls {
		calls = append(calls, toCallResult(c))
	}
	writeJSON(w, http.StatusOK, model.RenderResponse{
		ID:      uuid.New().String(),
		Tempo:   seq.Tempo(),
		Seconds: seq.Seconds(seq.Duration()),
		Calls:   calls,
	})
}

func HandleInstruments(w http.ResponseWriter, r *http.Request) {
	seq, err := newSequencer(render.NewRecorder())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, seq.Instruments().All())
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

// HandleSeconds converts ?ticks= to seconds, with optional bpm and ppq
func HandleSeconds(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("ticks") == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("ticks is required"))
		return
	}
	ticks, err := queryInt(r, "ticks", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bpm, err := queryInt(r, "bpm", cfg.Tempo)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ppq, err := queryInt(r, "ppq", timing.PPQ(cfg.TicksPerWholeNote))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if bpm <= 0 || ppq <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bpm and ppq must be positive"))
		return
	}

	writeJSON(w, http.StatusOK, model.SecondsResponse{
		Ticks:   ticks,
		Tempo:   bpm,
		PPQ:     ppq,
		Seconds: timing.SecondsForTicks(ticks, bpm, ppq),
	})
}
