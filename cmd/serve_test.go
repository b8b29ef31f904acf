package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsphweid/motif/model"
)

func postRender(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewReader(data))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestHandleRender(t *testing.T) {
	w := postRender(t, model.RenderRequest{
		Tempo: 60,
		Tracks: []model.TrackRequest{{
			Instrument: 33,
			Events: []model.EventRequest{
				{Kind: "note", Pitch: 60, Length: 96, Volume: 1},
				{Kind: "chord", Chord: "60-64-67", Start: 96, Length: 96, Volume: 0.5},
			},
		}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert := assert.New(t)
	assert.NotEmpty(res.ID)
	assert.Equal(60, res.Tempo)
	assert.InDelta(2.0, res.Seconds, 1e-9)
	assert.Equal([]model.CallResult{
		{Op: "begin_composition"},
		{Op: "begin_track", Instrument: 33},
		{Op: "emit_note", Pitch: 60, Volume: 1, Start: 0, End: 96},
		{Op: "emit_note", Pitch: 60, Volume: 0.5, Start: 96, End: 192},
		{Op: "emit_note", Pitch: 64, Volume: 0.5, Start: 96, End: 192},
		{Op: "emit_note", Pitch: 67, Volume: 0.5, Start: 96, End: 192},
		{Op: "render_all"},
	}, res.Calls)
}

func TestHandleRenderEmpty(t *testing.T) {
	w := postRender(t, model.RenderRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []model.CallResult{{Op: "begin_composition"}, {Op: "render_all"}}, res.Calls)
	assert.Equal(t, 0.0, res.Seconds)
}

func TestHandleRenderSymbol(t *testing.T) {
	w := postRender(t, model.RenderRequest{
		Tracks: []model.TrackRequest{{
			Events: []model.EventRequest{{Kind: "chord", Symbol: "Am", Length: 10, Volume: 1}},
		}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var pitches []int
	for _, c := range res.Calls {
		if c.Op == "emit_note" {
			pitches = append(pitches, c.Pitch)
		}
	}
	assert.Equal(t, []int{69, 72, 76}, pitches)
}

func TestHandleRenderRejectsBadInput(t *testing.T) {
	cases := map[string]any{
		"tempo":      model.RenderRequest{Tempo: -1},
		"instrument": model.RenderRequest{Tracks: []model.TrackRequest{{Instrument: 200}}},
		"kind": model.RenderRequest{Tracks: []model.TrackRequest{{
			Events: []model.EventRequest{{Kind: "touch"}},
		}}},
		"chord key": model.RenderRequest{Tracks: []model.TrackRequest{{
			Events: []model.EventRequest{{Kind: "chord", Chord: "60-x"}},
		}}},
		"pitch": model.RenderRequest{Tracks: []model.TrackRequest{{
			Events: []model.EventRequest{{Kind: "note", Pitch: 300}},
		}}},
		"body": "not an object",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := postRender(t, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestHandleInstruments(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/instruments", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res []model.Instrument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 128)
	assert.Equal(t, model.Instrument{Index: 0, Name: "Acoustic Grand Piano"}, res[0])
}

func TestHandleSeconds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/seconds?ticks=96&bpm=60&ppq=96", nil)
	w := httptest.NewRecorder()
	HandleSeconds(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res model.SecondsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.SecondsResponse{Ticks: 96, Tempo: 60, PPQ: 96, Seconds: 1}, res)

	for _, q := range []string{"", "?ticks=x", "?ticks=96&bpm=0", "?ticks=96&ppq=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/seconds"+q, nil)
		w := httptest.NewRecorder()
		HandleSeconds(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/render", nil)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
