//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/motif/cmd"
	"github.com/jsphweid/motif/model"
	"github.com/stretchr/testify/assert"
)

func createRenderReqBody(tracks ...model.TrackRequest) io.Reader {
	rr := model.RenderRequest{Tempo: 120, Tracks: tracks}
	data, err := json.Marshal(rr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func doRender(t *testing.T, body io.Reader) model.RenderResponse {
	req := httptest.NewRequest(http.MethodPost, "/render", body)
	w := httptest.NewRecorder()
	cmd.HandleRender(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	var renderResponse model.RenderResponse
	err := json.Unmarshal(respBody, &renderResponse)
	if err != nil {
		panic(err.Error())
	}
	return renderResponse
}

func notes(res model.RenderResponse) []model.CallResult {
	var out []model.CallResult
	for _, c := range res.Calls {
		if c.Op == "emit_note" {
			out = append(out, c)
		}
	}
	return out
}

func TestBasicCChordE2E(t *testing.T) {
	res := doRender(t, createRenderReqBody(model.TrackRequest{
		Events: []model.EventRequest{
			{Kind: "chord", Pitches: model.Notes{60, 64, 67}, Length: 384, Volume: 1},
		},
	}))

	assert := assert.New(t)
	assert.Equal(2.0, res.Seconds)
	assert.Equal([]model.CallResult{
		{Op: "emit_note", Pitch: 60, Volume: 1, Start: 0, End: 384},
		{Op: "emit_note", Pitch: 64, Volume: 1, Start: 0, End: 384},
		{Op: "emit_note", Pitch: 67, Volume: 1, Start: 0, End: 384},
	}, notes(res))
}

func TestTwoTracksE2E(t *testing.T) {
	res := doRender(t, createRenderReqBody(
		model.TrackRequest{
			Instrument: 0,
			Events: []model.EventRequest{
				{Pitch: 72, Length: 96, Volume: 1},
				{Pitch: 74, Start: 96, Length: 96, Volume: 1},
			},
		},
		model.TrackRequest{
			Instrument: 32,
			Events: []model.EventRequest{
				{Kind: "chord", Symbol: "F", Start: 48, Length: 96, Volume: 0.5},
			},
		},
	))

	ops := make([]string, 0, len(res.Calls))
	for _, c := range res.Calls {
		ops = append(ops, c.Op)
	}

	assert := assert.New(t)
	assert.Equal([]string{
		"begin_composition",
		"begin_track", "emit_note", "emit_note",
		"begin_track", "emit_note", "emit_note", "emit_note",
		"render_all",
	}, ops)
	assert.Equal(32, res.Calls[4].Instrument)
	assert.Equal([]model.CallResult{
		{Op: "emit_note", Pitch: 72, Volume: 1, Start: 0, End: 96},
		{Op: "emit_note", Pitch: 74, Volume: 1, Start: 96, End: 192},
		{Op: "emit_note", Pitch: 65, Volume: 0.5, Start: 48, End: 144},
		{Op: "emit_note", Pitch: 69, Volume: 0.5, Start: 48, End: 144},
		{Op: "emit_note", Pitch: 72, Volume: 0.5, Start: 48, End: 144},
	}, notes(res))
}
