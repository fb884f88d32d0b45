package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panomaster/pkg/input"
	"panomaster/pkg/session"
	"panomaster/pkg/stats"
	"panomaster/pkg/streetview"
)

func TestStatsHandler(t *testing.T) {
	tr := stats.New()
	master := session.NewMaster(nopBroadcaster{}, tr, input.DefaultSettings())
	handler := NewStatsHandler(tr, master, nil)

	// One applied pano update, one dropped button (inactive session).
	require.NoError(t, master.Handle(session.PanoUpdate{Pano: streetview.Pano{ID: "abc"}}))
	require.NoError(t, master.Handle(session.Button{Code: 1, Value: 1}))

	req := httptest.NewRequest("GET", "/api/stats", http.NoBody)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp StatsResponse
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&resp))

	assert.False(t, resp.Active)
	assert.Equal(t, 0, resp.Viewers)

	byKind := make(map[string]EventStatsDTO)
	for _, e := range resp.Events {
		byKind[e.Kind] = e
	}

	require.Contains(t, byKind, "pano")
	assert.Equal(t, int64(1), byKind["pano"].Received)
	assert.Equal(t, int64(1), byKind["pano"].Applied)

	require.Contains(t, byKind, "button")
	assert.Equal(t, int64(1), byKind["button"].Received)
	assert.Equal(t, int64(1), byKind["button"].Dropped)
	assert.Equal(t, int64(0), byKind["button"].Applied)
}
