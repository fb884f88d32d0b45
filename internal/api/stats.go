package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"panomaster/pkg/session"
	"panomaster/pkg/stats"
)

// StatsHandler reports per-kind event counters and connection counts.
type StatsHandler struct {
	tracker *stats.Tracker
	master  *session.Master
	hub     *Hub
}

func NewStatsHandler(t *stats.Tracker, m *session.Master, hub *Hub) *StatsHandler {
	return &StatsHandler{tracker: t, master: m, hub: hub}
}

// EventStatsDTO mirrors one event kind's counters.
type EventStatsDTO struct {
	Kind       string `json:"kind"`
	Received   int64  `json:"received"`
	Applied    int64  `json:"applied"`
	Suppressed int64  `json:"suppressed"`
	Dropped    int64  `json:"dropped"`
}

type StatsResponse struct {
	Active  bool            `json:"active"`
	Viewers int             `json:"viewers"`
	Events  []EventStatsDTO `json:"events"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tracker.Snapshot()

	resp := StatsResponse{
		Active: h.master.Active(),
		Events: make([]EventStatsDTO, 0, len(snapshot)),
	}
	if h.hub != nil {
		resp.Viewers = h.hub.ClientCount()
	}

	for kind, s := range snapshot {
		resp.Events = append(resp.Events, EventStatsDTO{
			Kind:       kind,
			Received:   s.Received,
			Applied:    s.Applied,
			Suppressed: s.Suppressed,
			Dropped:    s.Dropped,
		})
	}
	// deterministic output
	sort.Slice(resp.Events, func(i, j int) bool { return resp.Events[i].Kind < resp.Events[j].Kind })

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
