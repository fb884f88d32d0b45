package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"panomaster/pkg/session"
)

// StateHandler serves the session snapshot and the activation gate.
type StateHandler struct {
	master *session.Master
}

func NewStateHandler(m *session.Master) *StateHandler {
	return &StateHandler{master: m}
}

// HandleState returns the current navigation state.
func (h *StateHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.master.Snapshot()); err != nil {
		slog.Error("Failed to encode state response", "error", err)
	}
}

// ActiveRequest toggles input event handling.
type ActiveRequest struct {
	Active bool `json:"active"`
}

// HandleActive activates or deactivates button and axis handling.
func (h *StateHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	var req ActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Active {
		h.master.Activate()
	} else {
		h.master.Deactivate()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"active": h.master.Active()}); err != nil {
		slog.Error("Failed to encode active response", "error", err)
	}
}
