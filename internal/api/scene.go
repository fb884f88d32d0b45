package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"panomaster/pkg/scene"
	"panomaster/pkg/session"
	"panomaster/pkg/store"
)

// SceneHandler serves scene selection and the stored preset library.
type SceneHandler struct {
	master *session.Master
	store  store.SceneStore
}

func NewSceneHandler(m *session.Master, s store.SceneStore) *SceneHandler {
	return &SceneHandler{master: m, store: s}
}

// SelectRequest picks a scene either by raw field or by preset name.
// Field wins when both are present.
type SelectRequest struct {
	Field string `json:"field,omitempty"`
	Name  string `json:"name,omitempty"`
}

// HandleSelect jumps the session to the requested scene.
func (h *SceneHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	field := req.Field
	if field == "" && req.Name != "" {
		preset, err := h.store.GetScene(r.Context(), req.Name)
		if err != nil {
			slog.Error("Failed to load scene preset", "name", req.Name, "error", err)
			http.Error(w, "failed to load preset", http.StatusInternalServerError)
			return
		}
		if preset == nil {
			http.Error(w, "unknown preset", http.StatusNotFound)
			return
		}
		field = preset.Field()
	}

	if err := h.master.Handle(session.SceneSelect{Field: field}); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.master.Snapshot()); err != nil {
		slog.Error("Failed to encode scene response", "error", err)
	}
}

// HandleList returns all stored presets.
func (h *SceneHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	presets, err := h.store.ListScenes(r.Context())
	if err != nil {
		slog.Error("Failed to list scene presets", "error", err)
		http.Error(w, "failed to list presets", http.StatusInternalServerError)
		return
	}
	if presets == nil {
		presets = []*scene.Preset{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(presets); err != nil {
		slog.Error("Failed to encode preset list", "error", err)
	}
}

// HandleSave stores or replaces a named preset.
func (h *SceneHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var preset scene.Preset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.SaveScene(r.Context(), &preset); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("Scene preset saved", "name", preset.Name, "panoid", preset.PanoID)
	w.WriteHeader(http.StatusCreated)
}
