// Package api exposes the session over HTTP: a state/stats/scene REST surface
// for operator tooling and a websocket endpoint for viewers and input
// producers.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"panomaster/pkg/version"
)

// NewServer creates and configures the HTTP server.
// It accepts handlers for all API endpoints and a shutdownFunc for graceful shutdown.
func NewServer(addr string, state *StateHandler, sceneH *SceneHandler, statsH *StatsHandler, hub *Hub, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// 1. Health Endpoint
	mux.HandleFunc("GET /health", handleHealth)

	// 2. State Endpoints
	mux.HandleFunc("GET /api/state", state.HandleState)
	mux.HandleFunc("POST /api/active", state.HandleActive)

	// 2b. Version Endpoint
	mux.HandleFunc("GET /api/version", handleVersion)

	// 2c. Stats Endpoint
	mux.Handle("GET /api/stats", statsH)

	// 2d. Logs Endpoint
	mux.HandleFunc("GET /api/log/latest", handleLatestLog)

	// 2e. Scene Endpoints
	mux.HandleFunc("POST /api/scene", sceneH.HandleSelect)
	mux.HandleFunc("GET /api/scenes", sceneH.HandleList)
	mux.HandleFunc("POST /api/scenes", sceneH.HandleSave)

	// 2f. Websocket Attach
	mux.HandleFunc("GET /ws", hub.HandleWS)

	// 3. Shutdown Endpoint
	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
