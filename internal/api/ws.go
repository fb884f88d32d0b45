package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"panomaster/pkg/input"
	"panomaster/pkg/session"
	"panomaster/pkg/streetview"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Outbound buffer per client. Axis samples arrive fast; a slow viewer
	// gets frames dropped rather than stalling the session.
	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewers and input producers attach from local tooling.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Frame is the wire envelope in both directions.
type Frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// client is one attached websocket peer.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans session broadcasts out to every attached peer and feeds inbound
// frames into the master. It implements session.Broadcaster.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client

	// master is set after construction; the master itself needs the hub as
	// its broadcaster.
	master *session.Master
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

// SetMaster attaches the event sink. Must be called before HandleWS serves.
func (h *Hub) SetMaster(m *session.Master) {
	h.master = m
}

// ClientCount returns the number of attached peers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PanoChanged implements session.Broadcaster.
func (h *Hub) PanoChanged(p streetview.Pano) {
	h.broadcast("pano", p)
}

// PovChanged implements session.Broadcaster.
func (h *Hub) PovChanged(p streetview.Pov) {
	h.broadcast("pov", p)
}

func (h *Hub) broadcast(frameType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal broadcast payload", "type", frameType, "error", err)
		return
	}
	frame, err := json.Marshal(Frame{Type: frameType, Data: data})
	if err != nil {
		slog.Error("Failed to marshal broadcast frame", "type", frameType, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- frame:
		default:
			// Slow consumer; dropping a frame is safe because every state
			// broadcast is absolute, not a delta.
			slog.Warn("Dropping frame for slow client", "client", c.id, "type", frameType)
		}
	}
}

// HandleWS upgrades the connection and attaches the peer to the hub.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	slog.Info("Viewer attached", "client", c.id, "remote", r.RemoteAddr)

	go c.writePump()
	h.readPump(c)
}

func (h *Hub) detach(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
	h.mu.Unlock()
	c.conn.Close()
	slog.Info("Viewer detached", "client", c.id)
}

// readPump decodes inbound frames into session events until the peer goes
// away. A malformed frame is answered with an error frame and the connection
// stays up.
func (h *Hub) readPump(c *client) {
	defer h.detach(c)

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("Websocket read failed", "client", c.id, "error", err)
			}
			return
		}

		ev, err := decodeFrame(raw)
		if err != nil {
			h.sendError(c, err)
			continue
		}
		if err := h.master.Handle(ev); err != nil {
			h.sendError(c, err)
		}
	}
}

func (h *Hub) sendError(c *client, err error) {
	data, _ := json.Marshal(map[string]string{"error": err.Error()})
	frame, _ := json.Marshal(Frame{Type: "error", Data: data})
	select {
	case c.send <- frame:
	default:
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// decodeFrame maps one wire frame to its session event.
func decodeFrame(raw []byte) (session.Event, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	switch frame.Type {
	case "links":
		var payload struct {
			Links streetview.Links `json:"links"`
		}
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return nil, fmt.Errorf("malformed links frame: %w", err)
		}
		return session.LinksUpdate{Links: payload.Links}, nil

	case "pov":
		var pov streetview.Pov
		if err := json.Unmarshal(frame.Data, &pov); err != nil {
			return nil, fmt.Errorf("malformed pov frame: %w", err)
		}
		return session.PovUpdate{Pov: pov}, nil

	case "pano":
		var pano streetview.Pano
		if err := json.Unmarshal(frame.Data, &pano); err != nil {
			return nil, fmt.Errorf("malformed pano frame: %w", err)
		}
		return session.PanoUpdate{Pano: pano}, nil

	case "refresh":
		return session.Refresh{}, nil

	case "button":
		var payload struct {
			Code  int `json:"code"`
			Value int `json:"value"`
		}
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return nil, fmt.Errorf("malformed button frame: %w", err)
		}
		return session.Button{Code: input.ButtonCode(payload.Code), Value: payload.Value}, nil

	case "axis":
		var payload struct {
			Code  int     `json:"code"`
			Value float64 `json:"value"`
		}
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return nil, fmt.Errorf("malformed axis frame: %w", err)
		}
		return session.Axis{Code: input.AxisCode(payload.Code), Value: payload.Value}, nil

	case "scene":
		var payload struct {
			Field string `json:"field"`
		}
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return nil, fmt.Errorf("malformed scene frame: %w", err)
		}
		return session.SceneSelect{Field: payload.Field}, nil
	}

	return nil, fmt.Errorf("unknown frame type %q", frame.Type)
}
