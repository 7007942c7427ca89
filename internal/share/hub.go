// Package share publishes a drawing to read-only viewers on the local
// network over websockets.
package share

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"VectorBoard/internal/export"
	"VectorBoard/internal/state"
)

const (
	sendBuffer   = 64
	writeTimeout = 5 * time.Second
	svgPadding   = 10
)

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub mirrors the host's op stream and relays it to every connected viewer.
// New viewers get a snapshot of the mirror first.
type Hub struct {
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	mu      sync.Mutex
	mirror  *state.Scene
	lamport uint64
	viewers map[*viewer]struct{}
}

func NewHub() *Hub {
	h := &Hub{
		mux:     http.NewServeMux(),
		mirror:  state.NewScene(nil),
		viewers: make(map[*viewer]struct{}),
	}
	h.mux.HandleFunc("/ws", h.serveWS)
	h.mux.HandleFunc("/scene.svg", h.serveSVG)
	return h
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Publish applies op to the mirror and sends it to all viewers. Viewers
// that cannot keep up are dropped.
func (h *Hub) Publish(op state.Op) {
	data, err := json.Marshal(op)
	if err != nil {
		slog.Error("encode op", "type", op.Type, "err", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.mirror.ApplyRemote(op)
	h.lamport = max(h.lamport, op.Lamport)
	for v := range h.viewers {
		select {
		case v.send <- data:
		default:
			slog.Warn("viewer too slow, dropping", "addr", v.conn.RemoteAddr().String())
			h.dropLocked(v)
		}
	}
}

// Viewers reports how many viewers are connected.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for v := range h.viewers {
		h.dropLocked(v)
	}
}

func (h *Hub) dropLocked(v *viewer) {
	if _, ok := h.viewers[v]; !ok {
		return
	}
	delete(h.viewers, v)
	close(v.send)
}

func (h *Hub) drop(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(v)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "addr", r.RemoteAddr, "err", err)
		return
	}
	v := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	snap := h.mirror.Snapshot()
	snap.Lamport = h.lamport
	data, err := json.Marshal(snap)
	if err == nil {
		v.send <- data
		h.viewers[v] = struct{}{}
	}
	h.mu.Unlock()
	if err != nil {
		slog.Error("encode snapshot", "err", err)
		conn.Close()
		return
	}
	slog.Info("viewer connected", "addr", conn.RemoteAddr().String(), "shapes", len(snap.Shapes))

	go h.writeLoop(v)
	h.readLoop(v)
}

// readLoop only watches for the viewer going away; viewers never send ops.
func (h *Hub) readLoop(v *viewer) {
	defer h.drop(v)
	v.conn.SetReadLimit(512)
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			slog.Info("viewer disconnected", "addr", v.conn.RemoteAddr().String(), "err", err)
			return
		}
	}
}

func (h *Hub) writeLoop(v *viewer) {
	defer v.conn.Close()
	for data := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := v.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("send to viewer failed", "addr", v.conn.RemoteAddr().String(), "err", err)
			h.drop(v)
			for range v.send {
			}
			return
		}
	}
	v.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	v.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// serveSVG renders the mirrored scene, sized to fit its shapes.
func (h *Hub) serveSVG(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	shapes := h.mirror.Shapes()
	h.mu.Unlock()

	width, height := 1, 1
	if b := state.Bounds(shapes, svgPadding); !b.Empty() {
		width, height = int(b.X+b.Width), int(b.Y+b.Height)
	}
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="drawing.svg"`)
	if err := export.WriteSVG(w, width, height, shapes); err != nil {
		slog.Warn("serve svg", "addr", r.RemoteAddr, "err", err)
	}
}
