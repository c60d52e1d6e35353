package spectate

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
)

// Hub fans out frames and events to registered viewers
// Implements engine.Renderer for frames and event.Handler for events
type Hub struct {
	mu      sync.Mutex
	clients map[*Connection]struct{}
	closed  bool

	// Last broadcast frame, replayed to new viewers
	lastFrame []byte
	lastTick  uint64
	lastPhase engine.Phase
	hasFrame  bool

	gauge *atomic.Int64 // nil without a registry
}

// NewHub creates a hub, publishing the viewer count to reg when non-nil
func NewHub(reg *status.Registry) *Hub {
	h := &Hub{clients: make(map[*Connection]struct{})}
	if reg != nil {
		h.gauge = reg.Counter(status.MetricSpectateClients)
	}
	return h
}

// Register adds a viewer and queues the latest frame for it
func (h *Hub) Register(c *Connection) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	h.clients[c] = struct{}{}
	if h.hasFrame {
		c.enqueue(h.lastFrame)
	}
	h.publishCountLocked()
	return nil
}

// Unregister removes a viewer and closes its queue, safe to call repeatedly
func (h *Hub) Unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Connection) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.publishCountLocked()
}

func (h *Hub) publishCountLocked() {
	if h.gauge != nil {
		h.gauge.Store(int64(len(h.clients)))
	}
}

// Clients returns the current viewer count
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// DrawFrame broadcasts the frame when its tick or phase differs from the last one sent
func (h *Hub) DrawFrame(fs engine.FrameState) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	if h.hasFrame && fs.Tick == h.lastTick && fs.Phase == h.lastPhase {
		return
	}

	msg, err := encode(MessageFrame, fs)
	if err != nil {
		log.Printf("spectate: encode frame: %v", err)
		return
	}
	h.lastFrame = msg
	h.lastTick = fs.Tick
	h.lastPhase = fs.Phase
	h.hasFrame = true
	h.broadcastLocked(msg)
}

// HandleEvent broadcasts a game event
func (h *Hub) HandleEvent(ev event.Event) {
	msg, err := encode(MessageEvent, ev)
	if err != nil {
		log.Printf("spectate: encode event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.broadcastLocked(msg)
	}
}

// EventTypes subscribes the hub to every event
func (h *Hub) EventTypes() []event.Type {
	return event.AllTypes()
}

// broadcastLocked drops viewers whose queue is full
func (h *Hub) broadcastLocked(msg []byte) {
	for c := range h.clients {
		if !c.enqueue(msg) {
			log.Printf("spectate: dropping slow viewer, %d queued", len(c.send))
			h.removeLocked(c)
		}
	}
}

// Close disconnects every viewer and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}
