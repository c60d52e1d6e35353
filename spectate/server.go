package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/core"
)

// Path is the websocket endpoint
const Path = "/ws"

// Server exposes a Hub over HTTP
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
	http     *http.Server
	listener net.Listener
}

// NewServer creates a server for hub, Start binds it
func NewServer(hub *Hub) *Server {
	s := &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Viewers are read-only, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.handleWebSocket)
	s.http = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return s
}

// Handler returns the HTTP handler serving the websocket endpoint
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade failed: %v", err)
		return
	}

	conn := NewConnection(ws)
	if err := s.hub.Register(conn); err != nil {
		ws.Close()
		return
	}
	log.Printf("spectate: viewer connected from %s", ws.RemoteAddr())

	core.Go(conn.WritePump)
	core.Go(func() {
		conn.ReadPump(func() { s.hub.Unregister(conn) })
	})
}

// Start listens on addr and serves in the background
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate listen %s: %w", addr, err)
	}
	s.listener = ln

	core.Go(func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectate: serve: %v", err)
		}
	})
	return nil
}

// URL returns the websocket URL viewers connect to, empty before Start
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	return "ws://" + advertisedAddr(s.listener.Addr()) + Path
}

// advertisedAddr replaces an unspecified host with localhost
func advertisedAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok || !tcp.IP.IsUnspecified() {
		return addr.String()
	}
	return fmt.Sprintf("localhost:%d", tcp.Port)
}

// Close disconnects viewers and shuts the listener down
func (s *Server) Close(ctx context.Context) error {
	s.hub.Close()
	if s.listener == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
