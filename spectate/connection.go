package spectate

import (
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/constant"
)

// Connection wraps a viewer websocket with its outbound queue
// The hub owns send and is the only party that closes it
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewConnection creates a connection wrapper
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, constant.SpectatorSendBuffer),
	}
}

// ReadPump drains and discards viewer input until the socket fails, then calls done
func (c *Connection) ReadPump(done func()) {
	defer func() {
		done()
		c.ws.Close()
	}()

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("spectate: read error: %v", err)
			}
			return
		}
	}
}

// WritePump writes queued messages until send is closed or a write fails
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(constant.SpectatorWriteWait))
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.ws.SetWriteDeadline(time.Now().Add(constant.SpectatorWriteWait))
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// enqueue never blocks, reports false when the buffer is full
func (c *Connection) enqueue(message []byte) bool {
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}
