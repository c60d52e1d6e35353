// Package spectate streams frames and game events to read-only websocket viewers
package spectate

import (
	"encoding/json"
	"errors"
)

// ErrClosed is returned when registering with a closed hub
var ErrClosed = errors.New("spectate: hub closed")

// Message kinds on the wire
const (
	MessageFrame = "frame"
	MessageEvent = "event"
)

// Message is the envelope sent to every viewer
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func encode(kind string, payload any) ([]byte, error) {
	return json.Marshal(Message{Type: kind, Payload: payload})
}
