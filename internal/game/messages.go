package game

import (
	"encoding/json"
	"fmt"
)

// Message type for WebSocket communication between client and server.
type MessageType string

const (
	MsgTypeState   MessageType = "state"   // Server sends the full game view
	MsgTypeFlip    MessageType = "flip"    // Client asks to flip a card
	MsgTypeRestart MessageType = "restart" // Client asks for a new deal
	MsgTypeError   MessageType = "error"   // Server sends an error message
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload interface{}) (WsMessage, error) {
	if payload == nil {
		return WsMessage{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return WsMessage{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return WsMessage{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the message payload into one of the message types (StateMessage, FlipMessage, etc.)
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeState:
		target = &StateMessage{}
	case MsgTypeFlip:
		target = &FlipMessage{}
	case MsgTypeRestart:
		target = &RestartMessage{}
	case MsgTypeError:
		target = &ErrorMessage{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// StateMessage is the payload for MsgTypeState
type StateMessage struct {
	SessionID string `json:"session_id"`
	Game      View   `json:"game"`
}

// FlipMessage is the payload for MsgTypeFlip
type FlipMessage struct {
	CardID int `json:"card_id"` // Index of the card on the board
}

// RestartMessage: empty.
type RestartMessage struct{}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}
