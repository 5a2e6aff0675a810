package network

import (
	"encoding/json"
	"fmt"

	"github.com/luca-patrignani/spidertaire/domain/spider"
)

// MessageType tags a websocket message.
type MessageType string

const (
	MsgTypeState  MessageType = "state"  // Server sends the game view
	MsgTypeAction MessageType = "action" // Client submits an action
	MsgTypeNew    MessageType = "new"    // Client starts a new game
	MsgTypeError  MessageType = "error"  // Server reports an action that was not applied
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload any) (WsMessage, error) {
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

// Parse unmarshals the message payload into one of the message types.
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeState:
		target = &StateMessage{}
	case MsgTypeAction:
		target = &spider.Action{}
	case MsgTypeNew:
		target = &NewGameMessage{}
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
	View spider.View `json:"view"`
}

// NewGameMessage: empty. The new game keeps the configured difficulty.
type NewGameMessage struct{}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}
