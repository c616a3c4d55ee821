package events

import (
	"encoding/json"
	"errors"
)

// Envelope is decoded first so consumers can dispatch on EventType.
type Envelope struct {
	EventType string `json:"event_type"`
}

var ErrMissingEventType = errors.New("event_type is required")

func PeekType(payload []byte) (string, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", err
	}
	if env.EventType == "" {
		return "", ErrMissingEventType
	}
	return env.EventType, nil
}
