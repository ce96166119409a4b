package v1

import (
	"encoding/json"
	"fmt"
)

// Known CloudEvent types emitted by the trigger source. The gateway routes
// on these; anything else is a forward-compatibility signal, not an error
// the sender can fix.
const (
	EventTypeAttack     = "Attack"
	EventTypeMatchStart = "MatchStart"
	EventTypeMatchEnd   = "MatchEnd"
)

// KnownType reports whether t is an event type this service routes.
func KnownType(t string) bool {
	switch t {
	case EventTypeAttack, EventTypeMatchStart, EventTypeMatchEnd:
		return true
	}
	return false
}

// Envelope is the parsed representation of one received notification.
// It separates the routing attributes from the opaque payload: the gateway
// classifies on Type and never interprets Payload itself.
//
// An Envelope is produced only by the trigger parser, is immutable once
// created, and lives for a single request.
type Envelope struct {
	// ID is the CloudEvents id attribute, unique per source.
	ID string `json:"id"`

	// Source identifies the context in which the event happened
	// (the CloudEvents source attribute).
	Source string `json:"source"`

	// Type is the routing discriminator. It is not guaranteed to be in
	// the known set; KnownType decides that.
	Type string `json:"type"`

	// Payload is the event data, kept opaque. Domain processing decodes
	// it; the gateway only carries it.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate ensures the envelope carries the attributes routing depends on.
func (e *Envelope) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("id is required")
	}

	if e.Source == "" {
		return fmt.Errorf("source is required")
	}

	if e.Type == "" {
		return fmt.Errorf("type is required")
	}

	return nil
}
