package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"

	v1 "github.com/harborfleet/event-gateway/internal/api/v1"
)

// AttackPayload is the data carried by an Attack event.
type AttackPayload struct {
	Game   Game   `json:"game"`
	Match  Match  `json:"match"`
	Attack Attack `json:"attack"`
}

// MatchPayload is the data carried by MatchStart and MatchEnd events.
type MatchPayload struct {
	Game  Game  `json:"game"`
	Match Match `json:"match"`
}

// Sender dispatches synthetic events toward the game engine. The returned
// error reports transport acceptance, not downstream delivery.
type Sender interface {
	SendAttack(ctx context.Context, g Game, m Match, a Attack) error
	SendMatchStart(ctx context.Context, g Game, m Match) error
	SendMatchEnd(ctx context.Context, g Game, m Match) error
}

// Client forwards events to the game engine as CloudEvents over HTTP.
// It is the domain processing side of the trigger pipeline and the send
// side of the synthetic facility.
type Client struct {
	ce        cloudevents.Client
	engineURL string
	source    string
}

func NewClient(engineURL, source string) (*Client, error) {
	if engineURL == "" {
		return nil, fmt.Errorf("game: engine URL must not be empty")
	}
	if source == "" {
		return nil, fmt.Errorf("game: event source must not be empty")
	}

	ce, err := cloudevents.NewClientHTTP()
	if err != nil {
		return nil, fmt.Errorf("game: create cloudevents client: %w", err)
	}

	return &Client{ce: ce, engineURL: engineURL, source: source}, nil
}

// ProcessEvent decodes the envelope payload for its type, then forwards the
// event to the engine. The caller has already established that the type is
// known; an unlisted type here is a programming error.
func (c *Client) ProcessEvent(ctx context.Context, env *v1.Envelope) error {
	switch env.Type {
	case v1.EventTypeAttack:
		var p AttackPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return fmt.Errorf("decode attack payload: %w", err)
		}
		if err := p.Attack.Validate(); err != nil {
			return fmt.Errorf("invalid attack payload: %w", err)
		}
	case v1.EventTypeMatchStart, v1.EventTypeMatchEnd:
		var p MatchPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return fmt.Errorf("decode match payload: %w", err)
		}
	default:
		return fmt.Errorf("unroutable event type %q", env.Type)
	}

	e := cloudevents.NewEvent()
	e.SetID(env.ID)
	e.SetSource(env.Source)
	e.SetType(env.Type)
	if len(env.Payload) > 0 {
		if err := e.SetData(cloudevents.ApplicationJSON, json.RawMessage(env.Payload)); err != nil {
			return fmt.Errorf("set event data: %w", err)
		}
	}

	return c.deliver(ctx, e)
}

func (c *Client) SendAttack(ctx context.Context, g Game, m Match, a Attack) error {
	return c.send(ctx, v1.EventTypeAttack, AttackPayload{Game: g, Match: m, Attack: a})
}

func (c *Client) SendMatchStart(ctx context.Context, g Game, m Match) error {
	return c.send(ctx, v1.EventTypeMatchStart, MatchPayload{Game: g, Match: m})
}

func (c *Client) SendMatchEnd(ctx context.Context, g Game, m Match) error {
	return c.send(ctx, v1.EventTypeMatchEnd, MatchPayload{Game: g, Match: m})
}

func (c *Client) send(ctx context.Context, eventType string, payload interface{}) error {
	e := cloudevents.NewEvent()
	e.SetID(uuid.NewString())
	e.SetSource(c.source)
	e.SetType(eventType)
	if err := e.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return fmt.Errorf("set event data: %w", err)
	}

	return c.deliver(ctx, e)
}

// deliver sends the event and waits for transport acceptance.
func (c *Client) deliver(ctx context.Context, e cloudevents.Event) error {
	ctx = cloudevents.ContextWithTarget(ctx, c.engineURL)

	if result := c.ce.Send(ctx, e); cloudevents.IsUndelivered(result) {
		return fmt.Errorf("deliver event %q to engine: %w", e.Type(), result)
	}

	slog.Info("Delivered event to engine", "event_id", e.ID(), "event_type", e.Type(), "target", c.engineURL)
	return nil
}
