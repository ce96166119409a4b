package synthetic

import (
	"context"
	"fmt"

	v1 "github.com/harborfleet/event-gateway/internal/api/v1"
	"github.com/harborfleet/event-gateway/internal/game"
)

// Emitter turns a validated body into domain objects and hands them to the
// matching send operation.
type Emitter struct {
	sender game.Sender
}

func NewEmitter(sender game.Sender) *Emitter {
	if sender == nil {
		panic("synthetic: sender must not be nil")
	}
	return &Emitter{sender: sender}
}

// Emit dispatches one synthetic event of the requested type. The send is
// awaited: the returned message means the transport accepted the event, not
// that the engine finished with it. An unrecognized type is reported in the
// message rather than failing; this path exists for interactive testing.
func (e *Emitter) Emit(ctx context.Context, requestedType string, body Body) (string, error) {
	g := game.Game{UUID: body.Game.UUID}
	m := game.Match{
		UUID:    body.Match.UUID,
		PlayerA: game.Player{Username: body.Match.PlayerA, Human: true},
		PlayerB: game.Player{Username: body.Match.PlayerB, Human: true},
	}

	var err error
	switch requestedType {
	case v1.EventTypeAttack:
		err = e.sender.SendAttack(ctx, g, m, body.Attack)
	case v1.EventTypeMatchStart:
		err = e.sender.SendMatchStart(ctx, g, m)
	case v1.EventTypeMatchEnd:
		err = e.sender.SendMatchEnd(ctx, g, m)
	default:
		return fmt.Sprintf("unknown event type %q", requestedType), nil
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("queued %q cloud event", requestedType), nil
}
