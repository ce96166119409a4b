package trigger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudevents/sdk-go/v2/binding"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"

	v1 "github.com/harborfleet/event-gateway/internal/api/v1"
)

// MalformedError reports wire input that is not a valid CloudEvent in either
// binary or structured mode. Terminal for the request; never retried.
type MalformedError struct {
	Details string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed event: %s", e.Details)
}

// UnknownTypeError reports a well-formed envelope whose type the gateway
// does not route. Kept distinct from MalformedError: the request itself is
// fine, the service just does not understand this event kind yet.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown event type %q", e.Type)
}

// Parser turns raw transport headers and body into an Envelope. Failures are
// one of *MalformedError, *UnknownTypeError, or an unexpected error.
type Parser interface {
	Parse(ctx context.Context, header http.Header, body []byte) (*v1.Envelope, error)
}

// CloudEventParser parses binary- and structured-mode CloudEvents using the
// sdk-go bindings.
type CloudEventParser struct{}

func (CloudEventParser) Parse(ctx context.Context, header http.Header, body []byte) (*v1.Envelope, error) {
	msg := cehttp.NewMessage(header, io.NopCloser(bytes.NewReader(body)))

	e, err := binding.ToEvent(ctx, msg)
	if err != nil {
		return nil, &MalformedError{Details: err.Error()}
	}
	if err := e.Validate(); err != nil {
		return nil, &MalformedError{Details: err.Error()}
	}

	if !v1.KnownType(e.Type()) {
		return nil, &UnknownTypeError{Type: e.Type()}
	}

	return &v1.Envelope{
		ID:      e.ID(),
		Source:  e.Source(),
		Type:    e.Type(),
		Payload: e.Data(),
	}, nil
}
