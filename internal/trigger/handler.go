package trigger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/harborfleet/event-gateway/internal/core/errors"
)

const (
	msgAck            = "ok"
	msgInternalError  = "internal server error"
	msgMalformedEvent = "Could not parse CloudEvent"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
)

// TriggerHandler handles HTTP POST requests from the event trigger source.
func (s *Service) TriggerHandler(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}

	out := s.handle(c.Request.Context(), c.Request.Header, body)
	writeOutcome(c, body, out)
}

// readBody reads the raw request body under the configured size cap. On
// failure it writes the response itself and reports false.
func (s *Service) readBody(c *gin.Context) ([]byte, bool) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	body, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		c.String(http.StatusInternalServerError, msgInternalError)
		return nil, false
	}

	if int64(len(body)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		c.JSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{Info: msgBodyTooLarge})
		return nil, false
	}

	return body, true
}

// handle runs the parse → classify → dispatch pipeline for one event and
// reduces it to a terminal Outcome. No retries happen here; retry policy
// belongs to the trigger infrastructure.
func (s *Service) handle(ctx context.Context, header http.Header, body []byte) Outcome {
	env, err := s.parser.Parse(ctx, header, body)
	if err != nil {
		var malformedErr *MalformedError
		var unknownErr *UnknownTypeError
		switch {
		case errors.As(err, &malformedErr):
			return malformed(malformedErr.Details)
		case errors.As(err, &unknownErr):
			return unknownType(unknownErr.Type)
		default:
			return failed(err)
		}
	}

	if err := s.processor.ProcessEvent(ctx, env); err != nil {
		return failed(err)
	}

	return succeeded()
}

// writeOutcome maps an Outcome onto the HTTP reply and logs proportional to
// severity. Processing internals never reach the response body.
func writeOutcome(c *gin.Context, rawBody []byte, out Outcome) {
	switch out.Kind {
	case OutcomeSucceeded:
		c.String(http.StatusOK, msgAck)

	case OutcomeMalformed:
		slog.Warn("Rejected malformed event",
			"details", out.Details,
			"headers", c.Request.Header,
			"body", string(rawBody))
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			Info:    msgMalformedEvent,
			Details: out.Details,
		})

	case OutcomeUnknownType:
		// Acknowledged so the trigger source does not redeliver an event
		// kind this service does not yet route.
		slog.Error("Received event of unknown type", "event_type", out.Details)
		c.String(http.StatusAccepted, msgAck)

	case OutcomeFailed:
		slog.Error("Event processing failed", "error", out.Err)
		c.String(http.StatusInternalServerError, msgInternalError)
	}
}
