// Package synthetic lets an operator hand-craft and emit game events for
// manual testing. It is wired up only when the gateway runs in a
// non-production mode; release builds never register its route.
package synthetic

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgInternalError = "internal server error"

type Service struct {
	validator *Validator
	emitter   *Emitter
}

func NewService(validator *Validator, emitter *Emitter) *Service {
	if validator == nil {
		panic("synthetic: validator must not be nil")
	}
	if emitter == nil {
		panic("synthetic: emitter must not be nil")
	}
	return &Service{validator: validator, emitter: emitter}
}

// RegisterRoutes registers the synthetic event endpoint.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/event/send/:type", s.SendHandler)
}

// SendHandler validates the loosely-typed body, fills defaults, and emits
// one event of the requested type.
func (s *Service) SendHandler(c *gin.Context) {
	eventType := c.Param("type")

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
		// An empty body is a valid submission (everything defaults);
		// anything else that fails to decode is not.
		slog.Warn("Invalid JSON body on synthetic send", "error", err)
		c.JSON(http.StatusBadRequest, &ValidationError{Info: "invalid JSON body"})
		return
	}

	body, verr := s.validator.Validate(raw)
	if verr != nil {
		slog.Warn("Synthetic event failed validation", "event_type", eventType, "error", verr)
		c.JSON(http.StatusBadRequest, verr)
		return
	}

	msg, err := s.emitter.Emit(c.Request.Context(), eventType, body)
	if err != nil {
		slog.Error("Failed to send synthetic event", "event_type", eventType, "error", err)
		c.String(http.StatusInternalServerError, msgInternalError)
		return
	}

	c.String(http.StatusOK, msg)
}
