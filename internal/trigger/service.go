package trigger

import (
	"context"

	"github.com/gin-gonic/gin"

	v1 "github.com/harborfleet/event-gateway/internal/api/v1"
)

// Processor is the domain processing routine for routed envelopes. It is
// trusted to either complete or return an error; the dispatcher reclassifies
// any error as an internal failure.
type Processor interface {
	ProcessEvent(ctx context.Context, env *v1.Envelope) error
}

type Service struct {
	parser           Parser
	processor        Processor
	maxBodySizeBytes int
}

func NewService(parser Parser, processor Processor, maxBodySizeMB int) *Service {
	if parser == nil {
		panic("trigger: parser must not be nil")
	}
	if processor == nil {
		panic("trigger: processor must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		parser:           parser,
		processor:        processor,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the trigger endpoint.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/event/trigger", s.TriggerHandler)
}
