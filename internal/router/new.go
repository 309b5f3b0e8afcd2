package router

import (
	"context"
	"errors"

	"language-tutor/internal/capability"
	"language-tutor/pkg/gemini"
	pkgLog "language-tutor/pkg/log"
)

// ErrMalformedDecision is returned when the model output cannot be parsed
// into a RoutingDecision. The caller must surface a generic error response;
// it must never guess an agent.
var ErrMalformedDecision = errors.New("router: malformed routing decision")

// Router classifies one user message into a RoutingDecision. It is a pure
// classification step: no Store access, no tool execution.
type Router interface {
	Classify(ctx context.Context, input ClassifyInput) (RoutingDecision, error)
}

// IntentRouter classifies user intent using one LLM call against the route
// capability template.
type IntentRouter struct {
	llm      *gemini.Client
	registry *capability.Registry
	l        pkgLog.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(llm *gemini.Client, registry *capability.Registry, l pkgLog.Logger) *IntentRouter {
	return &IntentRouter{
		llm:      llm,
		registry: registry,
		l:        l,
	}
}
