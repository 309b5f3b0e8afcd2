package agent

import (
	"context"
	"errors"

	"language-tutor/internal/model"
)

// Tool names recognized by the executor. Dispatch is a closed switch over
// this set; an unrecognized name is a distinguishable error, never a
// default.
const (
	ToolSaveWordPair = "save_word_pair"
)

// Tool execution failures. Both are logged by the orchestrator and never
// abort the parent conversational turn.
var (
	ErrUnknownTool          = errors.New("unknown tool")
	ErrInvalidToolArguments = errors.New("invalid tool arguments")
)

// Tool is a side-effecting action a specialist can request. Arguments come
// from the Language Model Capability and are untrusted; the acting identity
// is always the Scope, never anything inside args.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns the JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool for the authenticated user and returns a
	// human-readable confirmation.
	Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) (string, error)
}
