package agent

import (
	"context"
	"fmt"

	"language-tutor/internal/model"
	"language-tutor/pkg/gemini"
	pkgLog "language-tutor/pkg/log"
)

// Executor validates and runs tool calls requested by a specialist. Tools
// are held as named fields so dispatch stays a closed switch over known
// names rather than a lookup into an open table.
type Executor struct {
	saveWordPair Tool
	l            pkgLog.Logger
}

// NewExecutor creates an Executor over the known tool set.
func NewExecutor(saveWordPair Tool, l pkgLog.Logger) *Executor {
	return &Executor{
		saveWordPair: saveWordPair,
		l:            l,
	}
}

// Execute runs one tool call for the authenticated user. Whatever identity
// the model put into args is discarded before dispatch; sc.UserID from the
// verified session is the only identity a tool ever acts as.
func (e *Executor) Execute(ctx context.Context, sc model.Scope, name string, args map[string]interface{}) (string, error) {
	if args == nil {
		args = map[string]interface{}{}
	}
	delete(args, "user_id")

	switch name {
	case ToolSaveWordPair:
		return e.saveWordPair.Execute(ctx, sc, args)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// FunctionDeclarations exposes the tool set to the Language Model
// Capability in Gemini function-calling format.
func (e *Executor) FunctionDeclarations() []gemini.FunctionDeclaration {
	return []gemini.FunctionDeclaration{
		{
			Name:        e.saveWordPair.Name(),
			Description: e.saveWordPair.Description(),
			Parameters:  e.saveWordPair.Parameters(),
		},
	}
}
