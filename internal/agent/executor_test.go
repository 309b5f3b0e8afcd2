package agent_test

import (
	"context"
	"errors"
	"testing"

	"language-tutor/internal/agent"
	"language-tutor/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// recordingTool captures what the executor hands to a tool.
type recordingTool struct {
	gotScope model.Scope
	gotArgs  map[string]interface{}
	result   string
	err      error
}

func (t *recordingTool) Name() string                        { return agent.ToolSaveWordPair }
func (t *recordingTool) Description() string                 { return "test tool" }
func (t *recordingTool) Parameters() map[string]interface{}  { return map[string]interface{}{} }

func (t *recordingTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) (string, error) {
	t.gotScope = sc
	t.gotArgs = args
	return t.result, t.err
}

func TestExecutor(t *testing.T) {
	t.Run("Unknown Tool", func(t *testing.T) {
		e := agent.NewExecutor(&recordingTool{}, &mockLogger{})
		_, err := e.Execute(context.Background(), model.Scope{UserID: "u1"}, "drop_database", nil)
		if !errors.Is(err, agent.ErrUnknownTool) {
			t.Errorf("expected ErrUnknownTool, got %v", err)
		}
	})

	t.Run("Agent Supplied Identity Is Discarded", func(t *testing.T) {
		tool := &recordingTool{result: "ok"}
		e := agent.NewExecutor(tool, &mockLogger{})

		result, err := e.Execute(context.Background(), model.Scope{UserID: "trusted-user"}, agent.ToolSaveWordPair, map[string]interface{}{
			"user_id":         "attacker-user",
			"source_word":     "cat",
			"translated_word": "kot",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "ok" {
			t.Errorf("unexpected result: %s", result)
		}
		if tool.gotScope.UserID != "trusted-user" {
			t.Errorf("tool must act as the session user, got %q", tool.gotScope.UserID)
		}
		if _, present := tool.gotArgs["user_id"]; present {
			t.Errorf("user_id must be stripped from tool arguments")
		}
	})

	t.Run("Nil Arguments", func(t *testing.T) {
		tool := &recordingTool{result: "ok"}
		e := agent.NewExecutor(tool, &mockLogger{})

		if _, err := e.Execute(context.Background(), model.Scope{UserID: "u1"}, agent.ToolSaveWordPair, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tool.gotArgs == nil {
			t.Errorf("expected non-nil args map")
		}
	})

	t.Run("Function Declarations", func(t *testing.T) {
		e := agent.NewExecutor(&recordingTool{}, &mockLogger{})
		decls := e.FunctionDeclarations()
		if len(decls) != 1 || decls[0].Name != agent.ToolSaveWordPair {
			t.Errorf("unexpected declarations: %+v", decls)
		}
	})
}
