package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"language-tutor/config"
	"language-tutor/internal/middleware"
	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
	tutorHTTP "language-tutor/internal/tutor/delivery/http"
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

// mockUseCase scripts per-operation results.
type mockUseCase struct {
	handleOut tutor.HandleMessageOutput
	handleErr error
	pronErr   error
	lastScope model.Scope
}

func (m *mockUseCase) HandleMessage(ctx context.Context, sc model.Scope, input tutor.HandleMessageInput) (tutor.HandleMessageOutput, error) {
	m.lastScope = sc
	return m.handleOut, m.handleErr
}

func (m *mockUseCase) PronunciationTips(ctx context.Context, sc model.Scope, word string) (tutor.PronunciationOutput, error) {
	return tutor.PronunciationOutput{}, m.pronErr
}

func (m *mockUseCase) RandomPhrase(ctx context.Context, sc model.Scope, words []string) (tutor.PhraseOutput, error) {
	return tutor.PhraseOutput{Phrase: "ok", WordsUsed: words}, nil
}

func (m *mockUseCase) GetProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error) {
	return model.UserProfile{ID: sc.UserID}, nil
}

func (m *mockUseCase) UpdateTargetLanguage(ctx context.Context, sc model.Scope, lang string) (model.UserProfile, error) {
	if lang == "klingon" {
		return model.UserProfile{}, tutor.ErrInvalidLanguage
	}
	return model.UserProfile{ID: sc.UserID}, nil
}

func (m *mockUseCase) ListChats(ctx context.Context, sc model.Scope) ([]model.Chat, error) {
	return nil, nil
}

func (m *mockUseCase) ListMessages(ctx context.Context, sc model.Scope, chatID string) ([]model.ChatMessage, error) {
	return nil, tutor.ErrChatNotFound
}

func (m *mockUseCase) ListWordPairs(ctx context.Context, sc model.Scope) ([]model.WordPair, error) {
	return nil, nil
}

func (m *mockUseCase) DeleteWordPair(ctx context.Context, sc model.Scope, id string) error {
	return tutor.ErrWordPairNotFound
}

const testSecret = "test-secret"

func newRouter(t *testing.T, uc tutor.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := middleware.New(&mockLogger{}, config.AuthConfig{JWTSecret: testSecret}, config.RateLimitConfig{RequestsPerMin: 6000})
	h := tutorHTTP.New(&mockLogger{}, uc)

	r := gin.New()
	tutorHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func bearer(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	t.Run("Identity Comes From The Token", func(t *testing.T) {
		uc := &mockUseCase{handleOut: tutor.HandleMessageOutput{
			ChatID:   "c1",
			Response: tutor.TutorResponse{ResponseType: tutor.ResponseText, Content: "hi"},
		}}
		r := newRouter(t, uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/tutor/chat",
			gin.H{"message": "hello", "user_id": "attacker"}, bearer(t, "u1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastScope.UserID != "u1" {
			t.Errorf("scope must come from the token, got %q", uc.lastScope.UserID)
		}
	})

	t.Run("Missing Token Is Unauthorized", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})

		w := doJSON(t, r, http.MethodPost, "/api/v1/tutor/chat", gin.H{"message": "hello"}, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Missing Message Is Bad Request", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})

		w := doJSON(t, r, http.MethodPost, "/api/v1/tutor/chat", gin.H{}, bearer(t, "u1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Store Unavailable Is 500", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{handleErr: tutor.ErrStoreUnavailable})

		w := doJSON(t, r, http.MethodPost, "/api/v1/tutor/chat", gin.H{"message": "hello"}, bearer(t, "u1"))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("Unknown Chat Is 404", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{handleErr: tutor.ErrChatNotFound})

		w := doJSON(t, r, http.MethodPost, "/api/v1/tutor/chat",
			gin.H{"chat_id": "missing", "message": "hello"}, bearer(t, "u1"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	t.Run("Malformed Analysis Is 502", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{pronErr: tutor.ErrMalformedAnalysis})

		w := doJSON(t, r, http.MethodPost, "/api/v1/tutor/pronunciation", gin.H{"word": "dzień"}, bearer(t, "u1"))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("Unsupported Language Is 400", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})

		w := doJSON(t, r, http.MethodPut, "/api/v1/profile/target-language", gin.H{"target_language": "klingon"}, bearer(t, "u1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Missing Word Pair Is 404", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})

		w := doJSON(t, r, http.MethodDelete, "/api/v1/words/nope", nil, bearer(t, "u1"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Other Users Chat Is 404", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{})

		w := doJSON(t, r, http.MethodGet, "/api/v1/chats/c1/messages", nil, bearer(t, "u1"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
