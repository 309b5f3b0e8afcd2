package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"language-tutor/internal/model"
	"language-tutor/internal/router"
	"language-tutor/internal/tutor/repository"
	"language-tutor/pkg/gemini"
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

// mockRouter returns a scripted decision and records what it was asked.
type mockRouter struct {
	decision  router.RoutingDecision
	err       error
	calls     int
	lastInput router.ClassifyInput
}

func (m *mockRouter) Classify(ctx context.Context, input router.ClassifyInput) (router.RoutingDecision, error) {
	m.calls++
	m.lastInput = input
	return m.decision, m.err
}

type executedCall struct {
	scope model.Scope
	name  string
	args  map[string]any
}

// mockExecutor records tool executions and returns a scripted result.
type mockExecutor struct {
	result string
	err    error
	calls  []executedCall
}

func (m *mockExecutor) Execute(ctx context.Context, sc model.Scope, name string, args map[string]any) (string, error) {
	m.calls = append(m.calls, executedCall{scope: sc, name: name, args: args})
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}

func (m *mockExecutor) FunctionDeclarations() []gemini.FunctionDeclaration {
	return []gemini.FunctionDeclaration{
		{Name: "save_word_pair", Description: "Save a translated word pair to the user's flashcards."},
	}
}

// newCountingLLM returns a gemini client backed by a server that answers
// every call with candidateText and counts how often it was hit.
func newCountingLLM(t *testing.T, candidateText string) (*gemini.Client, *httptest.Server, *int) {
	t.Helper()
	calls := new(int)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		body, _ := json.Marshal(gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: candidateText}}}},
			},
		})
		w.Write(body)
	}))

	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return client, ts, calls
}

var errStoreDown = errors.New("store down")

// memRepo is an in-memory repository.Repository with togglable failures.
type memRepo struct {
	mu sync.Mutex

	chats    map[string]model.Chat
	messages map[string][]model.ChatMessage
	pairs    []model.WordPair
	profiles map[string]model.UserProfile
	pron     map[string]model.PronunciationEntry

	failAssistantWrite bool
	failPronRead       bool
	upserts            int
}

func newMemRepo() *memRepo {
	return &memRepo{
		chats:    map[string]model.Chat{},
		messages: map[string][]model.ChatMessage{},
		profiles: map[string]model.UserProfile{},
		pron:     map[string]model.PronunciationEntry{},
	}
}

func (r *memRepo) CreateChat(ctx context.Context, opt repository.CreateChatOptions) (model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chat := model.Chat{ID: opt.ID, UserID: opt.UserID, Title: opt.Title}
	r.chats[opt.ID] = chat
	return chat, nil
}

func (r *memRepo) GetOneChat(ctx context.Context, opt repository.GetOneChatOptions) (model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chat, ok := r.chats[opt.ID]
	if !ok || (opt.UserID != "" && chat.UserID != opt.UserID) {
		return model.Chat{}, nil
	}
	return chat, nil
}

func (r *memRepo) ListChats(ctx context.Context, userID string) ([]model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Chat
	for _, c := range r.chats {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memRepo) TouchChat(ctx context.Context, chatID string) error { return nil }

func (r *memRepo) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAssistantWrite && opt.Role == model.RoleAssistant {
		return model.ChatMessage{}, errStoreDown
	}
	msg := model.ChatMessage{ID: opt.ID, ChatID: opt.ChatID, Role: opt.Role, Content: opt.Content}
	r.messages[opt.ChatID] = append(r.messages[opt.ChatID], msg)
	return msg, nil
}

func (r *memRepo) ListRecentMessages(ctx context.Context, opt repository.ListRecentMessagesOptions) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := r.messages[opt.ChatID]
	if opt.Limit > 0 && len(msgs) > opt.Limit {
		msgs = msgs[len(msgs)-opt.Limit:]
	}
	out := make([]model.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (r *memRepo) ListMessages(ctx context.Context, chatID string) ([]model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ChatMessage, len(r.messages[chatID]))
	copy(out, r.messages[chatID])
	return out, nil
}

func (r *memRepo) CreateWordPair(ctx context.Context, opt repository.CreateWordPairOptions) (model.WordPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pair := model.WordPair{ID: opt.ID, UserID: opt.UserID, SourceWord: opt.SourceWord, TranslatedWord: opt.TranslatedWord}
	r.pairs = append(r.pairs, pair)
	return pair, nil
}

func (r *memRepo) GetOneWordPair(ctx context.Context, opt repository.GetOneWordPairOptions) (model.WordPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pairs {
		if p.UserID == opt.UserID && p.SourceWord == opt.SourceWord && p.TranslatedWord == opt.TranslatedWord {
			return p, nil
		}
	}
	return model.WordPair{}, nil
}

func (r *memRepo) ListWordPairs(ctx context.Context, userID string) ([]model.WordPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.WordPair
	for _, p := range r.pairs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memRepo) DeleteWordPair(ctx context.Context, userID, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.pairs {
		if p.UserID == userID && p.ID == id {
			r.pairs = append(r.pairs[:i], r.pairs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memRepo) GetProfile(ctx context.Context, userID string) (model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profiles[userID], nil
}

func (r *memRepo) CreateProfile(ctx context.Context, opt repository.CreateProfileOptions) (model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.profiles[opt.UserID]; ok && existing.ID != "" {
		return model.UserProfile{}, errors.New("duplicate profile")
	}
	p := model.UserProfile{ID: opt.UserID}
	if opt.Context != "" {
		p.Context.String, p.Context.Valid = opt.Context, true
	}
	if opt.TargetLanguage != "" {
		p.TargetLanguage.String, p.TargetLanguage.Valid = opt.TargetLanguage, true
	}
	r.profiles[opt.UserID] = p
	return p, nil
}

func (r *memRepo) UpdateTargetLanguage(ctx context.Context, userID, lang string) (model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok || p.ID == "" {
		return model.UserProfile{}, nil
	}
	p.TargetLanguage.String, p.TargetLanguage.Valid = lang, true
	r.profiles[userID] = p
	return p, nil
}

func (r *memRepo) GetPronunciation(ctx context.Context, userID, word string) (model.PronunciationEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failPronRead {
		return model.PronunciationEntry{}, errStoreDown
	}
	return r.pron[userID+"|"+word], nil
}

func (r *memRepo) UpsertPronunciation(ctx context.Context, opt repository.UpsertPronunciationOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	r.pron[opt.UserID+"|"+opt.Word] = model.PronunciationEntry{
		UserID:   opt.UserID,
		Word:     opt.Word,
		Analysis: opt.Analysis,
	}
	return nil
}
