package tutor

import (
	"language-tutor/internal/model"
)

// ResponseType determines how the client renders a tutor response.
type ResponseType string

const (
	ResponseText             ResponseType = "text"
	ResponseWordSuggestion   ResponseType = "word_suggestion"
	ResponseSaveConfirmation ResponseType = "save_confirmation"
	ResponseError            ResponseType = "error"
)

// ToolCall is a specialist-requested side-effecting action. Arguments are
// untrusted: they originate from the Language Model Capability.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// TutorResponse is the structured response of a specialist capability, and
// the payload persisted as the assistant's side of a turn.
type TutorResponse struct {
	ResponseType ResponseType   `json:"response_type"`
	Content      string         `json:"content"`
	Data         map[string]any `json:"data,omitempty"`
	ToolCalls    []ToolCall     `json:"tool_calls,omitempty"`
}

// --- UseCase inputs ---

// HandleMessageInput is one inbound chat message. ChatID is empty for a
// new conversation.
type HandleMessageInput struct {
	ChatID  string
	Message string
}

// --- UseCase outputs ---

// HandleMessageOutput is the persisted assistant turn.
type HandleMessageOutput struct {
	ChatID  string
	Message model.ChatMessage
	// Response is the structured payload also serialized into Message.
	Response TutorResponse
	// ToolResults carries tool confirmations for this turn. They are
	// returned to the caller but never folded back into the persisted
	// response payload.
	ToolResults []string
}

// PronunciationOutput is a pronunciation analysis plus its cache origin.
type PronunciationOutput struct {
	Analysis model.PronunciationAnalysis
	Cached   bool
}

// PhraseOutput is the random practice phrase contract.
type PhraseOutput struct {
	Phrase           string   `json:"phrase"`
	PhraseTargetLang string   `json:"phrase_target_lang,omitempty"`
	TargetLanguage   string   `json:"target_language,omitempty"`
	WordsUsed        []string `json:"words_used"`
}
