package http

import (
	"time"

	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
)

// --- Request DTOs ---

type chatReq struct {
	ChatID  string `json:"chat_id"`
	Message string `json:"message" binding:"required"`
}

func (r chatReq) toInput() tutor.HandleMessageInput {
	return tutor.HandleMessageInput{
		ChatID:  r.ChatID,
		Message: r.Message,
	}
}

type pronunciationReq struct {
	Word string `json:"word" binding:"required"`
}

type randomPhraseReq struct {
	Words []string `json:"words" binding:"required"`
}

type updateLanguageReq struct {
	TargetLanguage string `json:"target_language" binding:"required"`
}

// --- Response DTOs ---

type tutorResponseResp struct {
	ResponseType string           `json:"response_type"`
	Content      string           `json:"content"`
	Data         map[string]any   `json:"data,omitempty"`
	ToolCalls    []tutor.ToolCall `json:"tool_calls,omitempty"`
}

func newTutorResponseResp(r tutor.TutorResponse) tutorResponseResp {
	return tutorResponseResp{
		ResponseType: string(r.ResponseType),
		Content:      r.Content,
		Data:         r.Data,
		ToolCalls:    r.ToolCalls,
	}
}

type chatResp struct {
	ChatID      string            `json:"chat_id"`
	MessageID   string            `json:"message_id"`
	Response    tutorResponseResp `json:"response"`
	ToolResults []string          `json:"tool_results,omitempty"`
}

func (h *handler) newChatResp(out tutor.HandleMessageOutput) chatResp {
	return chatResp{
		ChatID:      out.ChatID,
		MessageID:   out.Message.ID,
		Response:    newTutorResponseResp(out.Response),
		ToolResults: out.ToolResults,
	}
}

type pronunciationResp struct {
	Word                  string   `json:"word"`
	PhoneticTranscription string   `json:"phonetic_transcription"`
	Syllables             []string `json:"syllables"`
	PronunciationTips     []string `json:"pronunciation_tips"`
	MemoryAids            []string `json:"memory_aids"`
	CommonMistakes        []string `json:"common_mistakes"`
	Cached                bool     `json:"cached"`
}

func (h *handler) newPronunciationResp(out tutor.PronunciationOutput) pronunciationResp {
	return pronunciationResp{
		Word:                  out.Analysis.Word,
		PhoneticTranscription: out.Analysis.PhoneticTranscription,
		Syllables:             out.Analysis.Syllables,
		PronunciationTips:     out.Analysis.PronunciationTips,
		MemoryAids:            out.Analysis.MemoryAids,
		CommonMistakes:        out.Analysis.CommonMistakes,
		Cached:                out.Cached,
	}
}

type phraseResp struct {
	Phrase           string   `json:"phrase"`
	PhraseTargetLang string   `json:"phrase_target_lang,omitempty"`
	TargetLanguage   string   `json:"target_language"`
	WordsUsed        []string `json:"words_used"`
}

func (h *handler) newPhraseResp(out tutor.PhraseOutput) phraseResp {
	return phraseResp{
		Phrase:           out.Phrase,
		PhraseTargetLang: out.PhraseTargetLang,
		TargetLanguage:   out.TargetLanguage,
		WordsUsed:        out.WordsUsed,
	}
}

type chatItemResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listChatsResp struct {
	Chats []chatItemResp `json:"chats"`
}

func (h *handler) newListChatsResp(chats []model.Chat) listChatsResp {
	items := make([]chatItemResp, len(chats))
	for i, c := range chats {
		items[i] = chatItemResp{
			ID:        c.ID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	return listChatsResp{Chats: items}
}

type messageResp struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   any       `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type listMessagesResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newListMessagesResp(messages []model.ChatMessage) listMessagesResp {
	items := make([]messageResp, len(messages))
	for i, m := range messages {
		items[i] = messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		}
	}
	return listMessagesResp{Messages: items}
}

type wordPairResp struct {
	ID              string    `json:"id"`
	SourceWord      string    `json:"source_word"`
	TranslatedWord  string    `json:"translated_word"`
	ContextSentence string    `json:"context_sentence,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type listWordPairsResp struct {
	WordPairs []wordPairResp `json:"word_pairs"`
}

func (h *handler) newListWordPairsResp(pairs []model.WordPair) listWordPairsResp {
	items := make([]wordPairResp, len(pairs))
	for i, p := range pairs {
		items[i] = wordPairResp{
			ID:              p.ID,
			SourceWord:      p.SourceWord,
			TranslatedWord:  p.TranslatedWord,
			ContextSentence: p.ContextSentence.String,
			CreatedAt:       p.CreatedAt,
		}
	}
	return listWordPairsResp{WordPairs: items}
}

type profileResp struct {
	ID             string `json:"id"`
	Context        string `json:"context,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
}

func (h *handler) newProfileResp(p model.UserProfile) profileResp {
	return profileResp{
		ID:             p.ID,
		Context:        p.Context.String,
		TargetLanguage: p.TargetLanguage.String,
	}
}
