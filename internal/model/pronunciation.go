package model

import "time"

// PronunciationAnalysis is the structured output of the pronunciation
// capability for a single word.
type PronunciationAnalysis struct {
	Word                  string   `json:"word"`
	PhoneticTranscription string   `json:"phonetic_transcription"`
	Syllables             []string `json:"syllables"`
	PronunciationTips     []string `json:"pronunciation_tips"`
	MemoryAids            []string `json:"memory_aids"`
	CommonMistakes        []string `json:"common_mistakes"`
}

// PronunciationEntry is a cached analysis keyed by (UserID, Word). Repeated
// writes for the same key overwrite the value (last-writer-wins).
type PronunciationEntry struct {
	UserID    string                `db:"user_id"`
	Word      string                `db:"word"`
	Analysis  PronunciationAnalysis `db:"-"`
	UpdatedAt time.Time             `db:"updated_at"`
}
