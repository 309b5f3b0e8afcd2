package model

import "database/sql"

// TargetLanguage is the language the user is learning.
type TargetLanguage string

const (
	LanguagePolish     TargetLanguage = "polish"
	LanguageBelarusian TargetLanguage = "belarusian"
	LanguageItalian    TargetLanguage = "italian"
)

// ValidTargetLanguage reports whether lang is a supported target language.
func ValidTargetLanguage(lang string) bool {
	switch TargetLanguage(lang) {
	case LanguagePolish, LanguageBelarusian, LanguageItalian:
		return true
	}
	return false
}

// UserProfile holds per-user personalization. The row is lazily created on
// first access with null fields; it is never deleted by this service.
type UserProfile struct {
	ID             string         `db:"id"` // equals the user identity
	Context        sql.NullString `db:"context"`
	TargetLanguage sql.NullString `db:"target_language"`
}
