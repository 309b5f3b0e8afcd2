package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"language-tutor/internal/model"
)

// formatHistory renders the tail of a conversation into the plain-text
// transcript the prompts expect. Only the most recent messages are kept
// so a long chat never crowds out the current request.
func (uc implUseCase) formatHistory(messages []model.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}

	if len(messages) > uc.cfg.HistoryFormatLimit {
		messages = messages[len(messages)-uc.cfg.HistoryFormatLimit:]
	}

	var b strings.Builder
	for _, msg := range messages {
		var label string
		switch msg.Role {
		case model.RoleUser:
			label = "User"
		case model.RoleAssistant:
			label = "Assistant"
		default:
			label = "System"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, msg.TextContent())
	}

	return strings.TrimRight(b.String(), "\n")
}

// chatTitle derives a stable title for a new chat from its first message.
func chatTitle(message string) string {
	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) <= titleMaxRunes {
		return message
	}

	runes := []rune(message)
	return string(runes[:titleMaxRunes]) + "..."
}
