package usecase

import "time"

const (
	defaultHistoryWindow      = 20
	defaultHistoryFormatLimit = 10
	defaultCacheSize          = 512
	defaultCacheTTL           = 30 * time.Minute

	titleMaxRunes = 50

	genericErrorMessage = "Sorry, something went wrong while preparing a reply. Please try again."

	genericRejectionMessage = "I can only help with language learning. Try asking about a word, a phrase, or a translation."
)
