package tutor

import "errors"

// Domain-specific errors for the tutor package.
var (
	// Validation failures, rejected before any remote call.
	ErrEmptyMessage    = errors.New("message is empty")
	ErrEmptyWord       = errors.New("word is empty")
	ErrEmptyWords      = errors.New("words list is empty")
	ErrInvalidLanguage = errors.New("unsupported target language")

	// Not-found conditions scoped to the calling user.
	ErrChatNotFound     = errors.New("chat not found")
	ErrWordPairNotFound = errors.New("word pair not found")

	// Capability output that does not match its declared contract.
	ErrMalformedAnalysis = errors.New("malformed pronunciation analysis")
	ErrMalformedPhrase   = errors.New("malformed phrase output")

	// The one failure that propagates as a request-level error: without
	// persistence the conversation is not durable.
	ErrStoreUnavailable = errors.New("store unavailable")
)
