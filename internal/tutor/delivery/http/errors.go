package http

import (
	"errors"

	"language-tutor/internal/tutor"
	pkgErrors "language-tutor/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tutor.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message must not be empty")
	case errors.Is(err, tutor.ErrEmptyWord):
		return pkgErrors.NewHTTPError(400, "word must not be empty")
	case errors.Is(err, tutor.ErrEmptyWords):
		return pkgErrors.NewHTTPError(400, "words list must not be empty")
	case errors.Is(err, tutor.ErrInvalidLanguage):
		return pkgErrors.NewHTTPError(400, "unsupported target language")
	case errors.Is(err, tutor.ErrChatNotFound):
		return pkgErrors.NewHTTPError(404, "chat not found")
	case errors.Is(err, tutor.ErrWordPairNotFound):
		return pkgErrors.NewHTTPError(404, "word pair not found")
	case errors.Is(err, tutor.ErrMalformedAnalysis),
		errors.Is(err, tutor.ErrMalformedPhrase):
		return pkgErrors.NewHTTPError(502, "language model returned an unusable response")
	case errors.Is(err, tutor.ErrStoreUnavailable):
		return pkgErrors.NewHTTPError(500, "store unavailable, please retry")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
