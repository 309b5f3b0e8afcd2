package http

import (
	"github.com/gin-gonic/gin"

	"language-tutor/internal/tutor"
	pkgLog "language-tutor/pkg/log"
)

// Handler is the public interface for the tutor HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Pronunciation(c *gin.Context)
	RandomPhrase(c *gin.Context)
	ListChats(c *gin.Context)
	ListMessages(c *gin.Context)
	ListWordPairs(c *gin.Context)
	DeleteWordPair(c *gin.Context)
	GetProfile(c *gin.Context)
	UpdateTargetLanguage(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc tutor.UseCase
}

// New creates a new HTTP handler for the tutor domain.
func New(l pkgLog.Logger, uc tutor.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
