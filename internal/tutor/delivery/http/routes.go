package http

import (
	"github.com/gin-gonic/gin"

	"language-tutor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All routes
// require a session token; the chat-facing routes are additionally rate
// limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tutorGroup := rg.Group("/tutor")
	{
		tutorGroup.POST("/chat", mw.Auth(), mw.RateLimit(), h.Chat)
		tutorGroup.POST("/pronunciation", mw.Auth(), mw.RateLimit(), h.Pronunciation)
		tutorGroup.POST("/random-phrase", mw.Auth(), mw.RateLimit(), h.RandomPhrase)
	}

	chats := rg.Group("/chats")
	{
		chats.GET("", mw.Auth(), h.ListChats)
		chats.GET("/:id/messages", mw.Auth(), h.ListMessages)
	}

	words := rg.Group("/words")
	{
		words.GET("", mw.Auth(), h.ListWordPairs)
		words.DELETE("/:id", mw.Auth(), h.DeleteWordPair)
	}

	profile := rg.Group("/profile")
	{
		profile.GET("", mw.Auth(), h.GetProfile)
		profile.PUT("/target-language", mw.Auth(), h.UpdateTargetLanguage)
	}
}
