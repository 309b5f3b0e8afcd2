package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPronunciationReq binds the pronunciation request body.
func (h *handler) processPronunciationReq(c *gin.Context) (pronunciationReq, error) {
	var req pronunciationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRandomPhraseReq binds the random phrase request body.
func (h *handler) processRandomPhraseReq(c *gin.Context) (randomPhraseReq, error) {
	var req randomPhraseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateLanguageReq binds the target language update body.
func (h *handler) processUpdateLanguageReq(c *gin.Context) (updateLanguageReq, error) {
	var req updateLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
