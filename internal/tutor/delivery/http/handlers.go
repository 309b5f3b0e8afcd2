package http

import (
	"github.com/gin-gonic/gin"

	"language-tutor/internal/middleware"
	"language-tutor/internal/model"
	"language-tutor/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one tutoring turn: routes the message, invokes the specialist, executes tool calls and persists the conversation.
// @Tags        Tutor
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional chat id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Chat Not Found"
// @Failure     500 {object} response.Resp "Store Unavailable"
// @Security    BearerAuth
// @Router      /api/v1/tutor/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.HandleMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Pronunciation godoc
// @Summary     Pronunciation tips for a word
// @Description Returns a cached or freshly generated pronunciation analysis.
// @Tags        Tutor
// @Accept      json
// @Produce     json
// @Param       body body pronunciationReq true "Word to analyze"
// @Success     200 {object} pronunciationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Unusable Model Output"
// @Security    BearerAuth
// @Router      /api/v1/tutor/pronunciation [POST]
func (h *handler) Pronunciation(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processPronunciationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.PronunciationTips(ctx, sc, req.Word)
	if err != nil {
		h.l.Errorf(ctx, "uc.PronunciationTips: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPronunciationResp(output))
}

// RandomPhrase godoc
// @Summary     Practice phrase from saved words
// @Description Builds one practice phrase using the given saved words.
// @Tags        Tutor
// @Accept      json
// @Produce     json
// @Param       body body randomPhraseReq true "Words to build the phrase from"
// @Success     200 {object} phraseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Unusable Model Output"
// @Security    BearerAuth
// @Router      /api/v1/tutor/random-phrase [POST]
func (h *handler) RandomPhrase(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processRandomPhraseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RandomPhrase(ctx, sc, req.Words)
	if err != nil {
		h.l.Errorf(ctx, "uc.RandomPhrase: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPhraseResp(output))
}

// ListChats godoc
// @Summary     List the caller's chats
// @Tags        Chats
// @Produce     json
// @Success     200 {object} listChatsResp
// @Security    BearerAuth
// @Router      /api/v1/chats [GET]
func (h *handler) ListChats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	chats, err := h.uc.ListChats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListChats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListChatsResp(chats))
}

// ListMessages godoc
// @Summary     List one chat's messages
// @Tags        Chats
// @Produce     json
// @Param       id path string true "Chat ID"
// @Success     200 {object} listMessagesResp
// @Failure     404 {object} response.Resp "Chat Not Found"
// @Security    BearerAuth
// @Router      /api/v1/chats/{id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	messages, err := h.uc.ListMessages(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMessagesResp(messages))
}

// ListWordPairs godoc
// @Summary     List saved flashcard pairs
// @Tags        Words
// @Produce     json
// @Success     200 {object} listWordPairsResp
// @Security    BearerAuth
// @Router      /api/v1/words [GET]
func (h *handler) ListWordPairs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	pairs, err := h.uc.ListWordPairs(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWordPairs: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListWordPairsResp(pairs))
}

// DeleteWordPair godoc
// @Summary     Delete a saved flashcard pair
// @Tags        Words
// @Produce     json
// @Param       id path string true "Word pair ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/v1/words/{id} [DELETE]
func (h *handler) DeleteWordPair(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteWordPair(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteWordPair: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// GetProfile godoc
// @Summary     Get the caller's profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Security    BearerAuth
// @Router      /api/v1/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	profile, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(profile))
}

// UpdateTargetLanguage godoc
// @Summary     Set the caller's target language
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body updateLanguageReq true "Target language"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Unsupported Language"
// @Security    BearerAuth
// @Router      /api/v1/profile/target-language [PUT]
func (h *handler) UpdateTargetLanguage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processUpdateLanguageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.uc.UpdateTargetLanguage(ctx, sc, req.TargetLanguage)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTargetLanguage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(profile))
}
