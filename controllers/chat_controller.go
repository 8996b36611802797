package controllers

import (
	"net/http"

	"healthscan/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
	Hub  *services.ChatHub
}

func NewChatController(cs *services.ChatService, hub *services.ChatHub) *ChatController {
	return &ChatController{Chat: cs, Hub: hub}
}

// POST /chat/sessions
func (cc *ChatController) StartSession(c *gin.Context) {
	session, err := cc.Chat.StartSession(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GET /chat/sessions/:id/messages
func (cc *ChatController) Messages(c *gin.Context) {
	msgs, err := cc.Chat.Messages(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// POST /chat/sessions/:id/messages  { "text": "Is SLS harmful?" }
func (cc *ChatController) Send(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, id := c.Request.Context(), c.Param("id")
	user, err := cc.Chat.PostUserMessage(ctx, id, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	cc.Hub.Broadcast(id, services.ChatEvent{Kind: services.EventMessage, Message: &user})
	cc.Hub.Broadcast(id, services.ChatEvent{Kind: services.EventTyping})

	bot, err := cc.Chat.Respond(ctx, id, req.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	cc.Hub.Broadcast(id, services.ChatEvent{Kind: services.EventMessage, Message: &bot})
	c.JSON(http.StatusOK, gin.H{"message": user, "reply": bot})
}

// GET /chat/suggestions
func (cc *ChatController) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": cc.Chat.Suggestions()})
}
