package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/silverhold/codehub-backend/internal/chat/service"
)

// Handler exposes the chat widget's message log over HTTP.
type Handler struct {
	chat *service.ChatService
}

// New creates a new chat handler.
func New(chat *service.ChatService) *Handler {
	return &Handler{chat: chat}
}

type postMessageReq struct {
	Sender string `json:"sender,omitempty"`
	Text   string `json:"text"`
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "messages": h.chat.Messages()})
}

func (h *Handler) post(c *gin.Context) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	msg := h.chat.Post(c.Request.Context(), strings.TrimSpace(req.Sender), req.Text)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": msg})
}
