package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"chatrelay/internal/service/chat"
)

// Handler wires HTTP routes to the chat service.
type Handler struct {
	chat *chat.Service
}

// NewHandler constructs a Handler instance.
func NewHandler(service *chat.Service) *Handler {
	return &Handler{chat: service}
}

// CORSMiddleware restricts cross-origin access to the configured frontend
// origin.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/new-chat", h.newChat)
	router.POST("/chats", h.submitPrompt)
	router.POST("/fetch", h.fetchChat)
}

func (h *Handler) newChat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chatId": h.chat.CreateSession()})
}

type chatRequest struct {
	ChatID string `json:"chatId"`
	Prompt string `json:"prompt"`
}

func (h *Handler) submitPrompt(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.ChatID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	messages, topic, err := h.chat.SubmitPrompt(c.Request.Context(), req.ChatID, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrSummarization):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error summarizing chat topic"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error communicating with completion provider"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"topic":    topic,
	})
}

type fetchRequest struct {
	ChatID string `json:"chatId"`
}

func (h *Handler) fetchChat(c *gin.Context) {
	var req fetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	messages, err := h.chat.FetchSession(req.ChatID)
	if err != nil {
		if errors.Is(err, chat.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat ID " + req.ChatID + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching chat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
