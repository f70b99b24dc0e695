package handler

import (
	"net/http"

	"heartlink/internal/services"
	"heartlink/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send creates a message from the authenticated user to another user.
func (h *MessageHandler) Send(c *gin.Context) {
	senderID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized", "UNAUTHORIZED"))
		return
	}

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body", "INVALID_REQUEST"))
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid receiver id", "INVALID_REQUEST"))
		return
	}

	m, err := h.service.Send(c.Request.Context(), senderID, receiverID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.NewMessageDTO(m)))
}

// Conversation lists messages between the authenticated user and the user
// named by the "with" query parameter, oldest first.
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Unauthorized", "UNAUTHORIZED"))
		return
	}

	otherID, err := uuid.Parse(c.Query("with"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid user id", "INVALID_REQUEST"))
		return
	}

	messages, err := h.service.ListConversation(c.Request.Context(), userID, otherID)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, httpdto.NewMessageDTO(m))
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ConversationResponse{Messages: dtos}))
}
