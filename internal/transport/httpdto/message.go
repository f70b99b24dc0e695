package httpdto

import (
	"time"

	"heartlink/internal/domain/message"
)

// SendMessageRequest is used for POST /messages
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

type MessageDTO struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

func NewMessageDTO(m message.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID.String(),
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		Content:    m.Content,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}

type ConversationResponse struct {
	Messages []MessageDTO `json:"messages"`
}
