package services

import (
	"context"
	"errors"
	"time"

	"heartlink/internal/domain/message"
	"heartlink/internal/repository"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/google/uuid"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *MessageService) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error) {
	if content == "" {
		return message.Message{}, heartlink_errors.Invalid("Message content is required")
	}
	if senderID == receiverID {
		return message.Message{}, heartlink_errors.Invalid("Cannot send a message to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, heartlink_errors.ErrNotFound) {
			return message.Message{}, heartlink_errors.NotFound("Receiver not found")
		}
		return message.Message{}, err
	}

	m := &message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, m); err != nil {
		return message.Message{}, err
	}

	return *m, nil
}

func (s *MessageService) ListConversation(ctx context.Context, userID, otherID uuid.UUID) ([]message.Message, error) {
	return s.messageRepo.ListConversation(ctx, userID, otherID)
}
