package repository

import (
	"context"

	"heartlink/internal/domain/message"
	"heartlink/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository is the store-access layer for user records. Create expects
// PasswordHash to be populated; no plaintext secret ever reaches this layer.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Update(ctx context.Context, u *user.User) error
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	ListConversation(ctx context.Context, a, b uuid.UUID) ([]message.Message, error)
}
