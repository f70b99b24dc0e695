package message

import (
	"time"

	"github.com/google/uuid"
)

// Message represents the messages table
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair,priority:1"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair,priority:2"`
	Content    string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index:idx_messages_pair,priority:3"`
	UpdatedAt  time.Time
}

func (Message) TableName() string {
	return "messages"
}
