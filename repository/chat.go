package repository

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

// ChatRepository stores messages grouped by room. Rooms come into existence on first append.
type ChatRepository interface {
	Messages(ctx context.Context, roomID string) ([]domain.ChatMessage, error)
	Append(ctx context.Context, roomID string, message *domain.ChatMessage) (*domain.ChatMessage, error)
}
