package memory

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
)

type chatRepository struct {
	store *Store
}

func NewChatRepository(store *Store) repository.ChatRepository {
	return &chatRepository{store: store}
}

// Messages returns a copy of the room history; unknown rooms yield an empty slice.
func (r *chatRepository) Messages(ctx context.Context, roomID string) ([]domain.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.ChatMessage{}, r.store.chats[roomID]...), nil
}

func (r *chatRepository) Append(ctx context.Context, roomID string, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if message == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := *message
	stored.ID = r.store.assignID(PrefixMessage, message.ID)
	r.store.chats[roomID] = append(r.store.chats[roomID], stored)
	return &stored, nil
}
