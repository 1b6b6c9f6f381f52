package memory

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
)

type documentRepository struct {
	store *Store
}

func NewDocumentRepository(store *Store) repository.DocumentRepository {
	return &documentRepository{store: store}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if doc == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := *doc
	stored.ID = r.store.assignID(PrefixDocument, doc.ID)
	r.store.documents = append(r.store.documents, &stored)
	out := stored
	return &out, nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := []domain.Document{}
	for _, d := range r.store.documents {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}
