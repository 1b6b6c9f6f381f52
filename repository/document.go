package repository

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Document, error)
}
