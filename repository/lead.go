package repository

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	ListByRecipient(ctx context.Context, userID string) ([]domain.Lead, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Lead, error)
}
