package repository

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

// ListingRepository returns listings in insertion order; ranking is the caller's concern.
type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	SetBoosted(ctx context.Context, id string, boosted bool) error
}
