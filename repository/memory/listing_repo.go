package memory

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
)

type listingRepository struct {
	store *Store
}

// NewListingRepository returns a ListingRepository backed by the store.
func NewListingRepository(store *Store) repository.ListingRepository {
	return &listingRepository{store: store}
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if l := r.find(id); l != nil {
		return l.Clone(), nil
	}
	return nil, domain.ErrListingNotFound
}

func (r *listingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Listing, 0, len(r.store.listings))
	for _, l := range r.store.listings {
		out = append(out, *l.Clone())
	}
	return out, nil
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if listing == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := listing.Clone()
	stored.ID = r.store.assignID(PrefixListing, listing.ID)
	r.store.listings = append(r.store.listings, stored)
	return stored.Clone(), nil
}

func (r *listingRepository) SetBoosted(ctx context.Context, id string, boosted bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	l := r.find(id)
	if l == nil {
		return domain.ErrListingNotFound
	}
	l.Boosted = boosted
	return nil
}

func (r *listingRepository) find(id string) *domain.Listing {
	for _, l := range r.store.listings {
		if l.ID == id {
			return l
		}
	}
	return nil
}
