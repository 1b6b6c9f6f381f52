package memory

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
)

type leadRepository struct {
	store *Store
}

func NewLeadRepository(store *Store) repository.LeadRepository {
	return &leadRepository{store: store}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if lead == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := *lead
	stored.ID = r.store.assignID(PrefixLead, lead.ID)
	r.store.leads = append(r.store.leads, &stored)
	out := stored
	return &out, nil
}

func (r *leadRepository) ListByRecipient(ctx context.Context, userID string) ([]domain.Lead, error) {
	return r.filter(func(l *domain.Lead) bool { return l.ToUserID == userID }), nil
}

func (r *leadRepository) ListByListing(ctx context.Context, listingID string) ([]domain.Lead, error) {
	return r.filter(func(l *domain.Lead) bool { return l.ListingID == listingID }), nil
}

func (r *leadRepository) filter(keep func(*domain.Lead) bool) []domain.Lead {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := []domain.Lead{}
	for _, l := range r.store.leads {
		if keep(l) {
			out = append(out, *l)
		}
	}
	return out
}
