package memory

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
)

type commissionRepository struct {
	store *Store
}

func NewCommissionRepository(store *Store) repository.CommissionRepository {
	return &commissionRepository{store: store}
}

func (r *commissionRepository) GetByID(ctx context.Context, id string) (*domain.Commission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.commissions {
		if c.ID == id {
			out := *c
			return &out, nil
		}
	}
	return nil, domain.ErrCommissionNotFound
}

func (r *commissionRepository) Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error) {
	if commission == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := *commission
	stored.ID = r.store.assignID(PrefixCommission, commission.ID)
	r.store.commissions = append(r.store.commissions, &stored)
	out := stored
	return &out, nil
}

func (r *commissionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Commission, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := []domain.Commission{}
	for _, c := range r.store.commissions {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}
