package memory

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
)

type visitRepository struct {
	store *Store
}

func NewVisitRepository(store *Store) repository.VisitRepository {
	return &visitRepository{store: store}
}

func (r *visitRepository) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if v := r.find(id); v != nil {
		return v.Clone(), nil
	}
	return nil, domain.ErrVisitNotFound
}

func (r *visitRepository) Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error) {
	if visit == nil {
		return nil, domain.ErrInvalidPayload
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored := visit.Clone()
	stored.ID = r.store.assignID(PrefixVisit, visit.ID)
	r.store.visits = append(r.store.visits, stored)
	return stored.Clone(), nil
}

func (r *visitRepository) ListByUser(ctx context.Context, userID string) ([]domain.Visit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := []domain.Visit{}
	for _, v := range r.store.visits {
		if v.UserID == userID {
			out = append(out, *v.Clone())
		}
	}
	return out, nil
}

func (r *visitRepository) AttachCheckIn(ctx context.Context, id string, checkIn domain.CheckIn) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	v := r.find(id)
	if v == nil {
		return domain.ErrVisitNotFound
	}
	if v.CheckIn != nil {
		return domain.ErrAlreadyCheckedIn
	}
	ci := checkIn
	v.CheckIn = &ci
	return nil
}

func (r *visitRepository) find(id string) *domain.Visit {
	for _, v := range r.store.visits {
		if v.ID == id {
			return v
		}
	}
	return nil
}
