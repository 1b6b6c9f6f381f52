package repository

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

type CommissionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Commission, error)
	Create(ctx context.Context, commission *domain.Commission) (*domain.Commission, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Commission, error)
}
