package repository

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

type VisitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Visit, error)
	Create(ctx context.Context, visit *domain.Visit) (*domain.Visit, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Visit, error)
	// AttachCheckIn sets the check-in of a visit exactly once.
	AttachCheckIn(ctx context.Context, id string, checkIn domain.CheckIn) error
}
