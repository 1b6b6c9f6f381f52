package lead

import (
	"context"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// MatchContactID is the synthetic prospect behind auto-assigned leads until a
// matching engine supplies real contacts.
const MatchContactID = "U-999"

type UseCase struct {
	leads    repository.LeadRepository
	listings repository.ListingRepository
	rt       usecase.Runtime
	logger   *zap.Logger
}

func New(leads repository.LeadRepository, listings repository.ListingRepository, rt usecase.Runtime, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{leads: leads, listings: listings, rt: rt, logger: logger}
}

// ListLeads returns the leads addressed to userID in creation order.
func (uc *UseCase) ListLeads(ctx context.Context, userID string) ([]domain.Lead, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpListOwned); err != nil {
		return nil, err
	}
	return uc.leads.ListByRecipient(ctx, userID)
}

// AutoAssign hands userID an AutoMatch lead on the oldest stored listing.
func (uc *UseCase) AutoAssign(ctx context.Context, userID string) (*domain.Lead, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user is required", "UserID")
	}
	if err := uc.rt.Simulate(ctx, usecase.OpAssignLead); err != nil {
		return nil, err
	}

	listings, err := uc.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, domain.NewError(domain.ErrCodeNotFound, "no listing to assign")
	}

	created, err := uc.leads.Create(ctx, &domain.Lead{
		ListingID:  listings[0].ID,
		FromUserID: MatchContactID,
		ToUserID:   userID,
		Source:     domain.LeadSourceAutoMatch,
		Status:     domain.LeadStatusNew,
		At:         uc.rt.Now(),
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("lead auto-assigned",
		zap.String("lead_id", created.ID),
		zap.String("listing_id", created.ListingID),
		zap.String("user_id", userID))
	return created, nil
}
