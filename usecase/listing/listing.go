package listing

import (
	"context"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

type filterInput struct {
	BudgetMin int64 `validate:"gte=0"`
	BudgetMax int64 `validate:"gte=0"`
}

// CreateInput is the add-listing form payload. At least one of DealerID and
// SellerID must be set so the generated lead has a recipient.
type CreateInput struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Price       int64           `json:"price" validate:"gte=0"`
	AreaGaz     float64         `json:"area_gaz" validate:"gte=0"`
	Front       float64         `json:"front" validate:"gte=0"`
	RoadWidth   float64         `json:"road_width" validate:"gte=0"`
	Category    domain.Category `json:"category"`
	Media       []domain.Media  `json:"media"`
	Location    domain.Location `json:"location"`
	DealerID    string          `json:"dealer_id" validate:"required_without=SellerID"`
	SellerID    string          `json:"seller_id" validate:"required_without=DealerID"`
}

type UseCase struct {
	listings repository.ListingRepository
	leads    repository.LeadRepository
	rt       usecase.Runtime
	logger   *zap.Logger
}

func New(listings repository.ListingRepository, leads repository.LeadRepository, rt usecase.Runtime, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		listings: listings,
		leads:    leads,
		rt:       rt,
		logger:   logger,
	}
}

// ListProperties returns the listings matching filter, boosted first and newest first.
func (uc *UseCase) ListProperties(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if err := usecase.Validate(filterInput{BudgetMin: filter.BudgetMin, BudgetMax: filter.BudgetMax}, "invalid filter"); err != nil {
		return nil, err
	}
	if err := uc.rt.Simulate(ctx, usecase.OpListProperties); err != nil {
		return nil, err
	}

	all, err := uc.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]domain.Listing, 0, len(all))
	for _, l := range all {
		if Matches(filter, l) {
			results = append(results, l)
		}
	}
	Rank(results)
	return results, nil
}

func (uc *UseCase) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpGetListing); err != nil {
		return nil, err
	}
	return uc.listings.GetByID(ctx, id)
}

// CreateListing stores an unboosted listing and opens a Manual lead for its
// dealer (or seller). It returns the new listing id.
func (uc *UseCase) CreateListing(ctx context.Context, in CreateInput) (string, error) {
	if err := usecase.Validate(in, "invalid listing"); err != nil {
		return "", err
	}
	if in.Category == "" {
		in.Category = domain.CategoryPlot
	}
	if !in.Category.IsValid() {
		return "", domain.NewValidationError("unknown category", "Category")
	}
	if err := uc.rt.Simulate(ctx, usecase.OpCreateListing); err != nil {
		return "", err
	}

	now := uc.rt.Now()
	created, err := uc.listings.Create(ctx, &domain.Listing{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		AreaGaz:     in.AreaGaz,
		Front:       in.Front,
		RoadWidth:   in.RoadWidth,
		Category:    in.Category,
		Media:       in.Media,
		Location:    in.Location,
		DealerID:    in.DealerID,
		SellerID:    in.SellerID,
		Boosted:     false,
		CreatedAt:   now,
	})
	if err != nil {
		return "", err
	}

	lead, err := uc.leads.Create(ctx, &domain.Lead{
		ListingID: created.ID,
		ToUserID:  created.Owner(),
		Source:    domain.LeadSourceManual,
		Status:    domain.LeadStatusNew,
		At:        now,
	})
	if err != nil {
		return "", err
	}

	uc.logger.Info("listing created",
		zap.String("listing_id", created.ID),
		zap.String("lead_id", lead.ID),
		zap.Int64("price", created.Price))
	return created.ID, nil
}

// ToggleBoost sets the boosted flag. An unknown listing is a silent success
// unless the runtime is strict.
func (uc *UseCase) ToggleBoost(ctx context.Context, listingID string, value bool) (bool, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpToggleBoost); err != nil {
		return false, err
	}
	err := uc.listings.SetBoosted(ctx, listingID, value)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		if uc.rt.Strict() {
			return false, err
		}
		uc.logger.Warn("boost toggle ignored for unknown listing", zap.String("listing_id", listingID))
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
