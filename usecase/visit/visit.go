package visit

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

type ScheduleInput struct {
	ListingID string `json:"listing_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
	When      string `json:"when" validate:"required"`
}

type CheckInInput struct {
	VisitID string  `json:"visit_id" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type UseCase struct {
	visits   repository.VisitRepository
	listings repository.ListingRepository
	rt       usecase.Runtime
	logger   *zap.Logger
}

func New(visits repository.VisitRepository, listings repository.ListingRepository, rt usecase.Runtime, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{visits: visits, listings: listings, rt: rt, logger: logger}
}

// ScheduleVisit books a visit. When is kept as the user typed it.
func (uc *UseCase) ScheduleVisit(ctx context.Context, in ScheduleInput) (string, error) {
	if err := usecase.Validate(in, "invalid visit"); err != nil {
		return "", err
	}
	if err := uc.rt.Simulate(ctx, usecase.OpScheduleVisit); err != nil {
		return "", err
	}
	created, err := uc.visits.Create(ctx, &domain.Visit{
		ListingID: in.ListingID,
		UserID:    in.UserID,
		When:      in.When,
		Status:    domain.VisitScheduled,
	})
	if err != nil {
		return "", err
	}
	uc.logger.Info("visit scheduled",
		zap.String("visit_id", created.ID),
		zap.String("listing_id", created.ListingID),
		zap.String("when", created.When))
	return created.ID, nil
}

// CheckIn attaches the visitor position to a visit. An unknown visit is a
// silent success unless the runtime is strict; a second check-in is a conflict.
func (uc *UseCase) CheckIn(ctx context.Context, in CheckInInput) (bool, error) {
	if err := usecase.Validate(in, "invalid check-in"); err != nil {
		return false, err
	}
	if err := uc.rt.Simulate(ctx, usecase.OpCheckIn); err != nil {
		return false, err
	}

	v, err := uc.visits.GetByID(ctx, in.VisitID)
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		if uc.rt.Strict() {
			return false, err
		}
		uc.logger.Warn("check-in ignored for unknown visit", zap.String("visit_id", in.VisitID))
		return true, nil
	}
	if err != nil {
		return false, err
	}

	ci := domain.CheckIn{Lat: in.Lat, Lng: in.Lng, At: uc.rt.Now()}
	if l, err := uc.listings.GetByID(ctx, v.ListingID); err == nil {
		ci.DistanceMeters = geo.Distance(l.Location.Point(), orb.Point{in.Lng, in.Lat})
	}

	if err := uc.visits.AttachCheckIn(ctx, v.ID, ci); err != nil {
		return false, err
	}
	uc.logger.Info("visit checked in",
		zap.String("visit_id", v.ID),
		zap.Float64("distance_m", ci.DistanceMeters))
	return true, nil
}

func (uc *UseCase) ListVisits(ctx context.Context, userID string) ([]domain.Visit, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpListOwned); err != nil {
		return nil, err
	}
	return uc.visits.ListByUser(ctx, userID)
}
