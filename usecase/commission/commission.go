package commission

import (
	"context"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/repository"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// RecordInput logs a commission. A nil Split applies domain.DefaultSplit.
type RecordInput struct {
	UserID string        `json:"user_id" validate:"required"`
	Amount float64       `json:"amount" validate:"gte=0"`
	City   string        `json:"city"`
	Split  *domain.Split `json:"split,omitempty"`
}

type UseCase struct {
	commissions repository.CommissionRepository
	outbox      usecase.IntegrationOutbox
	rt          usecase.Runtime
	logger      *zap.Logger
}

func New(commissions repository.CommissionRepository, outbox usecase.IntegrationOutbox, rt usecase.Runtime, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{commissions: commissions, outbox: outbox, rt: rt, logger: logger}
}

// RecordCommission stores a pending commission with its net amount after the split.
func (uc *UseCase) RecordCommission(ctx context.Context, in RecordInput) (string, error) {
	if err := usecase.Validate(in, "invalid commission"); err != nil {
		return "", err
	}
	split := domain.DefaultSplit
	if in.Split != nil {
		split = *in.Split
	}
	if !split.Valid() {
		return "", domain.NewValidationError("split fractions must be non-negative and sum below one", "Split")
	}
	if err := uc.rt.Simulate(ctx, usecase.OpRecordCommission); err != nil {
		return "", err
	}

	created, err := uc.commissions.Create(ctx, &domain.Commission{
		UserID: in.UserID,
		Amount: in.Amount,
		City:   in.City,
		Split:  split,
		Net:    split.Net(in.Amount),
		At:     uc.rt.Now(),
		Status: domain.CommissionPending,
	})
	if err != nil {
		return "", err
	}
	uc.logger.Info("commission recorded",
		zap.String("commission_id", created.ID),
		zap.Float64("amount", created.Amount),
		zap.Float64("net", created.Net))
	return created.ID, nil
}

func (uc *UseCase) ListCommissions(ctx context.Context, userID string) ([]domain.Commission, error) {
	if err := uc.rt.Simulate(ctx, usecase.OpListOwned); err != nil {
		return nil, err
	}
	return uc.commissions.ListByUser(ctx, userID)
}

// RequestPayout hands a commission owned by userID to the payout gateway. The
// commission stays pending until the gateway settles it.
func (uc *UseCase) RequestPayout(ctx context.Context, userID, commissionID string) error {
	if err := uc.rt.Simulate(ctx, usecase.OpRequestPayout); err != nil {
		return err
	}
	c, err := uc.commissions.GetByID(ctx, commissionID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		uc.logger.Warn("payout requested for foreign commission",
			zap.String("commission_id", c.ID),
			zap.String("user_id", userID))
		return domain.ErrNotCommissionOwner
	}
	if c.Status == domain.CommissionPaid {
		return domain.NewError(domain.ErrCodeConflict, "commission already paid")
	}
	if uc.outbox == nil {
		return domain.NewError(domain.ErrCodeInternal, "payout gateway unavailable")
	}
	if err := uc.outbox.RequestPayout(ctx, c); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "failed to queue payout", err)
	}
	uc.logger.Info("payout requested", zap.String("commission_id", c.ID), zap.Float64("net", c.Net))
	return nil
}
