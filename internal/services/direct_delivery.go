package services

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// DirectDelivery calls the integrations inline. It is used when the outbox is disabled.
type DirectDelivery struct {
	targets Integrations
}

func NewDirectDelivery(targets Integrations) *DirectDelivery {
	return &DirectDelivery{targets: targets}
}

func (d *DirectDelivery) DeliverOTP(ctx context.Context, identifier, code string) error {
	if d.targets.OTP == nil {
		return nil
	}
	return d.targets.OTP.SendOTP(ctx, identifier, code)
}

func (d *DirectDelivery) RequestKYCReview(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return domain.ErrInvalidPayload
	}
	if d.targets.KYC == nil {
		return nil
	}
	return d.targets.KYC.SubmitForReview(ctx, *doc)
}

func (d *DirectDelivery) RequestPayout(ctx context.Context, commission *domain.Commission) error {
	if commission == nil {
		return domain.ErrInvalidPayload
	}
	if d.targets.Payout == nil {
		return nil
	}
	return d.targets.Payout.RequestPayout(ctx, *commission)
}

var _ usecase.IntegrationOutbox = (*DirectDelivery)(nil)
