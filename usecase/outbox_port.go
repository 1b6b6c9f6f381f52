package usecase

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

// IntegrationOutbox hands work to external collaborators (SMS/email, eKYC,
// payouts) without the use cases knowing how delivery is retried.
type IntegrationOutbox interface {
	DeliverOTP(ctx context.Context, identifier, code string) error
	RequestKYCReview(ctx context.Context, doc *domain.Document) error
	RequestPayout(ctx context.Context, commission *domain.Commission) error
}
