package services

import (
	"context"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/outbox"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// OutboxBridge turns use case integration requests into outbox messages.
type OutboxBridge struct {
	processor *OutboxProcessor
}

func NewOutboxBridge(processor *OutboxProcessor) *OutboxBridge {
	return &OutboxBridge{processor: processor}
}

func (b *OutboxBridge) DeliverOTP(ctx context.Context, identifier, code string) error {
	return b.enqueue(outbox.KindOTPDelivery, identifier, otpPayload{Identifier: identifier, Code: code})
}

func (b *OutboxBridge) RequestKYCReview(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return domain.ErrInvalidPayload
	}
	return b.enqueue(outbox.KindKYCReview, doc.ID, doc)
}

func (b *OutboxBridge) RequestPayout(ctx context.Context, commission *domain.Commission) error {
	if commission == nil {
		return domain.ErrInvalidPayload
	}
	return b.enqueue(outbox.KindPayoutRequest, commission.ID, commission)
}

func (b *OutboxBridge) enqueue(kind outbox.Kind, reference string, payload interface{}) error {
	if b.processor == nil {
		return domain.ErrInvalidPayload
	}
	msg, err := outbox.NewMessage(kind, reference, payload)
	if err != nil {
		return err
	}
	return b.processor.Enqueue(msg)
}

var _ usecase.IntegrationOutbox = (*OutboxBridge)(nil)
