// Package integration names the external systems the marketplace hands work
// to. Every implementation here is a logging stub until a provider is chosen.
package integration

import (
	"context"

	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

// SupportNumber is dialed for every call until listings carry real contact numbers.
const SupportNumber = "+919999999999"

// OTPSender delivers one-time codes by SMS or email.
type OTPSender interface {
	SendOTP(ctx context.Context, identifier, code string) error
}

// KYCVerifier submits uploaded documents to an eKYC provider.
type KYCVerifier interface {
	SubmitForReview(ctx context.Context, doc domain.Document) error
}

// PayoutGateway settles commissions through a payment provider.
type PayoutGateway interface {
	RequestPayout(ctx context.Context, commission domain.Commission) error
}

// Dialer starts a phone call.
type Dialer interface {
	Dial(ctx context.Context, number string) error
}

// Stub implements every integration by logging what would be sent.
type Stub struct {
	logger *zap.Logger
}

func NewStub(logger *zap.Logger) *Stub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stub{logger: logger.Named("integration")}
}

func (s *Stub) SendOTP(ctx context.Context, identifier, code string) error {
	s.logger.Info("[INTEGRATE] SMS/Email OTP provider", zap.String("identifier", identifier))
	return ctx.Err()
}

func (s *Stub) SubmitForReview(ctx context.Context, doc domain.Document) error {
	s.logger.Info("[INTEGRATE] eKYC verification",
		zap.String("document_id", doc.ID),
		zap.String("user_id", doc.UserID),
		zap.String("doc_type", doc.DocType))
	return ctx.Err()
}

func (s *Stub) RequestPayout(ctx context.Context, commission domain.Commission) error {
	s.logger.Info("[INTEGRATE] payout gateway",
		zap.String("commission_id", commission.ID),
		zap.Float64("net", commission.Net))
	return ctx.Err()
}

func (s *Stub) Dial(ctx context.Context, number string) error {
	s.logger.Info("[INTEGRATE] telephony", zap.String("number", number))
	return ctx.Err()
}

var (
	_ OTPSender     = (*Stub)(nil)
	_ KYCVerifier   = (*Stub)(nil)
	_ PayoutGateway = (*Stub)(nil)
	_ Dialer        = (*Stub)(nil)
)
