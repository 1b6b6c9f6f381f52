package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/outbox"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/integration"
)

// ProcessorConfig controls how frequently the outbox is drained.
type ProcessorConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// Integrations are the delivery targets of outbox messages.
type Integrations struct {
	OTP    integration.OTPSender
	KYC    integration.KYCVerifier
	Payout integration.PayoutGateway
}

type otpPayload struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

// OutboxProcessor delivers queued integration requests on a cron schedule.
type OutboxProcessor struct {
	store   *outbox.Store
	targets Integrations
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     ProcessorConfig
}

func NewOutboxProcessor(store *outbox.Store, targets Integrations, logger *zap.Logger, cfg ProcessorConfig) *OutboxProcessor {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &OutboxProcessor{
		store:   store,
		targets: targets,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", max(1, int(cfg.Interval.Seconds())))
	_, _ = p.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := p.Drain(ctx); err != nil {
			p.logger.Error("outbox drain failed", zap.Error(err))
		}
	})

	return p
}

// Start launches the cron scheduler.
func (p *OutboxProcessor) Start() {
	if p == nil || p.cron == nil {
		return
	}
	p.cron.Start()
	p.logger.Info("outbox processor started", zap.Duration("interval", p.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (p *OutboxProcessor) Stop(ctx context.Context) {
	if p == nil || p.cron == nil {
		return
	}
	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	p.logger.Info("outbox processor stopped")
}

// Enqueue persists msg for the next drain.
func (p *OutboxProcessor) Enqueue(msg outbox.Message) error {
	if p == nil || p.store == nil {
		return fmt.Errorf("outbox processor not configured")
	}
	stored, err := p.store.Enqueue(msg)
	if err != nil {
		return err
	}
	p.logger.Debug("integration request queued",
		zap.String("message_id", stored.ID),
		zap.String("kind", string(stored.Kind)),
		zap.String("reference", stored.Reference))
	return nil
}

// Drain delivers one batch synchronously. Failed messages are retried on later
// drains until MaxRetries is reached, then dropped.
func (p *OutboxProcessor) Drain(ctx context.Context) error {
	if p == nil || p.store == nil {
		return nil
	}

	msgs, err := p.store.Batch(p.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.deliver(ctx, msg); err != nil {
			p.logger.Error("failed to deliver integration request",
				zap.String("message_id", msg.ID),
				zap.String("kind", string(msg.Kind)),
				zap.Error(err))

			if msg.Attempts+1 >= p.cfg.MaxRetries {
				p.logger.Warn("dropping integration request (max retries reached)", zap.String("message_id", msg.ID))
				_ = p.store.Ack(msg)
				continue
			}
			if _, err := p.store.Retry(msg, err); err != nil {
				p.logger.Error("failed to requeue integration request", zap.Error(err))
			}
			continue
		}

		if err := p.store.Ack(msg); err != nil {
			p.logger.Warn("failed to purge delivered integration request", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of queued requests.
func (p *OutboxProcessor) Size() int {
	if p == nil || p.store == nil {
		return 0
	}
	size, err := p.store.Size()
	if err != nil {
		return 0
	}
	return size
}

func (p *OutboxProcessor) deliver(ctx context.Context, msg outbox.Message) error {
	switch msg.Kind {
	case outbox.KindOTPDelivery:
		if p.targets.OTP == nil {
			return fmt.Errorf("no otp sender configured")
		}
		var payload otpPayload
		if err := msg.Decode(&payload); err != nil {
			return err
		}
		return p.targets.OTP.SendOTP(ctx, payload.Identifier, payload.Code)

	case outbox.KindKYCReview:
		if p.targets.KYC == nil {
			return fmt.Errorf("no kyc verifier configured")
		}
		var doc domain.Document
		if err := msg.Decode(&doc); err != nil {
			return err
		}
		return p.targets.KYC.SubmitForReview(ctx, doc)

	case outbox.KindPayoutRequest:
		if p.targets.Payout == nil {
			return fmt.Errorf("no payout gateway configured")
		}
		var commission domain.Commission
		if err := msg.Decode(&commission); err != nil {
			return err
		}
		return p.targets.Payout.RequestPayout(ctx, commission)

	default:
		return fmt.Errorf("unsupported message kind %s", msg.Kind)
	}
}
