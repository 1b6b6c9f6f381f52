package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/internal/infrastructure/outbox"
)

type recordingTargets struct {
	mu      sync.Mutex
	otps    []string
	docs    []string
	payouts []string
	fail    error
}

func (r *recordingTargets) SendOTP(ctx context.Context, identifier, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.otps = append(r.otps, identifier+":"+code)
	return nil
}

func (r *recordingTargets) SubmitForReview(ctx context.Context, doc domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.docs = append(r.docs, doc.ID)
	return nil
}

func (r *recordingTargets) RequestPayout(ctx context.Context, commission domain.Commission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.payouts = append(r.payouts, commission.ID)
	return nil
}

func newTestProcessor(t *testing.T, maxRetries int) (*OutboxProcessor, *OutboxBridge, *recordingTargets) {
	t.Helper()
	store, err := outbox.Open(filepath.Join(t.TempDir(), "outbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	targets := &recordingTargets{}
	p := NewOutboxProcessor(store, Integrations{OTP: targets, KYC: targets, Payout: targets}, nil, ProcessorConfig{
		Interval:   time.Hour,
		MaxRetries: maxRetries,
	})
	return p, NewOutboxBridge(p), targets
}

func TestOutbox_BridgeToDrain(t *testing.T) {
	p, bridge, targets := newTestProcessor(t, 3)
	ctx := context.Background()

	require.NoError(t, bridge.DeliverOTP(ctx, "9999999999", "123456"))
	require.NoError(t, bridge.RequestKYCReview(ctx, &domain.Document{ID: "DOC-1", UserID: "U-1"}))
	require.NoError(t, bridge.RequestPayout(ctx, &domain.Commission{ID: "COM-1", Net: 30000}))
	assert.Equal(t, 3, p.Size())

	require.NoError(t, p.Drain(ctx))
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, []string{"9999999999:123456"}, targets.otps)
	assert.Equal(t, []string{"DOC-1"}, targets.docs)
	assert.Equal(t, []string{"COM-1"}, targets.payouts)
}

func TestOutbox_RetriesThenDrops(t *testing.T) {
	p, bridge, targets := newTestProcessor(t, 2)
	ctx := context.Background()
	targets.fail = errors.New("provider down")

	require.NoError(t, bridge.RequestPayout(ctx, &domain.Commission{ID: "COM-9"}))

	require.NoError(t, p.Drain(ctx))
	assert.Equal(t, 1, p.Size(), "first failure is requeued")

	require.NoError(t, p.Drain(ctx))
	assert.Equal(t, 0, p.Size(), "dropped after max retries")
	assert.Empty(t, targets.payouts)
}

func TestOutbox_BridgeRejectsNil(t *testing.T) {
	_, bridge, _ := newTestProcessor(t, 3)

	assert.ErrorIs(t, bridge.RequestKYCReview(context.Background(), nil), domain.ErrInvalidPayload)
	assert.ErrorIs(t, bridge.RequestPayout(context.Background(), nil), domain.ErrInvalidPayload)
}

func TestDirectDelivery_CallsTargetsInline(t *testing.T) {
	targets := &recordingTargets{}
	d := NewDirectDelivery(Integrations{OTP: targets, KYC: targets, Payout: targets})
	ctx := context.Background()

	require.NoError(t, d.DeliverOTP(ctx, "a@b.c", "123456"))
	require.NoError(t, d.RequestKYCReview(ctx, &domain.Document{ID: "DOC-3"}))
	require.NoError(t, d.RequestPayout(ctx, &domain.Commission{ID: "COM-3"}))

	assert.Equal(t, []string{"a@b.c:123456"}, targets.otps)
	assert.Equal(t, []string{"DOC-3"}, targets.docs)
	assert.Equal(t, []string{"COM-3"}, targets.payouts)

	assert.NoError(t, NewDirectDelivery(Integrations{}).DeliverOTP(ctx, "x", "y"))
}
