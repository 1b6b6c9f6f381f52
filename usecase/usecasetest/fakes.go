// Package usecasetest provides fakes shared by façade tests.
package usecasetest

import (
	"context"
	"sync"
	"time"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
	"github.com/atharsaifi001-eng/NEAT-RE/usecase"
)

// Clock is a manual clock that advances by Step on every reading, so records
// created one after another get strictly increasing timestamps.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start, Step: time.Second}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	current := c.now
	c.now = c.now.Add(c.Step)
	return current
}

// Runtime returns a zero-latency runtime driven by the clock.
func (c *Clock) Runtime(policy usecase.NotFoundPolicy) usecase.Runtime {
	return usecase.Runtime{Clock: c.Now, NotFound: policy}
}

// Outbox records integration requests instead of delivering them.
type Outbox struct {
	mu       sync.Mutex
	OTPs     []string
	Reviews  []string
	Payouts  []string
	FailWith error
}

func (o *Outbox) DeliverOTP(ctx context.Context, identifier, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.FailWith != nil {
		return o.FailWith
	}
	o.OTPs = append(o.OTPs, identifier)
	return nil
}

func (o *Outbox) RequestKYCReview(ctx context.Context, doc *domain.Document) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.FailWith != nil {
		return o.FailWith
	}
	o.Reviews = append(o.Reviews, doc.ID)
	return nil
}

func (o *Outbox) RequestPayout(ctx context.Context, commission *domain.Commission) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.FailWith != nil {
		return o.FailWith
	}
	o.Payouts = append(o.Payouts, commission.ID)
	return nil
}

var _ usecase.IntegrationOutbox = (*Outbox)(nil)
