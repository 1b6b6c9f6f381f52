package usecase

import (
	"context"
	"time"
)

// Operation names a façade call for latency simulation and logging.
type Operation string

const (
	OpSendOTP          Operation = "send_otp"
	OpVerifyOTP        Operation = "verify_otp"
	OpLoginOrRegister  Operation = "login_or_register"
	OpListProperties   Operation = "list_properties"
	OpGetListing       Operation = "get_listing"
	OpCreateListing    Operation = "create_listing"
	OpToggleBoost      Operation = "toggle_boost"
	OpGetChat          Operation = "get_chat"
	OpSendMessage      Operation = "send_message"
	OpUploadDoc        Operation = "upload_doc"
	OpRecordCommission Operation = "record_commission"
	OpRequestPayout    Operation = "request_payout"
	OpScheduleVisit    Operation = "schedule_visit"
	OpCheckIn          Operation = "check_in"
	OpAssignLead       Operation = "assign_lead"
	OpListOwned        Operation = "list_owned"
)

var baseLatency = map[Operation]time.Duration{
	OpSendOTP:          250 * time.Millisecond,
	OpVerifyOTP:        150 * time.Millisecond,
	OpLoginOrRegister:  150 * time.Millisecond,
	OpListProperties:   200 * time.Millisecond,
	OpGetListing:       80 * time.Millisecond,
	OpCreateListing:    250 * time.Millisecond,
	OpToggleBoost:      100 * time.Millisecond,
	OpGetChat:          80 * time.Millisecond,
	OpSendMessage:      50 * time.Millisecond,
	OpUploadDoc:        150 * time.Millisecond,
	OpRecordCommission: 150 * time.Millisecond,
	OpRequestPayout:    150 * time.Millisecond,
	OpScheduleVisit:    120 * time.Millisecond,
	OpCheckIn:          80 * time.Millisecond,
	OpAssignLead:       100 * time.Millisecond,
	OpListOwned:        80 * time.Millisecond,
}

// Latency returns the simulated round trip of op before scaling.
func Latency(op Operation) time.Duration {
	return baseLatency[op]
}

// NotFoundPolicy decides how mutations aimed at unknown records behave.
type NotFoundPolicy string

const (
	// PolicySilent reports success and changes nothing.
	PolicySilent NotFoundPolicy = "silent"
	// PolicyStrict returns an ErrCodeNotFound error.
	PolicyStrict NotFoundPolicy = "strict"
)

// ParsePolicy maps a configured value to a policy; anything but "strict" is silent.
func ParsePolicy(value string) NotFoundPolicy {
	if NotFoundPolicy(value) == PolicyStrict {
		return PolicyStrict
	}
	return PolicySilent
}

// Runtime carries what every façade use case shares: simulated latency scale,
// the clock stamping records and the not-found policy.
type Runtime struct {
	LatencyScale float64
	Clock        func() time.Time
	NotFound     NotFoundPolicy
}

// Now returns the current time from the configured clock.
func (r Runtime) Now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

// Strict reports whether not-found conditions surface as errors.
func (r Runtime) Strict() bool {
	return r.NotFound == PolicyStrict
}

// Simulate suspends the caller for the scaled latency of op. It returns the
// context error when the caller gives up first, in which case nothing must be mutated.
func (r Runtime) Simulate(ctx context.Context, op Operation) error {
	if ctx == nil {
		ctx = context.Background()
	}
	delay := time.Duration(float64(baseLatency[op]) * r.LatencyScale)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
