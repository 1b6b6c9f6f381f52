package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Kind names the integration a message is addressed to.
type Kind string

const (
	KindOTPDelivery   Kind = "otp_delivery"
	KindKYCReview     Kind = "kyc_review"
	KindPayoutRequest Kind = "payout_request"
)

// Message is an integration request waiting for delivery.
type Message struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Reference  string          `json:"reference"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	LastError  string          `json:"last_error,omitempty"`
	EnqueuedAt time.Time       `json:"enqueued_at"`

	key []byte
}

// NewMessage encodes payload for kind. Reference is the record the request is
// about (identifier, document id, commission id).
func NewMessage(kind Kind, reference string, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: kind, Reference: reference, Payload: raw}, nil
}

// Decode unmarshals the payload into v.
func (m Message) Decode(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

func (m *Message) normalize() {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.EnqueuedAt.IsZero() {
		m.EnqueuedAt = time.Now()
	}
}
