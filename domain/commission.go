package domain

import (
	"math"
	"time"
)

type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionPaid    CommissionStatus = "paid"
)

// Split holds the fractions of a commission paid out to marketing and telecalling.
type Split struct {
	Marketing  float64 `json:"marketing"`
	Telecaller float64 `json:"telecaller"`
}

// DefaultSplit applies when a commission is recorded without an explicit split.
var DefaultSplit = Split{Marketing: 0.35, Telecaller: 0.05}

// Total is the combined fraction withheld from the gross amount.
func (s Split) Total() float64 {
	return s.Marketing + s.Telecaller
}

// Valid requires non-negative fractions summing to less than one.
func (s Split) Valid() bool {
	return s.Marketing >= 0 && s.Telecaller >= 0 && s.Total() < 1
}

// Net returns the amount left after the split is withheld, rounded to paise.
func (s Split) Net(amount float64) float64 {
	return math.Round(amount*(1-s.Total())*100) / 100
}

// Commission is a bookkeeping entry for a closed deal.
type Commission struct {
	ID     string           `json:"id"`
	UserID string           `json:"user_id"`
	Amount float64          `json:"amount"`
	City   string           `json:"city"`
	Split  Split            `json:"split"`
	Net    float64          `json:"net"`
	At     time.Time        `json:"at"`
	Status CommissionStatus `json:"status"`
}
