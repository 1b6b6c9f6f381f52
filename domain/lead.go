package domain

import "time"

type LeadSource string

const (
	LeadSourceManual    LeadSource = "Manual"
	LeadSourceAutoMatch LeadSource = "AutoMatch"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead links a prospective contact to a listing and the user responsible for it.
// FromUserID is empty when the lead was generated without a known contact.
type Lead struct {
	ID         string     `json:"id"`
	ListingID  string     `json:"listing_id"`
	FromUserID string     `json:"from_user_id,omitempty"`
	ToUserID   string     `json:"to_user_id"`
	Source     LeadSource `json:"source"`
	Status     LeadStatus `json:"status"`
	At         time.Time  `json:"at"`
}
