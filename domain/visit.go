package domain

import "time"

type VisitStatus string

const (
	VisitScheduled VisitStatus = "scheduled"
	VisitCompleted VisitStatus = "completed"
	VisitCancelled VisitStatus = "cancelled"
)

// CheckIn records where and when a visitor arrived. DistanceMeters is measured
// against the listing location and is zero when the listing is unknown.
type CheckIn struct {
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	At             time.Time `json:"at"`
	DistanceMeters float64   `json:"distance_meters,omitempty"`
}

// Visit is a scheduled site visit to a listing.
type Visit struct {
	ID        string      `json:"id"`
	ListingID string      `json:"listing_id"`
	UserID    string      `json:"user_id"`
	When      string      `json:"when"`
	Status    VisitStatus `json:"status"`
	CheckIn   *CheckIn    `json:"check_in,omitempty"`
}

func (v *Visit) Clone() *Visit {
	if v == nil {
		return nil
	}
	out := *v
	if v.CheckIn != nil {
		ci := *v.CheckIn
		out.CheckIn = &ci
	}
	return &out
}

func (v *Visit) IsCheckedIn() bool {
	return v != nil && v.CheckIn != nil
}
