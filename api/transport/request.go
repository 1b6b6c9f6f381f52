package transport

import "github.com/atharsaifi001-eng/NEAT-RE/domain"

type OTPRequest struct {
	Identifier string `json:"identifier"`
}

type VerifyRequest struct {
	Identifier string      `json:"identifier"`
	Code       string      `json:"code"`
	Role       domain.Role `json:"role"`
}

type LoginRequest struct {
	Identifier string      `json:"identifier"`
	Role       domain.Role `json:"role"`
}

type BoostRequest struct {
	Boosted bool `json:"boosted"`
}

type MessageRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type DocumentRequest struct {
	DocType string `json:"doc_type"`
	URI     string `json:"uri"`
}

type CommissionRequest struct {
	Amount float64       `json:"amount"`
	City   string        `json:"city"`
	Split  *domain.Split `json:"split,omitempty"`
}

type VisitRequest struct {
	ListingID string `json:"listing_id"`
	When      string `json:"when"`
}

type CheckInRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
