package domain

import "time"

type DocumentStatus string

const (
	DocumentUnderReview DocumentStatus = "under_review"
	DocumentApproved    DocumentStatus = "approved"
	DocumentRejected    DocumentStatus = "rejected"
)

// Document is a KYC upload awaiting or past review.
type Document struct {
	ID      string         `json:"id"`
	UserID  string         `json:"user_id"`
	DocType string         `json:"doc_type"`
	URI     string         `json:"uri"`
	Status  DocumentStatus `json:"status"`
	At      time.Time      `json:"at"`
}
