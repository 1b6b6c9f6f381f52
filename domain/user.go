package domain

import "time"

// Role is the marketplace persona a user signs in as.
type Role string

const (
	RoleBuyer      Role = "Buyer"
	RoleDealer     Role = "Dealer"
	RoleSeller     Role = "Seller"
	RoleAdvocate   Role = "Advocate"
	RoleLoanAgent  Role = "Loan Agent"
	RoleConsultant Role = "Freelance Consultant"
	RoleAdmin      Role = "Admin"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleBuyer, RoleDealer, RoleSeller, RoleAdvocate, RoleLoanAgent, RoleConsultant, RoleAdmin}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// KYCStatus tracks identity verification of a user.
type KYCStatus string

const (
	KYCPending     KYCStatus = "pending"
	KYCApproved    KYCStatus = "approved"
	KYCRejected    KYCStatus = "rejected"
	KYCUnderReview KYCStatus = "under_review"
)

// DefaultServiceArea is assigned to every newly registered user.
const DefaultServiceArea = "110001"

// User represents an account identified by a mobile number or email.
type User struct {
	ID           string    `json:"id"`
	Identifier   string    `json:"identifier"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Ratings      []int     `json:"ratings"`
	KYCStatus    KYCStatus `json:"kyc_status"`
	ServiceAreas []string  `json:"service_areas"`
	CreatedAt    time.Time `json:"created_at"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Ratings = append([]int{}, u.Ratings...)
	out.ServiceAreas = append([]string{}, u.ServiceAreas...)
	return &out
}

func (u *User) IsKYCApproved() bool {
	return u != nil && u.KYCStatus == KYCApproved
}
