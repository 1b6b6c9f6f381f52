package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDomainError_MatchesWrappedCode(t *testing.T) {
	err := fmt.Errorf("toggle boost: %w", ErrListingNotFound)

	assert.True(t, IsDomainError(err, ErrCodeNotFound))
	assert.False(t, IsDomainError(err, ErrCodeInvalid))
	assert.False(t, IsDomainError(errors.New("plain"), ErrCodeNotFound))
}

func TestValidationError_ListsFields(t *testing.T) {
	err := NewValidationError("invalid listing", "Title", "Price")

	assert.Equal(t, "invalid listing (Title, Price)", err.Error())
	assert.True(t, IsDomainError(err, ErrCodeInvalid))
}

func TestWrapError_Unwraps(t *testing.T) {
	cause := errors.New("bolt closed")
	err := WrapError(ErrCodeInternal, "enqueue failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "enqueue failed: bolt closed", err.Error())
}

func TestSplit_NetAndValidity(t *testing.T) {
	assert.Equal(t, 60000.0, DefaultSplit.Net(100000))
	assert.Equal(t, 66.7, Split{Marketing: 0.333}.Net(100))
	assert.True(t, DefaultSplit.Valid())
	assert.False(t, Split{Marketing: 0.6, Telecaller: 0.4}.Valid())
	assert.False(t, Split{Marketing: -0.1}.Valid())
}

func TestListing_OwnerPrefersDealer(t *testing.T) {
	assert.Equal(t, "U-1", (&Listing{DealerID: "U-1", SellerID: "U-2"}).Owner())
	assert.Equal(t, "U-2", (&Listing{SellerID: "U-2"}).Owner())
	assert.Equal(t, "", (*Listing)(nil).Owner())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleLoanAgent.IsValid())
	assert.False(t, Role("Landlord").IsValid())
}
