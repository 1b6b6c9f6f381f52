package listing

import (
	"slices"
	"strings"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

// Matches applies every set criterion of filter conjunctively.
func Matches(filter domain.ListingFilter, l domain.Listing) bool {
	if filter.Query != "" && !strings.Contains(strings.ToLower(l.Title), strings.ToLower(filter.Query)) {
		return false
	}
	if filter.Category != "" && filter.Category != domain.CategoryAll && l.Category != filter.Category {
		return false
	}
	if filter.City != "" && l.Location.City != filter.City {
		return false
	}
	if filter.BudgetMin > 0 && l.Price < filter.BudgetMin {
		return false
	}
	if filter.BudgetMax > 0 && l.Price > filter.BudgetMax {
		return false
	}
	return true
}

// Rank orders listings in place: boosted before unboosted, then newest first
// within each group. The sort is stable so equal keys keep insertion order.
func Rank(listings []domain.Listing) {
	slices.SortStableFunc(listings, func(a, b domain.Listing) int {
		if a.Boosted != b.Boosted {
			if a.Boosted {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
