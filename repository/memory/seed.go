package memory

import (
	"time"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

// Seed loads the demo listings the prototype ships with. createdAt values are
// relative to now so the boosted listing is newer than the commercial plot.
func Seed(store *Store, now time.Time) {
	day := 24 * time.Hour
	listings := []*domain.Listing{
		{
			ID:          "L-1001",
			Title:       "3 BHK House — Prime Area",
			Description: "Spacious 3 BHK with modern kitchen, near metro. Clear title.",
			Price:       8500000,
			AreaGaz:     250,
			Front:       25,
			RoadWidth:   30,
			Category:    domain.CategoryHouse,
			Media:       []domain.Media{{Type: "image", URI: "https://picsum.photos/seed/house1/800/500"}},
			Location:    domain.Location{State: "UP", City: "Noida", Area: "Sector 62", Lat: 28.629, Lng: 77.372},
			DealerID:    "U-2001",
			SellerID:    "U-3001",
			Boosted:     true,
			CreatedAt:   now.Add(-2 * day),
		},
		{
			ID:          "L-1002",
			Title:       "Commercial Plot — Highway Facing",
			Description: "Great frontage and highway access. Ideal for showroom.",
			Price:       13500000,
			AreaGaz:     500,
			Front:       40,
			RoadWidth:   60,
			Category:    domain.CategoryCommercial,
			Media:       []domain.Media{{Type: "image", URI: "https://picsum.photos/seed/plot2/800/500"}},
			Location:    domain.Location{State: "RJ", City: "Jaipur", Area: "Ajmer Rd", Lat: 26.912, Lng: 75.787},
			DealerID:    "U-2002",
			SellerID:    "U-3002",
			Boosted:     false,
			CreatedAt:   now.Add(-6 * day),
		},
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	for _, l := range listings {
		l.ID = store.assignID(PrefixListing, l.ID)
		store.listings = append(store.listings, l)
	}
}
