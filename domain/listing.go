package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// Category classifies a property listing.
type Category string

const (
	CategoryAll        Category = "All"
	CategoryPlot       Category = "Plot"
	CategoryHouse      Category = "House"
	CategoryFlat       Category = "Flat"
	CategoryCommercial Category = "Commercial"
	CategoryFarmhouse  Category = "Farmhouse"
)

// Categories lists the concrete listing categories, without the "All" filter value.
var Categories = []Category{CategoryPlot, CategoryHouse, CategoryFlat, CategoryCommercial, CategoryFarmhouse}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Media is a photo or video attached to a listing.
type Media struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// Location pins a listing to an administrative area and coordinates.
type Location struct {
	State string  `json:"state"`
	City  string  `json:"city"`
	Area  string  `json:"area"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Point returns the location as an orb point (lng, lat).
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Listing is a property offered on the marketplace. Price is in whole currency units.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	AreaGaz     float64   `json:"area_gaz"`
	Front       float64   `json:"front"`
	RoadWidth   float64   `json:"road_width"`
	Category    Category  `json:"category"`
	Media       []Media   `json:"media"`
	Location    Location  `json:"location"`
	DealerID    string    `json:"dealer_id,omitempty"`
	SellerID    string    `json:"seller_id,omitempty"`
	Boosted     bool      `json:"boosted"`
	CreatedAt   time.Time `json:"created_at"`
}

func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	out := *l
	out.Media = append([]Media{}, l.Media...)
	return &out
}

// Owner is the user a listing's leads are routed to: the dealer, or the seller when no dealer is set.
func (l *Listing) Owner() string {
	if l == nil {
		return ""
	}
	if l.DealerID != "" {
		return l.DealerID
	}
	return l.SellerID
}

// ListingFilter narrows listProperties results. Zero values disable a criterion.
type ListingFilter struct {
	Query     string   `json:"query,omitempty"`
	Category  Category `json:"category,omitempty"`
	City      string   `json:"city,omitempty"`
	BudgetMin int64    `json:"budget_min,omitempty"`
	BudgetMax int64    `json:"budget_max,omitempty"`
}
