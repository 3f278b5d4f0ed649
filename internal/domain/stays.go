package domain

import "strings"

// Radius and result-count bounds for a search. Inputs outside these
// ranges are clamped, not rejected.
const (
	MinRadiusKm   = 1
	MaxRadiusKm   = 50
	MinMaxResults = 1
	MaxMaxResults = 20
)

// PriceTiers is the closed set of accepted price tiers, cheapest first.
var PriceTiers = []string{"$", "$$", "$$$", "$$$$"}

// SearchRequest carries the validated user query parameters.
type SearchRequest struct {
	Location   string
	RadiusKm   int
	MaxResults int
}

// Normalize trims the location and clamps both numeric fields into
// their allowed ranges. Returns ErrEmptyLocation when no location is
// left after trimming; nothing reaches the model before this passes.
func (r *SearchRequest) Normalize() error {
	r.Location = strings.TrimSpace(r.Location)
	if r.Location == "" {
		return ErrEmptyLocation
	}
	r.RadiusKm = clamp(r.RadiusKm, MinRadiusKm, MaxRadiusKm)
	r.MaxResults = clamp(r.MaxResults, MinMaxResults, MaxMaxResults)
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Listing is one AI-fabricated accommodation record. Every field is
// required; listings missing any of them never leave the mapper.
type Listing struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	DistanceKm  float64  `json:"distance_km"`
	Rating      float64  `json:"rating"`
	PriceTier   string   `json:"price_tier"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// SearchResult is the outcome of one search. It lives for a single
// request/response cycle and is never persisted. A result with zero
// listings is a valid outcome, distinct from a parse failure.
type SearchResult struct {
	Location string    `json:"location"`
	Listings []Listing `json:"listings"`
}

func ValidPriceTier(s string) bool {
	for _, t := range PriceTiers {
		if s == t {
			return true
		}
	}
	return false
}
