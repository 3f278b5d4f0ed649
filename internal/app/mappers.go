package app

import (
	"strconv"
	"strings"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

/********** alias registry (single source of truth) **********/

// The prompt pins exact key names, but models drift. Each logical field
// accepts a few spellings, tried in order; dot paths reach into nested
// objects.
var listingAliases = map[string][]string{
	"name":        {"name", "title", "hotel_name", "property_name"},
	"type":        {"type", "category", "property_type", "kind"},
	"distance":    {"distance_km", "distanceKm", "distance", "distance.km"},
	"rating":      {"rating", "stars", "score", "rating.value"},
	"price_tier":  {"price_tier", "priceTier", "price_range", "priceRange", "price"},
	"amenities":   {"amenities", "facilities", "features"},
	"description": {"description", "summary", "blurb", "about"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstString: first non-empty string for a named alias set.
func firstString(m map[string]any, key string) string {
	for _, p := range listingAliases[key] {
		if s, ok := lookupAny(m, p).(string); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return ""
}

// firstFloat: number for an alias set, accepting float64/int/string
// forms (including "8,0" decimal commas).
func firstFloat(m map[string]any, key string) (float64, bool) {
	for _, p := range listingAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// firstStrings: []any of strings or of {name/title} objects.
func firstStrings(m map[string]any, key string) []string {
	for _, p := range listingAliases[key] {
		raw, ok := lookupAny(m, p).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
				} else if n, ok := t["title"].(string); ok && n != "" {
					out = append(out, n)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// normalizeTier maps loose price spellings onto the closed tier set:
// "$$ " survives a trim, "$$$$$" caps at the top tier, and spelled-out
// forms ("cheap", "luxury", "mid-range") get a best-effort bucket.
func normalizeTier(s string) string {
	t := strings.TrimSpace(s)
	if n := strings.Count(t, "$"); n > 0 && n == len(t) {
		if n > len(domain.PriceTiers) {
			n = len(domain.PriceTiers)
		}
		return domain.PriceTiers[n-1]
	}
	switch strings.ToLower(t) {
	case "budget", "cheap", "low":
		return "$"
	case "mid", "mid-range", "midrange", "moderate":
		return "$$"
	case "upscale", "high", "expensive":
		return "$$$"
	case "luxury", "premium":
		return "$$$$"
	}
	return ""
}

/********** listing mapper **********/

// mapListing converts one decoded element into a Listing. The bool is
// false when any required field is missing or out of range; callers
// drop such elements rather than failing the whole batch.
func mapListing(m map[string]any) (domain.Listing, bool) {
	l := domain.Listing{
		Name:        firstString(m, "name"),
		Type:        firstString(m, "type"),
		PriceTier:   normalizeTier(firstString(m, "price_tier")),
		Amenities:   firstStrings(m, "amenities"),
		Description: firstString(m, "description"),
	}
	if l.Name == "" || l.Type == "" || l.Description == "" {
		return domain.Listing{}, false
	}
	if !domain.ValidPriceTier(l.PriceTier) {
		return domain.Listing{}, false
	}

	d, ok := firstFloat(m, "distance")
	if !ok || d < 0 {
		return domain.Listing{}, false
	}
	l.DistanceKm = d

	r, ok := firstFloat(m, "rating")
	if !ok || r < 0 || r > 5 {
		return domain.Listing{}, false
	}
	l.Rating = r

	if len(l.Amenities) == 0 {
		return domain.Listing{}, false
	}
	return l, true
}

// mapListings applies mapListing element-wise, keeping well-formed
// entries and counting drops. Returns the kept listings plus the number
// dropped.
func mapListings(in []map[string]any) ([]domain.Listing, int) {
	out := make([]domain.Listing, 0, len(in))
	dropped := 0
	for _, m := range in {
		l, ok := mapListing(m)
		if !ok {
			dropped++
			continue
		}
		out = append(out, l)
	}
	return out, dropped
}
