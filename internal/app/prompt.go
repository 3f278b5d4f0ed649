package app

import (
	"fmt"

	"github.com/amitlokhande0/Nearby-StaysFinder-Agent/internal/domain"
)

// buildPrompt asks the model for fabricated accommodation listings as a
// bare JSON array. The field list must stay in sync with domain.Listing
// and with the aliases the mapper accepts.
func buildPrompt(req domain.SearchRequest) string {
	return fmt.Sprintf(`Act as a travel specialist. Find %d accommodation options around "%s" within %d km.

Strictly return a JSON array of objects. Do not include markdown formatting like `+"```json ... ```"+` and no prose before or after the array.

Each object must have:
- "name": string
- "type": string (e.g. Hotel, Hostel, Resort)
- "distance_km": number (estimated, within the search radius)
- "price_tier": string, one of "$", "$$", "$$$", "$$$$"
- "rating": number (0-5)
- "amenities": list of strings (max 5 items)
- "description": string (short marketing blurb)

Return fewer than %d objects only if that many plausible options do not exist near "%s".`,
		req.MaxResults, req.Location, req.RadiusKm, req.MaxResults, req.Location)
}

// buildRetryPrompt is the reworded variant used after a parse failure.
// Same contract, heavier emphasis on output formatting.
func buildRetryPrompt(req domain.SearchRequest) string {
	return fmt.Sprintf(`Your previous answer was not valid JSON. Respond again with ONLY a syntactically valid JSON array and nothing else: no markdown fences, no commentary, no trailing commas.

List %d accommodation options around "%s" within %d km. Every element must be an object with exactly these keys: "name" (string), "type" (string), "distance_km" (number), "price_tier" (one of "$", "$$", "$$$", "$$$$"), "rating" (number 0-5), "amenities" (array of up to 5 strings), "description" (string).

The first character of your response must be [ and the last character must be ].`,
		req.MaxResults, req.Location, req.RadiusKm)
}
