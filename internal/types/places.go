package types

// CandidatePlace is a venue sourced from the places provider. Optional fields
// are present only when the provider returned them; an absent field means
// "unknown", not "none".
type CandidatePlace struct {
	Name     string  `json:"name"`
	Address  string  `json:"address,omitempty"`
	Distance int     `json:"distance,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Price    string  `json:"price,omitempty"`
	Hours    string  `json:"hours,omitempty"`
	Category string  `json:"category,omitempty"`
}

// PlacesResult is what Places Lookup hands to the assembler. RateLimited
// distinguishes quota exhaustion (must route to the generated tier with a
// user-facing message) from an ordinary empty result.
type PlacesResult struct {
	Places      []CandidatePlace `json:"places"`
	RateLimited bool             `json:"rateLimited"`
}
