package types

// Mood is a free-form categorical tag for the kind of dining experience the
// user is after. Unknown values are accepted and fall through to defaults.
type Mood string

const (
	MoodCoffee    Mood = "coffee"
	MoodQuickBite Mood = "quick-bite"
	MoodHealthy   Mood = "healthy"
	MoodComfort   Mood = "comfort"
	MoodDateNight Mood = "date-night"
	MoodAdventure Mood = "adventure"
)

// RecommendationSource identifies which provider actually produced the list
// that was returned, i.e. the last origin used, not the first attempted.
type RecommendationSource string

const (
	SourceFoursquare RecommendationSource = "foursquare"
	SourceAI         RecommendationSource = "ai"
)

// RecommendationRequest is the parsed inbound payload. It lives for exactly
// one call and is never mutated.
type RecommendationRequest struct {
	Location      string `json:"location"`
	Mood          Mood   `json:"mood"`
	TimeAvailable int    `json:"timeAvailable"` // minutes
	MaxDistance   int    `json:"maxDistance"`   // meters
}

// Recommendation is the unit returned to the caller. A CandidatePlace becomes
// a Recommendation once a description is attached.
type Recommendation struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address,omitempty"`
	Distance    int     `json:"distance,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Hours       string  `json:"hours,omitempty"`
}

// RecommendationResponse is constructed once per request and serialized as-is.
type RecommendationResponse struct {
	Recommendations  []Recommendation     `json:"recommendations"`
	Source           RecommendationSource `json:"source"`
	RateLimitReached bool                 `json:"rateLimitReached"`
	Message          string               `json:"message,omitempty"`
}

// FeedbackRequest is accepted by the feedback endpoint and only logged.
type FeedbackRequest struct {
	RecommendationID string `json:"recommendationId"`
	Rating           int    `json:"rating"`
	Comment          string `json:"comment"`
}
