package places

import (
	"strings"
	"time"

	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

type moodMapping struct {
	CategoryID string
	Query      string
}

// moodMappings maps a mood tag to a Foursquare category ID and a free-text
// query term. Unknown moods fall back to the generic restaurant category.
var moodMappings = map[types.Mood]moodMapping{
	types.MoodCoffee:    {CategoryID: "13035", Query: "coffee shop"},
	types.MoodQuickBite: {CategoryID: "13145", Query: "quick food"},
	types.MoodHealthy:   {CategoryID: "13377", Query: "healthy food"},
	types.MoodComfort:   {CategoryID: "13065", Query: "comfort food"},
	types.MoodDateNight: {CategoryID: "13065", Query: "romantic dinner"},
	types.MoodAdventure: {CategoryID: "13065", Query: "unique restaurant"},
}

var defaultMapping = moodMapping{CategoryID: "13065", Query: "restaurant"}

func mappingForMood(mood types.Mood) moodMapping {
	if m, ok := moodMappings[mood]; ok {
		return m
	}
	return defaultMapping
}

// formatAddress joins the non-empty location sub-fields with ", ". A place
// with no sub-fields yields "", which the candidate serializes as absent.
func formatAddress(loc *fsqLocation) string {
	if loc == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{loc.Address, loc.Locality, loc.Region, loc.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// formatHours renders today's entry from the weekly schedule as
// "Open {open}-{close}". Without a matching entry it falls back to a coarse
// string derived from the open_now flag.
func formatHours(hours *fsqHours, now time.Time) string {
	if hours == nil {
		return ""
	}
	// Foursquare days run Monday=1..Sunday=7, time.Weekday runs Sunday=0.
	today := int(now.Weekday())
	if today == 0 {
		today = 7
	}
	for _, entry := range hours.Regular {
		if entry.Day == today && entry.Open != "" && entry.Close != "" {
			return "Open " + formatClock(entry.Open) + "-" + formatClock(entry.Close)
		}
	}
	if hours.OpenNow {
		return "Open now"
	}
	return "Check hours"
}

// formatClock turns a provider "HHMM" string into "HH:MM".
func formatClock(hhmm string) string {
	if len(hhmm) != 4 {
		return hhmm
	}
	return hhmm[:2] + ":" + hhmm[2:]
}

func formatPrice(price int) string {
	if price <= 0 {
		return ""
	}
	if price > 4 {
		price = 4
	}
	return strings.Repeat("$", price)
}

// candidateFromPlace converts a provider payload into a CandidatePlace,
// leaving fields the provider did not return absent.
func candidateFromPlace(p fsqPlace, now time.Time) types.CandidatePlace {
	candidate := types.CandidatePlace{
		Name:     p.Name,
		Address:  formatAddress(p.Location),
		Distance: p.Distance,
		Rating:   p.Rating,
		Price:    formatPrice(p.Price),
		Hours:    formatHours(p.Hours, now),
	}
	if len(p.Categories) > 0 {
		candidate.Category = p.Categories[0].Name
	}
	return candidate
}
