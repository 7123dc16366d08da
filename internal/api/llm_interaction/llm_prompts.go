package llmInteraction

import (
	"fmt"
	"strings"
	"time"

	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

var moodIntents = map[types.Mood]string{
	types.MoodCoffee:    "a cozy place for coffee and a light snack",
	types.MoodQuickBite: "a quick, satisfying bite",
	types.MoodHealthy:   "a fresh, healthy meal",
	types.MoodComfort:   "hearty comfort food",
	types.MoodDateNight: "a memorable dinner for two",
	types.MoodAdventure: "something new and adventurous to try",
}

func moodIntent(mood types.Mood) string {
	if intent, ok := moodIntents[mood]; ok {
		return intent
	}
	return "a good meal"
}

func generateRecommendationsPrompt(req types.RecommendationRequest, now time.Time) string {
	return fmt.Sprintf(`
        The user is in %s and wants %s.
        It is currently %s local time. They have about %d minutes and are willing to travel up to %d meters.
        Recommend 3 to 5 restaurants that fit.
        Only recommend nationwide or regional chains with multiple locations that are likely open at the current time.
        Do not recommend independent or local establishments, to avoid suggesting businesses that may be closed.
        Return the response STRICTLY as a JSON array with no surrounding prose:
        [
            {
            "name": "Name of the restaurant chain",
            "description": "1-2 sentences on why it fits the mood and the time available",
            "address": "Typical location hint, or omit the field",
            "hours": "Typical opening hours, or omit the field"
            }
        ]`, req.Location, moodIntent(req.Mood), now.Format("Monday 3:04 PM"), req.TimeAvailable, req.MaxDistance)
}

func enhancePlacesPrompt(names []string, mood types.Mood, location string) string {
	return fmt.Sprintf(`
        These restaurants near %s were found for someone who wants %s: [%s].
        Write a 1-2 sentence appealing description for each of them.
        Return the response STRICTLY as a JSON array with no surrounding prose:
        [
            {
            "name": "Name of the restaurant exactly as given",
            "description": "The 1-2 sentence description"
            }
        ]`, location, moodIntent(mood), strings.Join(names, "; "))
}
