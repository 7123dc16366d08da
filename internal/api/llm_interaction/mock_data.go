package llmInteraction

import "github.com/FACorreiaa/mood-dining-suggestions/internal/types"

// mockRecommendations is the static fallback table: two entries per mood,
// all nationwide chains so they stay plausible regardless of location.
var mockRecommendations = map[types.Mood][]types.Recommendation{
	types.MoodCoffee: {
		{Name: "Starbucks", Description: "Reliable espresso drinks and pastries, with plenty of seating to settle in for a while.", Hours: "Open 06:00-21:00"},
		{Name: "Dunkin'", Description: "Fast, no-fuss coffee and donuts when you just need the caffeine to keep moving.", Hours: "Open 05:00-20:00"},
	},
	types.MoodQuickBite: {
		{Name: "Chipotle Mexican Grill", Description: "Build-your-own burritos and bowls, in and out in under fifteen minutes.", Hours: "Open 10:45-22:00"},
		{Name: "Panera Bread", Description: "Soups, sandwiches and salads that feel a step up from fast food without the wait.", Hours: "Open 07:00-21:00"},
	},
	types.MoodHealthy: {
		{Name: "Sweetgreen", Description: "Seasonal salads and warm bowls built around fresh produce.", Hours: "Open 10:30-21:00"},
		{Name: "CAVA", Description: "Mediterranean bowls and pitas heavy on vegetables, grains and bright sauces.", Hours: "Open 10:45-22:00"},
	},
	types.MoodComfort: {
		{Name: "Cracker Barrel", Description: "Biscuits, fried chicken and country sides that taste like a long Sunday lunch.", Hours: "Open 07:00-21:00"},
		{Name: "Olive Garden", Description: "Unlimited breadsticks and generous pasta plates for when you want to be full and happy.", Hours: "Open 11:00-22:00"},
	},
	types.MoodDateNight: {
		{Name: "The Cheesecake Factory", Description: "A huge menu and dessert worth staying for, easy to stretch into a long evening.", Hours: "Open 11:30-23:00"},
		{Name: "P.F. Chang's", Description: "Dim lighting and shareable plates that make conversation easy.", Hours: "Open 11:00-22:00"},
	},
	types.MoodAdventure: {
		{Name: "Benihana", Description: "Teppanyaki theatre at your table; dinner doubles as the entertainment.", Hours: "Open 11:30-22:00"},
		{Name: "Fogo de Chao", Description: "Brazilian churrasco with servers carving an endless parade of grilled meats.", Hours: "Open 11:30-22:00"},
	},
}

// MockRecommendationsForMood returns the static fallback list for a mood.
// Unknown moods get the quick-bite list. Never empty, never fails.
func MockRecommendationsForMood(mood types.Mood) []types.Recommendation {
	if recommendations, ok := mockRecommendations[mood]; ok {
		return recommendations
	}
	return mockRecommendations[types.MoodQuickBite]
}
