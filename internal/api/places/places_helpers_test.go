package places

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

func TestMappingForMood(t *testing.T) {
	t.Run("KnownMood", func(t *testing.T) {
		m := mappingForMood(types.MoodCoffee)
		assert.Equal(t, "13035", m.CategoryID)
		assert.Equal(t, "coffee shop", m.Query)
	})

	t.Run("UnknownMoodDefaultsToRestaurant", func(t *testing.T) {
		m := mappingForMood("karaoke")
		assert.Equal(t, defaultMapping, m)
	})

	t.Run("EmptyMoodDefaultsToRestaurant", func(t *testing.T) {
		assert.Equal(t, defaultMapping, mappingForMood(""))
	})
}

func TestFormatAddress(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		loc := &fsqLocation{Address: "123 Pine St", Locality: "Seattle", Region: "WA", Postcode: "98101"}
		assert.Equal(t, "123 Pine St, Seattle, WA, 98101", formatAddress(loc))
	})

	t.Run("SkipsEmptyFields", func(t *testing.T) {
		loc := &fsqLocation{Address: "123 Pine St", Region: "WA"}
		assert.Equal(t, "123 Pine St, WA", formatAddress(loc))
	})

	t.Run("NoFieldsYieldsEmpty", func(t *testing.T) {
		assert.Equal(t, "", formatAddress(&fsqLocation{}))
	})

	t.Run("NilLocationYieldsEmpty", func(t *testing.T) {
		assert.Equal(t, "", formatAddress(nil))
	})

	t.Run("Idempotent", func(t *testing.T) {
		loc := &fsqLocation{Address: "123 Pine St", Locality: "Seattle", Region: "WA", Postcode: "98101"}
		first := formatAddress(loc)
		assert.Equal(t, first, formatAddress(loc))
	})
}

func TestFormatHours(t *testing.T) {
	// 2026-08-26 is a Wednesday, Foursquare day 3.
	wednesday := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	t.Run("TodayEntryRendered", func(t *testing.T) {
		hours := &fsqHours{Regular: []fsqHoursEntry{
			{Day: 3, Open: "0800", Close: "1700"},
			{Day: 4, Open: "0900", Close: "1800"},
		}}
		assert.Equal(t, "Open 08:00-17:00", formatHours(hours, wednesday))
	})

	t.Run("SundayMapsToDaySeven", func(t *testing.T) {
		sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		hours := &fsqHours{Regular: []fsqHoursEntry{{Day: 7, Open: "1000", Close: "1600"}}}
		assert.Equal(t, "Open 10:00-16:00", formatHours(hours, sunday))
	})

	t.Run("NoTodayEntryFallsBackToOpenFlag", func(t *testing.T) {
		hours := &fsqHours{OpenNow: true, Regular: []fsqHoursEntry{{Day: 6, Open: "0800", Close: "1700"}}}
		assert.Equal(t, "Open now", formatHours(hours, wednesday))
	})

	t.Run("ClosedFallback", func(t *testing.T) {
		assert.Equal(t, "Check hours", formatHours(&fsqHours{}, wednesday))
	})

	t.Run("NilHoursYieldsEmpty", func(t *testing.T) {
		assert.Equal(t, "", formatHours(nil, wednesday))
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", formatPrice(0))
	assert.Equal(t, "$", formatPrice(1))
	assert.Equal(t, "$$$", formatPrice(3))
	assert.Equal(t, "$$$$", formatPrice(9))
}

func TestCandidateFromPlace(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	t.Run("FullPlace", func(t *testing.T) {
		p := fsqPlace{
			Name:       "Elm Coffee Roasters",
			Distance:   420,
			Rating:     9.1,
			Price:      2,
			Location:   &fsqLocation{Address: "240 2nd Ave S", Locality: "Seattle"},
			Categories: []fsqCategory{{ID: 13035, Name: "Coffee Shop"}},
			Hours:      &fsqHours{OpenNow: true},
		}
		c := candidateFromPlace(p, now)
		assert.Equal(t, "Elm Coffee Roasters", c.Name)
		assert.Equal(t, "240 2nd Ave S, Seattle", c.Address)
		assert.Equal(t, 420, c.Distance)
		assert.Equal(t, 9.1, c.Rating)
		assert.Equal(t, "$$", c.Price)
		assert.Equal(t, "Open now", c.Hours)
		assert.Equal(t, "Coffee Shop", c.Category)
	})

	t.Run("SparsePlaceLeavesFieldsAbsent", func(t *testing.T) {
		c := candidateFromPlace(fsqPlace{Name: "Mystery Diner"}, now)
		assert.Equal(t, "Mystery Diner", c.Name)
		assert.Empty(t, c.Address)
		assert.Empty(t, c.Hours)
		assert.Empty(t, c.Price)
		assert.Empty(t, c.Category)
	})
}
