package travelbuddy

import (
	"fmt"
	"strings"
	"time"
)

// WeatherSummary describes the typical weather of the destination for the
// travel month.
type WeatherSummary struct {
	Temperature       string `json:"temperature"`
	Condition         string `json:"condition"`
	PackingSuggestion string `json:"packingSuggestion"`
}

// Attraction is one of the recommended places of a guide.
type Attraction struct {
	Name        string `json:"name"`
	Benefit     string `json:"benefit"`
	ImagePrompt string `json:"imagePrompt"`
}

// ItineraryItem is one time-stamped activity of the one-day itinerary.
type ItineraryItem struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	ImagePrompt string `json:"imagePrompt"`
}

// LocalTips holds the four categories of local advice of a guide.
type LocalTips struct {
	Travel  string `json:"travel"`
	Food    string `json:"food"`
	Safety  string `json:"safety"`
	Culture string `json:"culture"`
}

// GuideAttractions is the number of attractions a complete guide carries.
const GuideAttractions = 5

// TravelGuide is the content document produced by the guide generator. Once
// received it is treated as an opaque immutable value: the core only stamps
// an id and a saved-at timestamp when it enters the trip collection.
type TravelGuide struct {
	ID             string          `json:"id"`
	City           string          `json:"city"`
	Country        string          `json:"country"`
	WelcomeMessage string          `json:"welcomeMessage"`
	Introduction   string          `json:"introduction"`
	Weather        WeatherSummary  `json:"weather"`
	Attractions    []Attraction    `json:"attractions"`
	MapContext     string          `json:"mapContext"`
	Itinerary      []ItineraryItem `json:"itinerary"`
	Tips           LocalTips       `json:"tips"`
}

// Validate checks that a guide honors the content contract before the core
// accepts it. A failing guide is a collaborator error, not a core one.
func (g *TravelGuide) Validate() error {
	if strings.TrimSpace(g.City) == "" {
		return fmt.Errorf("guide has no city")
	}
	if strings.TrimSpace(g.Country) == "" {
		return fmt.Errorf("guide has no country")
	}
	if len(g.Attractions) != GuideAttractions {
		return fmt.Errorf("guide for %s has %d attractions, want %d", g.City, len(g.Attractions), GuideAttractions)
	}
	if len(g.Itinerary) == 0 {
		return fmt.Errorf("guide for %s has an empty itinerary", g.City)
	}
	return nil
}

// SavedTrip is a TravelGuide that entered the user's collection. SavedAt is
// stamped once, at save time.
type SavedTrip struct {
	TravelGuide
	SavedAt time.Time `json:"savedAt"`
}

// ShareText composes the plain-text share message for a trip. Sending it
// anywhere is the caller's business.
func (t SavedTrip) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✈️ Trip to %s, %s\n\n", t.City, t.Country)
	fmt.Fprintf(&b, "🌞 %s, %s\n", t.Weather.Condition, t.Weather.Temperature)
	if len(t.Attractions) > 0 {
		fmt.Fprintf(&b, "✨ Must Visit: %s\n", t.Attractions[0].Name)
	}
	fmt.Fprintf(&b, "\n%s\n\nPlan your own trip with Travel Buddy!", t.Introduction)
	return b.String()
}

// CitySuggestion is one entry of the destination suggestions for a country.
type CitySuggestion struct {
	Name string `json:"name"`
}
