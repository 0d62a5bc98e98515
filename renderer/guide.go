package renderer

import (
	"github.com/etnz/travelbuddy"
)

// GuideView is the travel guide page data for rendering.
type GuideView struct {
	City           string
	Country        string
	WelcomeMessage string
	Introduction   string
	Temperature    string
	Condition      string
	Packing        string
	MapContext     string
	Attractions    []travelbuddy.Attraction
	Itinerary      []travelbuddy.ItineraryItem
	Tips           travelbuddy.LocalTips
}

// NewGuideView shapes a guide for rendering.
func NewGuideView(g *travelbuddy.TravelGuide) *GuideView {
	return &GuideView{
		City:           g.City,
		Country:        g.Country,
		WelcomeMessage: g.WelcomeMessage,
		Introduction:   g.Introduction,
		Temperature:    g.Weather.Temperature,
		Condition:      g.Weather.Condition,
		Packing:        g.Weather.PackingSuggestion,
		MapContext:     g.MapContext,
		Attractions:    g.Attractions,
		Itinerary:      g.Itinerary,
		Tips:           g.Tips,
	}
}

// RenderGuide renders the full guide page to a markdown string.
func RenderGuide(g *travelbuddy.TravelGuide) string {
	partials := map[string]string{
		"guide_title":       "guide_title.md",
		"guide_weather":     "guide_weather.md",
		"guide_attractions": "guide_attractions.md",
		"guide_itinerary":   "guide_itinerary.md",
		"guide_tips":        "guide_tips.md",
	}
	return renderTemplate("guide", "guide.md", partials, NewGuideView(g))
}
