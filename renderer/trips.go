package renderer

import (
	"github.com/etnz/travelbuddy"
)

// TripRow is a single saved trip line in the trips report.
type TripRow struct {
	ID      string
	City    string
	Country string
	SavedOn string
	Weather string
}

// TripsView is the saved trips page data for rendering.
type TripsView struct {
	Query string
	Trips []TripRow
}

// NewTripsView shapes saved trips for rendering. The query, when not empty,
// is echoed in the page header.
func NewTripsView(trips []travelbuddy.SavedTrip, query string) *TripsView {
	v := &TripsView{Query: query}
	for _, t := range trips {
		v.Trips = append(v.Trips, TripRow{
			ID:      t.ID,
			City:    t.City,
			Country: t.Country,
			SavedOn: travelbuddy.DateOf(t.SavedAt).String(),
			Weather: t.Weather.Condition + ", " + t.Weather.Temperature,
		})
	}
	return v
}

// RenderTrips renders the saved trips page to a markdown string.
func RenderTrips(trips []travelbuddy.SavedTrip, query string) string {
	partials := map[string]string{
		"trips_title": "trips_title.md",
		"trips_rows":  "trips_rows.md",
	}
	return renderTemplate("trips", "trips.md", partials, NewTripsView(trips, query))
}
