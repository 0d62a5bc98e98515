package travelbuddy

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
)

// testGuide returns a complete guide for tests.
func testGuide(city, country string) TravelGuide {
	return TravelGuide{
		City:           city,
		Country:        country,
		WelcomeMessage: "Welcome to " + city,
		Introduction:   "A short introduction to " + city + ".",
		Weather:        WeatherSummary{Temperature: "25°C", Condition: "Sunny", PackingSuggestion: "Light clothes"},
		Attractions: []Attraction{
			{Name: "Old Town", Benefit: "history", ImagePrompt: "old town"},
			{Name: "Museum", Benefit: "art", ImagePrompt: "museum"},
			{Name: "Market", Benefit: "food", ImagePrompt: "market"},
			{Name: "Park", Benefit: "nature", ImagePrompt: "park"},
			{Name: "Viewpoint", Benefit: "views", ImagePrompt: "viewpoint"},
		},
		MapContext: "central, walkable",
		Itinerary: []ItineraryItem{
			{Time: "09:00", Activity: "Mercado Central (Central Market)", Description: "breakfast at the market", ImagePrompt: "market morning"},
			{Time: "14:00", Activity: "Museo (Museum)", Description: "afternoon of art", ImagePrompt: "museum afternoon"},
		},
		Tips: LocalTips{
			Travel:  "buy a day pass",
			Food:    "try the street food",
			Safety:  "watch your bag in crowds",
			Culture: "greet in the local language",
		},
	}
}

func TestTripCollection_SaveOrderAndContains(t *testing.T) {
	c := NewTripCollection(NewMemStore())

	a, err := c.Save(testGuide("Lisbon", "Portugal"))
	if err != nil {
		t.Fatalf("Save(A) error = %v", err)
	}
	b, err := c.Save(testGuide("Tokyo", "Japan"))
	if err != nil {
		t.Fatalf("Save(B) error = %v", err)
	}

	list := c.List()
	if len(list) != 2 {
		t.Fatalf("List() has %d trips, want 2", len(list))
	}
	// newest-saved-first: B before A.
	if list[0].ID != b.ID || list[1].ID != a.ID {
		t.Errorf("List() order = [%s, %s], want [%s, %s]", list[0].City, list[1].City, b.City, a.City)
	}
	if !c.Contains(a.ID) {
		t.Errorf("Contains(%q) = false, want true", a.ID)
	}
	if a.ID == b.ID {
		t.Error("two saves produced the same id")
	}
}

func TestTripCollection_NoDeduplication(t *testing.T) {
	c := NewTripCollection(NewMemStore())
	a, _ := c.Save(testGuide("Paris", "France"))
	b, _ := c.Save(testGuide("Paris", "France"))
	if a.ID == b.ID {
		t.Error("saving the same destination twice must yield two independent entries")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestTripCollection_WriteThrough(t *testing.T) {
	store := NewMemStore()
	c := NewTripCollection(store)
	c.Save(testGuide("Lisbon", "Portugal"))
	saved, _ := c.Save(testGuide("Tokyo", "Japan"))
	if err := c.Delete(saved.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// A fresh collection on the same store must see the same list.
	fresh := NewTripCollection(store)
	if !reflect.DeepEqual(fresh.List(), c.List()) {
		t.Errorf("persisted collection %v differs from in-memory list %v", fresh.List(), c.List())
	}

	// Every id present is unique.
	seen := make(map[string]bool)
	for _, trip := range fresh.List() {
		if seen[trip.ID] {
			t.Errorf("duplicate id %q in collection", trip.ID)
		}
		seen[trip.ID] = true
	}
}

func TestTripCollection_DeleteUnknownIsNoOp(t *testing.T) {
	c := NewTripCollection(NewMemStore())
	c.Save(testGuide("Lisbon", "Portugal"))
	if err := c.Delete("no-such-id"); err != nil {
		t.Fatalf("Delete(unknown) error = %v, want nil", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after deleting an unknown id, want 1", c.Len())
	}
}

func TestTripCollection_Search(t *testing.T) {
	c := NewTripCollection(NewMemStore())
	c.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }

	lisbon := testGuide("Lisbon", "Portugal")
	lisbon.Tips.Travel = "the tram 28 day pass is worth it"
	c.Save(lisbon)
	c.Save(testGuide("Tokyo", "Japan"))

	testCases := []struct {
		name       string
		query      string
		wantCities []string
	}{
		{name: "empty query returns all in order", query: "", wantCities: []string{"Tokyo", "Lisbon"}},
		{name: "city match is case-insensitive", query: "lisBON", wantCities: []string{"Lisbon"}},
		{name: "country match", query: "japan", wantCities: []string{"Tokyo"}},
		{name: "saved date match", query: "2025-03-14", wantCities: []string{"Tokyo", "Lisbon"}},
		{name: "itinerary activity match", query: "mercado", wantCities: []string{"Tokyo", "Lisbon"}},
		{name: "itinerary time match", query: "09:00", wantCities: []string{"Tokyo", "Lisbon"}},
		{name: "travel tips are searched", query: "tram 28", wantCities: []string{"Lisbon"}},
		{name: "no match", query: "antarctica", wantCities: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cities []string
			for _, trip := range c.Search(tc.query) {
				cities = append(cities, trip.City)
			}
			if !reflect.DeepEqual(cities, tc.wantCities) {
				t.Errorf("Search(%q) = %v, want %v", tc.query, cities, tc.wantCities)
			}
		})
	}
}

func TestTripCollection_RefreshWaitsMinimumDelay(t *testing.T) {
	store := NewMemStore()
	c := NewTripCollection(store)
	c.RefreshDelay = 30 * time.Millisecond
	c.Save(testGuide("Lisbon", "Portugal"))

	// Another writer replaces the stored document behind this collection's back.
	other := NewTripCollection(store)
	other.Save(testGuide("Tokyo", "Japan"))

	start := time.Now()
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < c.RefreshDelay {
		t.Errorf("Refresh() resumed after %v, want at least %v", elapsed, c.RefreshDelay)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d after refresh, want 2", c.Len())
	}
}

func TestTripCollection_RefreshCancelled(t *testing.T) {
	c := NewTripCollection(NewMemStore())
	c.RefreshDelay = time.Hour
	c.Save(testGuide("Lisbon", "Portugal"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Refresh(ctx); err == nil {
		t.Fatal("Refresh() with a cancelled context returned nil, want error")
	}
	if c.Len() != 1 {
		t.Errorf("cancelled refresh changed the collection, Len() = %d, want 1", c.Len())
	}
}

func TestSavedTrip_ShareText(t *testing.T) {
	trip := SavedTrip{TravelGuide: testGuide("Lisbon", "Portugal")}
	text := trip.ShareText()
	for _, want := range []string{"Lisbon", "Portugal", "Old Town", "Sunny"} {
		if !strings.Contains(text, want) {
			t.Errorf("ShareText() missing %q:\n%s", want, text)
		}
	}
}
