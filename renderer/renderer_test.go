package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/travelbuddy"
	"github.com/shopspring/decimal"
)

func testGuide() *travelbuddy.TravelGuide {
	return &travelbuddy.TravelGuide{
		City:           "Lisbon",
		Country:        "Portugal",
		WelcomeMessage: "Bem-vindo a Lisboa",
		Introduction:   "Lisbon is giving main character energy.",
		Weather:        travelbuddy.WeatherSummary{Temperature: "24°C", Condition: "Sunny", PackingSuggestion: "Light layers."},
		MapContext:     "Hilly coastal capital on the Tagus.",
		Attractions: []travelbuddy.Attraction{
			{Name: "Belém Tower", Benefit: "Iconic riverside fort."},
			{Name: "Alfama", Benefit: "Oldest district."},
			{Name: "LX Factory", Benefit: "Street art."},
			{Name: "Jerónimos", Benefit: "Manueline masterpiece."},
			{Name: "Miradouro da Graça", Benefit: "Best sunset."},
		},
		Itinerary: []travelbuddy.ItineraryItem{
			{Time: "09:00 AM", Activity: "Pastéis de Belém (Custard Tarts)", Description: "Warm pastéis de nata."},
		},
		Tips: travelbuddy.LocalTips{Travel: "24h pass €7.", Food: "Lunch €10-15.", Safety: "Watch pockets.", Culture: "Fado in silence."},
	}
}

func TestRenderGuide(t *testing.T) {
	got := RenderGuide(testGuide())
	for _, want := range []string{
		"# Bem-vindo a Lisboa",
		"## Lisbon, Portugal",
		"| 24°C | Sunny |",
		"### Belém Tower",
		"| 09:00 AM | **Pastéis de Belém (Custard Tarts)** |",
		"- **Safety**: Watch pockets.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderGuide missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderTrips(t *testing.T) {
	saved := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	trips := []travelbuddy.SavedTrip{{TravelGuide: *testGuide(), SavedAt: saved}}
	trips[0].ID = "trip-1"

	got := RenderTrips(trips, "")
	for _, want := range []string{"# Saved Trips", "| Lisbon, Portugal | 2025-03-14 | Sunny, 24°C | `trip-1` |"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderTrips missing %q in:\n%s", want, got)
		}
	}

	if got := RenderTrips(nil, ""); !strings.Contains(got, "No trips yet") {
		t.Errorf("RenderTrips of empty collection:\n%s", got)
	}
	if got := RenderTrips(trips, "tram"); !strings.Contains(got, "Matching `tram`") {
		t.Errorf("RenderTrips with query:\n%s", got)
	}
}

func TestRenderBudget(t *testing.T) {
	store := travelbuddy.NewMemStore()
	ledger := travelbuddy.NewBudgetLedger(store)
	if err := ledger.SetBudget(decimal.NewFromInt(1000)); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.AddExpense("Food", decimal.NewFromInt(950), "group dinner", travelbuddy.MustParseDate("2025-03-14")); err != nil {
		t.Fatal(err)
	}

	got := RenderBudget(ledger, "USD")
	for _, want := range []string{
		"| $1,000.00 | $950.00 | $50.00 | 95%",
		"close to your budget limit",
		"| Food | food | amber | $950.00 |",
		"| 2025-03-14 | Food | group dinner | $950.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderBudget missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderCommunity(t *testing.T) {
	store := travelbuddy.NewMemStore()
	reg := travelbuddy.NewUserRegistry(store)
	if err := reg.RecordLogin("Ana", "ana@example.com", travelbuddy.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	if err := reg.RecordLogin("Bob", "bob@example.com", travelbuddy.RoleUser); err != nil {
		t.Fatal(err)
	}

	admin := RenderCommunity(reg, "ana@example.com", true)
	for _, want := range []string{"2 members", "| Ana | ana@example.com | admin |", "| Bob | bob@example.com | user |"} {
		if !strings.Contains(admin, want) {
			t.Errorf("admin page missing %q in:\n%s", want, admin)
		}
	}

	member := RenderCommunity(reg, "bob@example.com", false)
	if strings.Contains(member, "ana@example.com") {
		t.Errorf("member page leaks other members:\n%s", member)
	}
	for _, want := range []string{"one of 2 travellers", "| Bob | bob@example.com |"} {
		if !strings.Contains(member, want) {
			t.Errorf("member page missing %q in:\n%s", want, member)
		}
	}
}
