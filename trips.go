package travelbuddy

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRefreshDelay is the minimum latency of a Refresh.
const DefaultRefreshDelay = 1500 * time.Millisecond

// TripCollection is the user's saved travel guides, newest-saved-first.
//
// Every mutation updates the in-memory list and immediately re-serializes
// the whole collection to the store.
type TripCollection struct {
	store Store
	trips []SavedTrip

	// RefreshDelay is the minimum latency of Refresh.
	RefreshDelay time.Duration

	now func() time.Time
}

// NewTripCollection loads the saved trips from the store. A missing or
// unreadable document yields an empty collection.
func NewTripCollection(store Store) *TripCollection {
	c := &TripCollection{
		store:        store,
		RefreshDelay: DefaultRefreshDelay,
		now:          time.Now,
	}
	c.reload()
	return c
}

func (c *TripCollection) reload() {
	var trips []SavedTrip
	// Load absorbs malformed content, an error here is an I/O failure and
	// resolves to the empty collection too.
	if ok, err := c.store.Load(KeyTrips, &trips); !ok || err != nil {
		trips = nil
	}
	c.trips = trips
}

func (c *TripCollection) persist() error {
	if err := c.store.Save(KeyTrips, c.trips); err != nil {
		return fmt.Errorf("could not persist trips: %w", err)
	}
	return nil
}

// Len returns the number of saved trips.
func (c *TripCollection) Len() int { return len(c.trips) }

// List returns the saved trips, newest-saved-first.
func (c *TripCollection) List() []SavedTrip {
	return slices.Clone(c.trips)
}

// Save stamps the guide with an id (if it does not carry one yet) and the
// current time, prepends it to the collection and persists. Saving the same
// destination twice yields two independent entries.
func (c *TripCollection) Save(guide TravelGuide) (SavedTrip, error) {
	if guide.ID == "" {
		guide.ID = uuid.NewString()
	}
	trip := SavedTrip{TravelGuide: guide, SavedAt: c.now()}
	c.trips = append([]SavedTrip{trip}, c.trips...)
	if err := c.persist(); err != nil {
		return SavedTrip{}, err
	}
	return trip, nil
}

// Delete removes the trip with the given id. Deleting an unknown id is a
// successful no-op.
func (c *TripCollection) Delete(id string) error {
	kept := slices.DeleteFunc(slices.Clone(c.trips), func(t SavedTrip) bool { return t.ID == id })
	if len(kept) == len(c.trips) {
		return nil
	}
	c.trips = kept
	return c.persist()
}

// Contains reports whether a trip with the given id is saved. It drives the
// save/unsave toggle.
func (c *TripCollection) Contains(id string) bool {
	return slices.ContainsFunc(c.trips, func(t SavedTrip) bool { return t.ID == id })
}

// Search returns the trips matching the query, in collection order. The
// match is a case-insensitive substring test against the city, country and
// introduction, then the formatted saved date, then every itinerary item's
// activity, description and time, then every tips field. An empty query
// returns the full list.
func (c *TripCollection) Search(query string) []SavedTrip {
	if query == "" {
		return c.List()
	}
	q := strings.ToLower(query)
	var matches []SavedTrip
	for _, t := range c.trips {
		if t.matches(q) {
			matches = append(matches, t)
		}
	}
	return matches
}

func (t SavedTrip) matches(q string) bool {
	has := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }

	if has(t.City) || has(t.Country) || has(t.Introduction) {
		return true
	}
	if has(DateOf(t.SavedAt).String()) {
		return true
	}
	for _, item := range t.Itinerary {
		if has(item.Activity) || has(item.Description) || has(item.Time) {
			return true
		}
	}
	return has(t.Tips.Travel) || has(t.Tips.Food) || has(t.Tips.Safety) || has(t.Tips.Culture)
}

// Refresh reloads the collection from the store after the minimum delay has
// elapsed. It resumes exactly once and has no retry: cancelling the context
// during the delay leaves the collection untouched.
func (c *TripCollection) Refresh(ctx context.Context) error {
	timer := time.NewTimer(c.RefreshDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	c.reload()
	return nil
}
