// Package guide produces travel guides through the Gemini generative API.
//
// The rest of the application consumes it through the Generator interface
// and only ever sees validated travelbuddy types, never a raw model
// response.
package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/etnz/travelbuddy"
	"google.golang.org/genai"
)

// Generator is the travel-guide content collaborator.
type Generator interface {
	// Guide creates a complete travel guide for a destination. The preferred
	// currency drives the estimated costs mentioned in tips and benefits.
	Guide(ctx context.Context, city, country, currency string) (*travelbuddy.TravelGuide, error)
	// Cities suggests tourist destinations for a country. It degrades to an
	// empty list when the collaborator fails.
	Cities(ctx context.Context, country string) ([]travelbuddy.CitySuggestion, error)
}

const model = "gemini-2.5-flash"

// Gemini generates guides with the Gemini API.
type Gemini struct {
	client *genai.Client

	// Model overrides the default model name.
	Model string

	now func() time.Time
}

// NewGemini returns a generator on an initialized Gemini client.
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{client: client, Model: model, now: time.Now}
}

// Guide implements Generator. A model failure or a response that does not
// honor the content contract is returned as an error; the caller surfaces it
// and leaves prior state unchanged.
func (g *Gemini) Guide(ctx context.Context, city, country, currency string) (*travelbuddy.TravelGuide, error) {
	if currency == "" {
		currency = "USD"
	}
	prompt := guidePrompt(city, country, currency, g.now().Month())

	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   guideSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate guide for %s, %s: %w", city, country, err)
	}
	return parseGuide([]byte(resp.Text()))
}

// Cities implements Generator. Failures are logged and resolved to an empty
// suggestion list, the destination field simply offers no help.
func (g *Gemini) Cities(ctx context.Context, country string) ([]travelbuddy.CitySuggestion, error) {
	prompt := fmt.Sprintf("List the major tourist cities in %s. Provide a comprehensive list of popular destinations.", country)

	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   citiesSchema,
	})
	if err != nil {
		log.Printf("could not fetch cities for %s: %v", country, err)
		return nil, nil
	}
	return parseCities([]byte(resp.Text())), nil
}

// parseGuide decodes and validates a model response.
func parseGuide(data []byte) (*travelbuddy.TravelGuide, error) {
	var guide travelbuddy.TravelGuide
	if err := json.Unmarshal(data, &guide); err != nil {
		return nil, fmt.Errorf("guide response is not valid JSON: %w", err)
	}
	if err := guide.Validate(); err != nil {
		return nil, fmt.Errorf("guide response breaks the content contract: %w", err)
	}
	return &guide, nil
}

// parseCities decodes a city suggestion response; anything unreadable is an
// empty list.
func parseCities(data []byte) []travelbuddy.CitySuggestion {
	var payload struct {
		Cities []travelbuddy.CitySuggestion `json:"cities"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("city suggestions are not valid JSON, ignoring them: %v", err)
		return nil
	}
	return payload.Cities
}

// guidePrompt builds the generation prompt. It mirrors the tone contract of
// the product: localized welcome message, Gen-Z but respectful introduction,
// localized itinerary names with English in brackets, costs in the
// preferred currency.
func guidePrompt(city, country, currency string, month time.Month) string {
	return fmt.Sprintf(`
Create a comprehensive travel guide for %[1]s, %[2]s for travel in %[4]s.
The user's preferred currency is %[3]s.

Tone & Language requirements:
- Welcome Message: PRIORITY: Generate the welcome message in the LOCAL language of %[1]s. Example: 'Padharo Mhare Desh' for Jaipur, 'Willkommen' for Berlin, 'Konnichiwa' for Tokyo. If the local language is not supported or cannot be determined, DEFAULT GRACEFULLY to English (e.g., "Welcome to %[1]s").
- Introduction: 2-3 fun, relatable Gen-Z sentences but strictly respectful of %[2]s's traditions.
- Itinerary: Activity names and descriptions should use the LOCAL language/dialect where possible for authenticity, followed immediately by the English translation in parentheses. Example: "Senso-ji (Senso-ji Temple)". If not possible, use English.
- General: The content should be rich with visuals (via prompts), clean, and act like a personalized travel buddy.
- Costs: Where appropriate (in tips or attraction benefits), mention estimated costs in %[3]s.

Requirements:
1. Provide a traditional Welcome Message (Local language with English fallback).
2. Provide TYPICAL weather data for %[4]s (Temperature, Condition).
3. Recommend top 5 attractions with aesthetic image prompts.
4. Suggest a 1-day itinerary with localized activity names/descriptions (English in brackets). Include an image prompt for each item.
5. Provide local tips (include estimated food/travel costs in %[3]s if relevant).
`, city, country, currency, month)
}
