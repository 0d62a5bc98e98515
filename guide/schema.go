package guide

import "google.golang.org/genai"

// citiesSchema constrains the city suggestion response to a flat list of
// city names.
var citiesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"cities": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString},
				},
				Required: []string{"name"},
			},
		},
	},
	Required: []string{"cities"},
}

// guideSchema is the full travel-guide contract. The field names match the
// JSON tags on travelbuddy.TravelGuide, so a conforming response decodes
// without a mapping layer.
var guideSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"city":           {Type: genai.TypeString},
		"country":        {Type: genai.TypeString},
		"welcomeMessage": {Type: genai.TypeString, Description: "Traditional welcome in local language, or English fallback"},
		"introduction":   {Type: genai.TypeString, Description: "Gen-Z friendly, respectful introduction"},
		"weather": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"temperature":       {Type: genai.TypeString, Description: "Typical temperature for the travel month, e.g. 24°C"},
				"condition":         {Type: genai.TypeString, Description: "e.g. Sunny, Rainy, Humid"},
				"packingSuggestion": {Type: genai.TypeString, Description: "One sentence of packing advice"},
			},
			Required: []string{"temperature", "condition", "packingSuggestion"},
		},
		"attractions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"benefit":     {Type: genai.TypeString, Description: "Why visit, include estimated cost where relevant"},
					"imagePrompt": {Type: genai.TypeString, Description: "Aesthetic image generation prompt for this attraction"},
				},
				Required: []string{"name", "benefit", "imagePrompt"},
			},
		},
		"mapContext": {Type: genai.TypeString, Description: "One sentence describing the geography of the city"},
		"itinerary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"time":        {Type: genai.TypeString, Description: "e.g. 09:00 AM"},
					"activity":    {Type: genai.TypeString, Description: "Localized name with English translation in parentheses"},
					"description": {Type: genai.TypeString},
					"imagePrompt": {Type: genai.TypeString},
				},
				Required: []string{"time", "activity", "description", "imagePrompt"},
			},
		},
		"tips": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"travel":  {Type: genai.TypeString, Description: "Getting around, with estimated costs"},
				"food":    {Type: genai.TypeString, Description: "Food tip with estimated costs"},
				"safety":  {Type: genai.TypeString},
				"culture": {Type: genai.TypeString},
			},
			Required: []string{"travel", "food", "safety", "culture"},
		},
	},
	Required: []string{"city", "country", "welcomeMessage", "introduction", "weather", "attractions", "mapContext", "itinerary", "tips"},
}
