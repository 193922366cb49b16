package search

import "github.com/framelight/studio-cms/pkg/studiocms"

// descriptionLimit is the character cap applied to every hit's
// description; longer text is cut at the limit and suffixed "...".
const descriptionLimit = 150

// Hit is one normalized search result. Kind and ID are always set.
// ImageURL is an absolute URL or null, never omitted and never a
// relative path. The trailing fields are kind-specific and omitted
// when empty.
type Hit struct {
	Kind        studiocms.Kind `json:"kind"`
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Description string         `json:"description,omitempty"`
	ImageURL    *string        `json:"image_url"`
	DetailURL   string         `json:"detail_url"`
	Category    string         `json:"category,omitempty"`
	Rating      float64        `json:"rating,omitempty"`
	PriceRange  string         `json:"price_range,omitempty"`
	Price       string         `json:"price,omitempty"`
	Location    string         `json:"location,omitempty"`
	ImageCount  int            `json:"image_count,omitempty"`
}

// Response is the payload of one search call.
type Response struct {
	Query       string   `json:"query"`
	Total       int      `json:"total"`
	Results     []Hit    `json:"results"`
	Suggestions []string `json:"suggestions,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// Suggestion is one canned search term with a live match count.
type Suggestion struct {
	Term  string         `json:"term"`
	Kind  studiocms.Kind `json:"kind"`
	Count int            `json:"count"`
}

// SuggestionsResponse is the payload of the suggestions endpoint.
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// truncate cuts s to limit characters plus an ellipsis. Counting is by
// rune so a multibyte character is never split.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
