package catalog

import (
	"strconv"
	"strings"
)

// Item is a single catalog title as served by the data source.
// Items are never modified after a load; a new load replaces them all.
type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster"`
}

// FormattedRating renders the rating with one decimal place.
func (i Item) FormattedRating() string {
	return strconv.FormatFloat(i.Rating, 'f', 1, 64)
}

// FormattedYear returns the year as text, or "" when the source omitted it.
func (i Item) FormattedYear() string {
	if i.Year <= 0 {
		return ""
	}
	return strconv.Itoa(i.Year)
}

// DisplayTitle falls back to the item ID when the title is blank.
func (i Item) DisplayTitle() string {
	if title := strings.TrimSpace(i.Title); title != "" {
		return title
	}
	return "Untitled #" + strconv.FormatInt(i.ID, 10)
}
