package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Rating bounds
const (
	MinRating = 0.0
	MaxRating = 5.0

	// MaxStars is the number of units drawn by a rating bar
	MaxStars = 5
)

// DefaultDateLayout renders creation dates as "Mar 07, 2025"
const DefaultDateLayout = "Jan 02, 2006"

// Entry is a single book-like record within one reading list. Entries are
// created once by the add form and never mutated afterwards.
type Entry struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Kind-specific fields; nil means the field was not supplied
	CurrentPage *int     `json:"current_page,omitempty"`
	TotalPages  *int     `json:"total_pages,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Genre       *Genre   `json:"genre,omitempty"`
	Review      *string  `json:"review,omitempty"`
}

// ProgressPercent returns round(currentPage / totalPages * 100). The second
// value is false when either page count is missing or the total is zero.
func (e *Entry) ProgressPercent() (int, bool) {
	if e.CurrentPage == nil || e.TotalPages == nil || *e.TotalPages <= 0 {
		return 0, false
	}
	return int(math.Round(float64(*e.CurrentPage) / float64(*e.TotalPages) * 100)), true
}

// LitStars returns how many of MaxStars units are lit for the entry's rating.
// Fractions are truncated, so 3.9 lights three stars.
func (e *Entry) LitStars() int {
	if e.Rating == nil {
		return 0
	}
	return LitStars(*e.Rating)
}

// LitStars returns the number of lit units for rating
func LitStars(rating float64) int {
	if math.IsNaN(rating) || rating <= MinRating {
		return 0
	}
	lit := int(math.Floor(rating))
	if lit > MaxStars {
		return MaxStars
	}
	return lit
}

// RatingLabel returns the rating formatted as "3.0/5", or "" when unrated
func (e *Entry) RatingLabel() string {
	if e.Rating == nil {
		return ""
	}
	return fmt.Sprintf("%.1f/%d", *e.Rating, MaxStars)
}

// PageLabel returns "Page 12" or "Page 12 of 300", or "" when no page is tracked
func (e *Entry) PageLabel() string {
	if e.CurrentPage == nil {
		return ""
	}
	if e.TotalPages == nil {
		return fmt.Sprintf("Page %d", *e.CurrentPage)
	}
	return fmt.Sprintf("Page %d of %d", *e.CurrentPage, *e.TotalPages)
}

// AuthorLabel returns "by Author", or "" when the author is blank
func (e *Entry) AuthorLabel() string {
	author := strings.TrimSpace(e.Author)
	if author == "" {
		return ""
	}
	return "by " + author
}

// ReviewText returns the review, or "" when none was written
func (e *Entry) ReviewText() string {
	if e.Review == nil {
		return ""
	}
	return strings.TrimSpace(*e.Review)
}

// DateLabel formats the creation date with layout, falling back to DefaultDateLayout
func (e *Entry) DateLabel(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return e.CreatedAt.Format(layout)
}

// Caption returns the footer line, e.g. "Added Mar 07, 2025"
func (e *Entry) Caption(layout string) string {
	return e.Kind.DateVerb() + " " + e.DateLabel(layout)
}
