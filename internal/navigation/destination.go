package navigation

import (
	"fmt"

	"github.com/ytget/book-tracker/internal/model"
)

// Destination is one named screen of the app
type Destination int

const (
	Home Destination = iota
	CurrentlyReading
	WantToRead
	FinishedBooks
	Reviews
	Recommendations
)

// Destinations returns every destination in menu order
func Destinations() []Destination {
	return []Destination{Home, CurrentlyReading, WantToRead, FinishedBooks, Reviews, Recommendations}
}

// Lists returns the destinations that show a reading list
func Lists() []Destination {
	return Destinations()[1:]
}

// Route returns the stable route name of the destination
func (d Destination) Route() string {
	switch d {
	case Home:
		return "home"
	case CurrentlyReading:
		return string(model.KindCurrentlyReading)
	case WantToRead:
		return string(model.KindWantToRead)
	case FinishedBooks:
		return string(model.KindFinished)
	case Reviews:
		return string(model.KindReviews)
	case Recommendations:
		return string(model.KindRecommendations)
	default:
		return "unknown"
	}
}

// String returns the route name
func (d Destination) String() string {
	return d.Route()
}

// IsValid reports whether d belongs to the fixed destination set
func (d Destination) IsValid() bool {
	return d >= Home && d <= Recommendations
}

// Kind returns the reading list shown by the destination. Home has none.
func (d Destination) Kind() (model.Kind, bool) {
	if d == Home || !d.IsValid() {
		return "", false
	}
	return model.Kind(d.Route()), true
}

// ParseDestination returns the destination with the given route name
func ParseDestination(route string) (Destination, error) {
	for _, d := range Destinations() {
		if d.Route() == route {
			return d, nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownDestination, route)
}

// ForKind returns the destination that shows the given reading list
func ForKind(kind model.Kind) (Destination, error) {
	if !kind.IsValid() {
		return Home, fmt.Errorf("%w: list %q", ErrUnknownDestination, kind)
	}
	return ParseDestination(string(kind))
}
