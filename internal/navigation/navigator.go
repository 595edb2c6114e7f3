package navigation

import (
	"errors"
	"fmt"
)

// ErrUnknownDestination is returned for destinations outside the fixed set
var ErrUnknownDestination = errors.New("unknown destination")

// ChangeFunc is called after the current destination changed
type ChangeFunc func(from, to Destination)

// Navigator holds the current destination. It starts at Home and lives as long
// as the UI. Like the rest of the UI state it is only touched from the UI
// event loop.
type Navigator struct {
	current   Destination
	listeners []ChangeFunc
}

// NewNavigator creates a navigator positioned at Home
func NewNavigator() *Navigator {
	return &Navigator{current: Home}
}

// Current returns the current destination
func (n *Navigator) Current() Destination {
	return n.current
}

// OnChange registers a listener for destination changes
func (n *Navigator) OnChange(fn ChangeFunc) {
	if fn != nil {
		n.listeners = append(n.listeners, fn)
	}
}

// Navigate makes d the current destination. Navigating to the current
// destination does nothing and does not notify listeners.
func (n *Navigator) Navigate(d Destination) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownDestination, int(d))
	}
	if d == n.current {
		return nil
	}

	from := n.current
	n.current = d
	for _, fn := range n.listeners {
		fn(from, d)
	}
	return nil
}

// Back returns to the home screen from any list
func (n *Navigator) Back() {
	// Home is always valid
	_ = n.Navigate(Home)
}

// AtHome reports whether the home screen is current
func (n *Navigator) AtHome() bool {
	return n.current == Home
}
