package navigation

// Package navigation holds the fixed set of app destinations and the single
// current-destination pointer the UI shell renders. It has no UI dependency so
// transitions can be tested without a window.
