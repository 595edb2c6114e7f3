package catalog

// ViewState is the render state of a list screen
type ViewState string

const (
	// ViewEmpty means the store has no entries and the placeholder is shown
	ViewEmpty ViewState = "empty"

	// ViewPopulated means at least one entry is rendered
	ViewPopulated ViewState = "populated"
)

// String returns the string representation of ViewState
func (vs ViewState) String() string {
	return string(vs)
}

// StateOf derives the view state from the store contents
func StateOf(s Store) ViewState {
	if s.Len() == 0 {
		return ViewEmpty
	}
	return ViewPopulated
}
