package model

// Kind identifies which reading list an entry belongs to
type Kind string

const (
	// KindCurrentlyReading holds books in progress
	KindCurrentlyReading Kind = "currently_reading"

	// KindWantToRead holds the wishlist
	KindWantToRead Kind = "want_to_read"

	// KindFinished holds completed books
	KindFinished Kind = "finished_books"

	// KindReviews holds books the user wrote a review for
	KindReviews Kind = "reviews"

	// KindRecommendations holds books the user recommends to others
	KindRecommendations Kind = "recommendations"
)

// Kinds returns all list kinds in display order
func Kinds() []Kind {
	return []Kind{
		KindCurrentlyReading,
		KindWantToRead,
		KindFinished,
		KindReviews,
		KindRecommendations,
	}
}

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known list kinds
func (k Kind) IsValid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// DateVerb returns the caption verb shown before an entry's creation date
func (k Kind) DateVerb() string {
	if k == KindFinished {
		return "Finished"
	}
	return "Added"
}
