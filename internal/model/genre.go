package model

import "fmt"

// Genre is one of the fixed book genres offered by the want-to-read list
type Genre string

const (
	GenreFiction        Genre = "Fiction"
	GenreNonFiction     Genre = "Non-Fiction"
	GenreFantasy        Genre = "Fantasy"
	GenreScienceFiction Genre = "Science Fiction"
	GenreMystery        Genre = "Mystery"
	GenreRomance        Genre = "Romance"
	GenreThriller       Genre = "Thriller"
	GenreBiography      Genre = "Biography"
	GenreHistory        Genre = "History"
	GenreSelfHelp       Genre = "Self-Help"
	GenreOther          Genre = "Other"
)

// Genres returns all genres in display order. The first one is the default.
func Genres() []Genre {
	return []Genre{
		GenreFiction,
		GenreNonFiction,
		GenreFantasy,
		GenreScienceFiction,
		GenreMystery,
		GenreRomance,
		GenreThriller,
		GenreBiography,
		GenreHistory,
		GenreSelfHelp,
		GenreOther,
	}
}

// DefaultGenre returns the genre preselected in the add dialog
func DefaultGenre() Genre {
	return Genres()[0]
}

// GenreNames returns genre names as plain strings, e.g. for select widgets
func GenreNames() []string {
	genres := Genres()
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, string(g))
	}
	return names
}

// ParseGenre returns the genre with the given name
func ParseGenre(name string) (Genre, error) {
	for _, g := range Genres() {
		if string(g) == name {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown genre: %q", name)
}

// String returns the string representation of Genre
func (g Genre) String() string {
	return string(g)
}
