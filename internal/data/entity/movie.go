package entity

import (
	"time"

	"github.com/google/uuid"
)

type Genre string

const (
	GenreAction      Genre = "action"
	GenreAdventure   Genre = "adventure"
	GenreAnimation   Genre = "animation"
	GenreComedy      Genre = "comedy"
	GenreCrime       Genre = "crime"
	GenreDocumentary Genre = "documentary"
	GenreDrama       Genre = "drama"
	GenreFantasy     Genre = "fantasy"
	GenreHorror      Genre = "horror"
	GenreRomance     Genre = "romance"
	GenreSciFi       Genre = "sci_fi"
	GenreThriller    Genre = "thriller"
)

// ValidGenre reports whether g is a member of the closed genre set.
func ValidGenre(g Genre) bool {
	switch g {
	case GenreAction, GenreAdventure, GenreAnimation, GenreComedy, GenreCrime,
		GenreDocumentary, GenreDrama, GenreFantasy, GenreHorror, GenreRomance,
		GenreSciFi, GenreThriller:
		return true
	}
	return false
}

// Movie is owned by exactly one user. ID and UserID are immutable after
// create. ReleaseDate carries calendar-date semantics only; the time
// component is always midnight UTC.
type Movie struct {
	Base
	UserID            uuid.UUID `db:"user_id"`
	Title             string    `db:"title"`
	OriginalTitle     *string   `db:"original_title"`
	Description       string    `db:"description"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	ReleaseDate       time.Time `db:"release_date"`
	Genres            []Genre   `db:"genres"`
	CoverImageURL     *string   `db:"cover_image_url"`
	ProductionBudget  string    `db:"production_budget"`
}
