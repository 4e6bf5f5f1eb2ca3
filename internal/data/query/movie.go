package query

import (
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
)

// MovieFilter is the canonical query spec produced by the request layer:
// validated, defaulted and allow-list checked. Zero values mean the field
// is absent and must not appear in the predicate.
type MovieFilter struct {
	Search           string
	DurationMin      *int
	DurationMax      *int
	ReleaseDateStart *time.Time
	ReleaseDateEnd   *time.Time
	Genre            entity.Genre
	SortBy           string
	SortOrder        string
}

// searchColumns is the field set a free-text search matches against.
var searchColumns = []string{"title", "description", "original_title"}

// MovieClauses maps the filter to predicate clauses. The owner equality is
// always present; listing and mutation are tenant-scoped, never global.
func MovieClauses(ownerID uuid.UUID, f MovieFilter) []Clause {
	clauses := []Clause{
		Equality{Column: "user_id", Value: ownerID},
	}

	if f.Search != "" {
		clauses = append(clauses, Substring{Columns: searchColumns, Value: f.Search})
	}

	if f.DurationMin != nil || f.DurationMax != nil {
		r := Range{Column: "duration_in_minutes"}
		if f.DurationMin != nil {
			r.Min = *f.DurationMin
		}
		if f.DurationMax != nil {
			r.Max = *f.DurationMax
		}
		clauses = append(clauses, r)
	}

	if f.ReleaseDateStart != nil || f.ReleaseDateEnd != nil {
		r := Range{Column: "release_date"}
		if f.ReleaseDateStart != nil {
			r.Min = *f.ReleaseDateStart
		}
		if f.ReleaseDateEnd != nil {
			r.Max = *f.ReleaseDateEnd
		}
		clauses = append(clauses, r)
	}

	if f.Genre != "" {
		clauses = append(clauses, SetMembership{Column: "genres", Value: string(f.Genre)})
	}

	return clauses
}
