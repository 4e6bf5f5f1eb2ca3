package request

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/query"
	"movie-catalog/pkg/apperr"
)

const dateOnlyLayout = "2006-01-02"

// ParseMovieFilter normalizes raw listing query parameters into a canonical
// filter spec. All validation, defaulting and the cross-field checks happen
// here, once, before any storage call.
func ParseMovieFilter(q url.Values) (*query.MovieFilter, error) {
	f := &query.MovieFilter{
		SortBy:    "title",
		SortOrder: "asc",
	}

	f.Search = strings.TrimSpace(q.Get("search"))

	var err error
	if f.DurationMin, err = parsePositiveInt(q.Get("durationMin"), "durationMin"); err != nil {
		return nil, err
	}
	if f.DurationMax, err = parsePositiveInt(q.Get("durationMax"), "durationMax"); err != nil {
		return nil, err
	}

	if f.ReleaseDateStart, err = parseDateOnly(q.Get("releaseDateStart"), "releaseDateStart"); err != nil {
		return nil, err
	}
	if f.ReleaseDateEnd, err = parseDateOnly(q.Get("releaseDateEnd"), "releaseDateEnd"); err != nil {
		return nil, err
	}

	if genre := q.Get("genre"); genre != "" {
		g := entity.Genre(genre)
		if !entity.ValidGenre(g) {
			return nil, apperr.BadRequestf("unknown genre %q", genre)
		}
		f.Genre = g
	}

	if sortBy := q.Get("sortBy"); sortBy != "" {
		if _, ok := query.SortColumn(sortBy); !ok {
			return nil, apperr.BadRequestf("sortBy must be one of the sortable fields, got %q", sortBy)
		}
		f.SortBy = sortBy
	}

	if sortOrder := q.Get("sortOrder"); sortOrder != "" {
		normalized := strings.ToLower(sortOrder)
		if normalized != "asc" && normalized != "desc" {
			return nil, apperr.BadRequestf("sortOrder must be asc or desc, got %q", sortOrder)
		}
		f.SortOrder = normalized
	}

	if f.DurationMin != nil && f.DurationMax != nil && *f.DurationMin > *f.DurationMax {
		return nil, apperr.BadRequest("durationMin cannot be greater than durationMax")
	}
	if f.ReleaseDateStart != nil && f.ReleaseDateEnd != nil && f.ReleaseDateStart.After(*f.ReleaseDateEnd) {
		return nil, apperr.BadRequest("releaseDateStart cannot be after releaseDateEnd")
	}

	return f, nil
}

func parsePositiveInt(raw, field string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.BadRequestf("%s must be a number, got %q", field, raw)
	}
	if v < 1 {
		return nil, apperr.BadRequestf("%s must be at least 1", field)
	}
	return &v, nil
}

// parseDateOnly accepts strictly YYYY-MM-DD and pins the value to midnight
// UTC, keeping calendar-date comparison semantics.
func parseDateOnly(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, raw, time.UTC)
	if err != nil {
		return nil, apperr.BadRequestf("%s must be in YYYY-MM-DD format", field)
	}
	return &t, nil
}
