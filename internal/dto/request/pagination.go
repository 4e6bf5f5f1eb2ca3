package request

import (
	"net/url"
	"strconv"

	"movie-catalog/pkg/apperr"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int
	PerPage int
}

func (p PaginatedRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p PaginatedRequest) Limit() int {
	return p.PerPage
}

// ParsePagination reads page/perPage with defaults. Non-numeric or
// non-positive values are rejected rather than clamped.
func ParsePagination(q url.Values) (PaginatedRequest, error) {
	p := PaginatedRequest{Page: DefaultPage, PerPage: DefaultPerPage}

	if raw := q.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, apperr.BadRequestf("page must be a number, got %q", raw)
		}
		if v < 1 {
			return p, apperr.BadRequest("page must be at least 1")
		}
		p.Page = v
	}

	if raw := q.Get("perPage"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, apperr.BadRequestf("perPage must be a number, got %q", raw)
		}
		if v < 1 {
			return p, apperr.BadRequest("perPage must be at least 1")
		}
		if v > MaxPerPage {
			return p, apperr.BadRequestf("perPage cannot exceed %d", MaxPerPage)
		}
		p.PerPage = v
	}

	return p, nil
}
