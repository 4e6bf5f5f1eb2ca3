package query

import (
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEquality(t *testing.T) {
	where, args := Render([]Clause{Equality{Column: "user_id", Value: "u1"}}, 1)

	assert.Equal(t, "user_id = $1", where)
	assert.Equal(t, []any{"u1"}, args)
}

func TestRenderRangeBothBounds(t *testing.T) {
	where, args := Render([]Clause{Range{Column: "duration_in_minutes", Min: 90, Max: 120}}, 1)

	assert.Equal(t, "(duration_in_minutes >= $1 AND duration_in_minutes <= $2)", where)
	assert.Equal(t, []any{90, 120}, args)
}

func TestRenderRangeOneSided(t *testing.T) {
	where, args := Render([]Clause{Range{Column: "duration_in_minutes", Min: 90}}, 1)
	assert.Equal(t, "duration_in_minutes >= $1", where)
	assert.Equal(t, []any{90}, args)

	where, args = Render([]Clause{Range{Column: "duration_in_minutes", Max: 120}}, 1)
	assert.Equal(t, "duration_in_minutes <= $1", where)
	assert.Equal(t, []any{120}, args)
}

func TestRenderSubstringAcrossColumns(t *testing.T) {
	where, args := Render([]Clause{Substring{Columns: []string{"title", "description"}, Value: "dune"}}, 1)

	assert.Equal(t, "(title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')", where)
	assert.Equal(t, []any{"dune"}, args)
}

func TestRenderSetMembership(t *testing.T) {
	where, args := Render([]Clause{SetMembership{Column: "genres", Value: "drama"}}, 1)

	assert.Equal(t, "$1 = ANY(genres)", where)
	assert.Equal(t, []any{"drama"}, args)
}

func TestRenderConjunctionNumbersArgs(t *testing.T) {
	clauses := []Clause{
		Equality{Column: "user_id", Value: "u1"},
		Range{Column: "duration_in_minutes", Min: 90, Max: 120},
		SetMembership{Column: "genres", Value: "drama"},
	}

	where, args := Render(clauses, 1)

	assert.Equal(t,
		"user_id = $1 AND (duration_in_minutes >= $2 AND duration_in_minutes <= $3) AND $4 = ANY(genres)",
		where)
	assert.Equal(t, []any{"u1", 90, 120, "drama"}, args)
}

func TestRenderFirstArgOffset(t *testing.T) {
	where, args := Render([]Clause{Equality{Column: "user_id", Value: "u1"}}, 5)
	assert.Equal(t, "user_id = $5", where)
	assert.Len(t, args, 1)
}

func TestMovieClausesAlwaysScopedToOwner(t *testing.T) {
	owner := uuid.New()

	clauses := MovieClauses(owner, MovieFilter{})

	require.Len(t, clauses, 1)
	eq, ok := clauses[0].(Equality)
	require.True(t, ok)
	assert.Equal(t, "user_id", eq.Column)
	assert.Equal(t, owner, eq.Value)
}

func TestMovieClausesAbsentFieldsProduceNoClauses(t *testing.T) {
	min := 90
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter MovieFilter
		want   int
	}{
		{"empty", MovieFilter{}, 1},
		{"search only", MovieFilter{Search: "dune"}, 2},
		{"duration min only", MovieFilter{DurationMin: &min}, 2},
		{"date start only", MovieFilter{ReleaseDateStart: &start}, 2},
		{"genre only", MovieFilter{Genre: entity.GenreDrama}, 2},
		{"all", MovieFilter{Search: "dune", DurationMin: &min, ReleaseDateStart: &start, Genre: entity.GenreDrama}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, MovieClauses(uuid.New(), tt.filter), tt.want)
		})
	}
}

func TestMovieClausesDurationBoundsShareOneRange(t *testing.T) {
	min, max := 90, 120

	clauses := MovieClauses(uuid.New(), MovieFilter{DurationMin: &min, DurationMax: &max})

	require.Len(t, clauses, 2)
	r, ok := clauses[1].(Range)
	require.True(t, ok)
	assert.Equal(t, 90, r.Min)
	assert.Equal(t, 120, r.Max)
}

func TestOrderByAllowList(t *testing.T) {
	orderBy, err := OrderBy("title", "asc")
	require.NoError(t, err)
	assert.Equal(t, "title ASC", orderBy)

	orderBy, err = OrderBy("releaseDate", "desc")
	require.NoError(t, err)
	assert.Equal(t, "release_date DESC", orderBy)

	orderBy, err = OrderBy("productionBudget", "desc")
	require.NoError(t, err)
	assert.Equal(t, "production_budget DESC", orderBy)
}

func TestOrderByRejectsUnknownField(t *testing.T) {
	_, err := OrderBy("password; DROP TABLE movies", "asc")
	assert.Error(t, err)

	_, err = OrderBy("duration_in_minutes", "asc")
	assert.Error(t, err)
}
