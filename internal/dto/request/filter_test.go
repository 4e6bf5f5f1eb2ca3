package request

import (
	"net/url"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovieFilterDefaults(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, "title", f.SortBy)
	assert.Equal(t, "asc", f.SortOrder)
	assert.Empty(t, f.Search)
	assert.Nil(t, f.DurationMin)
	assert.Nil(t, f.DurationMax)
	assert.Nil(t, f.ReleaseDateStart)
	assert.Nil(t, f.ReleaseDateEnd)
	assert.Empty(t, f.Genre)
}

func TestParseMovieFilterTrimsSearch(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{"search": {"  dune  "}})

	require.NoError(t, err)
	assert.Equal(t, "dune", f.Search)
}

func TestParseMovieFilterNumericCoercion(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{"durationMin": {"90"}, "durationMax": {"120"}})

	require.NoError(t, err)
	require.NotNil(t, f.DurationMin)
	require.NotNil(t, f.DurationMax)
	assert.Equal(t, 90, *f.DurationMin)
	assert.Equal(t, 120, *f.DurationMax)
}

func TestParseMovieFilterRejectsNonNumericDuration(t *testing.T) {
	_, err := ParseMovieFilter(url.Values{"durationMin": {"ninety"}})

	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "durationMin")
}

func TestParseMovieFilterRejectsNonPositiveDuration(t *testing.T) {
	_, err := ParseMovieFilter(url.Values{"durationMax": {"0"}})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestParseMovieFilterDateOnly(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{"releaseDateStart": {"2024-06-01"}})

	require.NoError(t, err)
	require.NotNil(t, f.ReleaseDateStart)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *f.ReleaseDateStart)
}

func TestParseMovieFilterRejectsNonDateOnlyShapes(t *testing.T) {
	for _, raw := range []string{"2024-06-01T10:00:00Z", "01/06/2024", "June 1 2024", "2024-6-1"} {
		_, err := ParseMovieFilter(url.Values{"releaseDateEnd": {raw}})
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err), "input %q", raw)
	}
}

func TestParseMovieFilterDurationCrossFieldCheck(t *testing.T) {
	_, err := ParseMovieFilter(url.Values{"durationMin": {"120"}, "durationMax": {"90"}})

	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "durationMin")
	assert.Contains(t, apperr.MessageOf(err), "durationMax")
}

func TestParseMovieFilterDateCrossFieldCheck(t *testing.T) {
	_, err := ParseMovieFilter(url.Values{
		"releaseDateStart": {"2024-06-02"},
		"releaseDateEnd":   {"2024-06-01"},
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "releaseDateStart")
	assert.Contains(t, apperr.MessageOf(err), "releaseDateEnd")
}

func TestParseMovieFilterEqualBoundsPass(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{
		"durationMin":      {"90"},
		"durationMax":      {"90"},
		"releaseDateStart": {"2024-06-01"},
		"releaseDateEnd":   {"2024-06-01"},
	})

	require.NoError(t, err)
	assert.Equal(t, *f.DurationMin, *f.DurationMax)
}

func TestParseMovieFilterSortAllowList(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{"sortBy": {"releaseDate"}})
	require.NoError(t, err)
	assert.Equal(t, "releaseDate", f.SortBy)

	_, err = ParseMovieFilter(url.Values{"sortBy": {"password"}})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = ParseMovieFilter(url.Values{"sortBy": {"title; DROP TABLE movies"}})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestParseMovieFilterSortOrderNormalized(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{"sortOrder": {"DESC"}})
	require.NoError(t, err)
	assert.Equal(t, "desc", f.SortOrder)

	_, err = ParseMovieFilter(url.Values{"sortOrder": {"sideways"}})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestParseMovieFilterGenre(t *testing.T) {
	f, err := ParseMovieFilter(url.Values{"genre": {"drama"}})
	require.NoError(t, err)
	assert.Equal(t, entity.GenreDrama, f.Genre)

	_, err = ParseMovieFilter(url.Values{"genre": {"polka"}})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}
