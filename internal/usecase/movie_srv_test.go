package usecase

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/query"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeMovieRepo struct {
	byID map[uuid.UUID]*entity.Movie

	created *entity.Movie
	updated *entity.Movie
	deleted *uuid.UUID

	createErr error
	pageErr   error

	pageClauses []query.Clause
	pageOrderBy string
	pageOffset  int
	pageLimit   int
	pageMovies  []*entity.Movie
	pageTotal   int64

	notices   []repository.ReleaseNotice
	noticeErr error
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.byID[id]
	if !ok || movie.UserID != ownerID {
		return nil, nil
	}
	return movie, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	f.updated = movie
	return nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	f.deleted = &id
	return nil
}

func (f *fakeMovieRepo) FindPage(_ context.Context, clauses []query.Clause, orderBy string, offset, limit int) ([]*entity.Movie, int64, error) {
	if f.pageErr != nil {
		return nil, 0, f.pageErr
	}
	f.pageClauses = clauses
	f.pageOrderBy = orderBy
	f.pageOffset = offset
	f.pageLimit = limit
	return f.pageMovies, f.pageTotal, nil
}

func (f *fakeMovieRepo) FindReleasedBetween(_ context.Context, _, _ time.Time) ([]repository.ReleaseNotice, error) {
	return f.notices, f.noticeErr
}

func newMovieServiceWithFake(fake *fakeMovieRepo) MovieService {
	return NewMovieService(&repository.Repository{Movie: fake}, zap.NewNop())
}

func testMovie(ownerID uuid.UUID) *entity.Movie {
	return &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:            ownerID,
		Title:             "Dune",
		Description:       "Desert planet",
		DurationInMinutes: 155,
		ReleaseDate:       time.Date(2021, 10, 22, 0, 0, 0, 0, time.UTC),
		Genres:            []entity.Genre{entity.GenreSciFi},
		ProductionBudget:  "165000000.00",
	}
}

func TestMovieCreateSetsOwnerFromArgument(t *testing.T) {
	fake := &fakeMovieRepo{}
	svc := newMovieServiceWithFake(fake)
	owner := uuid.New()

	resp, err := svc.Create(context.Background(), owner, &request.MovieCreateRequest{
		Title:             "Dune",
		Description:       "Desert planet",
		DurationInMinutes: 155,
		ReleaseDate:       "2021-10-22",
		Genres:            []string{"sci_fi", "adventure"},
		ProductionBudget:  "165000000.00",
	})

	require.NoError(t, err)
	require.NotNil(t, fake.created)
	assert.Equal(t, owner, fake.created.UserID)
	assert.NotEqual(t, uuid.Nil, fake.created.ID)
	assert.Equal(t, time.Date(2021, 10, 22, 0, 0, 0, 0, time.UTC), fake.created.ReleaseDate)
	assert.Equal(t, []entity.Genre{entity.GenreSciFi, entity.GenreAdventure}, fake.created.Genres)
	assert.Equal(t, fake.created.ID.String(), resp.ID)
}

func TestMovieCreateRejectsInvalidPayload(t *testing.T) {
	fake := &fakeMovieRepo{}
	svc := newMovieServiceWithFake(fake)

	_, err := svc.Create(context.Background(), uuid.New(), &request.MovieCreateRequest{
		Title: "Dune",
	})

	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Nil(t, fake.created)
}

func TestMovieCreateMapsUniqueViolationToConflict(t *testing.T) {
	fake := &fakeMovieRepo{createErr: &pgconn.PgError{
		Code:   "23505",
		Detail: `Key (user_id, title)=(x, Dune) already exists.`,
	}}
	svc := newMovieServiceWithFake(fake)

	_, err := svc.Create(context.Background(), uuid.New(), &request.MovieCreateRequest{
		Title:             "Dune",
		Description:       "Desert planet",
		DurationInMinutes: 155,
		ReleaseDate:       "2021-10-22",
		Genres:            []string{"sci_fi"},
		ProductionBudget:  "165000000.00",
	})

	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "user_id, title")
}

func TestMovieGetForeignRecordIsNotFound(t *testing.T) {
	owner := uuid.New()
	movie := testMovie(owner)
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{movie.ID: movie}}
	svc := newMovieServiceWithFake(fake)

	_, err := svc.Get(context.Background(), uuid.New(), movie.ID.String())

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "movie not found", apperr.MessageOf(err))
}

func TestMovieGetMalformedID(t *testing.T) {
	svc := newMovieServiceWithFake(&fakeMovieRepo{})

	_, err := svc.Get(context.Background(), uuid.New(), "not-a-uuid")

	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}

func TestMovieUpdateMissingRecordWritesNothing(t *testing.T) {
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{}}
	svc := newMovieServiceWithFake(fake)
	title := "New Title"

	_, err := svc.Update(context.Background(), uuid.New(), uuid.NewString(), &request.MovieUpdateRequest{Title: &title})

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Nil(t, fake.updated)
}

func TestMovieUpdatePartialMergePreservesIdentity(t *testing.T) {
	owner := uuid.New()
	movie := testMovie(owner)
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{movie.ID: movie}}
	svc := newMovieServiceWithFake(fake)
	title := "Dune: Part Two"

	resp, err := svc.Update(context.Background(), owner, movie.ID.String(), &request.MovieUpdateRequest{Title: &title})

	require.NoError(t, err)
	require.NotNil(t, fake.updated)
	assert.Equal(t, movie.ID, fake.updated.ID)
	assert.Equal(t, owner, fake.updated.UserID)
	assert.Equal(t, "Dune: Part Two", fake.updated.Title)
	assert.Equal(t, "Desert planet", fake.updated.Description)
	assert.Equal(t, "Dune: Part Two", resp.Title)
}

func TestMovieUpdateEmptyPayloadSkipsWrite(t *testing.T) {
	owner := uuid.New()
	movie := testMovie(owner)
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{movie.ID: movie}}
	svc := newMovieServiceWithFake(fake)

	resp, err := svc.Update(context.Background(), owner, movie.ID.String(), &request.MovieUpdateRequest{})

	require.NoError(t, err)
	assert.Nil(t, fake.updated)
	assert.Equal(t, "Dune", resp.Title)
}

func TestMovieUpdateLogsOnlyWhenWritten(t *testing.T) {
	owner := uuid.New()
	movie := testMovie(owner)
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{movie.ID: movie}}
	core, logs := observer.New(zap.InfoLevel)
	svc := NewMovieService(&repository.Repository{Movie: fake}, zap.New(core))

	_, err := svc.Update(context.Background(), owner, movie.ID.String(), &request.MovieUpdateRequest{})
	require.NoError(t, err)
	assert.Empty(t, logs.FilterMessage("Movie updated").All())

	title := "Dune: Part Two"
	_, err = svc.Update(context.Background(), owner, movie.ID.String(), &request.MovieUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Len(t, logs.FilterMessage("Movie updated").All(), 1)
}

func TestMovieDeleteForeignRecordIsNotFound(t *testing.T) {
	owner := uuid.New()
	movie := testMovie(owner)
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{movie.ID: movie}}
	svc := newMovieServiceWithFake(fake)

	err := svc.Delete(context.Background(), uuid.New(), movie.ID.String())

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Nil(t, fake.deleted)
}

func TestMovieDeleteOwnedRecord(t *testing.T) {
	owner := uuid.New()
	movie := testMovie(owner)
	fake := &fakeMovieRepo{byID: map[uuid.UUID]*entity.Movie{movie.ID: movie}}
	svc := newMovieServiceWithFake(fake)

	err := svc.Delete(context.Background(), owner, movie.ID.String())

	require.NoError(t, err)
	require.NotNil(t, fake.deleted)
	assert.Equal(t, movie.ID, *fake.deleted)
}

func TestMovieListScopesToOwner(t *testing.T) {
	owner := uuid.New()
	fake := &fakeMovieRepo{pageMovies: []*entity.Movie{testMovie(owner)}, pageTotal: 1}
	svc := newMovieServiceWithFake(fake)

	resp, err := svc.List(context.Background(), owner,
		&query.MovieFilter{SortBy: "title", SortOrder: "asc"},
		request.PaginatedRequest{Page: 1, PerPage: 10},
	)

	require.NoError(t, err)
	require.NotEmpty(t, fake.pageClauses)
	eq, ok := fake.pageClauses[0].(query.Equality)
	require.True(t, ok)
	assert.Equal(t, "user_id", eq.Column)
	assert.Equal(t, owner, eq.Value)
	assert.Equal(t, "title ASC", fake.pageOrderBy)
	assert.Equal(t, 0, fake.pageOffset)
	assert.Equal(t, 10, fake.pageLimit)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Len(t, resp.Data, 1)
}

func TestMovieListEmptyPageKeepsEmptySlice(t *testing.T) {
	fake := &fakeMovieRepo{pageMovies: nil, pageTotal: 0}
	svc := newMovieServiceWithFake(fake)

	resp, err := svc.List(context.Background(), uuid.New(),
		&query.MovieFilter{SortBy: "title", SortOrder: "asc"},
		request.PaginatedRequest{Page: 1, PerPage: 10},
	)

	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Meta.TotalPages)
}
