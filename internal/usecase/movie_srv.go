package usecase

import (
	"context"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/query"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperr"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *request.MovieCreateRequest) (*response.MovieResponse, error)
	Get(ctx context.Context, ownerID uuid.UUID, movieID string) (*response.MovieResponse, error)
	Update(ctx context.Context, ownerID uuid.UUID, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, ownerID uuid.UUID, movieID string) error
	List(ctx context.Context, ownerID uuid.UUID, filter *query.MovieFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) Create(ctx context.Context, ownerID uuid.UUID, req *request.MovieCreateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequestf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.ParseInLocation("2006-01-02", req.ReleaseDate, time.UTC)
	if err != nil {
		return nil, apperr.BadRequest("releaseDate must be in YYYY-MM-DD format")
	}

	genres, err := parseGenres(req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            ownerID,
		Title:             req.Title,
		OriginalTitle:     req.OriginalTitle,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
		ReleaseDate:       releaseDate,
		Genres:            genres,
		CoverImageURL:     req.CoverImageURL,
		ProductionBudget:  req.ProductionBudget,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, apperr.FromPostgres(err, "failed to create movie")
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) Get(ctx context.Context, ownerID uuid.UUID, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findOwned(ctx, ownerID, movieID)
	if err != nil {
		return nil, err
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) Update(ctx context.Context, ownerID uuid.UUID, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequestf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.findOwned(ctx, ownerID, movieID)
	if err != nil {
		return nil, err
	}

	// Partial merge: only supplied fields change. The payload shape has no
	// id or owner field, so those stay immutable by construction.
	updated := false

	if req.Title != nil {
		movie.Title = *req.Title
		updated = true
	}
	if req.OriginalTitle != nil {
		movie.OriginalTitle = req.OriginalTitle
		updated = true
	}
	if req.Description != nil {
		movie.Description = *req.Description
		updated = true
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
		updated = true
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.ParseInLocation("2006-01-02", *req.ReleaseDate, time.UTC)
		if err != nil {
			return nil, apperr.BadRequest("releaseDate must be in YYYY-MM-DD format")
		}
		movie.ReleaseDate = releaseDate
		updated = true
	}
	if req.Genres != nil {
		genres, err := parseGenres(req.Genres)
		if err != nil {
			return nil, err
		}
		movie.Genres = genres
		updated = true
	}
	if req.CoverImageURL != nil {
		movie.CoverImageURL = req.CoverImageURL
		updated = true
	}
	if req.ProductionBudget != nil {
		movie.ProductionBudget = *req.ProductionBudget
		updated = true
	}

	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			s.log.Error("Failed to update movie",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
			return nil, apperr.FromPostgres(err, "failed to update movie")
		}

		s.log.Info("Movie updated", zap.String("movie_id", movieID))
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) Delete(ctx context.Context, ownerID uuid.UUID, movieID string) error {
	movie, err := s.findOwned(ctx, ownerID, movieID)
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID, ownerID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return apperr.FromPostgres(err, "failed to delete movie")
	}

	return nil
}

func (s *movieService) List(ctx context.Context, ownerID uuid.UUID, filter *query.MovieFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	orderBy, err := query.OrderBy(filter.SortBy, filter.SortOrder)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	clauses := query.MovieClauses(ownerID, *filter)

	movies, total, err := s.repo.Movie.FindPage(ctx, clauses, orderBy, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("Failed to list movies",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
			zap.Int("page", page.Page),
			zap.Int("per_page", page.PerPage),
		)
		return nil, apperr.FromPostgres(err, "failed to list movies")
	}

	s.log.Info("Movies listed",
		zap.String("owner_id", ownerID.String()),
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
	)

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), page.Page, page.PerPage, total), nil
}

// findOwned resolves an id to a record owned by ownerID. Both a bad id and
// a record owned by someone else surface as NotFound; foreign records are
// never acknowledged to exist.
func (s *movieService) findOwned(ctx context.Context, ownerID uuid.UUID, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.BadRequest("invalid movie id")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, apperr.FromPostgres(err, "failed to find movie")
	}
	if movie == nil {
		return nil, apperr.NotFound("movie not found")
	}

	return movie, nil
}

func parseGenres(raw []string) ([]entity.Genre, error) {
	if len(raw) == 0 {
		return nil, apperr.BadRequest("genres cannot be empty")
	}

	genres := make([]entity.Genre, len(raw))
	for i, g := range raw {
		genre := entity.Genre(g)
		if !entity.ValidGenre(genre) {
			return nil, apperr.BadRequestf("unknown genre %q", g)
		}
		genres[i] = genre
	}

	return genres, nil
}
