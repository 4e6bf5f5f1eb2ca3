package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/query"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const movieColumns = `id, user_id, title, original_title, description,
	       duration_in_minutes, release_date, genres, cover_image_url,
	       production_budget::text, created_at, updated_at`

// ReleaseNotice pairs a movie released in a window with its owner's email.
type ReleaseNotice struct {
	MovieID    uuid.UUID
	Title      string
	OwnerEmail string
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	// FindByID is owner-scoped; a record owned by someone else is absent.
	// Absence is reported as (nil, nil), never as an error.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	// FindPage runs the count and page reads against one snapshot so meta
	// and data cannot disagree under concurrent writes.
	FindPage(ctx context.Context, clauses []query.Clause, orderBy string, offset, limit int) ([]*entity.Movie, int64, error)
	FindReleasedBetween(ctx context.Context, start, end time.Time) ([]ReleaseNotice, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	sql := `
		INSERT INTO movies (id, user_id, title, original_title, description,
		                    duration_in_minutes, release_date, genres,
		                    cover_image_url, production_budget,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, sql,
		movie.ID,
		movie.UserID,
		movie.Title,
		movie.OriginalTitle,
		movie.Description,
		movie.DurationInMinutes,
		movie.ReleaseDate,
		genresToStrings(movie.Genres),
		movie.CoverImageURL,
		movie.ProductionBudget,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Movie, error) {
	sql := fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1 AND user_id = $2`, movieColumns)

	movie, err := scanMovie(r.db.QueryRow(ctx, sql, id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	sql := `
		UPDATE movies
		SET title = $3, original_title = $4, description = $5,
		    duration_in_minutes = $6, release_date = $7, genres = $8,
		    cover_image_url = $9, production_budget = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, sql,
		movie.ID,
		movie.UserID,
		movie.Title,
		movie.OriginalTitle,
		movie.Description,
		movie.DurationInMinutes,
		movie.ReleaseDate,
		genresToStrings(movie.Genres),
		movie.CoverImageURL,
		movie.ProductionBudget,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update movie: %w", pgx.ErrNoRows)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	sql := `DELETE FROM movies WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, sql, id, ownerID)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete movie: %w", pgx.ErrNoRows)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (r *movieRepository) FindPage(ctx context.Context, clauses []query.Clause, orderBy string, offset, limit int) ([]*entity.Movie, int64, error) {
	where, args := query.Render(clauses, 1)

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, fmt.Errorf("begin list transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int64
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM movies WHERE %s`, where)
	if err := tx.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	pageSQL := fmt.Sprintf(`SELECT %s FROM movies WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		movieColumns, where, orderBy, len(args)+1, len(args)+2)
	pageArgs := append(args, limit, offset)

	rows, err := tx.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, 0, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit list transaction: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
	)

	return movies, total, nil
}

func (r *movieRepository) FindReleasedBetween(ctx context.Context, start, end time.Time) ([]ReleaseNotice, error) {
	sql := `
		SELECT m.id, m.title, COALESCE(u.email, '')
		FROM movies m
		JOIN users u ON u.id = m.user_id
		WHERE m.release_date >= $1 AND m.release_date <= $2
	`

	rows, err := r.db.Query(ctx, sql, start, end)
	if err != nil {
		r.log.Error("Failed to find released movies", zap.Error(err))
		return nil, fmt.Errorf("find released movies: %w", err)
	}
	defer rows.Close()

	var notices []ReleaseNotice
	for rows.Next() {
		var n ReleaseNotice
		if err := rows.Scan(&n.MovieID, &n.Title, &n.OwnerEmail); err != nil {
			r.log.Error("Failed to scan release row", zap.Error(err))
			return nil, fmt.Errorf("scan release row: %w", err)
		}
		notices = append(notices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return notices, nil
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	var genres []string

	err := row.Scan(
		&movie.ID,
		&movie.UserID,
		&movie.Title,
		&movie.OriginalTitle,
		&movie.Description,
		&movie.DurationInMinutes,
		&movie.ReleaseDate,
		&genres,
		&movie.CoverImageURL,
		&movie.ProductionBudget,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	movie.Genres = make([]entity.Genre, len(genres))
	for i, g := range genres {
		movie.Genres[i] = entity.Genre(g)
	}

	return &movie, nil
}

func genresToStrings(genres []entity.Genre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = string(g)
	}
	return out
}
