package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	OriginalTitle     *string   `json:"originalTitle,omitempty"`
	Description       string    `json:"description"`
	DurationInMinutes int       `json:"duration"`
	ReleaseDate       string    `json:"releaseDate"`
	Genres            []string  `json:"genres"`
	CoverImageURL     *string   `json:"coverImageUrl,omitempty"`
	ProductionBudget  string    `json:"productionBudget"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		genres[i] = string(g)
	}

	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		OriginalTitle:     movie.OriginalTitle,
		Description:       movie.Description,
		DurationInMinutes: movie.DurationInMinutes,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		Genres:            genres,
		CoverImageURL:     movie.CoverImageURL,
		ProductionBudget:  movie.ProductionBudget,
		CreatedAt:         movie.CreatedAt,
		UpdatedAt:         movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
