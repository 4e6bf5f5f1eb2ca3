package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// Every catalog route is owner-scoped, so all of them sit behind auth.
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		r.Get("/", movieHandler.ListMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Post("/cover", movieHandler.UploadCover)
		r.Get("/{id}", movieHandler.GetMovie)
		r.Patch("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
