package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	tokens *utils.TokenManager,
	store usecase.ObjectStore,
	mailer usecase.Mailer,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, tokens, store, mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *utils.TokenManager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireUser(r, handler.User)
	wireAuth(r, handler.Auth)
	wireMovie(r, handler.Movie, tokens, logger)
	wireJob(r, handler.Job, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
