package adaptor

import (
	"movie-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Movie *MovieHandler
	Job   *JobHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
		Movie: NewMovieHandler(service.Movie, service.Upload, log),
		Job:   NewJobHandler(service.Notify, log),
	}
}
