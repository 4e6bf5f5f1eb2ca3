package usecase

import (
	"context"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// ObjectStore is the object-storage collaborator. publicRead asks the
// backend for public-read access on the object.
type ObjectStore interface {
	Put(ctx context.Context, key string, payload []byte, contentType string, publicRead bool) error
	PublicURL(key string) string
}

// Mailer is the email collaborator.
type Mailer interface {
	Send(to, subject, html string) error
}

type Service struct {
	Auth   AuthService
	User   UserService
	Movie  MovieService
	Upload UploadService
	Notify NotifyService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *utils.TokenManager,
	store ObjectStore,
	mailer Mailer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, log),
		User:   NewUserService(repo, log),
		Movie:  NewMovieService(repo, log),
		Upload: NewUploadService(store, log),
		Notify: NewNotifyService(repo, mailer, log),
	}
}
