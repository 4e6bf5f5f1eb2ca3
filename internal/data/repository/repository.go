package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Movie MovieRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Movie: NewMovieRepository(db, log),
	}
}
