package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/apperr"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *utils.TokenManager
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequestf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.FromPostgres(err, "login failed")
	}
	if user == nil {
		return nil, apperr.NotFound("user not registered")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Invalid credentials", zap.String("email", req.Email))
		return nil, apperr.Unauthorized("invalid credentials")
	}

	pair, err := s.generatePair(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("refresh token not provided")
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return nil, apperr.Unauthorized("invalid or expired refresh token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		s.log.Warn("Malformed user id in refresh token", zap.String("user_id", claims.UserID))
		return nil, apperr.Unauthorized("invalid or expired refresh token")
	}

	// Resolve by id, not email; the token stays valid across an email change.
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromPostgres(err, "refresh failed")
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	return s.generatePair(user)
}

func (s *authService) generatePair(user *entity.User) (*response.TokenPairResponse, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal("failed to issue tokens", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal("failed to issue tokens", err)
	}

	return &response.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
