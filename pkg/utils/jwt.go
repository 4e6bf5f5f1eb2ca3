package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the access/refresh token pair. The two
// token kinds use separate secrets so a refresh token can never pass as an
// access token.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(cfg JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     time.Duration(cfg.AccessExpiryHours) * time.Hour,
		refreshTTL:    time.Duration(cfg.RefreshExpiryHours) * time.Hour,
	}
}

func (m *TokenManager) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return m.sign(userID, email, m.accessSecret, m.accessTTL)
}

func (m *TokenManager) GenerateRefreshToken(userID uuid.UUID, email string) (string, error) {
	return m.sign(userID, email, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) VerifyAccessToken(token string) (*Claims, error) {
	return m.verify(token, m.accessSecret)
}

func (m *TokenManager) VerifyRefreshToken(token string) (*Claims, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) sign(userID uuid.UUID, email string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *TokenManager) verify(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
