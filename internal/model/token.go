package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
	ErrTokenMismatch = errors.New("refresh token mismatch")
)

// TokenManager issues and validates session tokens.
type TokenManager interface {
	GenerateAccessToken(userID int64) (string, error)
	GenerateRefreshToken(userID int64) (token string, jti string, err error)
	ParseAccessToken(token string) (int64, error)
	ParseRefreshToken(token string) (userID int64, jti string, err error)
}

// TokenPair carries the tokens returned on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenStore persists refresh token state for rotation and revocation.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)
	RevokeByJTI(ctx context.Context, jti string) error
	RevokeAllByUser(ctx context.Context, userID int64) error
}

// RefreshToken is the stored state of an issued refresh token. Only a hash
// of the token itself is kept at rest.
type RefreshToken struct {
	ID             int64
	JTI            string
	UserID         int64
	TokenHash      []byte
	IssuedAt       time.Time
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	RotatedFromJTI *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
