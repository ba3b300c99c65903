package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ndanilova/calendar-server/internal/model"
	"github.com/ndanilova/calendar-server/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	t.Parallel()

	t.Run("stores hashed refresh token", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("GenerateAccessToken", int64(42)).Return("access-42", nil)
		manager.On("GenerateRefreshToken", int64(42)).Return("refresh-42", "jti-1", nil)
		store.On("Create", mock.Anything, mock.MatchedBy(func(rt model.RefreshToken) bool {
			return rt.JTI == "jti-1" &&
				rt.UserID == 42 &&
				assert.ObjectsAreEqual(rt.TokenHash, hashRefresh("refresh-42")) &&
				rt.ExpiresAt.After(time.Now())
		})).Return(nil)

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		access, refresh, err := svc.Issue(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "access-42", access)
		assert.Equal(t, "refresh-42", refresh)

		manager.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("GenerateAccessToken", int64(1)).Return("a", nil)
		manager.On("GenerateRefreshToken", int64(1)).Return("r", "j", nil)
		store.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		_, _, err := svc.Issue(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestTokenService_Refresh(t *testing.T) {
	t.Parallel()

	validRecord := func(token string) model.RefreshToken {
		return model.RefreshToken{
			JTI:       "jti-old",
			UserID:    7,
			TokenHash: hashRefresh(token),
			IssuedAt:  time.Now().Add(-time.Hour),
			ExpiresAt: time.Now().Add(time.Hour),
		}
	}

	t.Run("rotates the old token", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("ParseRefreshToken", "old-refresh").Return(int64(7), "jti-old", nil)
		store.On("GetByJTI", mock.Anything, "jti-old").Return(validRecord("old-refresh"), nil)
		store.On("RevokeByJTI", mock.Anything, "jti-old").Return(nil)
		manager.On("GenerateAccessToken", int64(7)).Return("new-access", nil)
		manager.On("GenerateRefreshToken", int64(7)).Return("new-refresh", "jti-new", nil)
		store.On("Create", mock.Anything, mock.MatchedBy(func(rt model.RefreshToken) bool {
			return rt.JTI == "jti-new" &&
				rt.RotatedFromJTI != nil && *rt.RotatedFromJTI == "jti-old"
		})).Return(nil)

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		access, refresh, err := svc.Refresh(context.Background(), "old-refresh")
		require.NoError(t, err)
		assert.Equal(t, "new-access", access)
		assert.Equal(t, "new-refresh", refresh)

		store.AssertExpectations(t)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("ParseRefreshToken", "old-refresh").Return(int64(7), "jti-old", nil)
		revoked := validRecord("old-refresh")
		now := time.Now()
		revoked.RevokedAt = &now
		store.On("GetByJTI", mock.Anything, "jti-old").Return(revoked, nil)

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		_, _, err := svc.Refresh(context.Background(), "old-refresh")
		assert.ErrorIs(t, err, model.ErrTokenRevoked)
		store.AssertNotCalled(t, "RevokeByJTI", mock.Anything, mock.Anything)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("ParseRefreshToken", "old-refresh").Return(int64(7), "jti-old", nil)
		expired := validRecord("old-refresh")
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		store.On("GetByJTI", mock.Anything, "jti-old").Return(expired, nil)

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		_, _, err := svc.Refresh(context.Background(), "old-refresh")
		assert.ErrorIs(t, err, model.ErrTokenExpired)
	})

	t.Run("hash mismatch rejected", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("ParseRefreshToken", "forged").Return(int64(7), "jti-old", nil)
		store.On("GetByJTI", mock.Anything, "jti-old").Return(validRecord("genuine"), nil)

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		_, _, err := svc.Refresh(context.Background(), "forged")
		assert.ErrorIs(t, err, model.ErrTokenMismatch)
	})

	t.Run("unknown jti rejected", func(t *testing.T) {
		t.Parallel()

		manager := &MockTokenManager{}
		store := &MockRefreshTokenStore{}
		manager.On("ParseRefreshToken", "old-refresh").Return(int64(7), "jti-old", nil)
		store.On("GetByJTI", mock.Anything, "jti-old").Return(model.RefreshToken{}, model.ErrNotFound)

		svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

		_, _, err := svc.Refresh(context.Background(), "old-refresh")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestTokenService_RevokeByToken(t *testing.T) {
	t.Parallel()

	manager := &MockTokenManager{}
	store := &MockRefreshTokenStore{}
	manager.On("ParseRefreshToken", "refresh").Return(int64(7), "jti-1", nil)
	store.On("RevokeByJTI", mock.Anything, "jti-1").Return(nil)

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	require.NoError(t, svc.RevokeByToken(context.Background(), "refresh"))
	store.AssertExpectations(t)
}

func TestTokenService_GetUserID(t *testing.T) {
	t.Parallel()

	manager := &MockTokenManager{}
	manager.On("ParseAccessToken", "access").Return(int64(99), nil)

	svc := NewTokenService(manager, &MockRefreshTokenStore{}, testutil.MakeNoopLogger())

	userID, err := svc.GetUserID(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, int64(99), userID)
}
