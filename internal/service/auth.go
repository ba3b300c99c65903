package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/model"
)

// Auth handles registration and the session gate. Stored passwords are
// argon2id hashes; login failures never reveal whether the login exists.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	refreshTokenStore model.RefreshTokenStore,
	logger *logger.Logger,
	tokenManager model.TokenManager,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: NewTokenService(tokenManager, refreshTokenStore, logger),
		logger:       logger,
	}
}

func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"login", params.Login)

	if params.Login == "" {
		return model.User{}, model.NewValidationError("login")
	}
	if params.Password == "" {
		return model.User{}, model.NewValidationError("password")
	}

	_, err := a.userStore.GetByLogin(ctx, params.Login)
	if err == nil {
		a.logger.Info("Auth service: login already taken",
			"login", params.Login)
		return model.User{}, model.ErrLoginTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by login",
			"login", params.Login,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Login:        params.Login,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"login", params.Login,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"login", user.Login,
		"user_id", user.ID)

	return user, nil
}

func (a *Auth) Login(ctx context.Context, login, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: starting login",
		"login", login)

	if login == "" || password == "" {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	user, err := a.userStore.GetByLogin(ctx, login)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by login",
			"login", login,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by login: %w", err)
	}

	if !VerifyPassword(user.PasswordHash, password) {
		a.logger.Info("Auth service: password mismatch",
			"login", login)
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"login", login,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"login", login,
		"user_id", user.ID)

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GetProfile returns the account data shown on the profile view.
func (a *Auth) GetProfile(ctx context.Context, userID int64) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
