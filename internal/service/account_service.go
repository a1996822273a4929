package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobdock/internal/auth"
	"jobdock/internal/cache"
	apperrors "jobdock/internal/errors"
	"jobdock/internal/model"
	"jobdock/internal/repository"
)

const bcryptCost = 10

const (
	profileCacheKeyPrefix = "profile:"
	// TTL bounds redis memory, not staleness: users are never updated or
	// deleted, so a cached profile cannot go stale.
	profileCacheTTL = time.Hour
)

// AccountService owns registration, login, and profile lookup.
type AccountService interface {
	Register(ctx context.Context, username, email, password, experienceLevel string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	GetProfile(ctx context.Context, email string) (*model.User, error)
}

type accountService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAccountService creates a new account service.
func NewAccountService(users repository.UserRepository, jwtService *auth.JWTService, cacheClient *cache.Client) AccountService {
	return &accountService{
		users:      users,
		jwtService: jwtService,
		cache:      cacheClient,
	}
}

// Register creates a new user with a bcrypt-hashed password. Duplicate
// username or email is detected by the store's unique indexes and comes back
// as a DuplicateKeyError naming the collided field.
func (s *accountService) Register(ctx context.Context, username, email, password, experienceLevel string) (*model.User, error) {
	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username", apperrors.ErrMissingField)
	case email == "":
		return nil, fmt.Errorf("%w: email", apperrors.ErrMissingField)
	case password == "":
		return nil, fmt.Errorf("%w: password", apperrors.ErrMissingField)
	case experienceLevel == "":
		return nil, fmt.Errorf("%w: experienceLevel", apperrors.ErrMissingField)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:        username,
		Email:           email,
		PasswordHash:    string(hashed),
		ExperienceLevel: experienceLevel,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the password against the stored hash and issues a bearer
// token whose subject is the user's ID. An unknown email is reported as
// not-found, distinct from a wrong password.
func (s *accountService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" {
		return "", nil, fmt.Errorf("%w: email", apperrors.ErrMissingField)
	}
	if password == "" {
		return "", nil, fmt.Errorf("%w: password", apperrors.ErrMissingField)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// GetProfile returns the user record minus the password hash. Hits go
// through the redis cache; the cached copy is the redacted JSON form, so it
// never holds the hash either.
func (s *accountService) GetProfile(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", apperrors.ErrMissingField)
	}

	key := profileCacheKeyPrefix + email
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.PasswordHash = ""
	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, key, payload, profileCacheTTL)
	}

	return user, nil
}
