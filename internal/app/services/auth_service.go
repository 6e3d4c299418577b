package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/app/repositories"
	"github.com/okandemir/studytrack/internal/pkg/apperrors"
	"github.com/okandemir/studytrack/internal/pkg/auth"
)

// AuthService handles registration, login and refresh-token rotation
type AuthService struct {
	users    *repositories.UserRepository
	tokens   *repositories.TokenRepository
	profiles *repositories.ProfileRepository
	jwt      *auth.JWTService
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users *repositories.UserRepository,
	tokens *repositories.TokenRepository,
	profiles *repositories.ProfileRepository,
	jwt *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		profiles: profiles,
		jwt:      jwt,
		logger:   logger,
	}
}

// Register creates an account together with its empty profile row and
// returns a first token pair, so the client is signed in immediately.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := s.profiles.Create(ctx, user.ID, user.Email); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login verifies credentials and returns a fresh token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if !user.IsActive || !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to record login time")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Expired or revoked tokens are rejected.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	stored, err := s.tokens.Get(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrPermissionDenied
	}

	if err := s.tokens.Revoke(ctx, stored.Token); err != nil {
		return nil, fmt.Errorf("revoking token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	access, refresh, expiresIn, err := s.jwt.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: s.jwt.GetRefreshTokenExpiry(),
	}
	if err := s.tokens.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	}, nil
}
