package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/user/dto"
	"anoa.com/casetrack/internal/modules/user/repository"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/auth"
	"anoa.com/casetrack/pkg/ratelimiter"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)

// dummyHash keeps the unknown-email path as slow as a real comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("casetrack-timing-guard"), bcrypt.DefaultCost)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo    repository.UserRepository
	tokens  *auth.TokenManager
	limiter ratelimiter.AttemptLimiter
}

func NewAuthService(repo repository.UserRepository, tokens *auth.TokenManager, limiter ratelimiter.AttemptLimiter) AuthService {
	return &authService{
		repo:    repo,
		tokens:  tokens,
		limiter: limiter,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, fmt.Errorf("missing email or password: %w", apperror.ErrBadRequest)
	}

	if err := s.limiter.Check(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
			return nil, s.fail(ctx, email)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, s.fail(ctx, email)
	}

	_ = s.limiter.Reset(ctx, email)

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		Role:        user.Role,
	}, nil
}

func (s *authService) fail(ctx context.Context, email string) error {
	if err := s.limiter.Fail(ctx, email); err != nil {
		return err
	}
	return errInvalidCredentials
}
