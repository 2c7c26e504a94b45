package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/internal/modules/user/dto"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/auth"
	"anoa.com/casetrack/pkg/ratelimiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockLimiter is a mock implementation of AttemptLimiter.
type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Check(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockLimiter) Fail(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockLimiter) Reset(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func hashed(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	tokens := auth.NewTokenManager("secret", 8*time.Hour)
	staff := &entity.User{ID: 7, Email: "staff@example.org", PasswordHash: hashed(t, "pw"), Role: entity.RoleStaff}

	tests := []struct {
		name       string
		input      dto.LoginInput
		setupMocks func(repo *MockUserRepository, lim *MockLimiter)
		wantErr    error
	}{
		{
			name:  "success normalizes email",
			input: dto.LoginInput{Email: " Staff@Example.org ", Password: "pw"},
			setupMocks: func(repo *MockUserRepository, lim *MockLimiter) {
				lim.On("Check", mock.Anything, "staff@example.org").Return(nil)
				repo.On("FindByEmail", mock.Anything, "staff@example.org").Return(staff, nil)
				lim.On("Reset", mock.Anything, "staff@example.org").Return(nil)
			},
		},
		{
			name:  "wrong password",
			input: dto.LoginInput{Email: "staff@example.org", Password: "nope"},
			setupMocks: func(repo *MockUserRepository, lim *MockLimiter) {
				lim.On("Check", mock.Anything, "staff@example.org").Return(nil)
				repo.On("FindByEmail", mock.Anything, "staff@example.org").Return(staff, nil)
				lim.On("Fail", mock.Anything, "staff@example.org").Return(nil)
			},
			wantErr: apperror.ErrUnauthorized,
		},
		{
			name:  "unknown email looks the same as wrong password",
			input: dto.LoginInput{Email: "ghost@example.org", Password: "pw"},
			setupMocks: func(repo *MockUserRepository, lim *MockLimiter) {
				lim.On("Check", mock.Anything, "ghost@example.org").Return(nil)
				repo.On("FindByEmail", mock.Anything, "ghost@example.org").Return(nil, gorm.ErrRecordNotFound)
				lim.On("Fail", mock.Anything, "ghost@example.org").Return(nil)
			},
			wantErr: apperror.ErrUnauthorized,
		},
		{
			name:       "missing password",
			input:      dto.LoginInput{Email: "staff@example.org"},
			setupMocks: func(repo *MockUserRepository, lim *MockLimiter) {},
			wantErr:    apperror.ErrBadRequest,
		},
		{
			name:  "throttled",
			input: dto.LoginInput{Email: "staff@example.org", Password: "pw"},
			setupMocks: func(repo *MockUserRepository, lim *MockLimiter) {
				lim.On("Check", mock.Anything, "staff@example.org").
					Return(&ratelimiter.RateLimitError{Message: "slow down", RetryAfter: time.Minute})
			},
			wantErr: apperror.ErrRateLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			lim := new(MockLimiter)
			tt.setupMocks(repo, lim)

			svc := NewAuthService(repo, tokens, lim)
			res, err := svc.Login(context.Background(), tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Bearer", res.TokenType)
				assert.Equal(t, entity.RoleStaff, res.Role)
				assert.InDelta(t, (8 * time.Hour).Seconds(), float64(res.ExpiresIn), 5)

				id, err := tokens.Parse(res.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, uint(7), id.UserID)
				assert.Equal(t, entity.RoleStaff, id.Role)
			}

			repo.AssertExpectations(t)
			lim.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_SameMessageForBothFailures(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	repo := new(MockUserRepository)
	staff := &entity.User{ID: 1, Email: "a@b.c", PasswordHash: hashed(t, "pw"), Role: entity.RoleStaff}
	repo.On("FindByEmail", mock.Anything, "a@b.c").Return(staff, nil)
	repo.On("FindByEmail", mock.Anything, "x@b.c").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(repo, tokens, ratelimiter.NewAttemptLimiter(nil, nil, "login", 0, 0))

	_, wrongPw := svc.Login(context.Background(), dto.LoginInput{Email: "a@b.c", Password: "bad"})
	_, unknown := svc.Login(context.Background(), dto.LoginInput{Email: "x@b.c", Password: "pw"})

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}
