package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/store"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn       func(ctx context.Context, user models.User) error
	findUserFn         func(ctx context.Context, username string) (models.User, error)
	findPasswordHashFn func(ctx context.Context, username string) (string, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) error {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindUser(ctx context.Context, username string) (models.User, error) {
	if m.findUserFn != nil {
		return m.findUserFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindPasswordHash(ctx context.Context, username string) (string, error) {
	if m.findPasswordHashFn != nil {
		return m.findPasswordHashFn(ctx, username)
	}
	return "", nil
}

func newTestAuthService(repo store.UserRepository) AuthService {
	// MinCost keeps the hashing rounds cheap in tests.
	return NewAuthService(repo, config.App{BcryptCost: bcrypt.MinCost}, logger.Nop())
}

func validRegistration() models.Registration {
	return models.Registration{
		Username: "alice",
		Age:      30,
		Height:   170,
		Weight:   70,
		Password: "pw",
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var saved models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) error {
			saved = user
			return nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 30, user.Age)
	assert.InDelta(t, 170.0, user.Height, 1e-9)
	assert.InDelta(t, 70.0, user.Weight, 1e-9)
	assert.InDelta(t, 24.22, user.BMI, 1e-9)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service layer")

	// the stored hash must verify the original password and must not be the plaintext
	assert.NotEqual(t, "pw", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("pw")))
	assert.InDelta(t, 24.22, saved.BMI, 1e-9)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Registration)
	}{
		{"empty username", func(r *models.Registration) { r.Username = "  " }},
		{"empty password", func(r *models.Registration) { r.Password = "" }},
		{"age too low", func(r *models.Registration) { r.Age = 9 }},
		{"age too high", func(r *models.Registration) { r.Age = 101 }},
		{"height too low", func(r *models.Registration) { r.Height = 99 }},
		{"height too high", func(r *models.Registration) { r.Height = 251 }},
		{"weight too low", func(r *models.Registration) { r.Weight = 29 }},
		{"weight too high", func(r *models.Registration) { r.Weight = 201 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoCalled := false
			repo := &mockUserRepository{
				createUserFn: func(context.Context, models.User) error {
					repoCalled = true
					return nil
				},
			}
			svc := newTestAuthService(repo)

			reg := validRegistration()
			tt.mutate(&reg)

			_, err := svc.Register(context.Background(), reg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDataProvided))
			assert.False(t, repoCalled, "invalid data must never reach the repository")
		})
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(context.Context, models.User) error {
			return store.ErrUsernameTaken
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegistration())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateUser))
}

func TestAuthService_Register_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(context.Context, models.User) error {
			return errors.New("disk on fire")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), validRegistration())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateUser))
	assert.Contains(t, err.Error(), "user creation ended with error")
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findPasswordHashFn: func(_ context.Context, username string) (string, error) {
			assert.Equal(t, "alice", username)
			return string(hash), nil
		},
	}
	svc := newTestAuthService(repo)

	require.NoError(t, svc.Login(context.Background(), "alice", "pw"))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findPasswordHashFn: func(context.Context, string) (string, error) {
			return string(hash), nil
		},
	}
	svc := newTestAuthService(repo)

	err = svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findPasswordHashFn: func(context.Context, string) (string, error) {
			return "", store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	// unknown user and wrong password must be indistinguishable
	err := svc.Login(context.Background(), "nobody", "pw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repoCalled := false
	repo := &mockUserRepository{
		findPasswordHashFn: func(context.Context, string) (string, error) {
			repoCalled = true
			return "", nil
		},
	}
	svc := newTestAuthService(repo)

	assert.True(t, errors.Is(svc.Login(context.Background(), "", "pw"), ErrInvalidCredentials))
	assert.True(t, errors.Is(svc.Login(context.Background(), "alice", ""), ErrInvalidCredentials))
	assert.False(t, repoCalled)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findPasswordHashFn: func(context.Context, string) (string, error) {
			return "", errors.New("connection reset")
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials), "infrastructure errors must not masquerade as bad credentials")
}

// ─────────────────────────────────────────────
// Profile
// ─────────────────────────────────────────────

func TestAuthService_Profile_StripsPasswordHash(t *testing.T) {
	repo := &mockUserRepository{
		findUserFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{
				Username:     username,
				Age:          30,
				Height:       170,
				Weight:       70,
				PasswordHash: "$2a$10$secret",
				BMI:          24.22,
			}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Profile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.InDelta(t, 24.22, user.BMI, 1e-9)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserFn: func(context.Context, string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Profile(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}
