package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/config"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/logger"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/metrics"
	"github.com/ccooddoo/Personal-Fitness-Tracker/internal/store"
	"github.com/ccooddoo/Personal-Fitness-Tracker/models"
)

// Profile input ranges enforced at registration. The input widgets carry
// the same limits, but the service re-validates because it is the
// security-relevant boundary.
const (
	minAge, maxAge       = 10, 100
	minHeight, maxHeight = 100.0, 250.0
	minWeight, maxWeight = 30.0, 200.0
)

// authService is the concrete implementation of [AuthService].
// It handles registration and credential verification using a
// [store.UserRepository] for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing a new password.
	// Verification reads the cost from the stored hash itself.
	bcryptCost int

	// logger is the structured logger used for diagnostic output.
	// Plaintext passwords and password hashes are never logged.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The BMI is computed here, once, and stored with the profile; it is not
// recomputed when the profile is later viewed.
//
// Returns the persisted user (with the password hash cleared) or:
//   - ErrInvalidDataProvided if a field is empty or out of range.
//   - ErrDuplicateUser if the username is already taken; the stored row
//     is left unchanged.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(reg); err != nil {
		log.Error().Str("username", reg.Username).Err(err).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", reg.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     strings.TrimSpace(reg.Username),
		Age:          reg.Age,
		Height:       reg.Height,
		Weight:       reg.Weight,
		PasswordHash: string(hash),
		BMI:          metrics.BMI(reg.Height, reg.Weight),
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.User{}, ErrDuplicateUser
		}

		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates an existing user.
//
// Unknown usernames and wrong passwords both collapse into
// ErrInvalidCredentials so the caller cannot tell them apart. The bcrypt
// comparison itself is constant time.
func (a *authService) Login(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	storedHash, err := a.userRepository.FindPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("username", username).Msg("login rejected")
			return ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("password hash lookup failed")
		return fmt.Errorf("password hash lookup failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		log.Debug().Str("username", username).Msg("login rejected")
		return ErrInvalidCredentials
	}

	return nil
}

// Profile returns the stored profile for username with the password hash
// stripped; hashes never leave the service layer.
func (a *authService) Profile(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func validateRegistration(reg models.Registration) error {
	if strings.TrimSpace(reg.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidDataProvided)
	}
	if reg.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}
	if reg.Age < minAge || reg.Age > maxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidDataProvided, minAge, maxAge)
	}
	if reg.Height < minHeight || reg.Height > maxHeight {
		return fmt.Errorf("%w: height must be between %.0f and %.0f cm", ErrInvalidDataProvided, minHeight, maxHeight)
	}
	if reg.Weight < minWeight || reg.Weight > maxWeight {
		return fmt.Errorf("%w: weight must be between %.0f and %.0f kg", ErrInvalidDataProvided, minWeight, maxWeight)
	}

	return nil
}
