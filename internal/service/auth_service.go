package service

import (
	"bpump/fitness-backend/internal/auth"
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
	"errors"
	"regexp"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("username or password incorrect")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrInvalidInput         = errors.New("invalid input")
)

// usernamePattern keeps usernames usable as storage keys across backends
// (the file store derives a path from them).
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

func validUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// --- Service Interface ---
type AuthService interface {
	// Register creates the account and its seeded starter programs as one
	// atomic unit and returns both.
	Register(ctx context.Context, username, password string) (*domain.User, []domain.Program, error)
	// Login verifies the submitted credentials. An unknown username and a
	// wrong password both come back as ErrAuthenticationFailed.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

// --- Service Implementation ---

type authService struct {
	users    repository.UserRepository
	programs repository.ProgramRepository
	tx       repository.TxRunner
	hasher   *auth.Hasher
}

// NewAuthService creates a new instance of authService.
func NewAuthService(users repository.UserRepository, programs repository.ProgramRepository, tx repository.TxRunner, hasher *auth.Hasher) AuthService {
	return &authService{
		users:    users,
		programs: programs,
		tx:       tx,
		hasher:   hasher,
	}
}

// Register handles new user registration. The uniqueness of the username is
// enforced by the store inside the transaction, not by a separate lookup,
// so two concurrent registrations of the same name get exactly one winner.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, []domain.Program, error) {
	if !validUsername(username) || password == "" {
		return nil, nil, ErrInvalidInput
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, ErrHashingFailed
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	seeded := DefaultPrograms(username)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		for i := range seeded {
			if err := s.programs.Create(ctx, &seeded[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, nil, ErrUserAlreadyExists
		}
		return nil, nil, err
	}

	return user, seeded, nil
}

// Login handles credential verification. There is no token layer; clients
// re-submit credentials with every request.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Do not reveal whether the username exists.
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}
