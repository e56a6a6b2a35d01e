package service

import (
	"bpump/fitness-backend/internal/auth"
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
)

// --- Service Interface ---
type UserService interface {
	Get(ctx context.Context, username string) (*domain.User, error)
	// ChangeUsername renames the account and moves program ownership along
	// with it, as one atomic unit.
	ChangeUsername(ctx context.Context, username, newUsername string) error
	// ChangePassword re-authenticates with the current password before
	// storing the new digest.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
	SetWeight(ctx context.Context, username string, weight int) error
	SetHeight(ctx context.Context, username string, height int) error
	SetAge(ctx context.Context, username string, age int) error
	SetSex(ctx context.Context, username, sex string) error
	// DeleteAccount removes the user and every program they own, as one
	// atomic unit. Seeded starters go with it; other users are untouched.
	DeleteAccount(ctx context.Context, username string) error
}

// --- Service Implementation ---

type userService struct {
	users    repository.UserRepository
	programs repository.ProgramRepository
	tx       repository.TxRunner
	hasher   *auth.Hasher
}

// NewUserService creates a new instance of userService.
func NewUserService(users repository.UserRepository, programs repository.ProgramRepository, tx repository.TxRunner, hasher *auth.Hasher) UserService {
	return &userService{
		users:    users,
		programs: programs,
		tx:       tx,
		hasher:   hasher,
	}
}

func (s *userService) Get(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ChangeUsername(ctx context.Context, username, newUsername string) error {
	if !validUsername(newUsername) {
		return ErrInvalidInput
	}
	if newUsername == username {
		return nil
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.users.Rename(ctx, username, newUsername); err != nil {
			return err
		}
		return s.programs.ReassignOwner(ctx, username, newUsername)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, repository.ErrConflict):
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidInput
	}

	user, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return ErrAuthenticationFailed
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return ErrHashingFailed
	}
	user.PasswordHash = passwordHash
	return s.update(ctx, user)
}

func (s *userService) SetWeight(ctx context.Context, username string, weight int) error {
	return s.patch(ctx, username, func(u *domain.User) { u.Metabolism.Weight = weight })
}

func (s *userService) SetHeight(ctx context.Context, username string, height int) error {
	return s.patch(ctx, username, func(u *domain.User) { u.Metabolism.Height = height })
}

func (s *userService) SetAge(ctx context.Context, username string, age int) error {
	return s.patch(ctx, username, func(u *domain.User) { u.Metabolism.Age = age })
}

func (s *userService) SetSex(ctx context.Context, username, sex string) error {
	return s.patch(ctx, username, func(u *domain.User) { u.Metabolism.Sex = sex })
}

func (s *userService) DeleteAccount(ctx context.Context, username string) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.programs.DeleteAllByOwner(ctx, username); err != nil {
			return err
		}
		return s.users.Delete(ctx, username)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// patch applies a single-field mutation to an existing user.
func (s *userService) patch(ctx context.Context, username string, mutate func(*domain.User)) error {
	user, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	mutate(user)
	return s.update(ctx, user)
}

func (s *userService) update(ctx context.Context, user *domain.User) error {
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
