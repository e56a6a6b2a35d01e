package repository

import (
	"bpump/fitness-backend/internal/domain"
	"context"
)

// Error constants for the repository layer. Services translate these into
// their own sentinel errors; backends must never leak driver errors for
// these two conditions.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Users are keyed by username.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update replaces the stored record matching user.Username.
	Update(ctx context.Context, user *domain.User) error
	// Rename changes the key of an existing user. Returns ErrConflict when
	// newName is already taken and ErrNotFound when oldName is unknown.
	Rename(ctx context.Context, oldName, newName string) error
	Delete(ctx context.Context, username string) error
}

// ProgramRepository defines the interface for interacting with program data.
// Programs are keyed by the (owner, id) pair; the same id may exist under
// different owners.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) error
	Get(ctx context.Context, owner, id string) (*domain.Program, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Program, error)
	// Update replaces the stored record matching (program.Owner, program.ID).
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, owner, id string) error
	// DeleteAllByOwner removes every program of one owner. Used for the
	// account-deletion cascade; deleting zero programs is not an error.
	DeleteAllByOwner(ctx context.Context, owner string) error
	// ReassignOwner rewrites the owner reference on programs after a user
	// rename. It runs after UserRepository.Rename inside the same
	// transaction.
	ReassignOwner(ctx context.Context, oldOwner, newOwner string) error
}

// ExerciseRepository defines the interface for interacting with the global
// exercise catalog. Exercise IDs are unique across the whole catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) error
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id string) error
}

// TxRunner executes fn as one atomic unit: either every write inside fn
// lands, or none does. Any error returned by fn rolls the unit back before
// it is surfaced to the caller. Repositories participate by using the ctx
// passed to fn.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
