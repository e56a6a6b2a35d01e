package service

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
	"errors"
	"strings"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrProgramAlreadyExists = errors.New("a program with this title already exists")
)

// ProgramInput carries the full mutable field set of a program. Add derives
// the id from the title; Update replaces every field but keeps the id.
type ProgramInput struct {
	Icon        string
	Title       string
	Description string
	Category    string
	Difficulty  int
	Hint        []string
	Exercises   []string
	Rest        []int
}

// --- Service Interface ---
type ProgramService interface {
	Add(ctx context.Context, username string, input ProgramInput) (*domain.Program, error)
	Get(ctx context.Context, username, id string) (*domain.Program, error)
	List(ctx context.Context, username string) ([]domain.Program, error)
	Update(ctx context.Context, username, id string, input ProgramInput) (*domain.Program, error)
	Remove(ctx context.Context, username, id string) error
}

// --- Service Implementation ---

type programService struct {
	users    repository.UserRepository
	programs repository.ProgramRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(users repository.UserRepository, programs repository.ProgramRepository) ProgramService {
	return &programService{
		users:    users,
		programs: programs,
	}
}

// Slugify derives a program id from its title: lowercased, spaces replaced
// by dashes. Ids are only unique per owner; two users may both have
// "cardio-intense".
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}

// Add creates a program owned by the acting user.
func (s *programService) Add(ctx context.Context, username string, input ProgramInput) (*domain.Program, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidInput
	}
	if err := s.resolveUser(ctx, username); err != nil {
		return nil, err
	}

	program := &domain.Program{
		ID:    Slugify(input.Title),
		Owner: username,
	}
	applyInput(program, input)

	if err := s.programs.Create(ctx, program); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrProgramAlreadyExists
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return program, nil
}

// Get retrieves one program from the acting user's set. Programs are keyed
// by (owner, id), so another user's program is indistinguishable from a
// missing one.
func (s *programService) Get(ctx context.Context, username, id string) (*domain.Program, error) {
	if err := s.resolveUser(ctx, username); err != nil {
		return nil, err
	}

	program, err := s.programs.Get(ctx, username, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// List retrieves the acting user's full program set, seeded starters
// included.
func (s *programService) List(ctx context.Context, username string) ([]domain.Program, error) {
	if err := s.resolveUser(ctx, username); err != nil {
		return nil, err
	}
	return s.programs.ListByOwner(ctx, username)
}

// Update replaces all mutable fields of an owned program. The id is part of
// the key and stays put even when the title changes.
func (s *programService) Update(ctx context.Context, username, id string, input ProgramInput) (*domain.Program, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidInput
	}

	program, err := s.Get(ctx, username, id)
	if err != nil {
		return nil, err
	}
	if !canMutateProgram(username, program) {
		return nil, ErrProgramNotFound
	}

	applyInput(program, input)
	if err := s.programs.Update(ctx, program); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// Remove deletes one owned program.
func (s *programService) Remove(ctx context.Context, username, id string) error {
	program, err := s.Get(ctx, username, id)
	if err != nil {
		return err
	}
	if !canMutateProgram(username, program) {
		return ErrProgramNotFound
	}

	if err := s.programs.Delete(ctx, username, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

func (s *programService) resolveUser(ctx context.Context, username string) error {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// applyInput copies the mutable fields onto the program, normalising nil
// slices so a round-tripped program serialises lists as [] rather than null.
func applyInput(program *domain.Program, input ProgramInput) {
	program.Icon = input.Icon
	program.Title = input.Title
	program.Description = input.Description
	program.Category = input.Category
	program.Difficulty = input.Difficulty
	program.Hint = input.Hint
	program.Exercises = input.Exercises
	program.Rest = input.Rest

	if program.Hint == nil {
		program.Hint = []string{}
	}
	if program.Exercises == nil {
		program.Exercises = []string{}
	}
	if program.Rest == nil {
		program.Rest = []int{}
	}
}
