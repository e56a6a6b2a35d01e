package file

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
	"encoding/json"
	"errors"
)

// fileExerciseRepository implements repository.ExerciseRepository on the
// single exercises.json catalog file.
type fileExerciseRepository struct {
	store *Store
}

// NewExerciseRepository creates an exercise repository backed by the given store.
func NewExerciseRepository(store *Store) repository.ExerciseRepository {
	return &fileExerciseRepository{store: store}
}

// loadCatalog reads the catalog file. A missing file is an empty catalog,
// not an error. Callers must hold the store lock.
func (r *fileExerciseRepository) loadCatalog() ([]domain.Exercise, error) {
	data, err := r.store.readFile(r.store.exercisesPath())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.Exercise{}, nil
		}
		return nil, err
	}
	var exercises []domain.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *fileExerciseRepository) saveCatalog(ctx context.Context, exercises []domain.Exercise) error {
	data, err := json.MarshalIndent(exercises, "", "  ")
	if err != nil {
		return err
	}
	return r.store.writeFile(ctx, r.store.exercisesPath(), data)
}

func (r *fileExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.ID == "" {
		return errors.New("exercise id is required")
	}

	unlock := r.store.lock(ctx)
	defer unlock()

	exercises, err := r.loadCatalog()
	if err != nil {
		return err
	}
	for _, e := range exercises {
		if e.ID == exercise.ID {
			return repository.ErrConflict
		}
	}
	return r.saveCatalog(ctx, append(exercises, *exercise))
}

func (r *fileExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	exercises, err := r.loadCatalog()
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID == id {
			exercise := exercises[i]
			return &exercise, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fileExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	unlock := r.store.rlock(ctx)
	defer unlock()

	return r.loadCatalog()
}

func (r *fileExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	exercises, err := r.loadCatalog()
	if err != nil {
		return err
	}
	for i := range exercises {
		if exercises[i].ID == exercise.ID {
			exercises[i] = *exercise
			return r.saveCatalog(ctx, exercises)
		}
	}
	return repository.ErrNotFound
}

func (r *fileExerciseRepository) Delete(ctx context.Context, id string) error {
	unlock := r.store.lock(ctx)
	defer unlock()

	exercises, err := r.loadCatalog()
	if err != nil {
		return err
	}
	for i := range exercises {
		if exercises[i].ID == id {
			exercises = append(exercises[:i], exercises[i+1:]...)
			return r.saveCatalog(ctx, exercises)
		}
	}
	return repository.ErrNotFound
}
