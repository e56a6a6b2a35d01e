package service

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"bpump/fitness-backend/internal/storage"
	"context"
	"errors"
	"log"
	"strings"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound      = errors.New("exercise not found")
	ErrExerciseAlreadyExists = errors.New("an exercise with this id already exists")
	ErrExerciseHasNoVideo    = errors.New("exercise has no video")
)

// --- Service Interface ---
type ExerciseService interface {
	// Add inserts a catalog entry. The id is global; duplicates are
	// rejected outright, unlike the per-owner program slugs.
	Add(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	Remove(ctx context.Context, id string) error
	// VideoURL resolves the exercise's video reference to something a
	// client can fetch: absolute URLs pass through, object keys become
	// presigned download URLs when object storage is configured.
	VideoURL(ctx context.Context, id string) (string, error)
	// VideoUploadURL returns a presigned PUT URL for the exercise's video
	// object key, so catalog media can be uploaded straight to the bucket.
	VideoUploadURL(ctx context.Context, id, contentType string) (string, error)
}

// --- Service Implementation ---

type exerciseService struct {
	exercises repository.ExerciseRepository
	media     storage.FileStorage // nil when no object storage is configured
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exercises repository.ExerciseRepository, media storage.FileStorage) ExerciseService {
	return &exerciseService{
		exercises: exercises,
		media:     media,
	}
}

func (s *exerciseService) Add(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || exercise.Title == "" {
		return nil, ErrInvalidInput
	}
	normalizeExercise(&exercise)

	if err := s.exercises.Create(ctx, &exercise); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrExerciseAlreadyExists
		}
		return nil, err
	}
	return &exercise, nil
}

func (s *exerciseService) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.exercises.List(ctx)
}

func (s *exerciseService) Update(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == "" || exercise.Title == "" {
		return nil, ErrInvalidInput
	}
	normalizeExercise(&exercise)

	if err := s.exercises.Update(ctx, &exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (s *exerciseService) Remove(ctx context.Context, id string) error {
	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.exercises.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	// Best-effort cleanup of bucket-hosted media; the catalog entry is
	// already gone, so a failed object delete only leaks storage.
	if s.media != nil && isObjectKey(exercise.Video) {
		if err := s.media.DeleteObject(ctx, exercise.Video); err != nil {
			log.Printf("WARN: failed to delete video object %q: %v", exercise.Video, err)
		}
	}
	return nil
}

func (s *exerciseService) VideoURL(ctx context.Context, id string) (string, error) {
	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if exercise.Video == "" {
		return "", ErrExerciseHasNoVideo
	}
	if !isObjectKey(exercise.Video) || s.media == nil {
		return exercise.Video, nil
	}
	return s.media.GeneratePresignedDownloadURL(ctx, exercise.Video, storage.DefaultPresignedURLExpiry)
}

func (s *exerciseService) VideoUploadURL(ctx context.Context, id, contentType string) (string, error) {
	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if exercise.Video == "" {
		return "", ErrExerciseHasNoVideo
	}
	if s.media == nil || !isObjectKey(exercise.Video) {
		return "", ErrInvalidInput
	}
	return s.media.GeneratePresignedUploadURL(ctx, exercise.Video, contentType, storage.DefaultPresignedURLExpiry)
}

// isObjectKey distinguishes bucket object keys from absolute URLs stored in
// the video field.
func isObjectKey(ref string) bool {
	return ref != "" &&
		!strings.HasPrefix(ref, "http://") &&
		!strings.HasPrefix(ref, "https://")
}

// normalizeExercise keeps list and document fields non-nil so clients get
// [] / {} instead of null on round-trips.
func normalizeExercise(exercise *domain.Exercise) {
	if exercise.Muscles == nil {
		exercise.Muscles = []string{}
	}
	if exercise.Security == nil {
		exercise.Security = []string{}
	}
	if exercise.Needed == nil {
		exercise.Needed = []string{}
	}
	if exercise.Camera == nil {
		exercise.Camera = map[string]interface{}{}
	}
	if exercise.Projector == nil {
		exercise.Projector = []map[string]interface{}{}
	}
}
