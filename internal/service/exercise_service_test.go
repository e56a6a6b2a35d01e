package service

import (
	"context"
	"testing"

	"bpump/fitness-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burpees() domain.Exercise {
	return domain.Exercise{
		ID:          "burpees",
		Icon:        "icons/burpees.png",
		Title:       "Burpees",
		Description: "Full-body conditioning movement",
		Category:    "Cardio",
		Difficulty:  4,
		Video:       "https://example.com/videos/burpees.mp4",
		Muscles:     []string{"legs", "chest", "core"},
		Security:    []string{"keep your back straight"},
		Needed:      []string{},
		Calories:    12,
		Camera:      map[string]interface{}{"keypoints": []interface{}{"hips", "knees"}},
		Projector:   []map[string]interface{}{{"overlay": "floor-target"}},
	}
}

func TestExerciseAddAndRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.exercises.Add(ctx, burpees())
	require.NoError(t, err)

	fetched, err := env.exercises.GetByID(ctx, "burpees")
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestExerciseDuplicateIDRejectedGlobally(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.exercises.Add(ctx, burpees())
	require.NoError(t, err)

	_, err = env.exercises.Add(ctx, burpees())
	assert.ErrorIs(t, err, ErrExerciseAlreadyExists)
}

func TestExerciseValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.exercises.Add(ctx, domain.Exercise{Title: "No ID"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.exercises.Add(ctx, domain.Exercise{ID: "no-title"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExerciseUpdateAndRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.exercises.Add(ctx, burpees())
	require.NoError(t, err)

	changed := burpees()
	changed.Difficulty = 5
	updated, err := env.exercises.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Difficulty)

	require.NoError(t, env.exercises.Remove(ctx, "burpees"))
	_, err = env.exercises.GetByID(ctx, "burpees")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = env.exercises.Update(ctx, changed)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
	assert.ErrorIs(t, env.exercises.Remove(ctx, "burpees"), ErrExerciseNotFound)
}

func TestExerciseListNormalizesEmptyCollections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	minimal := domain.Exercise{ID: "plank", Title: "Plank"}
	created, err := env.exercises.Add(ctx, minimal)
	require.NoError(t, err)

	// Nil lists and documents come back as empty, never null.
	assert.NotNil(t, created.Muscles)
	assert.NotNil(t, created.Security)
	assert.NotNil(t, created.Needed)
	assert.NotNil(t, created.Camera)
	assert.NotNil(t, created.Projector)

	list, err := env.exercises.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestVideoURLPassesThroughAbsoluteURLs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.exercises.Add(ctx, burpees())
	require.NoError(t, err)

	url, err := env.exercises.VideoURL(ctx, "burpees")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/videos/burpees.mp4", url)
}

func TestVideoURLWithoutVideo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.exercises.Add(ctx, domain.Exercise{ID: "plank", Title: "Plank"})
	require.NoError(t, err)

	_, err = env.exercises.VideoURL(ctx, "plank")
	assert.ErrorIs(t, err, ErrExerciseHasNoVideo)

	_, err = env.exercises.VideoURL(ctx, "missing")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestVideoURLObjectKeyWithoutMediaStorage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ex := burpees()
	ex.ID = "dips"
	ex.Video = "videos/dips.mp4"
	_, err := env.exercises.Add(ctx, ex)
	require.NoError(t, err)

	// With no object storage configured the raw key is returned as stored.
	url, err := env.exercises.VideoURL(ctx, "dips")
	require.NoError(t, err)
	assert.Equal(t, "videos/dips.mp4", url)
}
