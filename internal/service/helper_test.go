package service

import (
	"testing"

	"bpump/fitness-backend/internal/auth"
	"bpump/fitness-backend/internal/repository/file"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testEnv wires the services against the real file-backed store in a temp
// directory, so tests exercise the same code paths production uses without
// a database.
type testEnv struct {
	auth      AuthService
	users     UserService
	programs  ProgramService
	exercises ExerciseService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := file.NewStore(t.TempDir())
	require.NoError(t, err)

	userRepo := file.NewUserRepository(store)
	programRepo := file.NewProgramRepository(store)
	exerciseRepo := file.NewExerciseRepository(store)
	hasher := auth.NewHasherWithCost(bcrypt.MinCost)

	return &testEnv{
		auth:      NewAuthService(userRepo, programRepo, store, hasher),
		users:     NewUserService(userRepo, programRepo, store, hasher),
		programs:  NewProgramService(userRepo, programRepo),
		exercises: NewExerciseService(exerciseRepo, nil),
	}
}
