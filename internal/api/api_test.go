package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bpump/fitness-backend/internal/auth"
	"bpump/fitness-backend/internal/repository/file"
	"bpump/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminKey = "test-admin-key"

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := file.NewStore(t.TempDir())
	require.NoError(t, err)

	userRepo := file.NewUserRepository(store)
	programRepo := file.NewProgramRepository(store)
	exerciseRepo := file.NewExerciseRepository(store)
	hasher := auth.NewHasherWithCost(bcrypt.MinCost)

	authService := service.NewAuthService(userRepo, programRepo, store, hasher)
	userService := service.NewUserService(userRepo, programRepo, store, hasher)
	programService := service.NewProgramService(userRepo, programRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, nil)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	SetupRoutes(router, testAdminKey, authService, userService, programService, exerciseService)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// The full walkthrough: register, duplicate register, bad login, add a
// program, fetch it, delete the account, fetch again.
func TestAccountLifecycleScenario(t *testing.T) {
	router := setupTestRouter(t)

	// Register alice: created, with two seeded programs.
	w := doJSON(router, http.MethodPost, "/register", gin.H{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["status"])
	assert.Len(t, body["progs"], 2)

	// Registering the same username again is rejected.
	w = doJSON(router, http.MethodPost, "/register", gin.H{"username": "alice", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "detail")

	// Wrong password on login.
	w = doJSON(router, http.MethodPost, "/login", gin.H{"username": "alice", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct login returns the account without the password hash.
	w = doJSON(router, http.MethodPost, "/login", gin.H{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "passwordHash")
	assert.NotContains(t, w.Body.String(), "secret1")

	// Add a program; the id is derived from the title.
	w = doJSON(router, http.MethodPost, "/add_program", gin.H{
		"username": "alice",
		"program":  gin.H{"title": "Leg Day", "category": "Strength", "difficulty": 3},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/progs/leg-day?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var program map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &program))
	assert.Equal(t, "leg-day", program["id"])
	assert.Equal(t, "Leg Day", program["title"])

	// /progs/all returns seeded starters plus the new program.
	w = doJSON(router, http.MethodGet, "/progs/all?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var programs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &programs))
	assert.Len(t, programs, 3)

	// Delete the account; the program is gone with it.
	w = doJSON(router, http.MethodDelete, "/delete?username=alice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/progs/leg-day?username=alice", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEdits(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/register", gin.H{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPut, "/edit_weight", gin.H{"username": "alice", "weight": 70}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/edit_sex", gin.H{"username": "alice", "sex": "F"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Password change needs the current password.
	w = doJSON(router, http.MethodPut, "/edit_password", gin.H{
		"username": "alice", "password": "wrong", "new_password": "newsecret",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPut, "/edit_password", gin.H{
		"username": "alice", "password": "secret1", "new_password": "newsecret",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown users read as 404 on every edit endpoint.
	w = doJSON(router, http.MethodPut, "/edit_age", gin.H{"username": "nobody", "age": 30}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Rename, then log in under the new name.
	w = doJSON(router, http.MethodPut, "/edit_username", gin.H{"username": "alice", "new_username": "alicia"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/login", gin.H{"username": "alicia", "password": "newsecret"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProgramOwnershipOverHTTP(t *testing.T) {
	router := setupTestRouter(t)

	for _, u := range []string{"alice", "bob"} {
		w := doJSON(router, http.MethodPost, "/register", gin.H{"username": u, "password": "secret1"}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodPost, "/add_program", gin.H{
		"username": "alice",
		"program":  gin.H{"title": "Leg Day"},
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Bob cannot edit or remove Alice's program, and gets a 404 rather
	// than a confirmation that it exists.
	w = doJSON(router, http.MethodPut, "/edit_program", gin.H{
		"username": "bob", "id": "leg-day",
		"program": gin.H{"title": "Hijacked"},
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/remove_program", gin.H{"username": "bob", "id": "leg-day"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Duplicate title for the same owner is rejected; for another owner
	// it's fine.
	w = doJSON(router, http.MethodPost, "/add_program", gin.H{
		"username": "alice", "program": gin.H{"title": "Leg Day"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/add_program", gin.H{
		"username": "bob", "program": gin.H{"title": "Leg Day"},
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestExerciseCatalogEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	adminHeaders := map[string]string{HeaderAdminKey: testAdminKey}

	exercise := gin.H{
		"id": "burpees", "title": "Burpees", "category": "Cardio",
		"difficulty": 4, "calories": 12,
		"muscles": []string{"legs", "core"},
		"video":   "https://example.com/videos/burpees.mp4",
	}

	// Catalog mutation without the admin key is rejected.
	w := doJSON(router, http.MethodPost, "/add_exercise", exercise, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/add_exercise", exercise, adminHeaders)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate catalog ids are rejected outright.
	w = doJSON(router, http.MethodPost, "/add_exercise", exercise, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Reads are open to everyone.
	w = doJSON(router, http.MethodGet, "/exos/burpees", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Burpees", got["title"])

	w = doJSON(router, http.MethodGet, "/exos/all", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/exos/burpees/video", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://example.com/videos/burpees.mp4")

	w = doJSON(router, http.MethodGet, "/exos/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/remove_exercise", gin.H{"id": "burpees"}, adminHeaders)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/remove_exercise", gin.H{"id": "burpees"}, adminHeaders)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidationErrors(t *testing.T) {
	router := setupTestRouter(t)

	// Missing fields are rejected before touching the store.
	w := doJSON(router, http.MethodPost, "/register", gin.H{"username": "alice"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodDelete, "/delete", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/progs/all", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(router, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	// A caller-provided id is echoed back.
	w = doJSON(router, http.MethodGet, "/", nil, map[string]string{HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
