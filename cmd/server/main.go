package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bpump/fitness-backend/internal/api"
	"bpump/fitness-backend/internal/auth"
	"bpump/fitness-backend/internal/config"
	"bpump/fitness-backend/internal/repository"
	"bpump/fitness-backend/internal/repository/file"
	mongorepo "bpump/fitness-backend/internal/repository/mongo"
	"bpump/fitness-backend/internal/service"
	"bpump/fitness-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting B-Pump API server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Printf("Configuration loaded (storage backend: %s)", cfg.Storage.Backend)

	// --- Entity store ---
	users, programs, exercises, tx, teardown, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize the %q store: %v", cfg.Storage.Backend, err)
	}
	defer teardown()

	// --- Object storage (optional) ---
	var media storage.FileStorage
	if cfg.S3.BucketName != "" {
		media, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("No S3 bucket configured; video references are served as stored.")
	}

	// --- Services ---
	hasher := auth.NewHasher()
	authService := service.NewAuthService(users, programs, tx, hasher)
	userService := service.NewUserService(users, programs, tx, hasher)
	programService := service.NewProgramService(users, programs)
	exerciseService := service.NewExerciseService(exercises, media)

	// --- Router ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.Use(api.RequestIDMiddleware())
	router.Use(api.CORSMiddleware())

	if cfg.Admin.APIKey == "" {
		log.Println("WARN: admin.api_key is empty; catalog mutation endpoints are disabled.")
	}
	api.SetupRoutes(router, cfg.Admin.APIKey, authService, userService, programService, exerciseService)

	// --- HTTP server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// buildStore assembles the configured store backend behind the repository
// interfaces. The teardown func releases the backend's resources and must
// run at shutdown.
func buildStore(cfg config.Config) (
	users repository.UserRepository,
	programs repository.ProgramRepository,
	exercises repository.ExerciseRepository,
	tx repository.TxRunner,
	teardown func(),
	err error,
) {
	switch cfg.Storage.Backend {
	case "mongo":
		client, connErr := mongorepo.ConnectDB(cfg.Database.URI)
		if connErr != nil {
			return nil, nil, nil, nil, nil, connErr
		}
		db := client.Database(cfg.Database.Name)

		log.Println("Ensuring database indexes...")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureUserIndexes(ctx, db.Collection("users"))
			mongorepo.EnsureProgramIndexes(ctx, db.Collection("programs"))
		}()

		users = mongorepo.NewMongoUserRepository(db)
		programs = mongorepo.NewMongoProgramRepository(db)
		exercises = mongorepo.NewMongoExerciseRepository(db)
		tx = mongorepo.NewTxRunner(client)
		teardown = func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(client); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}
		return users, programs, exercises, tx, teardown, nil

	case "file":
		store, storeErr := file.NewStore(cfg.File.Root)
		if storeErr != nil {
			return nil, nil, nil, nil, nil, storeErr
		}
		users = file.NewUserRepository(store)
		programs = file.NewProgramRepository(store)
		exercises = file.NewExerciseRepository(store)
		tx = store
		teardown = func() {}
		return users, programs, exercises, tx, teardown, nil

	default:
		return nil, nil, nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
