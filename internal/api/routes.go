package api

import (
	"bpump/fitness-backend/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router. The surface is flat on
// purpose — it mirrors what the mobile client already speaks. Exercise
// catalog mutations sit behind the admin key; everything else identifies
// the acting user by the username in the payload.
func SetupRoutes(
	router *gin.Engine,
	adminKey string,
	authService service.AuthService,
	userService service.UserService,
	programService service.ProgramService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	programHandler := NewProgramHandler(programService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "Welcome to the B-Pump api !")
	})

	// --- Accounts ---
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.PUT("/edit_username", userHandler.EditUsername)
	router.PUT("/edit_password", userHandler.EditPassword)
	router.PUT("/edit_weight", userHandler.EditWeight)
	router.PUT("/edit_height", userHandler.EditHeight)
	router.PUT("/edit_age", userHandler.EditAge)
	router.PUT("/edit_sex", userHandler.EditSex)
	router.DELETE("/delete", userHandler.Delete)

	// --- Programs ---
	router.GET("/progs/:id", programHandler.Get)
	router.POST("/add_program", programHandler.Add)
	router.PUT("/edit_program", programHandler.Edit)
	router.DELETE("/remove_program", programHandler.Remove)

	// --- Exercise catalog ---
	router.GET("/exos/:id", exerciseHandler.Get)
	router.GET("/exos/:id/video", exerciseHandler.Video)

	admin := router.Group("")
	admin.Use(AdminKeyMiddleware(adminKey))
	{
		admin.POST("/add_exercise", exerciseHandler.Add)
		admin.PUT("/edit_exercise", exerciseHandler.Edit)
		admin.DELETE("/remove_exercise", exerciseHandler.Remove)
		admin.POST("/exos/:id/video_upload", exerciseHandler.VideoUpload)
	}
}
