package httpapi

import (
	"net/http"

	"github.com/akimovd/traintrack/internal/logging"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full middleware chain and routes.
func NewRouter(secretKey string, logger logging.Logger, exerciseService ExerciseService, workoutService WorkoutService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	SetupRoutes(router, secretKey, logger, exerciseService, workoutService)
	return router
}

// SetupRoutes registers the API routes on the given engine. Everything under
// /api/v1 requires a valid bearer token.
func SetupRoutes(router *gin.Engine, secretKey string, logger logging.Logger, exerciseService ExerciseService, workoutService WorkoutService) {
	exerciseHandler := NewExerciseHandler(exerciseService, logger)
	workoutHandler := NewWorkoutHandler(workoutService, logger)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	protected := router.Group("/api/v1")
	protected.Use(AuthMiddleware(secretKey))
	{
		protected.GET("/exercises", exerciseHandler.List)

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListByDate)
			workoutGroup.POST("", workoutHandler.Create)
			workoutGroup.GET("/:id", workoutHandler.Get)
			workoutGroup.PUT("/:id", workoutHandler.Update)
			workoutGroup.PUT("/:id/exercises", workoutHandler.ReplaceExercises)
		}
	}
}
