package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeboard/fitness/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	corsOrigins []string,
	routineService service.RoutineService,
) {
	routineHandler := NewRoutineHandler(routineService)

	router.Use(CORSMiddleware(corsOrigins))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	fitness := apiV1.Group("/fitness")
	{
		fitness.GET("/routine", routineHandler.GetRoutine)
		fitness.GET("/progress", routineHandler.GetWeeklyProgress)
		fitness.GET("/stats", routineHandler.GetConsistencyStats)

		// --- Workout completion ---
		workouts := fitness.Group("/workouts/:day")
		{
			workouts.GET("", routineHandler.GetWorkoutForDay)
			workouts.POST("/complete", routineHandler.MarkWorkoutComplete)
			workouts.POST("/uncomplete", routineHandler.MarkWorkoutUncomplete)
			workouts.POST("/exercises", routineHandler.AddCompletedExercises)
			workouts.POST("/skip", routineHandler.SkipWorkout)
			workouts.POST("/unskip", routineHandler.UnskipWorkout)
		}

		// --- Morning/night routine completion ---
		routines := fitness.Group("/routines/:type/:day")
		{
			routines.POST("/complete", routineHandler.MarkRoutineComplete)
			routines.POST("/incomplete", routineHandler.MarkRoutineIncomplete)
			routines.POST("/skip", routineHandler.SkipRoutine)
			routines.POST("/unskip", routineHandler.UnskipRoutine)
		}

		// --- Whole-day skip (rest/sick day) ---
		fitness.POST("/days/:day/skip", routineHandler.SkipDay)
	}
}
