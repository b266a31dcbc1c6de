package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homeboard/fitness/internal/domain"
	"homeboard/fitness/internal/repository"
	"homeboard/fitness/internal/service"
)

// RoutineHandler exposes the routine completion engine to the dashboard.
type RoutineHandler struct {
	routineService service.RoutineService
}

func NewRoutineHandler(routineService service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// --- DTOs ---

type weekRequest struct {
	WeekNumber int `json:"weekNumber" binding:"required"`
}

type completeWorkoutRequest struct {
	WeekNumber  int      `json:"weekNumber" binding:"required"`
	ExerciseIDs []string `json:"exerciseIds"`
	VersionID   string   `json:"versionId"`
}

type addExercisesRequest struct {
	WeekNumber  int      `json:"weekNumber" binding:"required"`
	ExerciseIDs []string `json:"exerciseIds" binding:"required"`
	VersionID   string   `json:"versionId"`
}

type skipRequest struct {
	WeekNumber int    `json:"weekNumber" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
	VersionID  string `json:"versionId"`
}

type completeRoutineRequest struct {
	WeekNumber int    `json:"weekNumber" binding:"required"`
	VersionID  string `json:"versionId"`
}

// --- Param helpers ---

func dayParam(c *gin.Context) (domain.DayOfWeek, bool) {
	day := domain.DayOfWeek(c.Param("day"))
	if !day.Valid() {
		abortWithError(c, http.StatusBadRequest, "Invalid day of week.")
		return "", false
	}
	return day, true
}

func routineTypeParam(c *gin.Context) (domain.RoutineType, bool) {
	typ := domain.RoutineType(c.Param("type"))
	if !typ.Valid() {
		abortWithError(c, http.StatusBadRequest, "Routine type must be 'morning' or 'night'.")
		return "", false
	}
	return typ, true
}

// handleServiceError maps engine sentinels to HTTP status codes.
func (h *RoutineHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoWorkoutDefined):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRoutineNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDay), errors.Is(err, service.ErrInvalidRoutineType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrConflict):
		abortWithError(c, http.StatusConflict, "Routine was modified concurrently; reload and retry.")
	default:
		log.Printf("ERROR: routine operation failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// --- Read endpoints ---

// GetRoutine returns the whole weekly routine aggregate, ensuring the
// current week exists. An unseeded installation renders as 404.
func (h *RoutineHandler) GetRoutine(c *gin.Context) {
	routine, err := h.routineService.GetRoutine(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if routine == nil {
		abortWithError(c, http.StatusNotFound, "No weekly routine configured yet.")
		return
	}
	c.JSON(http.StatusOK, routine)
}

// GetWorkoutForDay returns the workout scheduled for a day; rest days
// return 200 with a null body so the frontend can render an empty state.
func (h *RoutineHandler) GetWorkoutForDay(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	def, err := h.routineService.GetWorkoutForDay(c.Request.Context(), day)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// GetWeeklyProgress returns the one-week projection. ?week=N selects a
// week, defaulting to the current one.
func (h *RoutineHandler) GetWeeklyProgress(c *gin.Context) {
	weekNumber := 0
	if raw := c.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			abortWithError(c, http.StatusBadRequest, "Invalid week query parameter.")
			return
		}
		weekNumber = parsed
	}
	progress, err := h.routineService.GetWeeklyProgress(c.Request.Context(), weekNumber)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetConsistencyStats returns the 30-day consistency view.
func (h *RoutineHandler) GetConsistencyStats(c *gin.Context) {
	stats, err := h.routineService.GetConsistencyStats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// --- Workout mutations ---

func (h *RoutineHandler) MarkWorkoutComplete(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req completeWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.MarkWorkoutComplete(c.Request.Context(), day, req.WeekNumber, req.ExerciseIDs, req.VersionID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (h *RoutineHandler) MarkWorkoutUncomplete(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req weekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.MarkWorkoutUncomplete(c.Request.Context(), day, req.WeekNumber); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "uncompleted"})
}

func (h *RoutineHandler) AddCompletedExercises(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req addExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	result, err := h.routineService.AddCompletedExercises(c.Request.Context(), day, req.WeekNumber, req.ExerciseIDs, req.VersionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RoutineHandler) SkipWorkout(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req skipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.SkipWorkout(c.Request.Context(), day, req.WeekNumber, req.Reason, req.VersionID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "skipped"})
}

func (h *RoutineHandler) UnskipWorkout(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req weekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.UnskipWorkout(c.Request.Context(), day, req.WeekNumber); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unskipped"})
}

// --- Daily routine mutations ---

func (h *RoutineHandler) MarkRoutineComplete(c *gin.Context) {
	typ, ok := routineTypeParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req completeRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.MarkRoutineComplete(c.Request.Context(), typ, day, req.WeekNumber, req.VersionID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func (h *RoutineHandler) MarkRoutineIncomplete(c *gin.Context) {
	typ, ok := routineTypeParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req weekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.MarkRoutineIncomplete(c.Request.Context(), typ, day, req.WeekNumber); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "incomplete"})
}

func (h *RoutineHandler) SkipRoutine(c *gin.Context) {
	typ, ok := routineTypeParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req skipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.SkipRoutine(c.Request.Context(), typ, day, req.WeekNumber, req.Reason, req.VersionID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "skipped"})
}

func (h *RoutineHandler) UnskipRoutine(c *gin.Context) {
	typ, ok := routineTypeParam(c)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req weekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.UnskipRoutine(c.Request.Context(), typ, day, req.WeekNumber); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unskipped"})
}

// SkipDay declares a full rest/sick day in one action.
func (h *RoutineHandler) SkipDay(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req skipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.routineService.SkipDay(c.Request.Context(), day, req.WeekNumber, req.Reason, req.VersionID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "skipped"})
}
