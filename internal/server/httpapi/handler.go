// Package httpapi is the HTTP action layer: it resolves the trusted user
// identifier from the bearer token, validates transport input, and invokes
// the services. Not-found results surface as bare 404s with no hint whether
// the target exists under another owner.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/akimovd/traintrack/internal/common"
	"github.com/akimovd/traintrack/internal/logging"
	"github.com/akimovd/traintrack/internal/server/models"
	"github.com/akimovd/traintrack/internal/server/repositories/workouts"
	"github.com/gin-gonic/gin"
)

// ExerciseService is the slice of the service layer the exercise handler uses.
type ExerciseService interface {
	List(ctx context.Context) ([]*models.Exercise, error)
}

// WorkoutService is the slice of the service layer the workout handler uses.
type WorkoutService interface {
	ListByDate(ctx context.Context, userID string, day time.Time) ([]*models.Workout, error)
	GetByID(ctx context.Context, userID string, id int64) (*models.Workout, error)
	Create(ctx context.Context, userID string, params workouts.CreateParams) (int64, error)
	Update(ctx context.Context, userID string, id int64, params workouts.UpdateParams) (int64, error)
	ReplaceExercises(ctx context.Context, userID string, id int64, sels []workouts.ExerciseSelection) error
}

type exerciseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type workoutExerciseResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"order"`
}

type workoutResponse struct {
	ID          int64                     `json:"id"`
	Name        *string                   `json:"name,omitempty"`
	StartedAt   time.Time                 `json:"startedAt"`
	CompletedAt *time.Time                `json:"completedAt,omitempty"`
	Exercises   []workoutExerciseResponse `json:"exercises"`
}

type workoutPayload struct {
	Name        *string    `json:"name"`
	StartedAt   time.Time  `json:"startedAt" binding:"required"`
	CompletedAt *time.Time `json:"completedAt"`
}

type exerciseSelectionPayload struct {
	ExerciseID int64 `json:"exerciseId" binding:"required"`
	SortOrder  int   `json:"sortOrder"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

func toWorkoutResponse(w *models.Workout) workoutResponse {
	resp := workoutResponse{
		ID:          w.ID,
		Name:        w.Name,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
		Exercises:   make([]workoutExerciseResponse, 0, len(w.Exercises)),
	}
	for _, e := range w.Exercises {
		resp.Exercises = append(resp.Exercises, workoutExerciseResponse{
			ID:        e.ExerciseID,
			Name:      e.ExerciseName,
			SortOrder: e.SortOrder,
		})
	}
	return resp
}

type ExerciseHandler struct {
	service ExerciseService
	logger  logging.Logger
}

func NewExerciseHandler(service ExerciseService, logger logging.Logger) *ExerciseHandler {
	return &ExerciseHandler{service: service, logger: logger}
}

// List returns the shared catalog grouped-ready: ordered by category, then name.
func (h *ExerciseHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing exercises failed", "error", err)
		abortWithError(c, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]exerciseResponse, 0, len(items))
	for _, e := range items {
		resp = append(resp, exerciseResponse{ID: e.ID, Name: e.Name, Category: e.Category})
	}
	c.JSON(http.StatusOK, resp)
}

type WorkoutHandler struct {
	service WorkoutService
	logger  logging.Logger
}

func NewWorkoutHandler(service WorkoutService, logger logging.Logger) *WorkoutHandler {
	return &WorkoutHandler{service: service, logger: logger}
}

func (h *WorkoutHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		abortWithError(c, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(c.Request.Context(), "workout request failed", "error", err)
		abortWithError(c, http.StatusInternalServerError, "internal error")
	}
}

func parseWorkoutID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid workout id")
		return 0, false
	}
	return id, true
}

// ListByDate returns the authenticated user's workouts for one calendar day.
// The date query parameter is a plain YYYY-MM-DD, interpreted in the
// server's local time reference.
func (h *WorkoutHandler) ListByDate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to resolve user")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	items, err := h.service.ListByDate(c.Request.Context(), userID, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]workoutResponse, 0, len(items))
	for _, w := range items {
		resp = append(resp, toWorkoutResponse(w))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkoutHandler) Get(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to resolve user")
		return
	}
	id, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	w, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWorkoutResponse(w))
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to resolve user")
		return
	}

	var payload workoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid body: startedAt is required")
		return
	}

	id, err := h.service.Create(c.Request.Context(), userID, workouts.CreateParams{
		Name:      payload.Name,
		StartedAt: payload.StartedAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to resolve user")
		return
	}
	id, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	var payload workoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid body: startedAt is required")
		return
	}

	got, err := h.service.Update(c.Request.Context(), userID, id, workouts.UpdateParams{
		Name:        payload.Name,
		StartedAt:   payload.StartedAt,
		CompletedAt: payload.CompletedAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, idResponse{ID: got})
}

func (h *WorkoutHandler) ReplaceExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to resolve user")
		return
	}
	id, ok := parseWorkoutID(c)
	if !ok {
		return
	}

	var payload []exerciseSelectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid body")
		return
	}

	sels := make([]workouts.ExerciseSelection, 0, len(payload))
	for _, p := range payload {
		sels = append(sels, workouts.ExerciseSelection{ExerciseID: p.ExerciseID, SortOrder: p.SortOrder})
	}

	if err := h.service.ReplaceExercises(c.Request.Context(), userID, id, sels); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, idResponse{ID: id})
}
