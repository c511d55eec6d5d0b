package handler

import (
	"errors"
	"time"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/service"
	"teamtrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// EvaluationHandler handles HTTP requests for task ratings.
type EvaluationHandler struct {
	service service.EvaluationServicer
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(service service.EvaluationServicer) *EvaluationHandler {
	return &EvaluationHandler{service: service}
}

// RateTask godoc
// @Summary      Rate a task
// @Description  Attach a 1-5 rating to a done task. Each task takes at most one rating. Requires admin.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                  true  "Team ID"
// @Param        taskId  path      string                  true  "Task ID"
// @Param        body    body      models.RateTaskRequest  true  "Rating value"
// @Success      201     {object}  response.Response{data=models.Evaluation}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId}/rate [post]
func (h *EvaluationHandler) RateTask(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req models.RateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	evaluation, err := h.service.RateTask(c.Request.Context(), teamID, taskID, &req)
	if err != nil {
		respondEvaluationError(c, err)
		return
	}

	response.Created(c, evaluation)
}

// GetAvgRating godoc
// @Summary      Team rating average
// @Description  Average rating of the team's done tasks rated within [from, to], both inclusive
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        from    query     string  true  "Period start (RFC 3339)"
// @Param        to      query     string  true  "Period end (RFC 3339)"
// @Success      200     {object}  response.Response{data=models.RatingStats}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/ratings/avg [get]
func (h *EvaluationHandler) GetAvgRating(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		response.BadRequest(c, "invalid from timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		response.BadRequest(c, "invalid to timestamp")
		return
	}

	stats, err := h.service.GetAvgRatingForPeriod(c.Request.Context(), teamID, from, to)
	if err != nil {
		respondEvaluationError(c, err)
		return
	}

	response.Success(c, stats)
}

// ListUserRatings godoc
// @Summary      List a member's ratings
// @Description  Retrieve the evaluated done tasks of a team assigned to one user, most recently rated first
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        userId  path      string  true  "Assignee user ID"
// @Success      200     {object}  response.Response{data=models.UserRatingsResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/ratings/user/{userId} [get]
func (h *EvaluationHandler) ListUserRatings(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	ratings, err := h.service.ListUserRatings(c.Request.Context(), teamID, userID)
	if err != nil {
		respondEvaluationError(c, err)
		return
	}

	response.Success(c, ratings)
}

// GetTaskRating godoc
// @Summary      Get a task's rating
// @Description  Retrieve the rating of a task, if any
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response{data=models.Evaluation}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId}/rate [get]
func (h *EvaluationHandler) GetTaskRating(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	evaluation, err := h.service.GetTaskRating(c.Request.Context(), teamID, taskID)
	if err != nil {
		respondEvaluationError(c, err)
		return
	}

	response.Success(c, evaluation)
}

// respondEvaluationError maps rating service errors to HTTP responses.
func respondEvaluationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTaskNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrTaskNotDone),
		errors.Is(err, apperrors.ErrTaskAlreadyRated):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidRating),
		errors.Is(err, apperrors.ErrInvalidDateRange):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
