package handler

import (
	"errors"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/middleware"
	"teamtrack/internal/models"
	"teamtrack/internal/service"
	"teamtrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service service.TaskServicer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service service.TaskServicer) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTask godoc
// @Summary      Create a task
// @Description  Create a task in a team. The task name must be unique within the team. Employees cannot create tasks.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        body    body      models.CreateTaskRequest  true  "Task details"
// @Success      201     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Created(c, task)
}

// GetTask godoc
// @Summary      Get a task
// @Description  Retrieve a task by ID within a team
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), teamID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// ListTeamTasks godoc
// @Summary      List team tasks
// @Description  Retrieve all tasks of a team
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.TaskListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks [get]
func (h *TaskHandler) ListTeamTasks(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	tasks, err := h.service.ListTeamTasks(c.Request.Context(), teamID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, models.TaskListResponse{Items: tasks})
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Merge the supplied fields into a task. Only the author may update a task.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        taskId  path      string                    true  "Task ID"
// @Param        body    body      models.UpdateTaskRequest  true  "Fields to change"
// @Success      200     {object}  response.Response{data=models.Task}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), teamID, taskID, userID, &req)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Delete a task with its comments and rating. Only the author may delete a task.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), teamID, taskID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "task deleted successfully"})
}

// AddComment godoc
// @Summary      Comment on a task
// @Description  Attach a comment to a task. Any authenticated user may comment.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                           true  "Team ID"
// @Param        taskId  path      string                           true  "Task ID"
// @Param        body    body      models.CreateTaskCommentRequest  true  "Comment body"
// @Success      201     {object}  response.Response{data=models.TaskComment}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId}/comments [post]
func (h *TaskHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req models.CreateTaskCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), teamID, taskID, userID, &req)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Created(c, comment)
}

// ListComments godoc
// @Summary      List task comments
// @Description  Retrieve the comments of a task, oldest first
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        taskId  path      string  true  "Task ID"
// @Success      200     {object}  response.Response{data=[]models.TaskComment}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/tasks/{taskId}/comments [get]
func (h *TaskHandler) ListComments(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), teamID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, comments)
}

// respondTaskError maps task service errors to HTTP responses.
func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTaskNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrNotTaskAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrTaskNameTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c)
	}
}
