package handler

import (
	"errors"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/middleware"
	"teamtrack/internal/models"
	"teamtrack/internal/service"
	"teamtrack/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamHandler handles HTTP requests for team operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam godoc
// @Summary      Create a new team
// @Description  Create a team with an optional initial roster. The creator always joins as admin.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTeamRequest  true  "Team details"
// @Success      201   {object}  response.Response{data=models.TeamRead}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /team [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	response.Created(c, team)
}

// GetAllTeams godoc
// @Summary      List all teams
// @Description  Retrieve every team with its roster
// @Tags         teams
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.TeamRead}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /team [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.service.GetAllTeams(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, teams)
}

// GetTeam godoc
// @Summary      Get team details
// @Description  Retrieve a team with its roster
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.TeamRead}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /team/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	response.Success(c, team)
}

// UpdateTeam godoc
// @Summary      Update team
// @Description  Rename a team and/or upsert roster entries. Requires admin.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                    true  "Team ID"
// @Param        body    body      models.UpdateTeamRequest  true  "Team update details"
// @Success      200     {object}  response.Response{data=models.TeamRead}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /team/{teamId} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), teamID, &req)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	response.Success(c, team)
}

// DeleteTeam godoc
// @Summary      Delete team
// @Description  Delete a team and unlink all its members. Requires admin.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /team/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteTeam(c.Request.Context(), teamID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"deleted": deleted})
}

// ListTeamUsers godoc
// @Summary      List team members
// @Description  Retrieve the roster of a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=[]models.TeamMemberRead}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /team/{teamId}/users [get]
func (h *TeamHandler) ListTeamUsers(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	members, err := h.service.ListTeamUsers(c.Request.Context(), teamID)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	response.Success(c, members)
}

// RemoveTeamUsers godoc
// @Summary      Remove team members
// @Description  Detach the listed users from the team. The owner cannot be removed, and the team may not lose its last admin. Requires admin.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                        true  "Team ID"
// @Param        body    body      models.RemoveTeamUsersRequest true  "User IDs to remove"
// @Success      200     {object}  response.Response{data=models.TeamRead}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /team/{teamId}/users [delete]
func (h *TeamHandler) RemoveTeamUsers(c *gin.Context) {
	teamID, ok := parseIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.RemoveTeamUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.RemoveTeamUsers(c.Request.Context(), teamID, req.UserIDs)
	if err != nil {
		respondTeamError(c, err)
		return
	}

	response.Success(c, team)
}

// respondTeamError maps team service errors to HTTP responses.
func respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrUsersNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrTeamNameTaken),
		errors.Is(err, apperrors.ErrUsersInOtherTeam),
		errors.Is(err, apperrors.ErrNotTeamMember):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrCannotRemoveOwner),
		errors.Is(err, apperrors.ErrLastAdminRemoval),
		errors.Is(err, apperrors.ErrInvalidRole):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// parseIDParam reads and validates an ObjectID path parameter.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseIDQuery reads and validates an ObjectID query parameter.
func parseIDQuery(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Query(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
