package handler

import (
	"errors"
	"time"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/middleware"
	"teamtrack/internal/models"
	"teamtrack/internal/service"
	"teamtrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// MeetingHandler handles HTTP requests for meeting operations.
type MeetingHandler struct {
	service service.MeetingServicer
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(service service.MeetingServicer) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// CreateMeeting godoc
// @Summary      Schedule a meeting
// @Description  Schedule a meeting for a team. Scheduled meetings of one team never overlap; a meeting ending exactly when another starts is allowed.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        teamId  query     string                       true  "Team ID"
// @Param        body    body      models.CreateMeetingRequest  true  "Meeting details"
// @Success      201     {object}  response.Response{data=models.Meeting}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	teamID, ok := parseIDQuery(c, "teamId")
	if !ok {
		return
	}

	var req models.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.service.CreateMeeting(c.Request.Context(), teamID, &req)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Created(c, meeting)
}

// GetMeeting godoc
// @Summary      Get a meeting
// @Description  Retrieve a meeting by ID
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        meetingId  path      string  true  "Meeting ID"
// @Success      200        {object}  response.Response{data=models.Meeting}
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings/{meetingId} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meetingID, ok := parseIDParam(c, "meetingId")
	if !ok {
		return
	}

	meeting, err := h.service.GetMeeting(c.Request.Context(), meetingID)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Success(c, meeting)
}

// UpdateMeeting godoc
// @Summary      Update a meeting
// @Description  Merge the supplied fields into a meeting. Supplying endsAt cancels the meeting.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        meetingId  path      string                       true  "Meeting ID"
// @Param        body       body      models.UpdateMeetingRequest  true  "Fields to change"
// @Success      200        {object}  response.Response{data=models.Meeting}
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings/{meetingId} [patch]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	meetingID, ok := parseIDParam(c, "meetingId")
	if !ok {
		return
	}

	var req models.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.service.UpdateMeeting(c.Request.Context(), meetingID, &req)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Success(c, meeting)
}

// DeleteMeeting godoc
// @Summary      Delete a meeting
// @Description  Remove a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        meetingId  path      string  true  "Meeting ID"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings/{meetingId} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	meetingID, ok := parseIDParam(c, "meetingId")
	if !ok {
		return
	}

	if err := h.service.DeleteMeeting(c.Request.Context(), meetingID); err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "meeting deleted successfully"})
}

// GetMeetingsByDate godoc
// @Summary      List recent team meetings
// @Description  Retrieve the team's meetings that started between the given moment and now, oldest first
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        teamId  query     string  true  "Team ID"
// @Param        moment  query     string  true  "Window start (RFC 3339)"
// @Success      200     {object}  response.Response{data=models.MeetingListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings/by-date [get]
func (h *MeetingHandler) GetMeetingsByDate(c *gin.Context) {
	teamID, ok := parseIDQuery(c, "teamId")
	if !ok {
		return
	}

	moment, err := time.Parse(time.RFC3339, c.Query("moment"))
	if err != nil {
		response.BadRequest(c, "invalid moment, expected an RFC 3339 datetime")
		return
	}

	meetings, err := h.service.GetMeetingsByDate(c.Request.Context(), teamID, moment)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Success(c, models.MeetingListResponse{Items: meetings})
}

// GetUserMeetings godoc
// @Summary      List my meetings
// @Description  Retrieve the meetings of the requester's team. A user without a team sees an empty list.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        includeCanceled  query     bool    false  "Include canceled meetings"
// @Param        startsAfter      query     string  false  "Window start (RFC 3339)"
// @Param        endsBefore       query     string  false  "Window end (RFC 3339)"
// @Param        limit            query     int     false  "Maximum results"
// @Success      200              {object}  response.Response{data=models.MeetingListResponse}
// @Failure      400              {object}  response.Response
// @Failure      401              {object}  response.Response
// @Failure      500              {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings/my [get]
func (h *MeetingHandler) GetUserMeetings(c *gin.Context) {
	userID, ok := middleware.GetUserObjectID(c)
	if !ok {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var query models.UserMeetingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meetings, err := h.service.GetUserMeetings(c.Request.Context(), userID, &query)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Success(c, models.MeetingListResponse{Items: meetings})
}

// GetTeamMeetings godoc
// @Summary      List team meetings
// @Description  Retrieve all meetings of a team, newest start first
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        teamId  query     string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.MeetingListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /meetings/team [get]
func (h *MeetingHandler) GetTeamMeetings(c *gin.Context) {
	teamID, ok := parseIDQuery(c, "teamId")
	if !ok {
		return
	}

	meetings, err := h.service.GetTeamMeetings(c.Request.Context(), teamID)
	if err != nil {
		respondMeetingError(c, err)
		return
	}

	response.Success(c, models.MeetingListResponse{Items: meetings})
}

// respondMeetingError maps meeting service errors to HTTP responses.
func respondMeetingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMeetingNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrUsersNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrMeetingTitleTaken),
		errors.Is(err, apperrors.ErrMeetingOverlap):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidTimeRange):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
