package middleware

import (
	"teamtrack/internal/authz"
	"teamtrack/pkg/response"

	"github.com/gin-gonic/gin"
)

// Authorize returns a middleware that gates a route on an authorization
// action. The role rules live in the authorizer; superusers always pass.
func Authorize(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserObjectID(c)
		if !ok {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := authorizer.CanPerform(c.Request.Context(), userID, action)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}

		if !allowed {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireTeamAdmin gates team management and rating routes: the actor must
// be a superuser or an admin of a team.
func RequireTeamAdmin(authorizer authz.Authorizer) gin.HandlerFunc {
	return Authorize(authorizer, authz.ActionTeamManage)
}

// RequireTaskRater gates rating routes.
func RequireTaskRater(authorizer authz.Authorizer) gin.HandlerFunc {
	return Authorize(authorizer, authz.ActionTaskRate)
}

// ForbidEmployeeOnTasks keeps employees out of task mutations.
func ForbidEmployeeOnTasks(authorizer authz.Authorizer) gin.HandlerFunc {
	return Authorize(authorizer, authz.ActionTaskMutate)
}

// ForbidEmployeeOnMeetings keeps employees out of meeting mutations.
func ForbidEmployeeOnMeetings(authorizer authz.Authorizer) gin.HandlerFunc {
	return Authorize(authorizer, authz.ActionMeetingMutate)
}
