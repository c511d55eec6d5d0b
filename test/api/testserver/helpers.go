//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"teamtrack/internal/models"
	"teamtrack/pkg/auth"
	"teamtrack/pkg/response"
	"teamtrack/test/fixtures"
	"teamtrack/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, email, password string) string {
	t.Helper()

	data := ah.Login(t, email, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// CreateAuthenticatedUser creates a user and returns the user data and access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, password string) (userData map[string]interface{}, accessToken string) {
	t.Helper()

	data := ah.RegisterUser(t, name, email, password)

	userData, ok := data["user"].(map[string]interface{})
	require.True(t, ok, "user should be a map")

	accessToken, ok = data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return userData, accessToken
}

// CreateDefaultUser creates a user with default test credentials.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userData map[string]interface{}, accessToken string) {
	t.Helper()
	return ah.CreateAuthenticatedUser(t, "Test User", "test@example.com", "password123")
}

// SeedUser directly inserts a user into the database (bypasses API).
// The password must already be hashed.
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// SeedSuperuser inserts a superuser and returns it with an access token.
// Team creation requires admin or superuser rights, so most scenarios
// bootstrap through this.
func (ah *AuthHelper) SeedSuperuser(t *testing.T, email, password string) (*models.User, string) {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err, "failed to hash password")

	user := ah.SeedUser(t, fixtures.NewUser().
		WithName("Administrator").
		WithEmail(email).
		WithPassword(hashed).
		Superuser().
		BuildPtr())

	token := ah.GetAccessToken(t, email, password)
	return user, token
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// CreateTeam creates a team via the API and returns the team data.
func (th *TeamHelper) CreateTeam(t *testing.T, token, name string, members []models.TeamMemberIn) map[string]interface{} {
	t.Helper()

	req := models.CreateTeamRequest{
		Name:    name,
		Members: members,
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/team", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create team should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create team response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// SeedTeam directly inserts a team into the database (bypasses API).
func (th *TeamHelper) SeedTeam(t *testing.T, team *models.Team) *models.Team {
	t.Helper()
	ctx := context.Background()

	err := th.server.TeamRepo.Create(ctx, team)
	require.NoError(t, err, "failed to seed team")

	return team
}

// SeedMember attaches a user to a team with a role (bypasses API).
func (th *TeamHelper) SeedMember(t *testing.T, teamID, userID primitive.ObjectID, role string) {
	t.Helper()
	ctx := context.Background()

	err := th.server.UserRepo.SetMembership(ctx, userID, &teamID, role)
	require.NoError(t, err, "failed to seed team membership")
}

// TaskHelper provides task-related helpers for API tests.
type TaskHelper struct {
	server *TestServer
}

// NewTaskHelper creates a new task helper.
func NewTaskHelper(server *TestServer) *TaskHelper {
	return &TaskHelper{server: server}
}

// CreateTask creates a task via the API and returns the task data.
func (th *TaskHelper) CreateTask(t *testing.T, token, teamID, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateTaskRequest{
		Name:        name,
		Description: "created by API test",
	}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPost, "/api/v1/teams/"+teamID+"/tasks", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create task should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create task response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// MarkDone moves a task to the done status via the API.
func (th *TaskHelper) MarkDone(t *testing.T, token, teamID, taskID string) {
	t.Helper()

	done := models.StatusDone
	req := models.UpdateTaskRequest{Status: &done}

	w := testutil.MakeAuthRequest(t, th.server.Router, http.MethodPatch, "/api/v1/teams/"+teamID+"/tasks/"+taskID, token, req)
	require.Equal(t, http.StatusOK, w.Code, "update task should return 200, got: %s", w.Body.String())
}

// MeetingHelper provides meeting-related helpers for API tests.
type MeetingHelper struct {
	server *TestServer
}

// NewMeetingHelper creates a new meeting helper.
func NewMeetingHelper(server *TestServer) *MeetingHelper {
	return &MeetingHelper{server: server}
}

// CreateMeeting schedules a meeting via the API and returns the meeting data.
func (mh *MeetingHelper) CreateMeeting(t *testing.T, token, teamID, title string, startsAt, endsAt time.Time) map[string]interface{} {
	t.Helper()

	req := models.CreateMeetingRequest{
		Title:    title,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}

	w := testutil.MakeAuthRequest(t, mh.server.Router, http.MethodPost, "/api/v1/meetings?teamId="+teamID, token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create meeting should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "create meeting response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
