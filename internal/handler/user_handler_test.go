package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_GetUser(t *testing.T) {
	userID := primitive.NewObjectID()
	now := time.Now()

	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "user found",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return &models.User{
						ID:        id,
						Email:     "test@example.com",
						Name:      "Test User",
						CreatedAt: now,
						UpdatedAt: now,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeResponse(t, w)
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "test@example.com", data["email"])
				assert.Nil(t, data["password"])
			},
		},
		{
			name:           "invalid user ID",
			userID:         "not-an-id",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.GetUserFunc = func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.GET("/users/:id", handler.GetUser)

			w := doJSON(router, http.MethodGet, "/users/"+tt.userID, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	t.Run("returns all users", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
				return []models.User{
					{ID: primitive.NewObjectID(), Email: "a@example.com", Name: "A"},
					{ID: primitive.NewObjectID(), Email: "b@example.com", Name: "B"},
				}, nil
			},
		}
		handler := NewUserHandler(mockService)

		router := gin.New()
		router.GET("/users", handler.GetAllUsers)

		w := doJSON(router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp["data"].([]interface{})
		assert.Len(t, data, 2)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			GetAllUsersFunc: func(ctx context.Context) ([]models.User, error) {
				return nil, errors.New("database error")
			},
		}
		handler := NewUserHandler(mockService)

		router := gin.New()
		router.GET("/users", handler.GetAllUsers)

		w := doJSON(router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	userID := primitive.NewObjectID()
	newName := "Jane Doe"
	newEmail := "jane@example.com"

	tests := []struct {
		name           string
		userID         string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name:   "successful update",
			userID: userID.Hex(),
			body:   models.UpdateUserRequest{Name: &newName, Email: &newEmail},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
					return &models.User{ID: id, Name: *req.Name, Email: *req.Email}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid user ID",
			userID:         "nope",
			body:           models.UpdateUserRequest{Name: &newName},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON body",
			userID:         userID.Hex(),
			body:           "not json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			userID:         userID.Hex(),
			body:           map[string]string{"email": "not-an-email"},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: userID.Hex(),
			body:   models.UpdateUserRequest{Name: &newName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "email already taken",
			userID: userID.Hex(),
			body:   models.UpdateUserRequest{Email: &newEmail},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			body:   models.UpdateUserRequest{Name: &newName},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.PUT("/users/:id", handler.UpdateUser)

			w := doJSON(router, http.MethodPut, "/users/"+tt.userID, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		userID         string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name:   "successful deletion",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, id primitive.ObjectID) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid user ID",
			userID:         "nope",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, id primitive.ObjectID) error {
					return apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "internal server error",
			userID: userID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, id primitive.ObjectID) error {
					return errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.DELETE("/users/:id", handler.DeleteUser)

			w := doJSON(router, http.MethodDelete, "/users/"+tt.userID, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
