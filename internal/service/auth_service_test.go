package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	cachemocks "teamtrack/internal/cache/mocks"
	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	repomocks "teamtrack/internal/repository/mocks"
	"teamtrack/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubTokenManager issues a fixed token and records the user it was issued
// for.
type stubTokenManager struct {
	token      string
	err        error
	lastUserID string
}

func (s *stubTokenManager) GenerateToken(userID string) (string, error) {
	s.lastUserID = userID
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *stubTokenManager) ValidateToken(tokenString string) (*auth.Claims, error) {
	return nil, errors.New("not implemented")
}

type authFixture struct {
	service          *AuthService
	userRepo         *repomocks.MockUserRepository
	refreshTokenRepo *repomocks.MockRefreshTokenRepository
	cache            *cachemocks.MockCache
	tokens           *stubTokenManager
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		userRepo:         &repomocks.MockUserRepository{},
		refreshTokenRepo: &repomocks.MockRefreshTokenRepository{},
		cache:            &cachemocks.MockCache{},
		tokens:           &stubTokenManager{token: "jwt-access-token"},
	}

	f.service = NewAuthService(AuthServiceConfig{
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Cache:            f.cache,
		JWTManager:       f.tokens,
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	})
	return f
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password and issues tokens", func(t *testing.T) {
		f := newAuthFixture()

		var created *models.User
		f.userRepo.CreateFunc = func(ctx context.Context, user *models.User) error {
			user.ID = primitive.NewObjectID()
			created = user
			return nil
		}

		var storedToken *models.RefreshToken
		f.refreshTokenRepo.CreateFunc = func(ctx context.Context, token *models.RefreshToken) error {
			storedToken = token
			return nil
		}

		resp, err := f.service.Register(ctx, &models.CreateUserRequest{
			Email:    "alice@example.com",
			Password: "secret123",
			Name:     "Alice",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEqual(t, "secret123", created.Password)
		assert.NoError(t, auth.CheckPassword("secret123", created.Password))

		assert.Equal(t, "jwt-access-token", resp.AccessToken)
		assert.True(t, strings.HasPrefix(resp.RefreshToken, "rf_"))
		assert.Equal(t, int((15 * time.Minute).Seconds()), resp.ExpiresIn)

		require.NotNil(t, storedToken)
		assert.Equal(t, resp.RefreshToken, storedToken.Token)
		assert.Equal(t, created.ID, storedToken.UserID)
	})

	t.Run("propagates duplicate email error", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.CreateFunc = func(ctx context.Context, user *models.User) error {
			return apperrors.ErrUserAlreadyExists
		}

		resp, err := f.service.Register(ctx, &models.CreateUserRequest{
			Email:    "dup@example.com",
			Password: "secret123",
			Name:     "Dup",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, _ := auth.HashPassword("secret123")
	user := &models.User{ID: primitive.NewObjectID(), Email: "alice@example.com", Password: hashed}

	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		}

		resp, err := f.service.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "jwt-access-token", resp.AccessToken)
		assert.Equal(t, user.ID.Hex(), f.tokens.lastUserID)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		}

		resp, err := f.service.Login(ctx, &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email fails with invalid credentials", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
			return nil, apperrors.ErrUserNotFound
		}

		resp, err := f.service.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	userID := primitive.NewObjectID()

	t.Run("serves from cache on hit", func(t *testing.T) {
		f := newAuthFixture()
		f.cache.GetRefreshTokenFunc = func(ctx context.Context, token string) (string, error) {
			return userID.Hex(), nil
		}
		f.refreshTokenRepo.FindByTokenFunc = func(ctx context.Context, token string) (*models.RefreshToken, error) {
			t.Fatal("database must not be hit on cache hit")
			return nil, nil
		}

		resp, err := f.service.Refresh(ctx, &models.RefreshRequest{RefreshToken: "rf_cached"})

		require.NoError(t, err)
		assert.Equal(t, "jwt-access-token", resp.AccessToken)
		assert.Equal(t, userID.Hex(), f.tokens.lastUserID)
	})

	t.Run("falls back to database and re-caches", func(t *testing.T) {
		f := newAuthFixture()
		f.refreshTokenRepo.FindByTokenFunc = func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{
				Token:     token,
				UserID:    userID,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		}

		var cachedToken, cachedUserID string
		f.cache.SetRefreshTokenFunc = func(ctx context.Context, token, uid string, ttl time.Duration) error {
			cachedToken, cachedUserID = token, uid
			return nil
		}

		resp, err := f.service.Refresh(ctx, &models.RefreshRequest{RefreshToken: "rf_db_only"})

		require.NoError(t, err)
		assert.Equal(t, "jwt-access-token", resp.AccessToken)
		assert.Equal(t, "rf_db_only", cachedToken)
		assert.Equal(t, userID.Hex(), cachedUserID)
	})

	t.Run("unknown token fails", func(t *testing.T) {
		f := newAuthFixture()
		f.refreshTokenRepo.FindByTokenFunc = func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return nil, apperrors.ErrInvalidRefreshToken
		}

		resp, err := f.service.Refresh(ctx, &models.RefreshRequest{RefreshToken: "rf_bogus"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("removes token from store and cache", func(t *testing.T) {
		f := newAuthFixture()

		var deletedFromDB, deletedFromCache string
		f.refreshTokenRepo.DeleteByTokenFunc = func(ctx context.Context, token string) error {
			deletedFromDB = token
			return nil
		}
		f.cache.DeleteRefreshTokenFunc = func(ctx context.Context, token string) error {
			deletedFromCache = token
			return nil
		}

		err := f.service.Logout(ctx, &models.LogoutRequest{RefreshToken: "rf_bye"})

		require.NoError(t, err)
		assert.Equal(t, "rf_bye", deletedFromDB)
		assert.Equal(t, "rf_bye", deletedFromCache)
	})
}

func TestAuthService_LogoutAll(t *testing.T) {
	ctx := context.Background()

	t.Run("drops every token of the user", func(t *testing.T) {
		f := newAuthFixture()
		userID := primitive.NewObjectID()

		var deletedFor primitive.ObjectID
		f.refreshTokenRepo.DeleteByUserIDFunc = func(ctx context.Context, id primitive.ObjectID) error {
			deletedFor = id
			return nil
		}

		err := f.service.LogoutAll(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, deletedFor)
	})
}
