// Package mocks provides a mock cache for testing.
package mocks

import (
	"context"
	"time"
)

// MockCache is a mock implementation of cache.Cache. The zero value behaves
// as an always-miss cache.
type MockCache struct {
	SetFunc                func(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetFunc                func(ctx context.Context, key string, dest interface{}) (bool, error)
	DeleteFunc             func(ctx context.Context, key string) error
	SetRefreshTokenFunc    func(ctx context.Context, token string, userID string, ttl time.Duration) error
	GetRefreshTokenFunc    func(ctx context.Context, token string) (string, error)
	DeleteRefreshTokenFunc func(ctx context.Context, token string) error
	DeleteByPrefixFunc     func(ctx context.Context, prefix string) error
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return false, nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *MockCache) SetRefreshToken(ctx context.Context, token string, userID string, ttl time.Duration) error {
	if m.SetRefreshTokenFunc != nil {
		return m.SetRefreshTokenFunc(ctx, token, userID, ttl)
	}
	return nil
}

func (m *MockCache) GetRefreshToken(ctx context.Context, token string) (string, error) {
	if m.GetRefreshTokenFunc != nil {
		return m.GetRefreshTokenFunc(ctx, token)
	}
	return "", nil
}

func (m *MockCache) DeleteRefreshToken(ctx context.Context, token string) error {
	if m.DeleteRefreshTokenFunc != nil {
		return m.DeleteRefreshTokenFunc(ctx, token)
	}
	return nil
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	if m.DeleteByPrefixFunc != nil {
		return m.DeleteByPrefixFunc(ctx, prefix)
	}
	return nil
}
