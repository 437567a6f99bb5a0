package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCacheManager struct {
	mock.Mock
}

func (m *mockCacheManager) Get(ctx context.Context, key string) ([]int, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).([]int), args.Bool(1)
}

func (m *mockCacheManager) Set(ctx context.Context, key string, value []int, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager) Delete(ctx context.Context, keys ...string) {
	m.Called(ctx, keys)
}

func (m *mockCacheManager) Flush(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockCacheManager) Len() int {
	return m.Called().Int(0)
}

func loader(ctx context.Context, input int) ([]int, error) {
	return []int{input}, nil
}

func TestReadThroughCache_SkipCache(t *testing.T) {
	m := &mockCacheManager{}
	cache := NewReadThroughCache[string, []int, int](m, loader, true)

	got, err := cache.Get(context.Background(), "key", 7, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []int{7}, got)
	m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestReadThroughCache_Hit(t *testing.T) {
	m := &mockCacheManager{}
	m.On("Get", mock.Anything, "key").Return([]int{1, 2}, true)
	cache := NewReadThroughCache[string, []int, int](m, loader, false)

	got, err := cache.Get(context.Background(), "key", 7, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got)
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_MissStores(t *testing.T) {
	m := &mockCacheManager{}
	m.On("Get", mock.Anything, "key").Return([]int(nil), false)
	m.On("Set", mock.Anything, "key", []int{7}, time.Minute).Return()
	cache := NewReadThroughCache[string, []int, int](m, loader, false)

	got, err := cache.Get(context.Background(), "key", 7, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []int{7}, got)
	m.AssertExpectations(t)
}

func TestReadThroughCache_LoaderError(t *testing.T) {
	m := &mockCacheManager{}
	m.On("Get", mock.Anything, "key").Return([]int(nil), false)
	cache := NewReadThroughCache[string, []int, int](m, func(ctx context.Context, input int) ([]int, error) {
		return nil, errors.New("failed")
	}, false)

	_, err := cache.Get(context.Background(), "key", 7, time.Minute)
	require.Error(t, err)
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
