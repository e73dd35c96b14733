package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockCacheManager is a testify mock of CacheManager.
type mockCacheManager[K comparable, V any] struct {
	mock.Mock
}

func newMockCacheManager[K comparable, V any](t *testing.T) *mockCacheManager[K, V] {
	m := &mockCacheManager[K, V]{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(V), args.Bool(1)
}

func (m *mockCacheManager[K, V]) GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(V), args.Bool(1)
}

func (m *mockCacheManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	m.Called(ctx, key, value, ttl)
}

func (m *mockCacheManager[K, V]) Delete(ctx context.Context, keys ...K) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCacheManager[K, V]) Flush(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCacheManager[K, V]) Len() int {
	return m.Called().Int(0)
}

type renderInput struct {
	BlockID string
	Width   int
}

func render(calls *int) func(context.Context, renderInput) (string, error) {
	return func(_ context.Context, in renderInput) (string, error) {
		*calls++
		if in.Width <= 0 {
			return "", errors.New("zero width")
		}
		return in.BlockID + " rendered", nil
	}
}

func TestReadThroughCache_Get_WithoutCache(t *testing.T) {
	var calls int
	rt := NewReadThroughCache[string, string, renderInput](nil, render(&calls), false)

	for range 2 {
		got, err := rt.Get(context.Background(), "hero|80", renderInput{BlockID: "hero", Width: 80}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, "hero rendered", got)
	}
	require.Equal(t, 2, calls)
	require.NoError(t, rt.Invalidate(context.Background()))
}

func TestReadThroughCache_Get_Hit(t *testing.T) {
	managerMock := newMockCacheManager[string, string](t)
	managerMock.On("Get", mock.Anything, "hero|80").Return("cached", true).Once()

	var calls int
	rt := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), false)

	got, err := rt.Get(context.Background(), "hero|80", renderInput{BlockID: "hero", Width: 80}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got)
	require.Zero(t, calls)
}

func TestReadThroughCache_Get_MissStores(t *testing.T) {
	managerMock := newMockCacheManager[string, string](t)
	managerMock.On("Get", mock.Anything, "hero|80").Return("", false).Once()
	managerMock.On("Set", mock.Anything, "hero|80", "hero rendered", time.Minute).Return().Once()

	var calls int
	rt := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), false)

	got, err := rt.Get(context.Background(), "hero|80", renderInput{BlockID: "hero", Width: 80}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "hero rendered", got)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_Get_ErrorNotStored(t *testing.T) {
	managerMock := newMockCacheManager[string, string](t)
	managerMock.On("Get", mock.Anything, "hero|0").Return("", false).Once()

	var calls int
	rt := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), false)

	_, err := rt.Get(context.Background(), "hero|0", renderInput{BlockID: "hero"}, time.Minute)
	require.ErrorContains(t, err, "loading hero|0")
	managerMock.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadThroughCache_Sliding_Miss(t *testing.T) {
	managerMock := newMockCacheManager[string, string](t)
	managerMock.On("GetWithRefresh", mock.Anything, "hero|80", time.Minute).Return("", false).Once()
	managerMock.On("Set", mock.Anything, "hero|80", "hero rendered", time.Minute).Return().Once()

	var calls int
	rt := NewReadThroughCache[string, string, renderInput](managerMock, render(&calls), true)

	got, err := rt.Get(context.Background(), "hero|80", renderInput{BlockID: "hero", Width: 80}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, "hero rendered", got)
}

func TestReadThroughCache_InMemoryEndToEnd(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("previews", DefaultExpiration, DefaultCleanupInterval)
	var calls int
	rt := NewReadThroughCache[string, string, renderInput](cache, render(&calls), false)

	for range 3 {
		got, err := rt.Get(context.Background(), "hero|80", renderInput{BlockID: "hero", Width: 80}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, "hero rendered", got)
	}
	require.Equal(t, 1, calls)

	require.NoError(t, rt.Invalidate(context.Background()))
	_, err := rt.Get(context.Background(), "hero|80", renderInput{BlockID: "hero", Width: 80}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
