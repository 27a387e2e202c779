package cachemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

type ExampleStruct struct {
	ID   int
	Name string
}

func TestNewInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)
	example := ExampleStruct{
		Name: "gpt",
	}
	cache.Set(context.Background(), "ex:1", example, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "ex:1")
	require.True(t, ok)
	require.Equal(t, example, got)
}

func TestNewInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "family", "gpt", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "family")
	require.True(t, ok)
	require.Equal(t, "gpt", got)
}

func TestNewInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "family")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestNewInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("family", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "family")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestNewInMemoryCacheManager_NoExpirationKeepsValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", NoExpiration, 0)
	cache.Set(context.Background(), "pattern", "^gpt-4", NoExpiration)

	got, ok := cache.Get(context.Background(), "pattern")
	require.True(t, ok)
	require.Equal(t, "^gpt-4", got)
}

func TestNewInMemoryCacheManager_DeleteWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)

	err := cache.Delete(context.Background())
	require.NoError(t, err)
}

func TestNewInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "family", "gpt", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "family")
	require.True(t, ok)
	require.Equal(t, "gpt", got)

	err := cache.Delete(context.Background(), "family")
	require.NoError(t, err)

	got, ok = cache.Get(context.Background(), "family")
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestNewInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("pattern-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "family", "gpt", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "family")
	require.True(t, ok)
	require.Equal(t, "gpt", got)

	err := cache.Flush(context.Background())
	require.NoError(t, err)

	got, ok = cache.Get(context.Background(), "family")
	require.False(t, ok)
	require.Equal(t, "", got)
}
