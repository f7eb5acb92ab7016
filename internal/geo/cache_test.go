package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mserebryaakov/foodcart-service/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreKeepsFirstValue(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	cache := NewCache(storage, nil, 0, testutil.Logger())

	require.NoError(t, cache.Store(ctx, "Москва", Coordinate{Lon: 37.6, Lat: 55.7}))
	require.NoError(t, cache.Store(ctx, "Москва", Coordinate{Lon: 1, Lat: 2}))

	entry, err := cache.Lookup(ctx, "Москва")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, &Coordinate{Lon: 37.6, Lat: 55.7}, entry.Coordinate)
	assert.Len(t, storage.places, 1)
}

func TestCacheLookupIsExactMatch(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(newMemStorage(), nil, 0, testutil.Logger())

	require.NoError(t, cache.Store(ctx, "Москва", Coordinate{Lon: 37.6, Lat: 55.7}))

	for _, address := range []string{"москва", " Москва", "Москва "} {
		entry, err := cache.Lookup(ctx, address)
		require.NoError(t, err)
		assert.Nil(t, entry, address)
	}
}

func TestCacheLookupUnresolvedEntry(t *testing.T) {
	cache := NewCache(newMemStorage(GeoPlace{Address: "Тверь"}), nil, 0, testutil.Logger())

	entry, err := cache.Lookup(context.Background(), "Тверь")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Nil(t, entry.Coordinate)
}

func TestCacheLookupStorageError(t *testing.T) {
	storage := newMemStorage()
	storage.err = errors.New("db down")
	cache := NewCache(storage, nil, 0, testutil.Logger())

	entry, err := cache.Lookup(context.Background(), "Москва")
	assert.Error(t, err)
	assert.Nil(t, entry)
}

func TestCacheHotLayer(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	storage := newMemStorage(
		GeoPlace{Address: "Тверь"},
		GeoPlace{Address: "Казань", Lon: testutil.FloatPtr(49.1), Lat: testutil.FloatPtr(55.8)},
	)
	cache := NewCache(storage, client, time.Hour, testutil.Logger())

	require.NoError(t, cache.Store(ctx, "Москва", Coordinate{Lon: 37.6, Lat: 55.7}))
	mr.CheckGet(t, "geo:place:Москва", "37.6 55.7")

	entries, err := cache.LookupMany(ctx, []string{"Москва", "Казань", "Тверь", "Омск"})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Nil(t, entries["Тверь"].Coordinate)

	mr.CheckGet(t, "geo:place:Казань", "49.1 55.8")
	assert.False(t, mr.Exists("geo:place:Тверь"))
	assert.False(t, mr.Exists("geo:place:Омск"))

	// served from redis even once the table forgets it
	delete(storage.places, "Казань")
	entry, err := cache.Lookup(ctx, "Казань")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, &Coordinate{Lon: 49.1, Lat: 55.8}, entry.Coordinate)
}

func TestCacheHotLayerDownFallsBackToStorage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	storage := newMemStorage(GeoPlace{Address: "Казань", Lon: testutil.FloatPtr(49.1), Lat: testutil.FloatPtr(55.8)})
	cache := NewCache(storage, client, 0, testutil.Logger())
	mr.Close()

	entry, err := cache.Lookup(ctx, "Казань")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, &Coordinate{Lon: 49.1, Lat: 55.8}, entry.Coordinate)
}

func TestDecodeCoordinate(t *testing.T) {
	coordinate, err := decodeCoordinate("37.617494 55.752121")
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Lon: 37.617494, Lat: 55.752121}, coordinate)

	for _, raw := range []string{"", "37.6", "a b", "37.6 b", "1 2 3"} {
		_, err := decodeCoordinate(raw)
		assert.ErrorIs(t, err, errHotCacheValue, raw)
	}
}
