package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const hotCachePrefix = "geo:place:"

// hotCache keeps resolved coordinates in redis in front of the places table.
// Unresolved entries are never written here.
type hotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newHotCache(client *redis.Client, ttl time.Duration) *hotCache {
	if client == nil {
		return nil
	}
	return &hotCache{client: client, ttl: ttl}
}

func (c *hotCache) key(address string) string {
	return hotCachePrefix + address
}

func (c *hotCache) getMany(ctx context.Context, addresses []string) (map[string]Coordinate, error) {
	found := make(map[string]Coordinate, len(addresses))
	if len(addresses) == 0 {
		return found, nil
	}

	keys := make([]string, len(addresses))
	for i, address := range addresses {
		keys[i] = c.key(address)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		coordinate, err := decodeCoordinate(raw)
		if err != nil {
			return nil, fmt.Errorf("%s - %w", keys[i], err)
		}
		found[addresses[i]] = coordinate
	}

	return found, nil
}

func (c *hotCache) set(ctx context.Context, address string, coordinate Coordinate) error {
	return c.client.SetNX(ctx, c.key(address), encodeCoordinate(coordinate), c.ttl).Err()
}

func encodeCoordinate(c Coordinate) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + " " + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}

// decodeCoordinate reads the "<lon> <lat>" form shared with the geocoder response.
func decodeCoordinate(raw string) (Coordinate, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return Coordinate{}, errHotCacheValue
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Coordinate{}, errHotCacheValue
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Coordinate{}, errHotCacheValue
	}

	return Coordinate{Lon: lon, Lat: lat}, nil
}
