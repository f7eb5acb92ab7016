package geo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheEntry is a memoized lookup. A nil Coordinate means the address was
// attempted before and is unresolved.
type CacheEntry struct {
	Address    string
	Coordinate *Coordinate
}

type Cache interface {
	// Lookup returns nil on a miss.
	Lookup(ctx context.Context, address string) (*CacheEntry, error)
	LookupMany(ctx context.Context, addresses []string) (map[string]CacheEntry, error)
	// Store keeps the first coordinate saved for an address.
	Store(ctx context.Context, address string, coordinate Coordinate) error
}

type placeCache struct {
	storage Storage
	hot     *hotCache
	log     *logrus.Entry
	now     func() time.Time
}

// NewCache builds the places cache. redisClient may be nil.
func NewCache(storage Storage, redisClient *redis.Client, ttl time.Duration, log *logrus.Entry) Cache {
	return &placeCache{
		storage: storage,
		hot:     newHotCache(redisClient, ttl),
		log:     log,
		now:     time.Now,
	}
}

func (c *placeCache) Lookup(ctx context.Context, address string) (*CacheEntry, error) {
	entries, err := c.LookupMany(ctx, []string{address})
	if err != nil {
		return nil, err
	}

	entry, ok := entries[address]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (c *placeCache) LookupMany(ctx context.Context, addresses []string) (map[string]CacheEntry, error) {
	entries := make(map[string]CacheEntry, len(addresses))
	rest := addresses

	if c.hot != nil {
		hits, err := c.hot.getMany(ctx, addresses)
		if err != nil {
			c.log.Warnf("lookup: hot cache unavailable - %v", err)
		} else {
			rest = make([]string, 0, len(addresses))
			for _, address := range addresses {
				coordinate, ok := hits[address]
				if !ok {
					rest = append(rest, address)
					continue
				}
				entries[address] = CacheEntry{Address: address, Coordinate: &coordinate}
			}
		}
	}

	if len(rest) == 0 {
		return entries, nil
	}

	places, err := c.storage.GetPlaces(ctx, rest)
	if err != nil {
		return nil, err
	}

	for _, place := range places {
		coordinate := place.Coordinate()
		entries[place.Address] = CacheEntry{Address: place.Address, Coordinate: coordinate}

		if coordinate != nil && c.hot != nil {
			if err := c.hot.set(ctx, place.Address, *coordinate); err != nil {
				c.log.Warnf("lookup: failed to warm hot cache for %q - %v", place.Address, err)
			}
		}
	}

	c.log.Debugf("lookup: %d of %d addresses cached", len(entries), len(addresses))

	return entries, nil
}

func (c *placeCache) Store(ctx context.Context, address string, coordinate Coordinate) error {
	lon, lat := coordinate.Lon, coordinate.Lat
	created, err := c.storage.CreatePlace(ctx, &GeoPlace{
		Address: address,
		Lon:     &lon,
		Lat:     &lat,
		SavedAt: c.now(),
	})
	if err != nil {
		return err
	}

	if !created {
		c.log.Debugf("store: %q already cached, keeping first value", address)
		return nil
	}

	if c.hot != nil {
		if err := c.hot.set(ctx, address, coordinate); err != nil {
			c.log.Warnf("store: failed to warm hot cache for %q - %v", address, err)
		}
	}

	return nil
}
