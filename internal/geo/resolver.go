package geo

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Resolver interface {
	// Resolve returns nil when address cannot be turned into a coordinate.
	Resolve(ctx context.Context, address string) *Coordinate
	// ResolveMany resolves every distinct address once. Unresolved addresses map to nil.
	ResolveMany(ctx context.Context, addresses []string) map[string]*Coordinate
}

type ResolverConfig struct {
	Concurrency int
}

type coordinateResolver struct {
	cache       Cache
	geocoder    Geocoder
	concurrency int
	log         *logrus.Entry
}

func NewResolver(cache Cache, geocoder Geocoder, cfg ResolverConfig, log *logrus.Entry) Resolver {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &coordinateResolver{
		cache:       cache,
		geocoder:    geocoder,
		concurrency: concurrency,
		log:         log,
	}
}

func (r *coordinateResolver) Resolve(ctx context.Context, address string) *Coordinate {
	entry, err := r.cache.Lookup(ctx, address)
	if err != nil {
		r.log.Warnf("resolve: cache lookup for %q failed - %v", address, err)
	}
	if entry != nil {
		return entry.Coordinate
	}

	return r.fetch(ctx, address)
}

func (r *coordinateResolver) ResolveMany(ctx context.Context, addresses []string) map[string]*Coordinate {
	distinct := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		distinct = append(distinct, address)
	}

	resolved := make(map[string]*Coordinate, len(distinct))

	entries, err := r.cache.LookupMany(ctx, distinct)
	if err != nil {
		r.log.Warnf("resolveMany: cache lookup failed - %v", err)
		entries = map[string]CacheEntry{}
	}

	misses := make([]string, 0, len(distinct))
	for _, address := range distinct {
		if entry, ok := entries[address]; ok {
			resolved[address] = entry.Coordinate
			continue
		}
		misses = append(misses, address)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.concurrency)

	for _, address := range misses {
		address := address
		g.Go(func() error {
			coordinate := r.fetch(ctx, address)

			mu.Lock()
			resolved[address] = coordinate
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	r.log.Debugf("resolveMany: %d addresses, %d fetched", len(distinct), len(misses))

	return resolved
}

// fetch asks the geocoder and caches a positive answer. Failures are not cached.
func (r *coordinateResolver) fetch(ctx context.Context, address string) *Coordinate {
	coordinate, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		r.log.Warnf("fetch: geocoding %q failed - %v", address, err)
		return nil
	}
	if coordinate == nil {
		r.log.Debugf("fetch: %q not found", address)
		return nil
	}

	if err := r.cache.Store(ctx, address, *coordinate); err != nil {
		r.log.Warnf("fetch: failed to cache %q - %v", address, err)
	}

	return coordinate
}
