package geo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

type memStorage struct {
	mu      sync.Mutex
	places  map[string]GeoPlace
	creates int
	err     error
	// addressSize mimics the varchar limit of the address column when set.
	addressSize int
}

func newMemStorage(places ...GeoPlace) *memStorage {
	s := &memStorage{places: map[string]GeoPlace{}}
	for _, place := range places {
		s.places[place.Address] = place
	}
	return s
}

func (s *memStorage) GetPlaces(ctx context.Context, addresses []string) ([]GeoPlace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	var found []GeoPlace
	for _, address := range addresses {
		if place, ok := s.places[address]; ok {
			found = append(found, place)
		}
	}
	return found, nil
}

func (s *memStorage) CreatePlace(ctx context.Context, place *GeoPlace) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return false, s.err
	}

	if s.addressSize > 0 && utf8.RuneCountInString(place.Address) > s.addressSize {
		return false, fmt.Errorf("value too long for type character varying(%d)", s.addressSize)
	}

	s.creates++
	if _, ok := s.places[place.Address]; ok {
		return false, nil
	}
	s.places[place.Address] = *place
	return true, nil
}

type countingGeocoder struct {
	mu      sync.Mutex
	calls   map[string]int
	results map[string]Coordinate
	failing map[string]bool
}

func newCountingGeocoder(results map[string]Coordinate) *countingGeocoder {
	return &countingGeocoder{
		calls:   map[string]int{},
		results: results,
		failing: map[string]bool{},
	}
}

func (g *countingGeocoder) Geocode(ctx context.Context, address string) (*Coordinate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls[address]++
	if g.failing[address] {
		return nil, errors.New("connection refused")
	}
	coordinate, ok := g.results[address]
	if !ok {
		return nil, nil
	}
	return &coordinate, nil
}

func (g *countingGeocoder) total() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	total := 0
	for _, n := range g.calls {
		total += n
	}
	return total
}
