package order

import (
	"sort"

	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/mserebryaakov/foodcart-service/internal/geo"
)

type RankedRestaurant struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	// DistanceKm is nil when either address is unresolved.
	DistanceKm *float64 `json:"distance_km"`
}

// Rank orders candidates by distance to the delivery address, nearest first.
// Restaurants with an unknown distance go last; ties are broken by id.
func Rank(order Order, candidates []catalog.Restaurant, coordinates map[string]*geo.Coordinate) []RankedRestaurant {
	ranked := make([]RankedRestaurant, 0, len(candidates))
	destination := coordinates[order.Address]

	for _, restaurant := range candidates {
		entry := RankedRestaurant{
			ID:      restaurant.ID,
			Name:    restaurant.Name,
			Address: restaurant.Address,
		}

		origin := coordinates[restaurant.Address]
		if origin != nil && destination != nil {
			distance := geo.DistanceKm(*origin, *destination)
			entry.DistanceKm = &distance
		}

		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].DistanceKm, ranked[j].DistanceKm
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}
