package order

import (
	"sort"

	"github.com/mserebryaakov/foodcart-service/internal/catalog"
)

// MatchableRestaurants returns the restaurants that have every product of the order
// available, ordered by id. Items must carry Product.MenuItems with Restaurant loaded.
func MatchableRestaurants(order Order) []catalog.Restaurant {
	if len(order.Items) == 0 {
		return []catalog.Restaurant{}
	}

	var common map[uint]catalog.Restaurant
	for i, item := range order.Items {
		capable := make(map[uint]catalog.Restaurant, len(item.Product.MenuItems))
		for _, menuItem := range item.Product.MenuItems {
			if !menuItem.Availability {
				continue
			}
			restaurant := menuItem.Restaurant
			restaurant.ID = menuItem.RestaurantID
			capable[menuItem.RestaurantID] = restaurant
		}

		if i == 0 {
			common = capable
		} else {
			for id := range common {
				if _, ok := capable[id]; !ok {
					delete(common, id)
				}
			}
		}

		if len(common) == 0 {
			return []catalog.Restaurant{}
		}
	}

	restaurants := make([]catalog.Restaurant, 0, len(common))
	for _, restaurant := range common {
		restaurants = append(restaurants, restaurant)
	}
	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].ID < restaurants[j].ID
	})

	return restaurants
}
