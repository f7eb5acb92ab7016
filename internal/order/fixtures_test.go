package order

import (
	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func testRestaurant(id uint, name, address string) catalog.Restaurant {
	return catalog.Restaurant{Model: gorm.Model{ID: id}, Name: name, Address: address}
}

func testProduct(id uint, price string, availableAt ...catalog.Restaurant) catalog.Product {
	product := catalog.Product{
		Model: gorm.Model{ID: id},
		Price: decimal.RequireFromString(price),
	}
	for _, restaurant := range availableAt {
		product.MenuItems = append(product.MenuItems, catalog.MenuItem{
			RestaurantID: restaurant.ID,
			Restaurant:   restaurant,
			ProductID:    id,
			Availability: true,
		})
	}
	return product
}

func testItem(product catalog.Product, quantity int) OrderItem {
	return OrderItem{
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		Price:     product.Price,
	}
}

var (
	starBurger = testRestaurant(1, "Star Burger Арбат", "Москва, Арбат, 1")
	bistro     = testRestaurant(2, "Bistro Тверская", "Москва, Тверская, 10")
	tasty      = testRestaurant(3, "Tasty Лубянка", "Москва, Лубянка, 5")
)
