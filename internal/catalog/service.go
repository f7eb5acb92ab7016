package catalog

import (
	"context"

	"github.com/sirupsen/logrus"
)

type CatalogService interface {
	GetAvailableProducts(ctx context.Context) ([]Product, error)
	GetRestaurants(ctx context.Context) ([]Restaurant, error)
	GetAvailabilityMatrix(ctx context.Context) (*AvailabilityMatrix, error)
	GetProductsByIDs(ctx context.Context, ids []uint) ([]Product, error)
	GetRestaurantByID(ctx context.Context, id uint) (*Restaurant, error)
}

// AvailabilityMatrix holds one row per product with a flag for every restaurant,
// in the order of Restaurants.
type AvailabilityMatrix struct {
	Restaurants []Restaurant          `json:"restaurants"`
	Products    []ProductAvailability `json:"products"`
}

type ProductAvailability struct {
	Product      Product `json:"product"`
	Availability []bool  `json:"availability"`
}

type catalogService struct {
	storage Storage
	logger  *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) CatalogService {
	return &catalogService{
		storage: storage,
		logger:  log,
	}
}

func (s *catalogService) GetAvailableProducts(ctx context.Context) ([]Product, error) {
	return s.storage.GetAvailableProducts(ctx)
}

func (s *catalogService) GetRestaurants(ctx context.Context) ([]Restaurant, error) {
	return s.storage.GetRestaurants(ctx)
}

func (s *catalogService) GetProductsByIDs(ctx context.Context, ids []uint) ([]Product, error) {
	return s.storage.GetProductsByIDs(ctx, ids)
}

func (s *catalogService) GetRestaurantByID(ctx context.Context, id uint) (*Restaurant, error) {
	return s.storage.GetRestaurantByID(ctx, id)
}

func (s *catalogService) GetAvailabilityMatrix(ctx context.Context) (*AvailabilityMatrix, error) {
	restaurants, err := s.storage.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.storage.GetProductsWithMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("availability matrix: %d products x %d restaurants", len(products), len(restaurants))

	return BuildAvailabilityMatrix(restaurants, products), nil
}

// BuildAvailabilityMatrix marks every restaurant unavailable and then applies the
// product's menu items. Menu items of restaurants outside the list are ignored.
func BuildAvailabilityMatrix(restaurants []Restaurant, products []Product) *AvailabilityMatrix {
	matrix := &AvailabilityMatrix{
		Restaurants: restaurants,
		Products:    make([]ProductAvailability, 0, len(products)),
	}

	for _, product := range products {
		availability := make(map[uint]bool, len(restaurants))
		for _, restaurant := range restaurants {
			availability[restaurant.ID] = false
		}
		for _, item := range product.MenuItems {
			if _, ok := availability[item.RestaurantID]; ok {
				availability[item.RestaurantID] = item.Availability
			}
		}

		row := make([]bool, len(restaurants))
		for i, restaurant := range restaurants {
			row[i] = availability[restaurant.ID]
		}

		matrix.Products = append(matrix.Products, ProductAvailability{
			Product:      product,
			Availability: row,
		})
	}

	return matrix
}
