package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Storage interface {
	GetProductsByIDs(ctx context.Context, ids []uint) ([]Product, error)
	GetAvailableProducts(ctx context.Context) ([]Product, error)
	GetProductsWithMenuItems(ctx context.Context) ([]Product, error)
	GetRestaurants(ctx context.Context) ([]Restaurant, error)
	GetRestaurantByID(ctx context.Context, id uint) (*Restaurant, error)
}

type CatalogStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &CatalogStorage{
		db: db,
	}
}

func (s *CatalogStorage) GetProductsByIDs(ctx context.Context, ids []uint) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}

	var products []Product
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products - %w", err)
	}
	return products, nil
}

func (s *CatalogStorage) GetAvailableProducts(ctx context.Context) ([]Product, error) {
	db := s.db.WithContext(ctx)
	available := db.Model(&MenuItem{}).Select("product_id").Where("availability = ?", true)

	var products []Product
	err := db.
		Preload("Category").
		Where("id IN (?)", available).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available products - %w", err)
	}
	return products, nil
}

func (s *CatalogStorage) GetProductsWithMenuItems(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.db.WithContext(ctx).Preload("MenuItems").Order("id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products with menu items - %w", err)
	}
	return products, nil
}

func (s *CatalogStorage) GetRestaurants(ctx context.Context) ([]Restaurant, error) {
	var restaurants []Restaurant
	err := s.db.WithContext(ctx).Order("name").Order("id").Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurants - %w", err)
	}
	return restaurants, nil
}

func (s *CatalogStorage) GetRestaurantByID(ctx context.Context, id uint) (*Restaurant, error) {
	var restaurant Restaurant
	err := s.db.WithContext(ctx).First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}
