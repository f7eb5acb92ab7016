package geo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Storage interface {
	GetPlaces(ctx context.Context, addresses []string) ([]GeoPlace, error)
	// CreatePlace inserts place unless its address is already stored.
	CreatePlace(ctx context.Context, place *GeoPlace) (bool, error)
}

type GeoStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &GeoStorage{
		db: db,
	}
}

func (s *GeoStorage) GetPlaces(ctx context.Context, addresses []string) ([]GeoPlace, error) {
	if len(addresses) == 0 {
		return []GeoPlace{}, nil
	}

	var places []GeoPlace
	err := s.db.WithContext(ctx).Where("address IN ?", addresses).Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get places - %w", err)
	}
	return places, nil
}

func (s *GeoStorage) CreatePlace(ctx context.Context, place *GeoPlace) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(place)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create place - %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
