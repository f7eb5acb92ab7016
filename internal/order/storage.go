package order

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Storage interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetActiveOrders(ctx context.Context) ([]Order, error)
	AssignRestaurant(ctx context.Context, orderID, restaurantID uint, at time.Time) error
	CompleteOrder(ctx context.Context, orderID uint, at time.Time) error
}

type OrderStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &OrderStorage{
		db: db,
	}
}

// CreateOrder writes the order and its items in one transaction.
func (s *OrderStorage) CreateOrder(ctx context.Context, order *Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items

		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order - %w", err)
		}

		for i := range items {
			items[i].OrderID = order.ID
		}

		if len(items) > 0 {
			if err := tx.Omit("Product").Create(&items).Error; err != nil {
				return fmt.Errorf("failed to create order items - %w", err)
			}
		}

		order.Items = items
		return nil
	})
}

// GetActiveOrders loads unprocessed and in-progress orders with everything the
// restaurant matching needs, unassigned orders first.
func (s *OrderStorage) GetActiveOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := s.db.WithContext(ctx).
		Preload("ResponsibleRestaurant").
		Preload("Items.Product.MenuItems", "availability = ?", true).
		Preload("Items.Product.MenuItems.Restaurant").
		Where("status IN ?", activeStatuses).
		Order("responsible_restaurant_id NULLS FIRST").
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active orders - %w", err)
	}
	return orders, nil
}

func (s *OrderStorage) AssignRestaurant(ctx context.Context, orderID, restaurantID uint, at time.Time) error {
	result := s.db.WithContext(ctx).Model(&Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"responsible_restaurant_id": restaurantID,
		"status":                    StatusInProgress,
		"called_at":                 gorm.Expr("COALESCE(called_at, ?)", at),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errOrderNotFound
	}
	return nil
}

func (s *OrderStorage) CompleteOrder(ctx context.Context, orderID uint, at time.Time) error {
	result := s.db.WithContext(ctx).Model(&Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"status":       StatusCompleted,
		"delivered_at": at,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errOrderNotFound
	}
	return nil
}
