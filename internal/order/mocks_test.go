package order

import (
	"context"
	"time"

	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/mserebryaakov/foodcart-service/internal/geo"
	"github.com/stretchr/testify/mock"
)

type storageMock struct {
	mock.Mock
}

func (m *storageMock) CreateOrder(ctx context.Context, order *Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *storageMock) GetActiveOrders(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]Order)
	return orders, args.Error(1)
}

func (m *storageMock) AssignRestaurant(ctx context.Context, orderID, restaurantID uint, at time.Time) error {
	args := m.Called(ctx, orderID, restaurantID, at)
	return args.Error(0)
}

func (m *storageMock) CompleteOrder(ctx context.Context, orderID uint, at time.Time) error {
	args := m.Called(ctx, orderID, at)
	return args.Error(0)
}

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) GetProductsByIDs(ctx context.Context, ids []uint) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

func (m *catalogMock) GetRestaurantByID(ctx context.Context, id uint) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	restaurant, _ := args.Get(0).(*catalog.Restaurant)
	return restaurant, args.Error(1)
}

type resolverMock struct {
	mock.Mock
}

func (m *resolverMock) Resolve(ctx context.Context, address string) *geo.Coordinate {
	args := m.Called(ctx, address)
	coordinate, _ := args.Get(0).(*geo.Coordinate)
	return coordinate
}

func (m *resolverMock) ResolveMany(ctx context.Context, addresses []string) map[string]*geo.Coordinate {
	args := m.Called(ctx, addresses)
	coordinates, _ := args.Get(0).(map[string]*geo.Coordinate)
	return coordinates
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishOrderRegistered(ctx context.Context, order *Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
