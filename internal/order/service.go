package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/mserebryaakov/foodcart-service/internal/geo"
	"github.com/mserebryaakov/foodcart-service/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OrderService interface {
	RegisterOrder(ctx context.Context, req RegisterOrderRequest) (*Order, error)
	GetManagerOrders(ctx context.Context) ([]ManagerOrder, error)
	AssignRestaurant(ctx context.Context, orderID, restaurantID uint) error
	CompleteOrder(ctx context.Context, orderID uint) error
}

type Catalog interface {
	ProductFinder
	GetRestaurantByID(ctx context.Context, id uint) (*catalog.Restaurant, error)
}

type ManagerOrder struct {
	ID                    uint               `json:"id"`
	Status                Status             `json:"status"`
	PaymentOption         PaymentOption      `json:"payment_option"`
	Firstname             string             `json:"firstname"`
	Lastname              string             `json:"lastname"`
	Phonenumber           string             `json:"phonenumber"`
	Address               string             `json:"address"`
	Comment               string             `json:"comment"`
	RegisteredAt          time.Time          `json:"registered_at"`
	CalledAt              *time.Time         `json:"called_at"`
	DeliveredAt           *time.Time         `json:"delivered_at"`
	ResponsibleRestaurant *RankedRestaurant  `json:"responsible_restaurant"`
	Amount                decimal.Decimal    `json:"amount"`
	Restaurants           []RankedRestaurant `json:"restaurants"`
}

type orderService struct {
	storage   Storage
	catalog   Catalog
	validator *Validator
	resolver  geo.Resolver
	publisher EventPublisher
	logger    *logrus.Entry
	now       func() time.Time
}

func NewService(storage Storage, catalogService Catalog, resolver geo.Resolver, publisher EventPublisher, phoneRegion string, log *logrus.Entry) OrderService {
	return &orderService{
		storage:   storage,
		catalog:   catalogService,
		validator: NewValidator(catalogService, phoneRegion),
		resolver:  resolver,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

func (s *orderService) RegisterOrder(ctx context.Context, req RegisterOrderRequest) (*Order, error) {
	order, err := s.validator.Validate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Infof("registered order %d with %d items", order.ID, len(order.Items))

	if err := s.publisher.PublishOrderRegistered(ctx, order); err != nil {
		s.logger.Warnf("failed to publish order %d - %v", order.ID, err)
	}

	return order, nil
}

func (s *orderService) GetManagerOrders(ctx context.Context) ([]ManagerOrder, error) {
	orders, err := s.storage.GetActiveOrders(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([][]catalog.Restaurant, len(orders))
	addresses := make([]string, 0, len(orders))
	for i, order := range orders {
		candidates[i] = MatchableRestaurants(order)
		addresses = append(addresses, order.Address)
		for _, restaurant := range candidates[i] {
			addresses = append(addresses, restaurant.Address)
		}
	}

	coordinates := s.resolver.ResolveMany(ctx, addresses)

	views := make([]ManagerOrder, 0, len(orders))
	for i, order := range orders {
		view := ManagerOrder{
			ID:            order.ID,
			Status:        order.Status,
			PaymentOption: order.PaymentOption,
			Firstname:     order.Firstname,
			Lastname:      order.Lastname,
			Phonenumber:   order.Phonenumber,
			Address:       order.Address,
			Comment:       order.Comment,
			RegisteredAt:  order.RegisteredAt,
			CalledAt:      order.CalledAt,
			DeliveredAt:   order.DeliveredAt,
			Amount:        order.Amount(),
			Restaurants:   Rank(order, candidates[i], coordinates),
		}

		if order.ResponsibleRestaurant != nil {
			view.ResponsibleRestaurant = &RankedRestaurant{
				ID:      order.ResponsibleRestaurant.ID,
				Name:    order.ResponsibleRestaurant.Name,
				Address: order.ResponsibleRestaurant.Address,
			}
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *orderService) AssignRestaurant(ctx context.Context, orderID, restaurantID uint) error {
	if _, err := s.catalog.GetRestaurantByID(ctx, restaurantID); err != nil {
		if errors.Is(err, catalog.ErrRestaurantNotFound) {
			return apperror.NewError(apperror.NotFoundAppError, "restaurant not found", http.StatusNotFound, err)
		}
		return err
	}

	err := s.storage.AssignRestaurant(ctx, orderID, restaurantID, s.now())
	if errors.Is(err, errOrderNotFound) {
		return apperror.NewError(apperror.NotFoundAppError, "order not found", http.StatusNotFound, err)
	}
	if err != nil {
		return err
	}

	s.logger.Infof("order %d assigned to restaurant %d", orderID, restaurantID)
	return nil
}

func (s *orderService) CompleteOrder(ctx context.Context, orderID uint) error {
	err := s.storage.CompleteOrder(ctx, orderID, s.now())
	if errors.Is(err, errOrderNotFound) {
		return apperror.NewError(apperror.NotFoundAppError, "order not found", http.StatusNotFound, err)
	}
	if err != nil {
		return err
	}

	s.logger.Infof("order %d completed", orderID)
	return nil
}
