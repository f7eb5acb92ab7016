package order

import (
	"time"

	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Firstname               string              `json:"firstname" gorm:"size:50;not null"`
	Lastname                string              `json:"lastname" gorm:"size:50;not null"`
	Phonenumber             string              `json:"phonenumber" gorm:"size:20;index;not null"`
	Address                 string              `json:"address" gorm:"size:250;index;not null"`
	Status                  Status              `json:"status" gorm:"size:15;index;not null;default:Unprocessed"`
	PaymentOption           PaymentOption       `json:"payment_option" gorm:"size:15;index;not null;default:Unknown"`
	Comment                 string              `json:"comment"`
	RegisteredAt            time.Time           `json:"registered_at" gorm:"index;not null"`
	CalledAt                *time.Time          `json:"called_at" gorm:"index"`
	DeliveredAt             *time.Time          `json:"delivered_at" gorm:"index"`
	ResponsibleRestaurantID *uint               `json:"responsible_restaurant_id"`
	ResponsibleRestaurant   *catalog.Restaurant `json:"-" gorm:"foreignKey:ResponsibleRestaurantID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Items                   []OrderItem         `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// OrderItem keeps the product price at the moment the order was registered.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"order_id" gorm:"index;not null"`
	ProductID uint            `json:"product_id" gorm:"not null"`
	Product   catalog.Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Quantity  int             `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
}

func (o Order) Amount() decimal.Decimal {
	amount := decimal.Zero
	for _, item := range o.Items {
		amount = amount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return amount
}
