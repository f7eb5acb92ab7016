package catalog

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductCategory struct {
	gorm.Model
	Name string `json:"name" gorm:"size:50;not null"`
}

type Product struct {
	gorm.Model
	Name          string           `json:"name" gorm:"size:50;not null"`
	CategoryID    *uint            `json:"-"`
	Category      *ProductCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(8,2);not null;check:price >= 0"`
	Image         string           `json:"image"`
	SpecialStatus bool             `json:"special_status" gorm:"index;not null;default:false"`
	Description   string           `json:"description" gorm:"size:200"`
	MenuItems     []MenuItem       `json:"-"`
}

type Restaurant struct {
	gorm.Model
	Name         string `json:"name" gorm:"size:50;not null"`
	Address      string `json:"address" gorm:"size:100"`
	ContactPhone string `json:"contact_phone" gorm:"size:50"`
}

// MenuItem says whether a restaurant currently offers a product.
type MenuItem struct {
	gorm.Model
	RestaurantID uint       `json:"restaurant_id" gorm:"uniqueIndex:idx_menu_item_restaurant_product;not null"`
	Restaurant   Restaurant `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProductID    uint       `json:"product_id" gorm:"uniqueIndex:idx_menu_item_restaurant_product;not null"`
	Product      Product    `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Availability bool       `json:"availability" gorm:"index;not null;default:true"`
}
