package order

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mserebryaakov/foodcart-service/internal/catalog"
	"github.com/nyaruka/phonenumbers"
)

// Column sizes of the orders table.
const (
	maxNameLength    = 50
	maxAddressLength = 250
)

type ProductLine struct {
	Product  uint `json:"product"`
	Quantity int  `json:"quantity"`
}

type RegisterOrderRequest struct {
	Products    []ProductLine `json:"products"`
	Firstname   string        `json:"firstname"`
	Lastname    string        `json:"lastname"`
	Phonenumber string        `json:"phonenumber"`
	Address     string        `json:"address"`
}

type ProductFinder interface {
	GetProductsByIDs(ctx context.Context, ids []uint) ([]catalog.Product, error)
}

type Validator struct {
	products ProductFinder
	region   string
	now      func() time.Time
}

func NewValidator(products ProductFinder, region string) *Validator {
	if region == "" {
		region = "RU"
	}

	return &Validator{
		products: products,
		region:   region,
		now:      time.Now,
	}
}

// Validate turns a submission into an unsaved Order with one item per product line.
// Rejections are AppErrors with status 400; other errors come from the product lookup.
func (v *Validator) Validate(ctx context.Context, req RegisterOrderRequest) (*Order, error) {
	var missing []string
	if len(req.Products) == 0 {
		missing = append(missing, "products")
	}
	if blank(req.Firstname) {
		missing = append(missing, "firstname")
	}
	if blank(req.Lastname) {
		missing = append(missing, "lastname")
	}
	if blank(req.Phonenumber) {
		missing = append(missing, "phonenumber")
	}
	if blank(req.Address) {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return nil, validationError("%s is/are not specified", strings.Join(missing, ", "))
	}

	for _, field := range []struct {
		name  string
		value string
		max   int
	}{
		{"firstname", req.Firstname, maxNameLength},
		{"lastname", req.Lastname, maxNameLength},
		{"address", req.Address, maxAddressLength},
	} {
		if utf8.RuneCountInString(field.value) > field.max {
			return nil, validationError("%s must be at most %d characters", field.name, field.max)
		}
	}

	for _, line := range req.Products {
		if line.Quantity < 1 {
			return nil, validationError("products: quantity of product %d must be at least 1", line.Product)
		}
	}

	ids := make([]uint, 0, len(req.Products))
	for _, line := range req.Products {
		ids = append(ids, line.Product)
	}

	found, err := v.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	prices := make(map[uint]catalog.Product, len(found))
	for _, product := range found {
		prices[product.ID] = product
	}

	for _, line := range req.Products {
		if _, ok := prices[line.Product]; !ok {
			return nil, validationError("products: not allowed the key %d", line.Product)
		}
	}

	phone, err := phonenumbers.Parse(req.Phonenumber, v.region)
	if err != nil || !phonenumbers.IsValidNumber(phone) {
		return nil, validationError("phonenumber %s is not valid", req.Phonenumber)
	}

	order := &Order{
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Phonenumber:   phonenumbers.Format(phone, phonenumbers.E164),
		Address:       req.Address,
		Status:        StatusUnprocessed,
		PaymentOption: PaymentUnknown,
		RegisteredAt:  v.now(),
		Items:         make([]OrderItem, 0, len(req.Products)),
	}

	for _, line := range req.Products {
		order.Items = append(order.Items, OrderItem{
			ProductID: line.Product,
			Quantity:  line.Quantity,
			Price:     prices[line.Product].Price,
		})
	}

	return order, nil
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
