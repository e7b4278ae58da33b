package catalog

import (
	"fmt"
	"strings"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MilkType represents the category of a dairy product
type MilkType string

const (
	MilkTypeCow            MilkType = "Cow Milk"
	MilkTypeBuffalo        MilkType = "Buffalo Milk"
	MilkTypeOrganicCow     MilkType = "Organic Cow Milk"
	MilkTypeOrganicBuffalo MilkType = "Organic Buffalo Milk"
)

// IsValid checks if the milk type is a known category
func (t MilkType) IsValid() bool {
	switch t {
	case MilkTypeCow, MilkTypeBuffalo, MilkTypeOrganicCow, MilkTypeOrganicBuffalo:
		return true
	}
	return false
}

// String returns the string representation of MilkType
func (t MilkType) String() string {
	return string(t)
}

// DefaultStock is the stock level assigned to a new product when none is given
const DefaultStock = 100

// Product represents a dairy product offered by a farm.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseAggregateRoot
	FarmID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Type        MilkType        `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Unit        string          `gorm:"type:varchar(20);not null"` // e.g. "litre", "kg"
	ImageURL    string          `gorm:"type:text"`
	Stock       int             `gorm:"not null;default:100"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product for a farm
func NewProduct(farmID uuid.UUID, name string, milkType MilkType, description string, price valueobject.Money, unit string) (*Product, error) {
	if farmID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARM", "Farm ID cannot be empty")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !milkType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MILK_TYPE", fmt.Sprintf("Unknown milk type: %s", milkType))
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FarmID:            farmID,
		Name:              strings.TrimSpace(name),
		Type:              milkType,
		Description:       strings.TrimSpace(description),
		Price:             price.Amount(),
		Unit:              unit,
		Stock:             DefaultStock,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// UpdateDetails updates the product display information
func (p *Product) UpdateDetails(name string, milkType MilkType, description, unit string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if !milkType.IsValid() {
		return shared.NewDomainError("INVALID_MILK_TYPE", fmt.Sprintf("Unknown milk type: %s", milkType))
	}
	if err := validateUnit(unit); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Type = milkType
	p.Description = strings.TrimSpace(description)
	p.Unit = unit
	p.Touch()

	return nil
}

// UpdatePrice changes the selling price
func (p *Product) UpdatePrice(price valueobject.Money) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price.Amount()
	p.Touch()
	return nil
}

// SetImageURL sets the product image location
func (p *Product) SetImageURL(url string) {
	p.ImageURL = url
	p.Touch()
}

// SetStock sets the available stock level
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.Touch()
	return nil
}

// InStock reports whether the product can currently be purchased
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Reserve decrements stock for a purchase of the given quantity
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock == 0 {
		return shared.NewDomainError("OUT_OF_STOCK", fmt.Sprintf("Product %s is out of stock", p.Name))
	}
	if quantity > p.Stock {
		return shared.NewDomainError("OUT_OF_STOCK", fmt.Sprintf("Only %d units of %s available", p.Stock, p.Name))
	}
	p.Stock -= quantity
	p.Touch()
	return nil
}

// PriceMoney returns the selling price as Money
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyINR(p.Price)
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price valueobject.Money) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}
	return nil
}

func validateUnit(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
