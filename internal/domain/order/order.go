package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the delivery status of an order
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusOutForDelivery Status = "out for delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks if the status can move to the target status.
// The chain only moves forward; cancellation is allowed from any
// non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case StatusPending:
		return target == StatusConfirmed
	case StatusConfirmed:
		return target == StatusProcessing
	case StatusProcessing:
		return target == StatusOutForDelivery
	case StatusOutForDelivery:
		return target == StatusDelivered
	}
	return false
}

// Item represents a line in an order. Product name and unit price are
// snapshotted at order time so later catalog edits do not rewrite history.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates a new order line with a price snapshot
func NewItem(orderID, productID uuid.UUID, productName, unit string, quantity int, unitPrice valueobject.Money) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &Item{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   productID,
		ProductName: productName,
		Unit:        unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		LineTotal:   unitPrice.Amount().Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UnitPriceMoney returns the snapshotted unit price as Money
func (i *Item) UnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyINR(i.UnitPrice)
}

// LineTotalMoney returns the line total as Money
func (i *Item) LineTotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(i.LineTotal)
}

// Order represents a customer's order against a single farm.
// A multi-farm cart produces one Order per farm.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	FarmID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items            []Item          `gorm:"foreignKey:OrderID"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Status           Status          `gorm:"type:varchar(30);not null;default:'pending';index"`
	DeliveryAddress  string          `gorm:"type:text;not null"`
	ConfirmedAt      *time.Time
	ProcessingAt     *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order for a single farm
func NewOrder(orderNumber string, customerID, farmID uuid.UUID, deliveryAddress string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if farmID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARM", "Farm ID cannot be empty")
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address cannot be empty")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		FarmID:            farmID,
		Items:             make([]Item, 0),
		TotalAmount:       decimal.Zero,
		Status:            StatusPending,
		DeliveryAddress:   strings.TrimSpace(deliveryAddress),
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// AddItem adds a line to the order. Only allowed while pending.
func (o *Order) AddItem(productID uuid.UUID, productName, unit string, quantity int, unitPrice valueobject.Money) (*Item, error) {
	if o.Status != StatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}

	for _, item := range o.Items {
		if item.ProductID == productID {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT", "Product already exists in order")
		}
	}

	item, err := NewItem(o.ID, productID, productName, unit, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.Touch()

	return item, nil
}

// TransitionTo moves the order along its delivery chain.
// Backward moves and moves out of a terminal state are rejected.
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown order status: %s", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", o.Status, target))
	}

	from := o.Status
	now := time.Now()
	o.Status = target
	o.UpdatedAt = now

	switch target {
	case StatusConfirmed:
		o.ConfirmedAt = &now
	case StatusProcessing:
		o.ProcessingAt = &now
	case StatusOutForDelivery:
		o.OutForDeliveryAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusCancelled:
		o.CancelledAt = &now
		o.AddDomainEvent(NewOrderCancelledEvent(o, from))
		return nil
	}

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from))

	return nil
}

// Cancel cancels the order from any non-terminal state
func (o *Order) Cancel() error {
	return o.TransitionTo(StatusCancelled)
}

// TotalAmountMoney returns the total as Money
func (o *Order) TotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyINR(o.TotalAmount)
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal)
	}
	o.TotalAmount = total
}
