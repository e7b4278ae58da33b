package checkout

import (
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one line of the customer's cart
type CartItem struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents a cart submission. Items may span multiple
// farms; checkout splits them into one order per farm.
type CheckoutRequest struct {
	Items           []CartItem `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string     `json:"delivery_address" binding:"required,min=1"`
}

// OrderItemResponse represents a line of a placed order
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse represents a placed order
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerID      uuid.UUID           `json:"customer_id"`
	FarmID          uuid.UUID           `json:"farm_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	DeliveryAddress string              `json:"delivery_address"`
	CreatedAt       time.Time           `json:"created_at"`
}

// CheckoutResponse carries the orders the cart split into, in the order
// the farms first appeared in the cart
type CheckoutResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		}
	}
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		FarmID:          o.FarmID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status.String(),
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
	}
}
