package order

import (
	"context"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FarmSales summarizes a farm's orders within a time window
type FarmSales struct {
	OrderCount     int64
	Revenue        decimal.Decimal
	DistinctBuyers int64
}

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByOrderNumber finds an order by its order number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*Order, error)

	// FindByCustomer finds orders placed by a customer, newest first
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, error)

	// FindByFarm finds orders received by a farm, newest first
	FindByFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order and its items
	Save(ctx context.Context, o *Order) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, o *Order) error

	// CountByCustomer counts orders placed by a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// CountByFarm counts orders received by a farm
	CountByFarm(ctx context.Context, farmID uuid.UUID) (int64, error)

	// SalesForFarm summarizes a farm's non-cancelled orders placed at or
	// after since: order count, revenue, distinct customers
	SalesForFarm(ctx context.Context, farmID uuid.UUID, since time.Time) (*FarmSales, error)

	// GenerateOrderNumber produces the next order number ("MM-YYYY-NNNNN")
	GenerateOrderNumber(ctx context.Context) (string, error)
}
