package queries

import (
	"context"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the store.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its line items, or ObjectNotFoundError when
// no such order exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	sql := `SELECT ` + orderSelectColumns + ` FROM orders WHERE id = ?`

	orders, err := scanOrderRows(h.db.WithContext(ctx).Raw(sql, query.OrderID().Bytes()))
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err = loadOrderItems(ctx, h.db, orders); err != nil {
		return OrderView{}, err
	}

	return orders[0], nil
}
