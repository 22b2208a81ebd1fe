package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order list, newest first, straight from the
// store.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders with their line items, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + orderSelectColumns + ` FROM orders`
	args := make([]any, 0, 1)
	if query.Status() != "" {
		sql += ` WHERE status = ?`
		args = append(args, query.Status())
	}
	sql += ` ORDER BY created_at DESC`

	orders, err := scanOrderRows(h.db.WithContext(ctx).Raw(sql, args...))
	if err != nil {
		return nil, err
	}

	if err = loadOrderItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
