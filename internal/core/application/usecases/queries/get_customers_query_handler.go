package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler reads the customer list straight from the store.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle returns all customers ordered by registration time.
func (h GetCustomersQueryHandler) Handle(ctx context.Context, query GetCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			address,
			created_at
		FROM customers
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view CustomerView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Name, &view.Phone, &view.Address, &view.CreatedAt); err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		customers = append(customers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
