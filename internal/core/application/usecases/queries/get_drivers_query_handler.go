package queries

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler reads the driver list straight from the store.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver list queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle returns drivers ordered by registration time, filtered to the
// available ones when the query asks for it.
func (h GetDriversQueryHandler) Handle(ctx context.Context, query GetDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			status,
			current_order_id,
			created_at
		FROM drivers
	`
	args := make([]any, 0, 1)
	if query.AvailableOnly() {
		sql += ` WHERE status = ?`
		args = append(args, string(driver.StatusAvailable))
	}
	sql += ` ORDER BY created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverView, 0)
	for rows.Next() {
		var view DriverView
		var id uuid.UUID
		var currentOrderID uuid.NullUUID

		err = rows.Scan(
			&id,
			&view.Name,
			&view.Phone,
			&view.VehicleType,
			&view.Status,
			&currentOrderID,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if currentOrderID.Valid {
			orderID, idErr := kernel.UUIDFromBytes(currentOrderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.CurrentOrderID = &orderID
		}
		drivers = append(drivers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
