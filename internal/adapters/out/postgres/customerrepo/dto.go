// Package customerrepo maps customer aggregates to their relational
// representation.
package customerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database row for a customer record. The phone column is
// indexed because the order-intake flow deduplicates customers by phone.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string `gorm:"index"`
	Address   string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Address, dto.CreatedAt)
}
