// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pizzeria/internal/adapters/out/postgres/catalogrepo"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composition references catalog rows: the size via a foreign key and the
// toppings through the order_toppings join table. Price and description are
// stored as computed, so a read returns exactly what was last persisted.
//
// UpdatedAt drives the stale-draft cleanup: a draft untouched past the
// configured TTL gets swept by the background job.
type OrderDTO struct {
	ID          int64                    `gorm:"primaryKey;autoIncrement"`
	Status      int                      `gorm:"index;not null"`
	SizeID      int                      `gorm:"not null"`
	Size        catalogrepo.SizeDTO      `gorm:"foreignKey:SizeID"`
	Toppings    []catalogrepo.ToppingDTO `gorm:"many2many:order_toppings;joinForeignKey:OrderID;joinReferences:ToppingID;constraint:OnDelete:CASCADE"`
	Price       decimal.Decimal          `gorm:"type:numeric(12,2);not null"`
	Description string                   `gorm:"type:varchar(512);not null"`
	FinalizedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	toppings := make([]catalogrepo.ToppingDTO, 0, len(aggregate.Toppings()))
	for _, topping := range aggregate.Toppings() {
		toppings = append(toppings, catalogrepo.NewToppingDTO(topping))
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Status:      int(aggregate.Status()),
		SizeID:      aggregate.Size().ID(),
		Size:        catalogrepo.NewSizeDTO(aggregate.Size()),
		Toppings:    toppings,
		Price:       aggregate.Price().Decimal(),
		Description: aggregate.Description(),
		FinalizedAt: aggregate.FinalizedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including composition and the stored
// derived fields using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	size, err := dto.Size.ToDomain()
	if err != nil {
		return nil, err
	}

	toppings := make([]catalog.Topping, 0, len(dto.Toppings))
	for _, toppingDTO := range dto.Toppings {
		topping, toppingErr := toppingDTO.ToDomain()
		if toppingErr != nil {
			return nil, toppingErr
		}
		toppings = append(toppings, topping)
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		size,
		toppings,
		price,
		dto.Description,
		order.Status(dto.Status),
		dto.FinalizedAt,
	)
}
