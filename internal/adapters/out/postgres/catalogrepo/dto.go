// Package catalogrepo provides data transfer objects and read access for the
// reference catalog of pizza sizes and toppings. The catalog is seeded at
// startup and read-only afterwards, so the package exposes a reader rather
// than a full repository.
package catalogrepo

import (
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// SizeDTO represents the database structure for persisting catalog sizes.
type SizeDTO struct {
	ID    int             `gorm:"primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for size entities.
// Overrides GORM's default naming convention to use "sizes" instead of "size_dtos".
func (SizeDTO) TableName() string {
	return "sizes"
}

// ToppingDTO represents the database structure for persisting catalog toppings.
type ToppingDTO struct {
	ID    int             `gorm:"primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for topping entities.
// Overrides GORM's default naming convention to use "toppings" instead of "topping_dtos".
func (ToppingDTO) TableName() string {
	return "toppings"
}

// NewSizeDTO converts a size value object to its database representation.
// Exported because the order persistence package embeds catalog rows in its DTOs.
func NewSizeDTO(size catalog.Size) SizeDTO {
	return SizeDTO{
		ID:    size.ID(),
		Name:  size.Name(),
		Price: size.UnitPrice().Decimal(),
	}
}

// ToDomain converts a size DTO to its domain value object.
func (dto SizeDTO) ToDomain() (catalog.Size, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return catalog.Size{}, err
	}

	return catalog.NewSize(dto.ID, dto.Name, price)
}

// NewToppingDTO converts a topping value object to its database representation.
func NewToppingDTO(topping catalog.Topping) ToppingDTO {
	return ToppingDTO{
		ID:    topping.ID(),
		Name:  topping.Name(),
		Price: topping.UnitPrice().Decimal(),
	}
}

// ToDomain converts a topping DTO to its domain value object.
func (dto ToppingDTO) ToDomain() (catalog.Topping, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return catalog.Topping{}, err
	}

	return catalog.NewTopping(dto.ID, dto.Name, price)
}
