package catalogrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetSize retrieves a size by its catalog identifier.
func (r *GormCatalogReader) GetSize(ctx context.Context, id int) (catalog.Size, error) {
	var dto SizeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Size{}, errs.NewObjectNotFoundError("size", id)
		}
		return catalog.Size{}, err
	}

	return dto.ToDomain()
}

// GetTopping retrieves a topping by its catalog identifier.
func (r *GormCatalogReader) GetTopping(ctx context.Context, id int) (catalog.Topping, error) {
	var dto ToppingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Topping{}, errs.NewObjectNotFoundError("topping", id)
		}
		return catalog.Topping{}, err
	}

	return dto.ToDomain()
}

// ListSizes retrieves every size ordered ascending by id, smallest to largest.
func (r *GormCatalogReader) ListSizes(ctx context.Context) ([]catalog.Size, error) {
	var dtos []SizeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	sizes := make([]catalog.Size, 0, len(dtos))
	for _, dto := range dtos {
		size, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}

	return sizes, nil
}

// ListToppings retrieves every topping ordered ascending by id.
func (r *GormCatalogReader) ListToppings(ctx context.Context) ([]catalog.Topping, error) {
	var dtos []ToppingDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	toppings := make([]catalog.Topping, 0, len(dtos))
	for _, dto := range dtos {
		topping, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		toppings = append(toppings, topping)
	}

	return toppings, nil
}
