package catalogrepo

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed inserts the default catalog if it is not present yet. Existing rows
// are left untouched, so repeated startups do not overwrite price changes
// made since the first run.
func Seed(ctx context.Context, db *gorm.DB) error {
	sizes := []SizeDTO{
		{ID: 1, Name: "Small", Price: decimal.NewFromInt(8)},
		{ID: 2, Name: "Medium", Price: decimal.NewFromInt(10)},
		{ID: 3, Name: "Large", Price: decimal.NewFromInt(12)},
	}

	toppings := []ToppingDTO{
		{ID: 1, Name: "Tomato sauce", Price: decimal.NewFromInt(1)},
		{ID: 2, Name: "Cheese", Price: decimal.NewFromInt(1)},
		{ID: 3, Name: "Bacon", Price: decimal.NewFromInt(1)},
		{ID: 4, Name: "Green peppers", Price: decimal.NewFromInt(1)},
		{ID: 5, Name: "Onions", Price: decimal.NewFromInt(1)},
		{ID: 6, Name: "Chicken", Price: decimal.NewFromInt(1)},
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sizes).Error; err != nil {
		return err
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&toppings).Error
}
