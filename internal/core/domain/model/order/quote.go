package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
)

const (
	// BulkDiscountThreshold is the number of distinct toppings above which
	// the bulk discount applies. Strictly greater than: 4 toppings and up.
	BulkDiscountThreshold = 3

	// bulkDiscountMultiplier is applied to the raw total when the bulk
	// discount is triggered (10% off).
	bulkDiscountMultiplier = 0.9
)

// CalculateQuote derives the price and description of a pizza from a size and
// a set of toppings. It is a pure function with no side effects.
//
// Pricing:
//   - raw total = size unit price + sum of topping unit prices
//   - if the number of distinct toppings is strictly greater than
//     BulkDiscountThreshold, the raw total is multiplied by 0.9
//   - the result is rounded to two decimal places, half away from zero
//
// Description:
//   - with no toppings: "{SizeName} pizza."
//   - otherwise: "{SizeName} pizza with {lowercased topping names joined by ', '}."
//
// Topping names appear in the order the toppings are supplied; the caller is
// responsible for a stable, deterministic order so descriptions are reproducible.
//
// Inputs are assumed to be already validated against the catalog; this
// function performs no validation of its own.
func CalculateQuote(size catalog.Size, toppings []catalog.Topping) (kernel.Price, string) {
	total := size.UnitPrice()
	for _, topping := range toppings {
		total = total.Add(topping.UnitPrice())
	}

	if len(toppings) > BulkDiscountThreshold {
		total = total.Scale(decimal.NewFromFloat(bulkDiscountMultiplier))
	}

	return total.Round(), describe(size, toppings)
}

func describe(size catalog.Size, toppings []catalog.Topping) string {
	if len(toppings) == 0 {
		return size.Name() + " pizza."
	}

	names := make([]string, len(toppings))
	for i, topping := range toppings {
		names[i] = strings.ToLower(topping.Name())
	}

	return size.Name() + " pizza with " + strings.Join(names, ", ") + "."
}
