// Package catalog contains the read-only reference data of the pizzeria:
// the available pizza sizes and toppings with their current unit prices.
//
// Catalog entries are value objects seeded by an external administration step.
// The core never mutates them; it resolves composition requests against them
// and snapshots them into orders.
package catalog
