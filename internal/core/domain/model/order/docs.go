// Package order contains the Order aggregate and its supporting value objects.
//
// An Order is a customizable pizza: a size plus a duplicate-free set of
// toppings. While in Draft status the composition can be changed freely; each
// change recomputes the derived price and description through CalculateQuote.
// Finalizing stamps a finalization time and moves the order into history;
// repeat finalization is accepted and re-stamps the time.
//
// The package enforces the order lifecycle through the Status state machine
// and keeps derived fields consistent with the composition at all times.
package order
