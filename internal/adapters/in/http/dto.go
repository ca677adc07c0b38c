package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
)

// PizzaResponse is the outbound representation of a pizza order.
// OrderedAt is omitted while the order is still a draft.
type PizzaResponse struct {
	PizzaID     int64             `json:"pizzaId"`
	Description string            `json:"description"`
	OrderPrice  float64           `json:"orderPrice"`
	OrderedAt   *time.Time        `json:"orderedAt,omitempty"`
	Size        SizeResponse      `json:"size"`
	Toppings    []ToppingResponse `json:"toppings"`
}

// SizeResponse is the outbound representation of a catalog size.
type SizeResponse struct {
	SizeID       int     `json:"sizeId"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"currentPrice"`
}

// ToppingResponse is the outbound representation of a catalog topping.
type ToppingResponse struct {
	ToppingID    int     `json:"toppingId"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"currentPrice"`
}

// CrupdatePizzaRequest carries the requested composition for creating or
// updating a pizza. ToppingIDs may be empty or omitted for a plain pizza.
type CrupdatePizzaRequest struct {
	SizeID     int   `json:"sizeId"`
	ToppingIDs []int `json:"toppingIds"`
}

// ErrorResponse is the uniform error payload. Validation failures return an
// array of these, one per violated rule.
type ErrorResponse struct {
	Error string `json:"error"`
}

// pizzaFromDomain maps an order aggregate to its outbound representation.
// Command flows return aggregates, so no re-read is needed for the response.
func pizzaFromDomain(aggregate *order.Order) PizzaResponse {
	toppings := make([]ToppingResponse, 0, len(aggregate.Toppings()))
	for _, topping := range aggregate.Toppings() {
		toppings = append(toppings, ToppingResponse{
			ToppingID:    topping.ID(),
			Name:         topping.Name(),
			CurrentPrice: topping.UnitPrice().Float64(),
		})
	}

	return PizzaResponse{
		PizzaID:     aggregate.ID(),
		Description: aggregate.Description(),
		OrderPrice:  aggregate.Price().Float64(),
		OrderedAt:   aggregate.FinalizedAt(),
		Size: SizeResponse{
			SizeID:       aggregate.Size().ID(),
			Name:         aggregate.Size().Name(),
			CurrentPrice: aggregate.Size().UnitPrice().Float64(),
		},
		Toppings: toppings,
	}
}

// pizzaFromReadModel maps a query read model to the outbound representation.
func pizzaFromReadModel(model queries.OrderResponse) PizzaResponse {
	toppings := make([]ToppingResponse, 0, len(model.Toppings))
	for _, topping := range model.Toppings {
		toppings = append(toppings, toppingFromReadModel(topping))
	}

	return PizzaResponse{
		PizzaID:     model.ID,
		Description: model.Description,
		OrderPrice:  model.Price.InexactFloat64(),
		OrderedAt:   model.OrderedAt,
		Size:        sizeFromReadModel(model.Size),
		Toppings:    toppings,
	}
}

func sizeFromReadModel(model queries.SizeResponse) SizeResponse {
	return SizeResponse{
		SizeID:       model.ID,
		Name:         model.Name,
		CurrentPrice: model.Price.InexactFloat64(),
	}
}

func toppingFromReadModel(model queries.ToppingResponse) ToppingResponse {
	return ToppingResponse{
		ToppingID:    model.ID,
		Name:         model.Name,
		CurrentPrice: model.Price.InexactFloat64(),
	}
}
