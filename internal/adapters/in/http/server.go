// Package http exposes the pizza ordering API over echo.
// Handlers translate between the HTTP surface and application use cases;
// they contain no business rules of their own.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgPizzaNotFound = "The requested pizza was not found."
	msgInvalidJSON   = "The request body contains invalid JSON."
	msgInternalError = "An internal server error occurred."
)

// Use case contracts consumed by the server. Declared here so handlers can
// be exercised in tests without a database behind them.
type (
	getOrCreateDraftHandler interface {
		Handle(ctx context.Context, cmd commands.GetOrCreateDraftCommand) (*order.Order, error)
	}

	setCompositionHandler interface {
		Handle(ctx context.Context, cmd commands.SetCompositionCommand) (*order.Order, error)
	}

	finalizeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.FinalizeOrderCommand) (*order.Order, error)
	}

	deleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	getAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}

	getSizesHandler interface {
		Handle(ctx context.Context, query queries.GetSizesQuery) ([]queries.SizeResponse, error)
	}

	getToppingsHandler interface {
		Handle(ctx context.Context, query queries.GetToppingsQuery) ([]queries.ToppingResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	getOrCreateDraft getOrCreateDraftHandler
	setComposition   setCompositionHandler
	finalizeOrder    finalizeOrderHandler
	deleteOrder      deleteOrderHandler

	getOrder     getOrderHandler
	getAllOrders getAllOrdersHandler
	getSizes     getSizesHandler
	getToppings  getToppingsHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	getOrCreateDraft getOrCreateDraftHandler,
	setComposition setCompositionHandler,
	finalizeOrder finalizeOrderHandler,
	deleteOrder deleteOrderHandler,
	getOrder getOrderHandler,
	getAllOrders getAllOrdersHandler,
	getSizes getSizesHandler,
	getToppings getToppingsHandler,
) *Server {
	return &Server{
		getOrCreateDraft: getOrCreateDraft,
		setComposition:   setComposition,
		finalizeOrder:    finalizeOrder,
		deleteOrder:      deleteOrder,
		getOrder:         getOrder,
		getAllOrders:     getAllOrders,
		getSizes:         getSizes,
		getToppings:      getToppings,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/pizzas", s.GetPizzas)
	api.POST("/pizzas", s.CreatePizza)
	api.GET("/pizzas/draft", s.GetDraft)
	api.GET("/pizzas/:pizzaId", s.GetPizza)
	api.PUT("/pizzas/:pizzaId", s.UpdatePizza)
	api.PUT("/pizzas/:pizzaId/order", s.OrderPizza)
	api.DELETE("/pizzas/:pizzaId", s.DeletePizza)
	api.GET("/sizes", s.GetSizes)
	api.GET("/toppings", s.GetToppings)
}

// GetPizzas handles GET /api/v1/pizzas - retrieves the full order history.
func (s *Server) GetPizzas(ctx echo.Context) error {
	orders, err := s.getAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]PizzaResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, pizzaFromReadModel(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDraft handles GET /api/v1/pizzas/draft - returns the current draft,
// creating one with the default composition if none exists.
func (s *Server) GetDraft(ctx echo.Context) error {
	draft, err := s.getOrCreateDraft.Handle(ctx.Request().Context(), commands.NewGetOrCreateDraftCommand())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaFromDomain(draft))
}

// GetPizza handles GET /api/v1/pizzas/:pizzaId - retrieves one order.
func (s *Server) GetPizza(ctx echo.Context) error {
	pizzaID, err := pizzaIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	query, err := queries.NewGetOrderQuery(pizzaID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	result, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaFromReadModel(result))
}

// CreatePizza handles POST /api/v1/pizzas - obtains the draft and applies
// the requested composition to it in one step.
func (s *Server) CreatePizza(ctx echo.Context) error {
	var request CrupdatePizzaRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidJSON})
	}

	draft, err := s.getOrCreateDraft.Handle(ctx.Request().Context(), commands.NewGetOrCreateDraftCommand())
	if err != nil {
		return s.renderError(ctx, err)
	}

	updated, err := s.applyComposition(ctx, draft.ID(), request)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, pizzaFromDomain(updated))
}

// UpdatePizza handles PUT /api/v1/pizzas/:pizzaId - replaces an order's composition.
func (s *Server) UpdatePizza(ctx echo.Context) error {
	pizzaID, err := pizzaIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	var request CrupdatePizzaRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidJSON})
	}

	updated, err := s.applyComposition(ctx, pizzaID, request)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaFromDomain(updated))
}

// OrderPizza handles PUT /api/v1/pizzas/:pizzaId/order - finalizes an order.
// Repeating the call re-finalizes and re-stamps the order time.
func (s *Server) OrderPizza(ctx echo.Context) error {
	pizzaID, err := pizzaIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	cmd, err := commands.NewFinalizeOrderCommand(pizzaID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	finalized, err := s.finalizeOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pizzaFromDomain(finalized))
}

// DeletePizza handles DELETE /api/v1/pizzas/:pizzaId - removes an order in any state.
func (s *Server) DeletePizza(ctx echo.Context) error {
	pizzaID, err := pizzaIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	cmd, err := commands.NewDeleteOrderCommand(pizzaID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	}

	if err = s.deleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSizes handles GET /api/v1/sizes - retrieves the size catalog.
func (s *Server) GetSizes(ctx echo.Context) error {
	sizes, err := s.getSizes.Handle(ctx.Request().Context(), queries.NewGetSizesQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]SizeResponse, 0, len(sizes))
	for _, size := range sizes {
		response = append(response, sizeFromReadModel(size))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetToppings handles GET /api/v1/toppings - retrieves the topping catalog.
func (s *Server) GetToppings(ctx echo.Context) error {
	toppings, err := s.getToppings.Handle(ctx.Request().Context(), queries.NewGetToppingsQuery())
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]ToppingResponse, 0, len(toppings))
	for _, topping := range toppings {
		response = append(response, toppingFromReadModel(topping))
	}

	return ctx.JSON(http.StatusOK, response)
}

// applyComposition builds and dispatches the composition change command.
func (s *Server) applyComposition(
	ctx echo.Context,
	pizzaID int64,
	request CrupdatePizzaRequest,
) (*order.Order, error) {
	toppingIDs := request.ToppingIDs
	if toppingIDs == nil {
		toppingIDs = []int{}
	}

	cmd, err := commands.NewSetCompositionCommand(pizzaID, request.SizeID, toppingIDs)
	if err != nil {
		return nil, err
	}

	return s.setComposition.Handle(ctx.Request().Context(), cmd)
}

// renderError maps use case failures onto the API's error contract:
// catalog violations become a 422 with one entry per violated rule, missing
// orders a 404, everything else an opaque 500.
func (s *Server) renderError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationFailedError
	switch {
	case errors.As(err, &validationErr):
		violations := make([]ErrorResponse, 0, len(validationErr.Violations))
		for _, violation := range validationErr.Violations {
			violations = append(violations, ErrorResponse{Error: violation})
		}
		return ctx.JSON(http.StatusUnprocessableEntity, violations)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: msgPizzaNotFound})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
	}
}

func pizzaIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("pizzaId"), 10, 64)
}
