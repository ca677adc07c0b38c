package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetDraft(_ context.Context) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) DeleteStaleDrafts(_ context.Context, _ time.Time) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func storedDraft(t *testing.T, id int64) *order.Order {
	t.Helper()

	sizePrice, err := kernel.NewPriceFromFloat(10)
	require.NoError(t, err)
	medium, err := catalog.NewSize(2, "Medium", sizePrice)
	require.NoError(t, err)

	draft, err := order.NewOrder(medium, nil)
	require.NoError(t, err)
	require.NoError(t, draft.AssignID(id))

	return draft
}

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFinalizeOrderCommand(7)
	draft := storedDraft(t, 7)
	orderedAt := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(draft, nil).Once(),
		repo.On("Update", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandlerWithClock(factory, func() time.Time { return orderedAt })
	finalized, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Finalized, finalized.Status())
	require.NotNil(t, finalized.FinalizedAt())
	assert.Equal(t, orderedAt, *finalized.FinalizedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_RepeatFinalizeRestamps(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFinalizeOrderCommand(7)
	draft := storedDraft(t, 7)
	firstAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, draft.Finalize(firstAt))
	secondAt := firstAt.Add(45 * time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(draft, nil).Once(),
		repo.On("Update", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandlerWithClock(factory, func() time.Time { return secondAt })
	finalized, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Finalized, finalized.Status())
	require.NotNil(t, finalized.FinalizedAt())
	assert.Equal(t, secondAt, *finalized.FinalizedAt())
}

func TestFinalizeOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FinalizeOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewFinalizeOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestFinalizeOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFinalizeOrderCommand(404)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewFinalizeOrderCommand(7)
	draft := storedDraft(t, 7)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(7)).Return(draft, nil).Once(),
		repo.On("Update", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
