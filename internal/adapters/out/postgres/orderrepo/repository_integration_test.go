package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/catalogrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	sizes      []catalog.Size
	toppings   []catalog.Topping
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.SizeDTO{},
		&catalogrepo.ToppingDTO{},
		&orderrepo.OrderDTO{},
	))
	suite.Require().NoError(db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_single_draft ON orders (status) WHERE status = 1`,
	).Error)

	suite.Require().NoError(catalogrepo.Seed(ctx, db))

	reader := catalogrepo.NewGormCatalogReader(db)
	suite.sizes, err = reader.ListSizes(ctx)
	suite.Require().NoError(err)
	suite.toppings, err = reader.ListToppings(ctx)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsGeneratedID() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[1], nil)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), draft).Once()

	err := suite.repository.Add(ctx, draft)
	suite.Require().NoError(err)
	suite.Positive(draft.ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondDraft_ReportsAlreadyExists() {
	ctx := context.Background()

	first := suite.newDraft(suite.sizes[0], nil)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newDraft(suite.sizes[2], nil)
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_FinalizedAlongsideDraft_Allowed() {
	ctx := context.Background()

	finalized := suite.newDraft(suite.sizes[0], nil)
	suite.Require().NoError(finalized.Finalize(time.Now().UTC()))
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, finalized))

	draft := suite.newDraft(suite.sizes[1], nil)
	suite.Require().NoError(suite.repository.Add(ctx, draft))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsComposition() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[2], suite.toppings[:4])
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	loaded, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)

	suite.Equal(draft.ID(), loaded.ID())
	suite.Equal(order.Draft, loaded.Status())
	suite.Equal(draft.Size().ID(), loaded.Size().ID())
	suite.Len(loaded.Toppings(), 4)
	suite.True(draft.Price().IsEqual(loaded.Price()))
	suite.Equal(draft.Description(), loaded.Description())
	suite.Nil(loaded.FinalizedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 424242)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDraft_ReturnsTheUniqueDraft() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[1], suite.toppings[:1])
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	loaded, err := suite.repository.GetDraft(ctx)
	suite.Require().NoError(err)
	suite.Equal(draft.ID(), loaded.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDraft_NoDraft_ReturnsNotFound() {
	_, err := suite.repository.GetDraft(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesToppings() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[0], suite.toppings[:2])
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	err := draft.SetComposition(suite.sizes[2], suite.toppings[3:6])
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, draft))

	loaded, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)
	suite.Equal(suite.sizes[2].ID(), loaded.Size().ID())

	ids := make([]int, 0, len(loaded.Toppings()))
	for _, topping := range loaded.Toppings() {
		ids = append(ids, topping.ID())
	}
	suite.Equal([]int{4, 5, 6}, ids)
	suite.True(draft.Price().IsEqual(loaded.Price()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsFinalization() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[1], suite.toppings[:1])
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	orderedAt := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	suite.Require().NoError(draft.Finalize(orderedAt))
	suite.Require().NoError(suite.repository.Update(ctx, draft))

	loaded, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Finalized, loaded.Status())
	suite.Require().NotNil(loaded.FinalizedAt())
	suite.True(orderedAt.Equal(*loaded.FinalizedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[0], nil)
	suite.Require().NoError(draft.AssignID(424242))

	err := suite.repository.Update(ctx, draft)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_OrderedByID() {
	ctx := context.Background()

	first := suite.newDraft(suite.sizes[0], nil)
	suite.Require().NoError(first.Finalize(time.Now().UTC()))
	second := suite.newDraft(suite.sizes[1], suite.toppings[:2])
	suite.Require().NoError(second.Finalize(time.Now().UTC()))
	third := suite.newDraft(suite.sizes[2], nil)

	suite.trackAny()
	for _, aggregate := range []*order.Order{first, second, third} {
		suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	for i := range len(all) - 1 {
		suite.Less(all[i].ID(), all[i+1].ID())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[1], suite.toppings[:3])
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	suite.Require().NoError(suite.repository.Delete(ctx, draft.ID()))

	_, err := suite.repository.Get(ctx, draft.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_MissingOrder_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), 424242)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteStaleDrafts_SweepsOnlyOldDrafts() {
	ctx := context.Background()

	finalized := suite.newDraft(suite.sizes[0], nil)
	suite.Require().NoError(finalized.Finalize(time.Now().UTC()))
	draft := suite.newDraft(suite.sizes[1], nil)

	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, finalized))
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	// Age both rows well past any reasonable TTL.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET updated_at = now() - interval '2 days'",
	).Error)

	removed, err := suite.repository.DeleteStaleDrafts(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repository.Get(ctx, draft.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, finalized.ID())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteStaleDrafts_FreshDraftSurvives() {
	ctx := context.Background()
	draft := suite.newDraft(suite.sizes[1], nil)
	suite.trackAny()
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	removed, err := suite.repository.DeleteStaleDrafts(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Zero(removed)

	_, err = suite.repository.GetDraft(ctx)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) newDraft(
	size catalog.Size,
	toppings []catalog.Topping,
) *order.Order {
	draft, err := order.NewOrder(size, toppings)
	suite.Require().NoError(err)
	return draft
}

func (suite *OrderRepositoryIntegrationTestSuite) trackAny() {
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
