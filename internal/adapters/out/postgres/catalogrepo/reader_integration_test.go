package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/catalogrepo"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogReaderIntegrationTestSuite verifies catalog seeding and read access
// against a real PostgreSQL instance.
type CatalogReaderIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	reader    *catalogrepo.GormCatalogReader
}

func (suite *CatalogReaderIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.SizeDTO{}, &catalogrepo.ToppingDTO{}))
	suite.Require().NoError(catalogrepo.Seed(ctx, db))

	suite.reader = catalogrepo.NewGormCatalogReader(db)
}

func (suite *CatalogReaderIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogReaderIntegrationTestSuite) TestSeed_IsIdempotent() {
	ctx := context.Background()

	// Simulate an operator price change surviving a restart.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE sizes SET price = 9.50 WHERE id = 1",
	).Error)

	suite.Require().NoError(catalogrepo.Seed(ctx, suite.db))

	size, err := suite.reader.GetSize(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("9.50", size.UnitPrice().String())

	// Restore the default for the remaining tests.
	suite.Require().NoError(suite.db.Exec(
		"UPDATE sizes SET price = 8 WHERE id = 1",
	).Error)
}

func (suite *CatalogReaderIntegrationTestSuite) TestListSizes_SmallestToLargest() {
	sizes, err := suite.reader.ListSizes(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(sizes, 3)

	suite.Equal("Small", sizes[0].Name())
	suite.Equal("Medium", sizes[1].Name())
	suite.Equal("Large", sizes[2].Name())
	suite.Equal("8.00", sizes[0].UnitPrice().String())
	suite.Equal("10.00", sizes[1].UnitPrice().String())
	suite.Equal("12.00", sizes[2].UnitPrice().String())
}

func (suite *CatalogReaderIntegrationTestSuite) TestListToppings_OrderedByID() {
	toppings, err := suite.reader.ListToppings(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(toppings, 6)

	names := make([]string, 0, len(toppings))
	for _, topping := range toppings {
		names = append(names, topping.Name())
		suite.Equal("1.00", topping.UnitPrice().String())
	}
	suite.Equal(
		[]string{"Tomato sauce", "Cheese", "Bacon", "Green peppers", "Onions", "Chicken"},
		names,
	)
}

func (suite *CatalogReaderIntegrationTestSuite) TestGetSize_Found() {
	size, err := suite.reader.GetSize(context.Background(), 2)
	suite.Require().NoError(err)
	suite.Equal("Medium", size.Name())
}

func (suite *CatalogReaderIntegrationTestSuite) TestGetSize_NotFound() {
	_, err := suite.reader.GetSize(context.Background(), 99)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogReaderIntegrationTestSuite) TestGetTopping_Found() {
	topping, err := suite.reader.GetTopping(context.Background(), 3)
	suite.Require().NoError(err)
	suite.Equal("Bacon", topping.Name())
}

func (suite *CatalogReaderIntegrationTestSuite) TestGetTopping_NotFound() {
	_, err := suite.reader.GetTopping(context.Background(), 99)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCatalogReaderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogReaderIntegrationTestSuite))
}
