package quotationrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "writedesk/internal/adapters/out/postgres"
	"writedesk/internal/adapters/out/postgres/quotationrepo"
	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QuotationRepositoryIntegrationTestSuite provides integration tests for
// GormQuotationRepository using PostgreSQL containers, centered on the
// one-quotation-per-order constraint.
type QuotationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *quotationrepo.GormQuotationRepository
}

func (suite *QuotationRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *QuotationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE quotations").Error)

	suite.repository = quotationrepo.NewGormQuotationRepository(suite.db)
}

func (suite *QuotationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QuotationRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	quotation := suite.createQuotation(orderID, "first draft within a week")
	suite.Require().NoError(suite.repository.Add(ctx, quotation))

	retrieved, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.True(quotation.ID().IsEqual(retrieved.ID()))
	suite.True(orderID.IsEqual(retrieved.OrderID()))
	suite.Equal(int64(60000), retrieved.BasePrice().Cents())
	suite.Equal(int64(6000), retrieved.Discount().Cents())
	suite.Equal(int64(9000), retrieved.UrgencyCharge().Cents())
	suite.Equal(int64(3000), retrieved.Tax().Cents())
	suite.Equal(int64(66000), retrieved.FinalPrice().Cents())
	suite.Equal("first draft within a week", retrieved.Notes())
	suite.Equal(1, retrieved.Version())
}

func (suite *QuotationRepositoryIntegrationTestSuite) TestAdd_SecondQuotationForOrderConflicts() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createQuotation(orderID, "")))

	err := suite.repository.Add(ctx, suite.createQuotation(orderID, "racing duplicate"))
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *QuotationRepositoryIntegrationTestSuite) TestGetByOrder_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByOrder(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QuotationRepositoryIntegrationTestSuite) TestUpdate_ReviseBumpsVersion() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	quotation := suite.createQuotation(orderID, "")
	suite.Require().NoError(suite.repository.Add(ctx, quotation))

	suite.Require().NoError(quotation.Revise(
		money(suite.T(), 80000),
		money(suite.T(), 20000),
		kernel.ZeroMoney(),
		money(suite.T(), 4000),
		nil,
		"discount extended after negotiation",
	))
	suite.Require().NoError(suite.repository.Update(ctx, quotation))

	retrieved, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(int64(80000), retrieved.BasePrice().Cents())
	suite.Equal(int64(64000), retrieved.FinalPrice().Cents())
	suite.Equal("discount extended after negotiation", retrieved.Notes())
	suite.Equal(2, retrieved.Version())
}

func (suite *QuotationRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	quotation := suite.createQuotation(orderID, "")
	suite.Require().NoError(suite.repository.Add(ctx, quotation))

	firstCopy, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.Revise(
		money(suite.T(), 70000), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), nil, ""))
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	suite.Require().NoError(secondCopy.Revise(
		money(suite.T(), 50000), kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), nil, ""))
	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

// createQuotation creates a quotation with a derived final price of 660.00.
func (suite *QuotationRepositoryIntegrationTestSuite) createQuotation(orderID kernel.UUID, notes string) *billing.Quotation {
	quotation, err := billing.NewQuotation(
		kernel.NewUUID(),
		orderID,
		money(suite.T(), 60000),
		money(suite.T(), 6000),
		money(suite.T(), 9000),
		money(suite.T(), 3000),
		nil,
		notes,
	)
	suite.Require().NoError(err)
	return quotation
}

func money(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestQuotationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationRepositoryIntegrationTestSuite))
}
