package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"mes/internal/adapters/out/postgres/ledgerrepo"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// LedgerRepositoryIntegrationTestSuite provides integration tests for
// LedgerRepository using PostgreSQL containers to verify append-only
// persistence and balance retrieval.
type LedgerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ledgerrepo.GormLedgerRepository
	tracker    *MockAggregateTracker
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.EntryDTO{}))
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stock_entries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = ledgerrepo.NewGormLedgerRepository(suite.db, suite.tracker)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGetLastEntry_EmptyLedger_ReturnsNil() {
	ctx := context.Background()

	entry, err := suite.repository.GetLastEntry(ctx, kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Nil(entry)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAdd_ThenGetLastEntry_ReturnsRunningBalance() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	first := suite.appendEntry(ctx, productID, stock.TransactionReceipt, "100", nil)
	second := suite.appendEntry(ctx, productID, stock.TransactionIssue, "30", first)

	last, err := suite.repository.GetLastEntry(ctx, productID)
	suite.Require().NoError(err)
	suite.Require().NotNil(last)

	suite.Equal(second.ID(), last.ID())
	suite.Equal("70", last.RunningBalance().Value().String())
	suite.Equal(stock.TransactionIssue, last.Type())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGetLastEntry_ScopedToProduct() {
	ctx := context.Background()
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.appendEntry(ctx, productA, stock.TransactionReceipt, "100", nil)
	entryB := suite.appendEntry(ctx, productB, stock.TransactionReceipt, "5", nil)

	last, err := suite.repository.GetLastEntry(ctx, productB)
	suite.Require().NoError(err)
	suite.Require().NotNil(last)

	suite.Equal(entryB.ID(), last.ID())
	suite.Equal("5", last.RunningBalance().Value().String())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestGetHistory_NewestFirstWithPaging() {
	ctx := context.Background()
	productID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	first := suite.appendEntry(ctx, productID, stock.TransactionReceipt, "10", nil)
	second := suite.appendEntry(ctx, productID, stock.TransactionReceipt, "10", first)
	third := suite.appendEntry(ctx, productID, stock.TransactionIssue, "4", second)

	page, err := suite.repository.GetHistory(ctx, productID, 2, 0)
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal(third.ID(), page[0].ID())
	suite.Equal(second.ID(), page[1].ID())

	rest, err := suite.repository.GetHistory(ctx, productID, 2, 2)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.Equal(first.ID(), rest[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAdd_PreservesReferenceAndActor() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	quantity, err := kernel.NewQuantityFromString("12", pcs(suite.T()))
	suite.Require().NoError(err)
	previousBalance, err := kernel.NewQuantityFromString("50", quantity.Unit())
	suite.Require().NoError(err)

	entry, err := stock.NextEntry(stock.Draft{
		ProductID:     productID,
		Type:          stock.TransactionProductionIssue,
		Quantity:      quantity,
		ReferenceID:   &orderID,
		ReferenceType: "manufacturing_order",
		CreatedBy:     "operator",
	}, previousBalance, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, entry))

	history, err := suite.repository.GetHistory(ctx, productID, 10, 0)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)

	restored := history[0]
	suite.Require().NotNil(restored.ReferenceID())
	suite.Equal(orderID, *restored.ReferenceID())
	suite.Equal("manufacturing_order", restored.ReferenceType())
	suite.Equal("operator", restored.CreatedBy())
	suite.Equal(stock.TransactionProductionIssue, restored.Type())
	suite.tracker.AssertExpectations(suite.T())
}

// appendEntry builds the next ledger entry on top of previous and persists it.
func (suite *LedgerRepositoryIntegrationTestSuite) appendEntry(
	ctx context.Context,
	productID kernel.UUID,
	txType stock.TransactionType,
	value string,
	previous *stock.Entry,
) *stock.Entry {
	unit := pcs(suite.T())
	quantity, err := kernel.NewQuantityFromString(value, unit)
	suite.Require().NoError(err)

	previousBalance := kernel.ZeroQuantity(unit)
	if previous != nil {
		previousBalance = previous.RunningBalance()
	}

	entry, err := stock.NextEntry(stock.Draft{
		ProductID: productID,
		Type:      txType,
		Quantity:  quantity,
		CreatedBy: "storekeeper",
	}, previousBalance, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, entry))
	return entry
}

func pcs(t *testing.T) kernel.UnitOfMeasure {
	t.Helper()
	unit, err := kernel.NewUnitOfMeasure("pcs")
	if err != nil {
		t.Fatal(err)
	}
	return unit
}

func TestLedgerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryIntegrationTestSuite))
}
