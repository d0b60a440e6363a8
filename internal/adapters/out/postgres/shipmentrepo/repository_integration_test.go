package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite verifies shipment persistence
// against a real PostgreSQL instance.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Vitosha Blvd",
		2.5,
		false,
		kernel.NewUUID(),
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	stored, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(testShipment))
	suite.Equal(shipment.Shipped, stored.Status())
	suite.Equal("12 Vitosha Blvd", stored.DeliveryAddress())
	suite.InDelta(2.5, stored.Weight(), 1e-9)
	suite.Nil(stored.DeliveryDate())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_DeliveredShipment_PersistsDate() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	deliveredAt := time.Date(2026, 8, 3, 15, 30, 0, 0, time.UTC)
	suite.Require().NoError(testShipment.Deliver(deliveredAt))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	stored, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, stored.Status())
	suite.Require().NotNil(stored.DeliveryDate())
	suite.True(stored.DeliveryDate().Equal(deliveredAt))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_OverwriteClearsNothingButMutableFields() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()
	registeredBy := testShipment.RegisteredByID()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	newSender := kernel.NewUUID()
	err := testShipment.Overwrite(
		newSender, kernel.NewUUID(), "9 Graf Ignatiev St", 0, false, shipment.Delivered)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	stored, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(newSender, stored.SenderID())
	suite.InDelta(0, stored.Weight(), 1e-9)
	suite.Equal(shipment.Delivered, stored.Status())
	suite.Nil(stored.DeliveryDate())
	suite.Equal(registeredBy, stored.RegisteredByID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	err := suite.repository.Update(ctx, testShipment)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testShipment))
	suite.Require().NoError(suite.repository.Delete(ctx, testShipment.ID()))

	_, err := suite.repository.Get(ctx, testShipment.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_MissingRow_NoError() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Delete(ctx, kernel.NewUUID()))
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
