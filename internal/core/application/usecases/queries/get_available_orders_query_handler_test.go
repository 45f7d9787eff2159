package queries_test

import (
	"context"
	"testing"
	"time"

	"logipeek/internal/adapters/out/postgres/orderrepo"
	"logipeek/internal/core/application/usecases/queries"
	"logipeek/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var poolSeededAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// seedOrder inserts one order row directly, bypassing the domain layer.
func seedOrder(db *gorm.DB, status order.Status, createdAt time.Time, mutate func(*orderrepo.OrderDTO)) orderrepo.OrderDTO {
	dto := orderrepo.OrderDTO{
		ID:          uuid.New(),
		OrderNumber: "LP-20260310-" + uuid.NewString()[:8],
		ShipperID:   uuid.New(),
		Pickup: orderrepo.GeoPointDTO{
			Address: "12 Dock Rd",
			Lat:     10.762622,
			Lng:     106.660172,
		},
		Dropoff: orderrepo.GeoPointDTO{
			Address: "88 Market St",
			Lat:     10.823099,
			Lng:     106.629662,
		},
		WeightKg:       120,
		VehicleType:    string(order.VehicleVan),
		Description:    "pallet of tiles",
		EstimatedPrice: 250000,
		PaymentMethod:  string(order.PaymentCash),
		Status:         int(status),
		CreatedAt:      createdAt,
	}
	if status != order.Pending && status != order.Cancelled {
		driverID := uuid.New()
		dto.DriverID = &driverID
		acceptedAt := createdAt.Add(10 * time.Minute)
		dto.AcceptedAt = &acceptedAt
	}
	if mutate != nil {
		mutate(&dto)
	}

	if err := db.Create(&dto).Error; err != nil {
		panic(err)
	}
	return dto
}

type GetAvailableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableOrdersQueryHandler
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailableOrdersQueryHandler(db)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Empty(result)
	suite.NotNil(result)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyPendingOrders() {
	older := seedOrder(suite.db, order.Pending, poolSeededAt, nil)
	newer := seedOrder(suite.db, order.Pending, poolSeededAt.Add(time.Hour), nil)
	seedOrder(suite.db, order.Accepted, poolSeededAt, nil)
	seedOrder(suite.db, order.Completed, poolSeededAt, nil)
	seedOrder(suite.db, order.Cancelled, poolSeededAt, nil)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(older.OrderNumber, result[0].OrderNumber)
	suite.Equal(newer.OrderNumber, result[1].OrderNumber)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	seeded := seedOrder(suite.db, order.Pending, poolSeededAt, nil)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	resp := result[0]
	suite.Equal(seeded.ID.String(), resp.ID.String())
	suite.Equal(seeded.OrderNumber, resp.OrderNumber)
	suite.Equal("12 Dock Rd", resp.PickupAddress)
	suite.Equal("88 Market St", resp.DropoffAddress)
	suite.InDelta(120, resp.WeightKg, 1e-9)
	suite.Equal(string(order.VehicleVan), resp.VehicleType)
	suite.Equal("pallet of tiles", resp.Description)
	suite.Equal(int64(250000), resp.EstimatedPrice)
	suite.Equal(string(order.PaymentCash), resp.PaymentMethod)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_UnconstructedQuery_ReturnsError() {
	var query queries.GetAvailableOrdersQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}

func TestGetAvailableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableOrdersQueryHandlerTestSuite))
}
