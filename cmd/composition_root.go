package cmd

import (
	"log/slog"
	"time"

	httpadapter "logipeek/internal/adapters/in/http"
	"logipeek/internal/adapters/out/postgres"
	"logipeek/internal/core/application/usecases/commands"
	"logipeek/internal/core/application/usecases/queries"
	"logipeek/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each handler gets a
// unit of work factory narrowed to the repositories it actually touches.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	now        func() time.Time
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, now func() time.Time, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		now:        now,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.trackingUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateMarkInTransitCommandHandler() commands.MarkInTransitCommandHandler {
	return commands.NewMarkInTransitCommandHandler(c.trackingUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.trackingUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.now)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSubmitLicenseCommandHandler() commands.SubmitLicenseCommandHandler {
	return commands.NewSubmitLicenseCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateReviewLicenseCommandHandler() commands.ReviewLicenseCommandHandler {
	return commands.NewReviewLicenseCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePendingOrdersCommandHandler(f, c.config.PendingOrderTTL, c.logger)
}

func (c *CompositionRoot) CreateReopenStaleClaimsCommandHandler() commands.ReopenStaleClaimsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReopenStaleClaimsCommandHandler(f, c.config.PickupTTL, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipperOrdersQueryHandler() queries.GetShipperOrdersQueryHandler {
	return queries.NewGetShipperOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackQueryHandler() queries.GetOrderTrackQueryHandler {
	return queries.NewGetOrderTrackQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverProfileQueryHandler() queries.GetDriverProfileQueryHandler {
	return queries.NewGetDriverProfileQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter with every handler it serves.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.now,
		c.CreateCreateOrderCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateMarkPickedUpCommandHandler(),
		c.CreateMarkInTransitCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateRegisterDriverCommandHandler(),
		c.CreateSubmitLicenseCommandHandler(),
		c.CreateReviewLicenseCommandHandler(),
		c.CreateExpirePendingOrdersCommandHandler(),
		c.CreateReopenStaleClaimsCommandHandler(),
		c.CreateGetAvailableOrdersQueryHandler(),
		c.CreateGetDriverOrdersQueryHandler(),
		c.CreateGetShipperOrdersQueryHandler(),
		c.CreateGetOrderTrackQueryHandler(),
		c.CreateGetDriverProfileQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled maintenance sweeps.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.CreateReopenStaleClaimsCommandHandler(),
		c.now,
		c.config.ExpiredPendingCronSpec,
		c.config.StaleClaimCronSpec,
		c.logger,
	)
}

func (c *CompositionRoot) trackingUoWFactory() commands.TrackingUoWFactory {
	return FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
