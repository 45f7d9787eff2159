// Package http exposes the order lifecycle engine over a JSON REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"logipeek/internal/core/application/usecases/commands"
	"logipeek/internal/core/application/usecases/queries"
	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order lifecycle engine.
type Server struct {
	now func() time.Time

	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	claimOrderHandler     commands.ClaimOrderCommandHandler
	markPickedUpHandler   commands.MarkPickedUpCommandHandler
	markInTransitHandler  commands.MarkInTransitCommandHandler
	markDeliveredHandler  commands.MarkDeliveredCommandHandler
	confirmHandler        commands.ConfirmDeliveryCommandHandler
	registerDriverHandler commands.RegisterDriverCommandHandler
	submitLicenseHandler  commands.SubmitLicenseCommandHandler
	reviewLicenseHandler  commands.ReviewLicenseCommandHandler
	expirePendingHandler  commands.ExpirePendingOrdersCommandHandler
	reopenStaleHandler    commands.ReopenStaleClaimsCommandHandler

	// Query handlers
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler
	driverOrdersHandler    queries.GetDriverOrdersQueryHandler
	shipperOrdersHandler   queries.GetShipperOrdersQueryHandler
	orderTrackHandler      queries.GetOrderTrackQueryHandler
	driverProfileHandler   queries.GetDriverProfileQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	now func() time.Time,
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	markInTransitHandler commands.MarkInTransitCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	confirmHandler commands.ConfirmDeliveryCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	submitLicenseHandler commands.SubmitLicenseCommandHandler,
	reviewLicenseHandler commands.ReviewLicenseCommandHandler,
	expirePendingHandler commands.ExpirePendingOrdersCommandHandler,
	reopenStaleHandler commands.ReopenStaleClaimsCommandHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	driverOrdersHandler queries.GetDriverOrdersQueryHandler,
	shipperOrdersHandler queries.GetShipperOrdersQueryHandler,
	orderTrackHandler queries.GetOrderTrackQueryHandler,
	driverProfileHandler queries.GetDriverProfileQueryHandler,
) *Server {
	return &Server{
		now:                    now,
		createOrderHandler:     createOrderHandler,
		claimOrderHandler:      claimOrderHandler,
		markPickedUpHandler:    markPickedUpHandler,
		markInTransitHandler:   markInTransitHandler,
		markDeliveredHandler:   markDeliveredHandler,
		confirmHandler:         confirmHandler,
		registerDriverHandler:  registerDriverHandler,
		submitLicenseHandler:   submitLicenseHandler,
		reviewLicenseHandler:   reviewLicenseHandler,
		expirePendingHandler:   expirePendingHandler,
		reopenStaleHandler:     reopenStaleHandler,
		availableOrdersHandler: availableOrdersHandler,
		driverOrdersHandler:    driverOrdersHandler,
		shipperOrdersHandler:   shipperOrdersHandler,
		orderTrackHandler:      orderTrackHandler,
		driverProfileHandler:   driverProfileHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/:id/track", s.GetOrderTrack)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/pickup", s.MarkPickedUp)
	api.POST("/orders/:id/transit", s.MarkInTransit)
	api.POST("/orders/:id/delivered", s.MarkDelivered)
	api.POST("/orders/:id/confirm", s.ConfirmDelivery)

	api.GET("/shippers/:id/orders", s.GetShipperOrders)

	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers/:id", s.GetDriverProfile)
	api.GET("/drivers/:id/orders", s.GetDriverOrders)
	api.POST("/drivers/:id/license", s.SubmitLicense)
	api.POST("/drivers/:id/license/review", s.ReviewLicense)

	api.POST("/sweeps/expired-pending", s.RunExpirePendingSweep)
	api.POST("/sweeps/stale-claims", s.RunStaleClaimSweep)

	e.GET("/health", s.Health)
}

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPointRequest is a route endpoint in a request body.
type GeoPointRequest struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ShipperID      string          `json:"shipper_id"`
	Pickup         GeoPointRequest `json:"pickup"`
	Dropoff        GeoPointRequest `json:"dropoff"`
	WeightKg       float64         `json:"weight_kg"`
	VehicleType    string          `json:"vehicle_type"`
	Description    string          `json:"description"`
	EstimatedPrice int64           `json:"estimated_price"`
	PaymentMethod  string          `json:"payment_method"`
}

// DriverActionRequest identifies the driver acting on an order.
type DriverActionRequest struct {
	DriverID string `json:"driver_id"`
}

// ConfirmDeliveryRequest is the body of POST /orders/:id/confirm.
type ConfirmDeliveryRequest struct {
	ShipperID string `json:"shipper_id"`
	Rating    *int   `json:"rating,omitempty"`
}

// SubmitLicenseRequest is the body of POST /drivers/:id/license.
type SubmitLicenseRequest struct {
	ImageURL string `json:"image_url"`
}

// ReviewLicenseRequest is the body of POST /drivers/:id/license/review.
type ReviewLicenseRequest struct {
	Approved bool `json:"approved"`
}

// OrderResponse is the full order representation returned by write endpoints.
type OrderResponse struct {
	ID             string     `json:"id"`
	OrderNumber    string     `json:"order_number"`
	ShipperID      string     `json:"shipper_id"`
	DriverID       *string    `json:"driver_id,omitempty"`
	PickupAddress  string     `json:"pickup_address"`
	DropoffAddress string     `json:"dropoff_address"`
	WeightKg       float64    `json:"weight_kg"`
	VehicleType    string     `json:"vehicle_type"`
	Description    string     `json:"description"`
	EstimatedPrice int64      `json:"estimated_price"`
	FinalPrice     *int64     `json:"final_price,omitempty"`
	PaymentMethod  string     `json:"payment_method"`
	Rating         *int       `json:"rating,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// DriverProfileResponse is the driver representation returned by write endpoints.
type DriverProfileResponse struct {
	ID            string  `json:"id"`
	Availability  string  `json:"availability"`
	Rating        float64 `json:"rating"`
	TotalTrips    int     `json:"total_trips"`
	TotalEarnings int64   `json:"total_earnings"`
	HasLicense    bool    `json:"has_license"`
	Approved      *bool   `json:"license_approved,omitempty"`
}

// SweepResponse reports how many orders a maintenance sweep touched.
type SweepResponse struct {
	Processed int `json:"processed"`
}

func orderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:             o.ID().String(),
		OrderNumber:    o.OrderNumber(),
		ShipperID:      o.Shipper().String(),
		PickupAddress:  o.Pickup().Address(),
		DropoffAddress: o.Dropoff().Address(),
		WeightKg:       o.WeightKg(),
		VehicleType:    string(o.VehicleType()),
		Description:    o.Description(),
		EstimatedPrice: o.EstimatedPrice(),
		FinalPrice:     o.FinalPrice(),
		PaymentMethod:  string(o.PaymentMethod()),
		Rating:         o.Rating(),
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
		AcceptedAt:     o.AcceptedAt(),
		DeliveredAt:    o.DeliveredAt(),
		CompletedAt:    o.CompletedAt(),
	}
	if d := o.Driver(); d != nil {
		id := d.String()
		resp.DriverID = &id
	}
	return resp
}

func driverProfileResponse(p *driver.Profile) DriverProfileResponse {
	return DriverProfileResponse{
		ID:            p.ID().String(),
		Availability:  p.Availability().String(),
		Rating:        p.Rating(),
		TotalTrips:    p.TotalTrips(),
		TotalEarnings: p.TotalEarnings(),
		HasLicense:    p.LicenseImageURL() != nil,
		Approved:      p.LicenseApproved(),
	}
}

// errorResponse maps a use case error to an HTTP status and JSON body.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, driver.ErrNoLicenseImage),
		errors.Is(err, driver.ErrLicensePendingReview),
		errors.Is(err, driver.ErrLicenseRejected):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - a shipper posts a new shipment.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	shipperID, err := parseUUID(req.ShipperID)
	if err != nil {
		return badRequest(ctx, "invalid shipper_id")
	}

	pickup, err := kernel.NewGeoPoint(req.Pickup.Address, req.Pickup.Lat, req.Pickup.Lng)
	if err != nil {
		return errorResponse(ctx, err)
	}
	dropoff, err := kernel.NewGeoPoint(req.Dropoff.Address, req.Dropoff.Lat, req.Dropoff.Lng)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		shipperID,
		pickup,
		dropoff,
		req.WeightKg,
		order.VehicleType(req.VehicleType),
		req.Description,
		req.EstimatedPrice,
		order.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - a driver claims a
// pending order. Exactly one of several concurrent claimers wins; the rest
// receive 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req DriverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	driverID, err := parseUUID(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(claimed))
}

// MarkPickedUp handles POST /api/v1/orders/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	return s.driverProgress(ctx, func(orderID, driverID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewMarkPickedUpCommand(orderID, driverID)
		if err != nil {
			return nil, err
		}
		return s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkInTransit handles POST /api/v1/orders/:id/transit.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	return s.driverProgress(ctx, func(orderID, driverID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewMarkInTransitCommand(orderID, driverID)
		if err != nil {
			return nil, err
		}
		return s.markInTransitHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	return s.driverProgress(ctx, func(orderID, driverID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewMarkDeliveredCommand(orderID, driverID)
		if err != nil {
			return nil, err
		}
		return s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// driverProgress binds the shared request shape of the three driver progress
// endpoints and maps the outcome.
func (s *Server) driverProgress(
	ctx echo.Context,
	run func(orderID, driverID kernel.UUID) (*order.Order, error),
) error {
	orderID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req DriverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	driverID, err := parseUUID(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver_id")
	}

	updated, err := run(orderID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm - the shipper
// verifies the delivery and optionally scores the driver.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	shipperID, err := parseUUID(req.ShipperID)
	if err != nil {
		return badRequest(ctx, "invalid shipper_id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, shipperID, req.Rating)
	if err != nil {
		return errorResponse(ctx, err)
	}

	completed, err := s.confirmHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(completed))
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	available, err := s.availableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, available)
}

// GetOrderTrack handles GET /api/v1/orders/:id/track.
func (s *Server) GetOrderTrack(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderTrackQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	track, err := s.orderTrackHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, track)
}

// GetShipperOrders handles GET /api/v1/shippers/:id/orders.
func (s *Server) GetShipperOrders(ctx echo.Context) error {
	shipperID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid shipper id")
	}

	query, err := queries.NewGetShipperOrdersQuery(shipperID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.shipperOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// RegisterDriver handles POST /api/v1/drivers - creates a fresh driver profile.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	cmd, err := commands.NewRegisterDriverCommand(kernel.NewUUID())
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverProfileResponse(profile))
}

// GetDriverProfile handles GET /api/v1/drivers/:id.
func (s *Server) GetDriverProfile(ctx echo.Context) error {
	driverID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	query, err := queries.NewGetDriverProfileQuery(driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.driverProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

// GetDriverOrders handles GET /api/v1/drivers/:id/orders?scope=active|completed.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	driverID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	scope := queries.DriverOrdersScope(ctx.QueryParam("scope"))
	if scope == "" {
		scope = queries.DriverOrdersActive
	}

	query, err := queries.NewGetDriverOrdersQuery(driverID, scope)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.driverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// SubmitLicense handles POST /api/v1/drivers/:id/license.
func (s *Server) SubmitLicense(ctx echo.Context) error {
	driverID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	var req SubmitLicenseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSubmitLicenseCommand(driverID, req.ImageURL)
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.submitLicenseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverProfileResponse(profile))
}

// ReviewLicense handles POST /api/v1/drivers/:id/license/review.
func (s *Server) ReviewLicense(ctx echo.Context) error {
	driverID, err := parseUUID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	var req ReviewLicenseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReviewLicenseCommand(driverID, req.Approved)
	if err != nil {
		return errorResponse(ctx, err)
	}

	profile, err := s.reviewLicenseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverProfileResponse(profile))
}

// RunExpirePendingSweep handles POST /api/v1/sweeps/expired-pending.
// Runs the same sweep the scheduler triggers hourly; useful for operations
// and testing.
func (s *Server) RunExpirePendingSweep(ctx echo.Context) error {
	cmd, err := commands.NewExpirePendingOrdersCommand(s.now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	processed, err := s.expirePendingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SweepResponse{Processed: processed})
}

// RunStaleClaimSweep handles POST /api/v1/sweeps/stale-claims.
func (s *Server) RunStaleClaimSweep(ctx echo.Context) error {
	cmd, err := commands.NewReopenStaleClaimsCommand(s.now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	processed, err := s.reopenStaleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SweepResponse{Processed: processed})
}
