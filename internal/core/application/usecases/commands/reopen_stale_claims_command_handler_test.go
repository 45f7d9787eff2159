package commands_test

import (
	"testing"
	"time"

	"logipeek/internal/core/application/usecases/commands"
	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReopenStaleClaimsCommandHandler_Handle_ReopensAndReleasesDriver(t *testing.T) {
	ctx := t.Context()
	asOf := time.Date(2026, time.March, 10, 13, 0, 0, 0, time.UTC)
	cutoff := asOf.Add(-2 * time.Hour)
	shipperID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	stale := newTestOrder(t, shipperID, &driverID, order.Accepted)

	imageURL := "https://cdn.example.com/licenses/abc.jpg"
	approved := true
	profile, err := driver.RestoreProfile(driverID, driver.Busy, 4.5, 10, 1500000, &imageURL, &approved)
	require.NoError(t, err)

	cmd, err := commands.NewReopenStaleClaimsCommand(asOf)
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllAcceptedBefore", mock.Anything, cutoff).
		Return([]*order.Order{stale}, nil).Once()

	itemRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	historyRepo := new(MockHistoryRepository)
	notifier := new(MockNotificationService)
	itemUow := new(MockUoW)
	mock.InOrder(
		itemUow.On("Begin", ctx).Return(nil).Once(),
		itemUow.On("OrderRepository").Return(itemRepo).Once(),
		itemRepo.On("UpdateIfStatus", mock.Anything, stale, order.Accepted).Return(nil).Once(),
		itemUow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driverID).Return(profile, nil).Once(),
		driverRepo.On("Update", mock.Anything, profile).Return(nil).Once(),
		itemUow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.MatchedBy(func(e order.HistoryEntry) bool {
			return e.Status() == order.Pending && e.Note() == "reopened: driver did not pick up within 2h"
		})).Return(nil).Once(),
		itemUow.On("Notifications").Return(notifier).Once(),
		notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Kind == ports.NotificationOrderReopened && n.UserID.IsEqual(shipperID)
		})).Return(nil).Once(),
		notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Kind == ports.NotificationClaimRevoked && n.UserID.IsEqual(driverID)
		})).Return(nil).Once(),
		itemUow.On("Commit", ctx).Return(nil).Once(),
		itemUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(itemUow).Once()

	h := commands.NewReopenStaleClaimsCommandHandler(factory, 2*time.Hour, discardLogger())
	reopened, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened)

	// The order went back to the pool as if freshly posted.
	assert.Equal(t, order.Pending, stale.Status())
	assert.Nil(t, stale.Driver())
	assert.Nil(t, stale.AcceptedAt())

	// The displaced driver is free again with stats untouched.
	assert.Equal(t, driver.Online, profile.Availability())
	assert.Equal(t, 10, profile.TotalTrips())
	assert.Equal(t, int64(1500000), profile.TotalEarnings())

	itemUow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReopenStaleClaimsCommandHandler_Handle_SkipsOrderPickedUpAfterSelection(t *testing.T) {
	ctx := t.Context()
	asOf := time.Date(2026, time.March, 10, 13, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()
	stale := newTestOrder(t, kernel.NewUUID(), &driverID, order.Accepted)

	cmd, err := commands.NewReopenStaleClaimsCommand(asOf)
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllAcceptedBefore", mock.Anything, mock.Anything).
		Return([]*order.Order{stale}, nil).Once()

	// The driver collected the cargo between the selection and this write,
	// so the status guard rejects it. The driver profile is never touched
	// and nothing is committed: the trip continues undisturbed.
	itemRepo := new(MockOrderRepository)
	itemUow := new(MockUoW)
	mock.InOrder(
		itemUow.On("Begin", ctx).Return(nil).Once(),
		itemUow.On("OrderRepository").Return(itemRepo).Once(),
		itemRepo.On("UpdateIfStatus", mock.Anything, stale, order.Accepted).
			Return(order.ErrConcurrentTransition).Once(),
		itemUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(listUow).Once()
	factory.On("Create").Return(itemUow).Once()

	h := commands.NewReopenStaleClaimsCommandHandler(factory, 2*time.Hour, discardLogger())
	reopened, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, reopened)
	itemUow.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReopenStaleClaimsCommandHandler_Handle_EmptyBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReopenStaleClaimsCommand(time.Date(2026, time.March, 10, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listUow := new(MockUoW)
	listUow.On("OrderRepository").Return(listRepo).Once()
	listRepo.On("GetAllAcceptedBefore", mock.Anything, mock.Anything).
		Return([]*order.Order{}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(listUow).Once()

	h := commands.NewReopenStaleClaimsCommandHandler(factory, 2*time.Hour, discardLogger())
	reopened, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, reopened)
}
