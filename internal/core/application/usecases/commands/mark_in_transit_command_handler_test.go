package commands_test

import (
	"testing"
	"time"

	"logipeek/internal/core/application/usecases/commands"
	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/core/domain/model/order"
	"logipeek/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkInTransitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	shipperID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	aggregate := newTestOrder(t, shipperID, &driverID, order.Pickup)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewMarkInTransitCommand(aggregate.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	notifier := new(MockNotificationService)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("order.HistoryEntry")).Return(nil).Once(),
		uow.On("Notifications").Return(notifier).Once(),
		notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Kind == ports.NotificationOrderInTransit && n.UserID.IsEqual(shipperID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkInTransitCommandHandler(factory, func() time.Time { return now })
	moving, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Transit, moving.Status())
	require.NotNil(t, moving.TransitAt())
	assert.Equal(t, now, *moving.TransitAt())
	uow.AssertExpectations(t)
}

func TestMarkInTransitCommandHandler_Handle_NotPickedUpYet(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := newTestOrder(t, kernel.NewUUID(), &driverID, order.Accepted)

	cmd, err := commands.NewMarkInTransitCommand(aggregate.ID(), driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkInTransitCommandHandler(factory, time.Now)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}
