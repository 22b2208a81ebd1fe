package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem("Margherita", 2, 6.50, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Jamie Smith",
		"+15550100",
		"12 Hill Road",
		kernel.NewUUID(),
		"Luigi's",
		[]order.Item{item},
		"",
	)
	require.NoError(t, err)
	return o
}

func newAvailableDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), "Alex Kim", "+15550199", "bike")
	require.NoError(t, err)
	return d
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	availableDriver := newAvailableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(pendingOrder.ID(), availableDriver.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockDriverRepo := new(MockDriverRepository)
	mockUoW := new(MockAssignmentUoW)
	mockFactory := new(MockAssignmentUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("DriverRepository").Return(mockDriverRepo).Once()
	mockDriverRepo.On("Get", ctx, availableDriver.ID()).Return(availableDriver, nil).Once()
	mockOrderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once()
	mockOrderRepo.On("UpdateIfStatus", ctx, pendingOrder, order.StatusPending).Return(nil).Once()
	mockDriverRepo.On("Update", ctx, availableDriver).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockPublisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	handler := commands.NewAssignDriverCommandHandler(mockFactory, mockPublisher)

	// When
	err = handler.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, pendingOrder.Status())
	require.NotNil(t, pendingOrder.DriverID())
	assert.True(t, pendingOrder.DriverID().IsEqual(availableDriver.ID()))
	assert.Equal(t, availableDriver.Name(), pendingOrder.DriverName())
	assert.NotNil(t, pendingOrder.AssignedAt())

	assert.Equal(t, driver.StatusBusy, availableDriver.Status())
	require.NotNil(t, availableDriver.CurrentOrderID())
	assert.True(t, availableDriver.CurrentOrderID().IsEqual(pendingOrder.ID()))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockDriverRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_DriverNotFound(t *testing.T) {
	// Given
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(pendingOrder.ID(), driverID)
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockDriverRepo := new(MockDriverRepository)
	mockUoW := new(MockAssignmentUoW)
	mockFactory := new(MockAssignmentUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("DriverRepository").Return(mockDriverRepo).Once()
	mockDriverRepo.On("Get", ctx, driverID).
		Return(nil, errs.NewObjectNotFoundError("driver", driverID.String())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAssignDriverCommandHandler(mockFactory, mockPublisher)

	// When
	err = handler.Handle(ctx, cmd)

	// Then
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockPublisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_OrderMissingIsConflict(t *testing.T) {
	// Given: an absent order must surface as a conflict, indistinguishable
	// from an order that was already assigned.
	ctx := t.Context()
	availableDriver := newAvailableDriver(t)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand(orderID, availableDriver.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockDriverRepo := new(MockDriverRepository)
	mockUoW := new(MockAssignmentUoW)
	mockFactory := new(MockAssignmentUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("DriverRepository").Return(mockDriverRepo).Once()
	mockDriverRepo.On("Get", ctx, availableDriver.ID()).Return(availableDriver, nil).Once()
	mockOrderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAssignDriverCommandHandler(mockFactory, mockPublisher)

	// When
	err = handler.Handle(ctx, cmd)

	// Then
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectConflict)
	mockUoW.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_AlreadyAssignedIsConflict(t *testing.T) {
	// Given: the order was assigned between the read and this request.
	ctx := t.Context()
	assignedOrder := newPendingOrder(t)
	require.NoError(t, assignedOrder.Assign(kernel.NewUUID(), "Somebody Else", assignedOrder.CreatedAt()))
	availableDriver := newAvailableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(assignedOrder.ID(), availableDriver.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockDriverRepo := new(MockDriverRepository)
	mockUoW := new(MockAssignmentUoW)
	mockFactory := new(MockAssignmentUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("DriverRepository").Return(mockDriverRepo).Once()
	mockDriverRepo.On("Get", ctx, availableDriver.ID()).Return(availableDriver, nil).Once()
	mockOrderRepo.On("Get", ctx, assignedOrder.ID()).Return(assignedOrder, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAssignDriverCommandHandler(mockFactory, mockPublisher)

	// When
	err = handler.Handle(ctx, cmd)

	// Then
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectConflict)
	assert.Equal(t, "Somebody Else", assignedOrder.DriverName())
	mockUoW.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_ConditionalWriteLoses(t *testing.T) {
	// Given: the in-memory order still looks pending, but a concurrent
	// assignment committed first, so the conditional write matches zero rows.
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	availableDriver := newAvailableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(pendingOrder.ID(), availableDriver.ID())
	require.NoError(t, err)

	conflict := errs.NewObjectConflictError("order", pendingOrder.ID().String())
	mockOrderRepo := new(MockOrderRepository)
	mockDriverRepo := new(MockDriverRepository)
	mockUoW := new(MockAssignmentUoW)
	mockFactory := new(MockAssignmentUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("DriverRepository").Return(mockDriverRepo).Once()
	mockDriverRepo.On("Get", ctx, availableDriver.ID()).Return(availableDriver, nil).Once()
	mockOrderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once()
	mockOrderRepo.On("UpdateIfStatus", ctx, pendingOrder, order.StatusPending).Return(conflict).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAssignDriverCommandHandler(mockFactory, mockPublisher)

	// When
	err = handler.Handle(ctx, cmd)

	// Then
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectConflict)
	mockDriverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Given
	ctx := t.Context()
	var invalidCmd commands.AssignDriverCommand

	mockFactory := new(MockAssignmentUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(mockFactory, new(MockOrderEventPublisher))

	// When
	err := handler.Handle(ctx, invalidCmd)

	// Then
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_PublishFailureDoesNotFailRequest(t *testing.T) {
	// Given
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	availableDriver := newAvailableDriver(t)

	cmd, err := commands.NewAssignDriverCommand(pendingOrder.ID(), availableDriver.ID())
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockDriverRepo := new(MockDriverRepository)
	mockUoW := new(MockAssignmentUoW)
	mockFactory := new(MockAssignmentUoWFactory)
	mockPublisher := new(MockOrderEventPublisher)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("DriverRepository").Return(mockDriverRepo).Once()
	mockDriverRepo.On("Get", ctx, availableDriver.ID()).Return(availableDriver, nil).Once()
	mockOrderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once()
	mockOrderRepo.On("UpdateIfStatus", ctx, pendingOrder, order.StatusPending).Return(nil).Once()
	mockDriverRepo.On("Update", ctx, availableDriver).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockPublisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("ports.OrderEvent")).
		Return(errors.New("broker unavailable")).Once()

	handler := commands.NewAssignDriverCommandHandler(mockFactory, mockPublisher)

	// When
	err = handler.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}
