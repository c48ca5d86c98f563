package commands_test

import (
	"testing"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	prod := rawMaterial(t, productID)

	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, productID).Return(prod, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByNumber", ctx, "MO-2026-0001").
		Return(nil, errs.NewEntityNotFoundError("manufacturing order", "MO-2026-0001"))
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.ManufacturingOrder")).Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "MO-2026-0001", productID, decimal.NewFromInt(10), 5, "planner",
	)
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := orderRepo.Calls[len(orderRepo.Calls)-1].Arguments.Get(1).(*order.ManufacturingOrder)
	assert.Equal(t, order.StatusDraft, added.Status())
	assert.True(t, added.Quantity().IsEqual(pcsQty(t, "10")))
	assert.Equal(t, "planner", added.CreatedBy())
}

func TestCreateOrderCommandHandler_Handle_DuplicateNumberFails(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	prod := rawMaterial(t, productID)
	existing := draftOrder(t, productID, "5")

	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, productID).Return(prod, nil)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByNumber", ctx, "MO-2026-0001").Return(existing, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "MO-2026-0001", productID, decimal.NewFromInt(10), 5, "planner",
	)
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrBusinessRuleViolation)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockCreateOrderUoWFactory))

	require.Error(t, h.Handle(t.Context(), commands.CreateOrderCommand{}))
}
