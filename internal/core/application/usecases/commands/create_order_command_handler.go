package commands

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the ordered product to obtain the quantity's unit of measure and
// persists the order in draft status. The order number must be unique.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Fails with EntityNotFoundError when the product does not exist and with
// BusinessRuleViolationError when the order number is already taken.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prod, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if _, err = orderRepo.GetByNumber(ctx, cmd.Number()); err == nil {
		return errs.NewBusinessRuleViolationError("order number is already taken")
	} else if !errors.Is(err, errs.ErrEntityNotFound) {
		return err
	}

	quantity, err := kernel.NewQuantity(cmd.Quantity(), prod.Unit())
	if err != nil {
		return err
	}

	aggregate, err := order.NewManufacturingOrder(
		cmd.OrderID(), cmd.Number(), cmd.ProductID(), quantity, cmd.Priority(), cmd.CreatedBy(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
