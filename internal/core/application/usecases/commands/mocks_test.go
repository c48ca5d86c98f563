package commands_test

import (
	"context"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/product"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/core/domain/model/stock"
	"mes/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockBOMRepository struct{ mock.Mock }

func (m *MockBOMRepository) Add(ctx context.Context, b *bom.BillOfMaterials) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBOMRepository) Update(ctx context.Context, b *bom.BillOfMaterials) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBOMRepository) Get(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterials, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bom.BillOfMaterials), args.Error(1)
}

func (m *MockBOMRepository) GetDefaultForProduct(ctx context.Context, productID kernel.UUID) (*bom.BillOfMaterials, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bom.BillOfMaterials), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.ManufacturingOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.ManufacturingOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ManufacturingOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ManufacturingOrder), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.ManufacturingOrder, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.ManufacturingOrder), args.Error(1)
}

type MockReservationRepository struct{ mock.Mock }

func (m *MockReservationRepository) Add(ctx context.Context, r *reservation.MaterialReservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, r *reservation.MaterialReservation) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.MaterialReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.MaterialReservation), args.Error(1)
}

func (m *MockReservationRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*reservation.MaterialReservation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.MaterialReservation), args.Error(1)
}

func (m *MockReservationRepository) GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*reservation.MaterialReservation, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.MaterialReservation), args.Error(1)
}

func (m *MockReservationRepository) GetExpired(ctx context.Context, now time.Time) ([]*reservation.MaterialReservation, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservation.MaterialReservation), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, e *stock.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockLedgerRepository) GetLastEntry(ctx context.Context, productID kernel.UUID) (*stock.Entry, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Entry), args.Error(1)
}

func (m *MockLedgerRepository) GetHistory(ctx context.Context, productID kernel.UUID, limit, offset int) ([]*stock.Entry, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Entry), args.Error(1)
}

// MockUoW satisfies every unit-of-work interface the handlers consume.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) BOMRepository() ports.BOMRepository {
	return m.Called().Get(0).(ports.BOMRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ReservationRepository() ports.ReservationRepository {
	return m.Called().Get(0).(ports.ReservationRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	return m.Called().Get(0).(ports.LedgerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return m.Called().Get(0).(commands.CreateOrderUoW)
}

type MockConfirmOrderUoWFactory struct{ mock.Mock }

func (m *MockConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	return m.Called().Get(0).(commands.ConfirmOrderUoW)
}

type MockMaterialUoWFactory struct{ mock.Mock }

func (m *MockMaterialUoWFactory) Create() commands.MaterialUoW {
	return m.Called().Get(0).(commands.MaterialUoW)
}

type MockCancelOrderUoWFactory struct{ mock.Mock }

func (m *MockCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return m.Called().Get(0).(commands.CancelOrderUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	return m.Called().Get(0).(commands.LedgerUoW)
}

type MockReservationUoWFactory struct{ mock.Mock }

func (m *MockReservationUoWFactory) Create() commands.ReservationUoW {
	return m.Called().Get(0).(commands.ReservationUoW)
}
