// Package http provides the echo-based HTTP adapter. Handlers stay thin:
// they parse the request, build a command or query, delegate to the
// application layer and translate taxonomy errors into status codes.
package http

import (
	stdcontext "context"
	"net/http"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
	"mes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// userHeader names the request header carrying the acting user. Commands
// record it verbatim; authentication is out of scope for this service.
const userHeader = "X-User-ID"

// Handlers bundles the application handlers the HTTP adapter dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ConfirmOrder      commands.ConfirmOrderCommandHandler
	PlanOrder         commands.PlanOrderCommandHandler
	ReleaseOrder      commands.ReleaseOrderCommandHandler
	StartOrder        commands.StartOrderCommandHandler
	PauseOrder        commands.PauseOrderCommandHandler
	ResumeOrder       commands.ResumeOrderCommandHandler
	CompleteOrder     commands.CompleteOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	StartWorkOrder    commands.StartWorkOrderCommandHandler
	PauseWorkOrder    commands.PauseWorkOrderCommandHandler
	ResumeWorkOrder   commands.ResumeWorkOrderCommandHandler
	CompleteWorkOrder commands.CompleteWorkOrderCommandHandler
	CancelWorkOrder   commands.CancelWorkOrderCommandHandler
	AllocateMaterial  commands.AllocateMaterialCommandHandler
	RecordStockEntry  commands.RecordStockEntryCommandHandler

	GetStockBalance       queries.GetStockBalanceQueryHandler
	GetLedgerHistory      queries.GetLedgerHistoryQueryHandler
	GetActiveReservations queries.GetActiveReservationsQueryHandler
	GetOpenOrders         queries.GetOpenOrdersQueryHandler
}

// Server implements the HTTP API of the manufacturing execution service.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes binds all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOpenOrders)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/plan", s.PlanOrder)
	api.POST("/orders/:id/release", s.ReleaseOrder)
	api.POST("/orders/:id/start", s.StartOrder)
	api.POST("/orders/:id/pause", s.PauseOrder)
	api.POST("/orders/:id/resume", s.ResumeOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/allocations", s.AllocateMaterial)
	api.GET("/orders/:id/reservations", s.GetActiveReservations)

	api.POST("/orders/:orderId/work-orders/:id/start", s.StartWorkOrder)
	api.POST("/orders/:orderId/work-orders/:id/pause", s.PauseWorkOrder)
	api.POST("/orders/:orderId/work-orders/:id/resume", s.ResumeWorkOrder)
	api.POST("/orders/:orderId/work-orders/:id/complete", s.CompleteWorkOrder)
	api.POST("/orders/:orderId/work-orders/:id/cancel", s.CancelWorkOrder)

	api.POST("/stock/entries", s.RecordStockEntry)
	api.GET("/stock/:productId/balance", s.GetStockBalance)
	api.GET("/stock/:productId/history", s.GetLedgerHistory)
}

// ErrorResponse is the error payload of every failing request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for registering a manufacturing order.
type CreateOrderRequest struct {
	Number    string          `json:"number"`
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Priority  int             `json:"priority"`
}

// CreateOrderResponse returns the identity of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.Number, productID, req.Quantity, req.Priority, actor(ctx),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ConfirmOrderRequest optionally names the BOM to bind and a reservation
// time-to-live in minutes; zero means the holds never lapse.
type ConfirmOrderRequest struct {
	BOMID                 string `json:"bomId,omitempty"`
	ReservationTTLMinutes int    `json:"reservationTtlMinutes,omitempty"`
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req ConfirmOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var bomID *kernel.UUID
	if req.BOMID != "" {
		id, bomErr := kernel.UUIDFromString(req.BOMID)
		if bomErr != nil {
			return writeError(ctx, bomErr)
		}
		bomID = &id
	}

	cmd, err := commands.NewConfirmOrderCommand(
		orderID, bomID, time.Duration(req.ReservationTTLMinutes)*time.Minute,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlanOrder handles POST /api/v1/orders/:id/plan.
func (s *Server) PlanOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(c stdcontext.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewPlanOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.PlanOrder.Handle(c, cmd)
	})
}

// ReleaseOrder handles POST /api/v1/orders/:id/release.
func (s *Server) ReleaseOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(c stdcontext.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewReleaseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.ReleaseOrder.Handle(c, cmd)
	})
}

// StartOrder handles POST /api/v1/orders/:id/start.
func (s *Server) StartOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(c stdcontext.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewStartOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.StartOrder.Handle(c, cmd)
	})
}

// PauseOrder handles POST /api/v1/orders/:id/pause.
func (s *Server) PauseOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(c stdcontext.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewPauseOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.PauseOrder.Handle(c, cmd)
	})
}

// ResumeOrder handles POST /api/v1/orders/:id/resume.
func (s *Server) ResumeOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(c stdcontext.Context, orderID kernel.UUID) error {
		cmd, err := commands.NewResumeOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.handlers.ResumeOrder.Handle(c, cmd)
	})
}

// CompleteOrderRequest optionally overrides the produced quantity booked
// into stock on completion.
type CompleteOrderRequest struct {
	ActualQuantity *decimal.Decimal `json:"actualQuantity,omitempty"`
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CompleteOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, req.ActualQuantity, actor(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWorkOrder handles POST /api/v1/orders/:orderId/work-orders/:id/start.
func (s *Server) StartWorkOrder(ctx echo.Context) error {
	return s.transitionWorkOrder(ctx, func(c stdcontext.Context, orderID, workOrderID kernel.UUID) error {
		cmd, err := commands.NewStartWorkOrderCommand(orderID, workOrderID)
		if err != nil {
			return err
		}
		return s.handlers.StartWorkOrder.Handle(c, cmd)
	})
}

// PauseWorkOrder handles POST /api/v1/orders/:orderId/work-orders/:id/pause.
func (s *Server) PauseWorkOrder(ctx echo.Context) error {
	return s.transitionWorkOrder(ctx, func(c stdcontext.Context, orderID, workOrderID kernel.UUID) error {
		cmd, err := commands.NewPauseWorkOrderCommand(orderID, workOrderID)
		if err != nil {
			return err
		}
		return s.handlers.PauseWorkOrder.Handle(c, cmd)
	})
}

// ResumeWorkOrder handles POST /api/v1/orders/:orderId/work-orders/:id/resume.
func (s *Server) ResumeWorkOrder(ctx echo.Context) error {
	return s.transitionWorkOrder(ctx, func(c stdcontext.Context, orderID, workOrderID kernel.UUID) error {
		cmd, err := commands.NewResumeWorkOrderCommand(orderID, workOrderID)
		if err != nil {
			return err
		}
		return s.handlers.ResumeWorkOrder.Handle(c, cmd)
	})
}

// CompleteWorkOrderRequest records how long the step actually took.
type CompleteWorkOrderRequest struct {
	ActualDurationMinutes int `json:"actualDurationMinutes"`
}

// CompleteWorkOrder handles POST /api/v1/orders/:orderId/work-orders/:id/complete.
func (s *Server) CompleteWorkOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	workOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req CompleteWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteWorkOrderCommand(
		orderID, workOrderID, time.Duration(req.ActualDurationMinutes)*time.Minute,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.CompleteWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelWorkOrder handles POST /api/v1/orders/:orderId/work-orders/:id/cancel.
func (s *Server) CancelWorkOrder(ctx echo.Context) error {
	return s.transitionWorkOrder(ctx, func(c stdcontext.Context, orderID, workOrderID kernel.UUID) error {
		cmd, err := commands.NewCancelWorkOrderCommand(orderID, workOrderID)
		if err != nil {
			return err
		}
		return s.handlers.CancelWorkOrder.Handle(c, cmd)
	})
}

// AllocateMaterialRequest issues reserved material to a running order.
type AllocateMaterialRequest struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// AllocateMaterial handles POST /api/v1/orders/:id/allocations.
func (s *Server) AllocateMaterial(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req AllocateMaterialRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAllocateMaterialCommand(orderID, productID, req.Quantity, actor(ctx))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.AllocateMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordStockEntryRequest appends a manual movement to the stock ledger.
type RecordStockEntryRequest struct {
	ProductID       string          `json:"productId"`
	WarehouseID     string          `json:"warehouseId,omitempty"`
	TransactionType string          `json:"transactionType"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// RecordStockEntry handles POST /api/v1/stock/entries.
func (s *Server) RecordStockEntry(ctx echo.Context) error {
	var req RecordStockEntryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	var warehouseID *kernel.UUID
	if req.WarehouseID != "" {
		id, warehouseErr := kernel.UUIDFromString(req.WarehouseID)
		if warehouseErr != nil {
			return writeError(ctx, warehouseErr)
		}
		warehouseID = &id
	}

	txType, ok := transactionTypeFromString(req.TransactionType)
	if !ok {
		return badRequest(ctx, "unknown transaction type")
	}

	cmd, err := commands.NewRecordStockEntryCommand(
		productID, warehouseID, txType, req.Quantity, actor(ctx),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.handlers.RecordStockEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StockBalanceResponse is the stock position of a product.
type StockBalanceResponse struct {
	ProductID string          `json:"productId"`
	Balance   decimal.Decimal `json:"balance"`
	Unit      string          `json:"unit"`
	AsOf      *time.Time      `json:"asOf,omitempty"`
}

// GetStockBalance handles GET /api/v1/stock/:productId/balance.
func (s *Server) GetStockBalance(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetStockBalanceQuery(productID)
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.handlers.GetStockBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StockBalanceResponse{
		ProductID: balance.ProductID.String(),
		Balance:   balance.Balance,
		Unit:      balance.Unit,
		AsOf:      balance.AsOf,
	})
}

// LedgerEntryResponse is one ledger line of the history endpoint.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryId"`
	TransactionType string          `json:"transactionType"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	ReferenceType   string          `json:"referenceType,omitempty"`
	CreatedBy       string          `json:"createdBy"`
	OccurredAt      time.Time       `json:"occurredAt"`
}

// GetLedgerHistory handles GET /api/v1/stock/:productId/history.
func (s *Server) GetLedgerHistory(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	var params struct {
		From   *time.Time `query:"from"`
		To     *time.Time `query:"to"`
		Limit  int        `query:"limit"`
		Offset int        `query:"offset"`
	}
	if err := ctx.Bind(&params); err != nil {
		return badRequest(ctx, "invalid query parameters")
	}

	query, err := queries.NewGetLedgerHistoryQuery(
		productID, params.From, params.To, params.Limit, params.Offset,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.handlers.GetLedgerHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = LedgerEntryResponse{
			EntryID:         entry.EntryID.String(),
			TransactionType: entry.TransactionType,
			Quantity:        entry.Quantity,
			Unit:            entry.Unit,
			RunningBalance:  entry.RunningBalance,
			ReferenceType:   entry.ReferenceType,
			CreatedBy:       entry.CreatedBy,
			OccurredAt:      entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReservationResponse is one active material hold of an order.
type ReservationResponse struct {
	ReservationID     string          `json:"reservationId"`
	ProductID         string          `json:"productId"`
	ReservedQuantity  decimal.Decimal `json:"reservedQuantity"`
	AllocatedQuantity decimal.Decimal `json:"allocatedQuantity"`
	Unit              string          `json:"unit"`
	ExpiresAt         *time.Time      `json:"expiresAt,omitempty"`
}

// GetActiveReservations handles GET /api/v1/orders/:id/reservations.
func (s *Server) GetActiveReservations(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetActiveReservationsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	holds, err := s.handlers.GetActiveReservations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ReservationResponse, len(holds))
	for i, hold := range holds {
		response[i] = ReservationResponse{
			ReservationID:     hold.ReservationID.String(),
			ProductID:         hold.ProductID.String(),
			ReservedQuantity:  hold.ReservedQuantity,
			AllocatedQuantity: hold.AllocatedQuantity,
			Unit:              hold.Unit,
			ExpiresAt:         hold.ExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OpenOrderResponse is one in-flight manufacturing order.
type OpenOrderResponse struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Status    string          `json:"status"`
	Priority  int             `json:"priority"`
	Assignee  string          `json:"assignee,omitempty"`
}

// GetOpenOrders handles GET /api/v1/orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetOpenOrders.Handle(
		ctx.Request().Context(), queries.NewGetOpenOrdersQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OpenOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OpenOrderResponse{
			ID:        o.ID.String(),
			Number:    o.Number,
			ProductID: o.ProductID.String(),
			Quantity:  o.Quantity,
			Unit:      o.Unit,
			Status:    o.Status,
			Priority:  o.Priority,
			Assignee:  o.Assignee,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) transitionOrder(
	ctx echo.Context,
	run func(c stdcontext.Context, orderID kernel.UUID) error,
) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := run(ctx.Request().Context(), orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) transitionWorkOrder(
	ctx echo.Context,
	run func(c stdcontext.Context, orderID, workOrderID kernel.UUID) error,
) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	workOrderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	if err := run(ctx.Request().Context(), orderID, workOrderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// actor resolves the acting user from the request headers. Falls back to
// "system" so internal tooling without the header still passes command
// validation.
func actor(ctx echo.Context) string {
	if user := ctx.Request().Header.Get(userHeader); user != "" {
		return user
	}
	return "system"
}

func transactionTypeFromString(s string) (stock.TransactionType, bool) {
	types := map[string]stock.TransactionType{
		"receipt":        stock.TransactionReceipt,
		"issue":          stock.TransactionIssue,
		"adjustment_in":  stock.TransactionAdjustmentIn,
		"adjustment_out": stock.TransactionAdjustmentOut,
	}
	t, ok := types[s]
	return t, ok
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    errs.CodeValidation,
		Message: message,
	})
}

// writeError translates a taxonomy error into its HTTP status. Validation
// maps to 400, missing entities to 404, broken business rules to 422 and
// the conflict family to 409; anything outside the taxonomy is a 500.
func writeError(ctx echo.Context, err error) error {
	code := errs.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case errs.CodeValidation:
		status = http.StatusBadRequest
	case errs.CodeEntityNotFound:
		status = http.StatusNotFound
	case errs.CodeBusinessRuleViolation:
		status = http.StatusUnprocessableEntity
	case errs.CodeInvalidStatusTransition, errs.CodeInsufficientStock, errs.CodeConcurrency:
		status = http.StatusConflict
	}

	message := "internal server error"
	if code != "" {
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: code, Message: message})
}
