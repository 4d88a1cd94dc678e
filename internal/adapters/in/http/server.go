package http

import (
	"errors"
	"net/http"

	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/application/usecases/queries"
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server handles the HTTP surface of the stock request service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	createFromSelectionHandler commands.CreateOrderFromSelectionCommandHandler
	updateAttributesHandler    commands.UpdateOrderAttributesCommandHandler
	confirmOrderHandler        commands.ConfirmOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	draftOrderHandler          commands.DraftOrderCommandHandler
	completeAllHandler         commands.CompleteAllOrderCommandHandler
	checkCompletionHandler     commands.CheckOrderCompletionCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	applyTemplateHandler       commands.ApplyTemplateCommandHandler

	// Query handlers
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getOrderSummaryHandler      queries.GetOrderSummaryQueryHandler
	getOrderPickingsHandler     queries.GetOrderPickingsQueryHandler
	getOrderMovesHandler        queries.GetOrderMovesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createFromSelectionHandler commands.CreateOrderFromSelectionCommandHandler,
	updateAttributesHandler commands.UpdateOrderAttributesCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	draftOrderHandler commands.DraftOrderCommandHandler,
	completeAllHandler commands.CompleteAllOrderCommandHandler,
	checkCompletionHandler commands.CheckOrderCompletionCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	applyTemplateHandler commands.ApplyTemplateCommandHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrderPickingsHandler queries.GetOrderPickingsQueryHandler,
	getOrderMovesHandler queries.GetOrderMovesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		createFromSelectionHandler:  createFromSelectionHandler,
		updateAttributesHandler:     updateAttributesHandler,
		confirmOrderHandler:         confirmOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		draftOrderHandler:           draftOrderHandler,
		completeAllHandler:          completeAllHandler,
		checkCompletionHandler:      checkCompletionHandler,
		deleteOrderHandler:          deleteOrderHandler,
		applyTemplateHandler:        applyTemplateHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getOrderSummaryHandler:      getOrderSummaryHandler,
		getOrderPickingsHandler:     getOrderPickingsHandler,
		getOrderMovesHandler:        getOrderMovesHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 with the session middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", SessionMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/from-selection", s.CreateOrderFromSelection)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.GET("/orders/:orderId/pickings", s.GetOrderPickings)
	api.GET("/orders/:orderId/moves", s.GetOrderMoves)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/draft", s.DraftOrder)
	api.POST("/orders/:orderId/complete-all", s.CompleteAllOrder)
	api.POST("/orders/:orderId/check-completion", s.CheckOrderCompletion)
	api.POST("/orders/:orderId/apply-template", s.ApplyTemplate)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildCreateOrderCommand(kernel.NewUUID(), newOrder)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: cmd.OrderID().String()})
}

// CreateOrderFromSelection handles POST /api/v1/orders/from-selection -
// creates one order with a zero-quantity line per selected product.
func (s *Server) CreateOrderFromSelection(ctx echo.Context) error {
	var selection NewSelectionOrder
	if err := ctx.Bind(&selection); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := parseSelectionKind(selection.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid selection data: "+err.Error())
	}

	productIDs := make([]kernel.UUID, 0, len(selection.ProductIDs))
	for _, raw := range selection.ProductIDs {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid selection data: "+parseErr.Error())
		}
		productIDs = append(productIDs, id)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderFromSelectionCommand(orderID, kind, productIDs)
	if err != nil {
		return badRequest(ctx, "Invalid selection data: "+err.Error())
	}

	if handleErr := s.createFromSelectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all
// uncompleted orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, entry := range orders {
		response[i] = ActiveOrder{
			ID:           entry.ID.String(),
			Name:         entry.Name,
			Status:       entry.Status,
			ExpectedDate: entry.ExpectedDate,
			RequestCount: entry.RequestCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order summary.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderSummary{
		ID:             summary.ID.String(),
		Name:           summary.Name,
		Status:         summary.Status,
		WarehouseID:    summary.WarehouseID.String(),
		LocationID:     summary.LocationID.String(),
		CompanyID:      summary.CompanyID.String(),
		RequestedBy:    summary.RequestedBy.String(),
		ExpectedDate:   summary.ExpectedDate,
		ShippingPolicy: summary.ShippingPolicy,
		GroupingKey:    summary.GroupingKey,
		RequestCount:   summary.RequestCount,
		PickingCount:   summary.PickingCount,
	})
}

// GetOrderPickings handles GET /api/v1/orders/:orderId/pickings - retrieves
// the fulfillment transfers of one order.
func (s *Server) GetOrderPickings(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderPickingsQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	pickings, err := s.getOrderPickingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]Picking, len(pickings))
	for i, picking := range pickings {
		response[i] = Picking{
			ID:     picking.ID.String(),
			Name:   picking.Name,
			LineID: picking.LineID.String(),
			State:  picking.State,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderMoves handles GET /api/v1/orders/:orderId/moves - retrieves the
// stock moves of one order.
func (s *Server) GetOrderMoves(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderMovesQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	moves, err := s.getOrderMovesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]Move, len(moves))
	for i, move := range moves {
		response[i] = Move{
			ID:        move.ID.String(),
			PickingID: move.PickingID.String(),
			LineID:    move.LineID.String(),
			ProductID: move.ProductID.String(),
			Quantity:  move.Quantity,
			State:     move.State,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId - changes header
// attributes and cascades them to the lines.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var update OrderUpdate
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildUpdateCommand(orderID, update)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateAttributesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DraftOrder handles POST /api/v1/orders/:orderId/draft - resets a
// cancelled order back to draft.
func (s *Server) DraftOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDraftOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.draftOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAllOrder handles POST /api/v1/orders/:orderId/complete-all -
// marks every line delivered in full.
func (s *Server) CompleteAllOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteAllOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.completeAllHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckOrderCompletion handles POST /api/v1/orders/:orderId/check-completion.
func (s *Server) CheckOrderCompletion(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCheckOrderCompletionCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.checkCompletionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes a draft
// order with its lines.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyTemplate handles POST /api/v1/orders/:orderId/apply-template -
// replaces the order's lines with the template's lines.
func (s *Server) ApplyTemplate(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body ApplyTemplate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	templateID, err := kernel.UUIDFromString(body.TemplateID)
	if err != nil {
		return badRequest(ctx, "Invalid template id")
	}

	cmd, err := commands.NewApplyTemplateCommand(orderID, templateID)
	if err != nil {
		return badRequest(ctx, "Invalid template data: "+err.Error())
	}

	if handleErr := s.applyTemplateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func buildCreateOrderCommand(
	orderID kernel.UUID, newOrder NewOrder,
) (commands.CreateOrderCommand, error) {
	requestedBy, err := parseOptionalUUID(newOrder.RequestedBy)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	warehouseID, err := parseOptionalUUID(newOrder.WarehouseID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	locationID, err := parseOptionalUUID(newOrder.LocationID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	companyID, err := parseOptionalUUID(newOrder.CompanyID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	policy, err := parseShippingPolicy(newOrder.ShippingPolicy)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]commands.CreateOrderLine, 0, len(newOrder.Lines))
	for _, raw := range newOrder.Lines {
		line, lineErr := buildCreateOrderLine(raw)
		if lineErr != nil {
			return commands.CreateOrderCommand{}, lineErr
		}
		lines = append(lines, line)
	}

	return commands.NewCreateOrderCommand(
		orderID,
		newOrder.Name,
		requestedBy, warehouseID, locationID, companyID,
		newOrder.ExpectedDate,
		policy,
		lines,
	)
}

func buildCreateOrderLine(raw NewOrderLine) (commands.CreateOrderLine, error) {
	productID, err := kernel.UUIDFromString(raw.ProductID)
	if err != nil {
		return commands.CreateOrderLine{}, err
	}
	unitID, err := kernel.UUIDFromString(raw.UnitID)
	if err != nil {
		return commands.CreateOrderLine{}, err
	}
	quantity, err := decimal.NewFromString(raw.Quantity)
	if err != nil {
		return commands.CreateOrderLine{}, err
	}
	routeID, err := parseOptionalUUID(raw.RouteID)
	if err != nil {
		return commands.CreateOrderLine{}, err
	}

	return commands.NewCreateOrderLine(productID, unitID, quantity, routeID)
}

func buildUpdateCommand(
	orderID kernel.UUID, update OrderUpdate,
) (commands.UpdateOrderAttributesCommand, error) {
	locationID, err := parseOptionalUUID(update.LocationID)
	if err != nil {
		return commands.UpdateOrderAttributesCommand{}, err
	}
	warehouseID, err := parseOptionalUUID(update.WarehouseID)
	if err != nil {
		return commands.UpdateOrderAttributesCommand{}, err
	}
	companyID, err := parseOptionalUUID(update.CompanyID)
	if err != nil {
		return commands.UpdateOrderAttributesCommand{}, err
	}
	requestedBy, err := parseOptionalUUID(update.RequestedBy)
	if err != nil {
		return commands.UpdateOrderAttributesCommand{}, err
	}

	var policy *order.ShippingPolicy
	if update.ShippingPolicy != nil {
		parsed, policyErr := parseShippingPolicy(*update.ShippingPolicy)
		if policyErr != nil {
			return commands.UpdateOrderAttributesCommand{}, policyErr
		}
		policy = &parsed
	}

	return commands.NewUpdateOrderAttributesCommand(
		orderID,
		update.Name,
		locationID, warehouseID, companyID, requestedBy,
		update.ExpectedDate,
		policy,
	)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application errors to HTTP statuses. Unknown errors
// come back as opaque 500s so internals do not leak to callers.
func mapError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAuthorization):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrUserAction):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
