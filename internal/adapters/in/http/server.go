package http

import (
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// Server exposes the forwarding platform over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitRequestHandler          commands.SubmitRequestCommandHandler
	setRequestWeightHandler       commands.SetRequestWeightCommandHandler
	confirmRequestWeightHandler   commands.ConfirmRequestWeightCommandHandler
	setRequestCategoryHandler     commands.SetRequestCategoryCommandHandler
	confirmRequestCategoryHandler commands.ConfirmRequestCategoryCommandHandler
	approveRequestHandler         commands.ApproveRequestCommandHandler
	rejectRequestHandler          commands.RejectRequestCommandHandler
	markInTransitHandler          commands.MarkInTransitCommandHandler
	recordArrivalHandler          commands.RecordArrivalCommandHandler
	markAvailableHandler          commands.MarkAvailableCommandHandler
	markDeliveredHandler          commands.MarkDeliveredCommandHandler
	overrideStatusHandler         commands.OverrideStatusCommandHandler
	correctWeightHandler          commands.CorrectWeightCommandHandler
	createFeeScheduleHandler      commands.CreateFeeScheduleCommandHandler
	createSpecialItemRuleHandler  commands.CreateSpecialItemRuleCommandHandler

	// Query handlers
	getParcelHandler          queries.GetParcelByTrackingNumberQueryHandler
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler
	getPendingRequestsHandler queries.GetPendingRequestsQueryHandler
	quoteFeeHandler           queries.QuoteFeeQueryHandler
}

// ServerHandlers bundles every use case handler the server routes to.
type ServerHandlers struct {
	SubmitRequest          commands.SubmitRequestCommandHandler
	SetRequestWeight       commands.SetRequestWeightCommandHandler
	ConfirmRequestWeight   commands.ConfirmRequestWeightCommandHandler
	SetRequestCategory     commands.SetRequestCategoryCommandHandler
	ConfirmRequestCategory commands.ConfirmRequestCategoryCommandHandler
	ApproveRequest         commands.ApproveRequestCommandHandler
	RejectRequest          commands.RejectRequestCommandHandler
	MarkInTransit          commands.MarkInTransitCommandHandler
	RecordArrival          commands.RecordArrivalCommandHandler
	MarkAvailable          commands.MarkAvailableCommandHandler
	MarkDelivered          commands.MarkDeliveredCommandHandler
	OverrideStatus         commands.OverrideStatusCommandHandler
	CorrectWeight          commands.CorrectWeightCommandHandler
	CreateFeeSchedule      commands.CreateFeeScheduleCommandHandler
	CreateSpecialItemRule  commands.CreateSpecialItemRuleCommandHandler

	GetParcel          queries.GetParcelByTrackingNumberQueryHandler
	GetTrackingHistory queries.GetTrackingHistoryQueryHandler
	GetPendingRequests queries.GetPendingRequestsQueryHandler
	QuoteFee           queries.QuoteFeeQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		submitRequestHandler:          handlers.SubmitRequest,
		setRequestWeightHandler:       handlers.SetRequestWeight,
		confirmRequestWeightHandler:   handlers.ConfirmRequestWeight,
		setRequestCategoryHandler:     handlers.SetRequestCategory,
		confirmRequestCategoryHandler: handlers.ConfirmRequestCategory,
		approveRequestHandler:         handlers.ApproveRequest,
		rejectRequestHandler:          handlers.RejectRequest,
		markInTransitHandler:          handlers.MarkInTransit,
		recordArrivalHandler:          handlers.RecordArrival,
		markAvailableHandler:          handlers.MarkAvailable,
		markDeliveredHandler:          handlers.MarkDelivered,
		overrideStatusHandler:         handlers.OverrideStatus,
		correctWeightHandler:          handlers.CorrectWeight,
		createFeeScheduleHandler:      handlers.CreateFeeSchedule,
		createSpecialItemRuleHandler:  handlers.CreateSpecialItemRule,
		getParcelHandler:              handlers.GetParcel,
		getTrackingHistoryHandler:     handlers.GetTrackingHistory,
		getPendingRequestsHandler:     handlers.GetPendingRequests,
		quoteFeeHandler:               handlers.QuoteFee,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.SubmitRequest)
	api.GET("/requests/pending", s.GetPendingRequests)
	api.PUT("/requests/:id/weight", s.SetRequestWeight)
	api.POST("/requests/:id/weight/confirm", s.ConfirmRequestWeight)
	api.PUT("/requests/:id/category", s.SetRequestCategory)
	api.POST("/requests/:id/category/confirm", s.ConfirmRequestCategory)
	api.POST("/requests/:id/approve", s.ApproveRequest)
	api.POST("/requests/:id/reject", s.RejectRequest)

	api.POST("/parcels/:id/in-transit", s.MarkInTransit)
	api.POST("/parcels/:id/arrival", s.RecordArrival)
	api.POST("/parcels/:id/available", s.MarkAvailable)
	api.POST("/parcels/:id/delivered", s.MarkDelivered)
	api.POST("/parcels/:id/override", s.OverrideStatus)
	api.PUT("/parcels/:id/weight", s.CorrectWeight)
	api.GET("/parcels/:id/history", s.GetTrackingHistory)

	api.GET("/tracking/:trackingNumber", s.GetParcel)

	api.POST("/fee-schedules", s.CreateFeeSchedule)
	api.POST("/special-item-rules", s.CreateSpecialItemRule)
	api.POST("/quotes", s.QuoteFee)
}

// SubmitRequest handles POST /api/v1/requests.
func (s *Server) SubmitRequest(ctx echo.Context) error {
	var body SubmitRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRequestCommand(
		requestID,
		customerID,
		body.CarrierReference,
		body.Description,
		body.EstimatedWeight,
		body.DeclaredCategory,
		body.Notes,
		body.RecipientName,
		body.RecipientPhone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.submitRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitRequestResponse{RequestID: requestID.Bytes()})
}

// SetRequestWeight handles PUT /api/v1/requests/:id/weight.
func (s *Server) SetRequestWeight(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body SetWeightBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	reviewerID, err := kernel.UUIDFromBytes(body.ReviewerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetRequestWeightCommand(requestID, body.Weight, reviewerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setRequestWeightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmRequestWeight handles POST /api/v1/requests/:id/weight/confirm.
func (s *Server) ConfirmRequestWeight(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body ReviewerBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	reviewerID, err := kernel.UUIDFromBytes(body.ReviewerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmRequestWeightCommand(requestID, reviewerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmRequestWeightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRequestCategory handles PUT /api/v1/requests/:id/category.
func (s *Server) SetRequestCategory(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body SetCategoryBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	reviewerID, err := kernel.UUIDFromBytes(body.ReviewerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetRequestCategoryCommand(requestID, body.Category, reviewerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setRequestCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmRequestCategory handles POST /api/v1/requests/:id/category/confirm.
func (s *Server) ConfirmRequestCategory(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body ReviewerBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	reviewerID, err := kernel.UUIDFromBytes(body.ReviewerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmRequestCategoryCommand(requestID, reviewerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmRequestCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveRequest handles POST /api/v1/requests/:id/approve.
func (s *Server) ApproveRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body ApproveRequestBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	reviewerID, err := kernel.UUIDFromBytes(body.ReviewerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveRequestCommand(
		requestID,
		reviewerID,
		body.ReceivingLocation,
		body.Brand,
		body.ItemName,
		body.Model,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectRequest handles POST /api/v1/requests/:id/reject.
func (s *Server) RejectRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body ReviewerBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	reviewerID, err := kernel.UUIDFromBytes(body.ReviewerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectRequestCommand(requestID, reviewerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkInTransit handles POST /api/v1/parcels/:id/in-transit.
func (s *Server) MarkInTransit(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body MarkInTransitBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewMarkInTransitCommand(parcelID, body.Location, body.CarrierNote)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markInTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordArrival handles POST /api/v1/parcels/:id/arrival.
func (s *Server) RecordArrival(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body RecordArrivalBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRecordArrivalCommand(parcelID, body.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAvailable handles POST /api/v1/parcels/:id/available.
func (s *Server) MarkAvailable(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkAvailableCommand(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markAvailableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/parcels/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body MarkDeliveredBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewMarkDeliveredCommand(parcelID, body.ReceivedBy, body.EvidenceReference)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OverrideStatus handles POST /api/v1/parcels/:id/override.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body OverrideStatusBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	newStatus, err := parcel.StatusFromString(body.NewStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	staffID, err := kernel.UUIDFromBytes(body.StaffID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewOverrideStatusCommand(parcelID, newStatus, body.Reason, staffID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CorrectWeight handles PUT /api/v1/parcels/:id/weight.
func (s *Server) CorrectWeight(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var body CorrectWeightBody
	if err = bindAndValidate(ctx, &body); err != nil {
		return err
	}

	staffID, err := kernel.UUIDFromBytes(body.StaffID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCorrectWeightCommand(parcelID, body.Weight, staffID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.correctWeightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateFeeSchedule handles POST /api/v1/fee-schedules.
func (s *Server) CreateFeeSchedule(ctx echo.Context) error {
	var body CreateFeeScheduleBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewCreateFeeScheduleCommand(
		scheduleID,
		body.ServiceFee,
		body.PerPoundRate,
		body.EffectiveFrom,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createFeeScheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateFeeScheduleResponse{ScheduleID: scheduleID.Bytes()})
}

// CreateSpecialItemRule handles POST /api/v1/special-item-rules.
func (s *Server) CreateSpecialItemRule(ctx echo.Context) error {
	var body CreateSpecialItemRuleBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	ruleID := kernel.NewUUID()
	cmd, err := commands.NewCreateSpecialItemRuleCommand(
		ruleID,
		body.Category,
		body.Brand,
		body.ItemName,
		body.MinModel,
		body.MaxModel,
		body.FixedFee,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createSpecialItemRuleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateSpecialItemRuleResponse{RuleID: ruleID.Bytes()})
}

// GetParcel handles GET /api/v1/tracking/:trackingNumber.
func (s *Server) GetParcel(ctx echo.Context) error {
	query, err := queries.NewGetParcelByTrackingNumberQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	history := make([]TrackingHistoryRow, len(view.History))
	for i, entry := range view.History {
		history[i] = TrackingHistoryRow{
			Status:      entry.Status,
			Location:    entry.Location,
			OccurredAt:  entry.OccurredAt,
			Description: entry.Description,
			Override:    entry.Override,
		}
	}

	return ctx.JSON(http.StatusOK, ParcelView{
		ParcelID:       view.ID.Bytes(),
		TrackingNumber: view.TrackingNumber,
		Status:         view.Status,
		Location:       view.Location,
		Weight:         view.Weight,
		Category:       view.Category,
		ServiceFee:     view.ServiceFee,
		VariableFee:    view.VariableFee,
		Total:          view.FeeTotal,
		SpecialItem:    view.SpecialItem,
		DeliveredAt:    view.DeliveredAt,
		History:        history,
	})
}

// GetTrackingHistory handles GET /api/v1/parcels/:id/history.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	parcelID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingHistoryQuery(parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TrackingHistoryRow, len(entries))
	for i, entry := range entries {
		response[i] = TrackingHistoryRow{
			Status:      entry.Status,
			Location:    entry.Location,
			OccurredAt:  entry.OccurredAt,
			Description: entry.Description,
			Override:    entry.Override,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingRequests handles GET /api/v1/requests/pending.
func (s *Server) GetPendingRequests(ctx echo.Context) error {
	query := queries.NewGetPendingRequestsQuery()

	pending, err := s.getPendingRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PendingRequest, len(pending))
	for i, req := range pending {
		response[i] = PendingRequest{
			RequestID:         req.ID.Bytes(),
			CustomerID:        req.CustomerID.Bytes(),
			CarrierReference:  req.CarrierReference,
			Description:       req.Description,
			EstimatedWeight:   req.EstimatedWeight,
			DeclaredCategory:  req.DeclaredCategory,
			ReviewWeight:      req.ReviewWeight,
			WeightConfirmed:   req.WeightConfirmed,
			ReviewCategory:    req.ReviewCategory,
			CategoryConfirmed: req.CategoryConfirmed,
			SubmittedAt:       req.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteFee handles POST /api/v1/quotes.
func (s *Server) QuoteFee(ctx echo.Context) error {
	var body QuoteFeeBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	query, err := queries.NewQuoteFeeQuery(body.Weight, body.Category, body.Brand, body.ItemName, body.Model)
	if err != nil {
		return writeError(ctx, err)
	}

	quote, err := s.quoteFeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteFeeResponse{
		ServiceFee:  quote.ServiceFee,
		VariableFee: quote.VariableFee,
		Total:       quote.Total,
		SpecialItem: quote.SpecialItem,
	})
}

// bindAndValidate binds the JSON body and runs struct tag validation.
// Both failure modes produce a 400 with the underlying message.
func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := ctx.Validate(body); err != nil {
		return writeError(ctx, err)
	}

	return nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
