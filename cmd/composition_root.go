package cmd

import (
	"log/slog"

	httpin "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/notify"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	calculator services.FeeCalculator
	matcher    services.SpecialItemMatcher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
		calculator: services.NewFeeCalculator(),
		matcher:    services.NewSpecialItemMatcher(),
		logger:     logger,
	}
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitRequestCommandHandler() commands.SubmitRequestCommandHandler {
	return commands.NewSubmitRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateSetRequestWeightCommandHandler() commands.SetRequestWeightCommandHandler {
	return commands.NewSetRequestWeightCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateConfirmRequestWeightCommandHandler() commands.ConfirmRequestWeightCommandHandler {
	return commands.NewConfirmRequestWeightCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateSetRequestCategoryCommandHandler() commands.SetRequestCategoryCommandHandler {
	return commands.NewSetRequestCategoryCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateConfirmRequestCategoryCommandHandler() commands.ConfirmRequestCategoryCommandHandler {
	return commands.NewConfirmRequestCategoryCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateRejectRequestCommandHandler() commands.RejectRequestCommandHandler {
	return commands.NewRejectRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateApproveRequestCommandHandler() commands.ApproveRequestCommandHandler {
	var f commands.ApprovalUoWFactory = FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveRequestCommandHandler(f, c.calculator, c.matcher, c.notifier)
}

func (c *CompositionRoot) CreateMarkInTransitCommandHandler() commands.MarkInTransitCommandHandler {
	return commands.NewMarkInTransitCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRecordArrivalCommandHandler() commands.RecordArrivalCommandHandler {
	return commands.NewRecordArrivalCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateMarkAvailableCommandHandler() commands.MarkAvailableCommandHandler {
	return commands.NewMarkAvailableCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.parcelUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateOverrideStatusCommandHandler() commands.OverrideStatusCommandHandler {
	return commands.NewOverrideStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateCorrectWeightCommandHandler() commands.CorrectWeightCommandHandler {
	var f commands.CorrectionUoWFactory = FuncCorrectionUoWFactory(func() commands.CorrectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCorrectWeightCommandHandler(f, c.calculator)
}

func (c *CompositionRoot) CreateCreateFeeScheduleCommandHandler() commands.CreateFeeScheduleCommandHandler {
	return commands.NewCreateFeeScheduleCommandHandler(c.pricingUoWFactory())
}

func (c *CompositionRoot) CreateCreateSpecialItemRuleCommandHandler() commands.CreateSpecialItemRuleCommandHandler {
	return commands.NewCreateSpecialItemRuleCommandHandler(c.pricingUoWFactory())
}

func (c *CompositionRoot) CreateActivateDueScheduleCommandHandler() commands.ActivateDueScheduleCommandHandler {
	return commands.NewActivateDueScheduleCommandHandler(c.pricingUoWFactory())
}

func (c *CompositionRoot) CreateGetParcelByTrackingNumberQueryHandler() queries.GetParcelByTrackingNumberQueryHandler {
	return queries.NewGetParcelByTrackingNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingRequestsQueryHandler() queries.GetPendingRequestsQueryHandler {
	return queries.NewGetPendingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateQuoteFeeQueryHandler() queries.QuoteFeeQueryHandler {
	return queries.NewQuoteFeeQueryHandler(c.gormDB, c.calculator, c.matcher)
}

// CreateHTTPServer wires every use case handler into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerHandlers{
		SubmitRequest:          c.CreateSubmitRequestCommandHandler(),
		SetRequestWeight:       c.CreateSetRequestWeightCommandHandler(),
		ConfirmRequestWeight:   c.CreateConfirmRequestWeightCommandHandler(),
		SetRequestCategory:     c.CreateSetRequestCategoryCommandHandler(),
		ConfirmRequestCategory: c.CreateConfirmRequestCategoryCommandHandler(),
		ApproveRequest:         c.CreateApproveRequestCommandHandler(),
		RejectRequest:          c.CreateRejectRequestCommandHandler(),
		MarkInTransit:          c.CreateMarkInTransitCommandHandler(),
		RecordArrival:          c.CreateRecordArrivalCommandHandler(),
		MarkAvailable:          c.CreateMarkAvailableCommandHandler(),
		MarkDelivered:          c.CreateMarkDeliveredCommandHandler(),
		OverrideStatus:         c.CreateOverrideStatusCommandHandler(),
		CorrectWeight:          c.CreateCorrectWeightCommandHandler(),
		CreateFeeSchedule:      c.CreateCreateFeeScheduleCommandHandler(),
		CreateSpecialItemRule:  c.CreateCreateSpecialItemRuleCommandHandler(),
		GetParcel:              c.CreateGetParcelByTrackingNumberQueryHandler(),
		GetTrackingHistory:     c.CreateGetTrackingHistoryQueryHandler(),
		GetPendingRequests:     c.CreateGetPendingRequestsQueryHandler(),
		QuoteFee:               c.CreateQuoteFeeQueryHandler(),
	})
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncApprovalUoWFactory func() commands.ApprovalUoW

func (f FuncApprovalUoWFactory) Create() commands.ApprovalUoW {
	return f()
}

type FuncCorrectionUoWFactory func() commands.CorrectionUoW

func (f FuncCorrectionUoWFactory) Create() commands.CorrectionUoW {
	return f()
}
