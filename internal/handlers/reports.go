package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/reports"
	"go.uber.org/zap"
)

// ReportsHandler serves aggregated order data for the weekly kitchen workbook.
type ReportsHandler struct {
	reports *reports.Service
	logger  *zap.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(service *reports.Service, logger *zap.Logger) *ReportsHandler {
	return &ReportsHandler{reports: service, logger: logger}
}

// WeeklyWorkbookRequest selects the delivery week to report on.
type WeeklyWorkbookRequest struct {
	Start string `doc:"First delivery date (YYYY-MM-DD)" example:"2026-08-24" query:"start" required:"true"`
	End   string `doc:"Last delivery date (YYYY-MM-DD)"  example:"2026-08-30" query:"end"   required:"true"`
}

// WeeklyWorkbookResponse carries the raw orders for the week plus quantities
// aggregated per customer, day and menu item.
type WeeklyWorkbookResponse struct {
	Body struct {
		Success    bool               `json:"success"`
		DateRange  reports.DateRange  `json:"date_range"`
		Customers  []string           `json:"customers"`
		MenuItems  []MenuItemPayload  `json:"menu_items"`
		Orders     []OrderPayload     `json:"orders"`
		Aggregated reports.Aggregated `json:"aggregated_data"`
	}
}

func (h *ReportsHandler) WeeklyWorkbook(ctx context.Context, req *WeeklyWorkbookRequest) (*WeeklyWorkbookResponse, error) {
	if req.Start > req.End {
		return nil, huma.Error400BadRequest("start must not be after end")
	}

	report, err := h.reports.Weekly(ctx, req.Start, req.End)
	if err != nil {
		h.logger.Error("failed to build weekly workbook data",
			zap.String("start", req.Start),
			zap.String("end", req.End),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to fetch weekly workbook data")
	}

	resp := &WeeklyWorkbookResponse{}
	resp.Body.Success = true
	resp.Body.DateRange = report.DateRange
	resp.Body.Customers = report.Customers
	resp.Body.MenuItems = menuItemPayloads(report.MenuItems)
	resp.Body.Orders = orderPayloads(report.Orders)
	resp.Body.Aggregated = report.Aggregated

	return resp, nil
}
