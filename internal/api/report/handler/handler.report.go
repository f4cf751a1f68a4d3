// Package handler xử lý các endpoint báo cáo.
package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/api/report/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/utility"
)

// defaultSalesRangeDays là số ngày của khoảng báo cáo doanh thu khi client không chỉ định
const defaultSalesRangeDays = 30

// ReportHandler xử lý request báo cáo tồn kho và doanh thu
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler tạo ReportHandler mới
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Stock xử lý GET /reports/stock
func (h *ReportHandler) Stock(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		scope := basehdl.GetActiveRestaurantID(c)
		rows, err := h.reportService.GetStockReport(c.Context(), scope)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, rows, nil)
	})
}

// Sales xử lý GET /reports/sales?from=yyyy-mm-dd&to=yyyy-mm-dd.
// Không có from/to thì mặc định 30 ngày gần nhất.
func (h *ReportHandler) Sales(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		now := time.Now().UTC()
		from := now.AddDate(0, 0, -(defaultSalesRangeDays - 1))
		to := now

		if fromStr := c.Query("from"); fromStr != "" {
			parsed, err := utility.ParseISODate(fromStr)
			if err != nil {
				return basehdl.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					"from phải là ngày dạng yyyy-mm-dd: "+fromStr,
					common.StatusBadRequest,
					err,
				))
			}
			from = parsed
		}
		if toStr := c.Query("to"); toStr != "" {
			parsed, err := utility.ParseISODate(toStr)
			if err != nil {
				return basehdl.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					"to phải là ngày dạng yyyy-mm-dd: "+toStr,
					common.StatusBadRequest,
					err,
				))
			}
			to = parsed
		}

		if to.Before(from) {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Khoảng ngày không hợp lệ: to đứng trước from",
				common.StatusBadRequest,
				nil,
			))
		}

		scope := basehdl.GetActiveRestaurantID(c)
		report, err := h.reportService.GetSalesReport(c.Context(), scope, from, to)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, report, nil)
	})
}
