// Package handler xử lý request cho domain bán hàng và nhập hàng.
package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/api/middleware"
	"resto_commerce/internal/api/pos/dto"
	"resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/api/pos/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/logger"
	"resto_commerce/internal/utility"
)

// SaleHandler xử lý CRUD đơn bán.
// Tạo và cập nhật cần parse ngày giờ ISO-8601 nên không dùng transform chung.
type SaleHandler struct {
	*basehdl.BaseHandler[models.Sale, dto.SaleCreateInput, dto.SaleUpdateInput]
	saleService *service.SaleService
}

// NewSaleHandler tạo SaleHandler mới
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Sale, dto.SaleCreateInput, dto.SaleUpdateInput](saleService.Sales()),
		saleService: saleService,
	}
}

// InsertOne tạo đơn bán mới. Người bán và nhà hàng lấy từ context đăng nhập.
func (h *SaleHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.SaleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		restID := basehdl.GetActiveRestaurantID(c)
		if restID == "" || restID == basehdl.TenantAllSentinel {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Phải chọn một nhà hàng cụ thể để tạo đơn bán",
				common.StatusBadRequest,
				nil,
			))
		}

		userID, _ := c.Locals(middleware.LocalUserID).(string)
		userName, _ := c.Locals(middleware.LocalUserName).(string)

		sale, err := service.SaleFromCreateInput(&input,
			utility.String2ObjectID(userID), userName, utility.String2ObjectID(restID))
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		created, err := h.BaseService.InsertOne(c.Context(), *sale)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("create", "Sale", created.ID.Hex(), c, map[string]interface{}{
			"total":  created.TotalPrice,
			"status": created.Status,
		})
		return basehdl.HandleResponse(c, created, nil)
	})
}

// UpdateById cập nhật đơn bán theo id
func (h *SaleHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input dto.SaleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		data, err := service.SaleUpdateData(&input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		// Update theo filter đã gắn tenant, id thuộc nhà hàng khác trả về not found
		updated, err := h.BaseService.UpdateOne(c.Context(), h.ScopedIDFilter(c, id), data, nil)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("update", "Sale", id.Hex(), c, nil)
		return basehdl.HandleResponse(c, updated, nil)
	})
}

// UpdateStatus xử lý PUT /sales/:id/status
func (h *SaleHandler) UpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input dto.SaleStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		updated, err := h.saleService.UpdateStatus(c.Context(), h.ScopedIDFilter(c, id), input.Status)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("update", "Sale", id.Hex(), c, map[string]interface{}{"status": input.Status})
		return basehdl.HandleResponse(c, updated, nil)
	})
}

// DeleteManyByIds xử lý POST /sales/delete-by-ids, xóa nhiều đơn bán một lượt
func (h *SaleHandler) DeleteManyByIds(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.SaleDeleteManyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		ids := make([]primitive.ObjectID, 0, len(input.IDs))
		for _, idStr := range input.IDs {
			ids = append(ids, utility.String2ObjectID(idStr))
		}

		// Chỉ xóa các đơn thuộc nhà hàng đang chọn, id ngoài tenant bị bỏ qua
		filter := h.ScopedFilter(c, map[string]interface{}{
			"_id": map[string]interface{}{"$in": ids},
		})
		deleted, err := h.BaseService.DeleteMany(c.Context(), filter)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("delete", "Sale", "", c, map[string]interface{}{"requested": len(ids), "deleted": deleted})
		return basehdl.HandleResponse(c, map[string]interface{}{"deleted": deleted}, nil)
	})
}
