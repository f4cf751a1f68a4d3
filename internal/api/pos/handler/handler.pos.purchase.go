package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/api/pos/dto"
	"resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/api/pos/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/logger"
	"resto_commerce/internal/utility"
)

// PurchaseHandler xử lý CRUD phiếu nhập hàng.
// Tạo và cập nhật cần parse ngày giờ ISO-8601 nên không dùng transform chung.
type PurchaseHandler struct {
	*basehdl.BaseHandler[models.Purchase, dto.PurchaseCreateInput, dto.PurchaseUpdateInput]
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler tạo PurchaseHandler mới
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Purchase, dto.PurchaseCreateInput, dto.PurchaseUpdateInput](purchaseService.Purchases()),
		purchaseService: purchaseService,
	}
}

// InsertOne tạo phiếu nhập hàng mới trong nhà hàng đang chọn
func (h *PurchaseHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.PurchaseCreateInput
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
				"Phải chọn một nhà hàng cụ thể để tạo phiếu nhập",
				common.StatusBadRequest,
				nil,
			))
		}

		purchase, err := service.PurchaseFromCreateInput(&input, utility.String2ObjectID(restID))
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		created, err := h.BaseService.InsertOne(c.Context(), *purchase)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("create", "Purchase", created.ID.Hex(), c, map[string]interface{}{
			"product":  created.ProductName,
			"quantity": created.Quantity,
		})
		return basehdl.HandleResponse(c, created, nil)
	})
}

// UpdateById cập nhật phiếu nhập hàng theo id
func (h *PurchaseHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input dto.PurchaseUpdateInput
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

		data, err := service.PurchaseUpdateData(&input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		// Update theo filter đã gắn tenant, id thuộc nhà hàng khác trả về not found
		updated, err := h.BaseService.UpdateOne(c.Context(), h.ScopedIDFilter(c, id), data, nil)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("update", "Purchase", id.Hex(), c, nil)
		return basehdl.HandleResponse(c, updated, nil)
	})
}
