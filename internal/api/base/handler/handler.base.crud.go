package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resto_commerce/internal/common"
	"resto_commerce/internal/logger"
	"resto_commerce/internal/utility"
)

// InsertOne xử lý request tạo mới một document.
// Flow: parse body -> validate -> transform DTO sang model -> gán restaurant id -> insert.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.ValidateInput(&input); err != nil {
			return HandleResponse(c, nil, err)
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		if h.tenantScoped {
			restID := GetActiveRestaurantID(c)
			if restID != "" && restID != TenantAllSentinel {
				h.SetRestaurantID(model, utility.String2ObjectID(restID))
			}
		}

		created, err := h.BaseService.InsertOne(c.Context(), *model)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		logger.LogCRUD("create", h.resourceName, h.modelID(created), c, nil)
		return HandleResponse(c, created, nil)
	})
}

// Find xử lý request tìm nhiều document theo filter (query param "filter", "options")
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		filter = h.applyRestaurantFilter(c, filter)

		opts, err := h.processFindOptions(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		results, err := h.BaseService.Find(c.Context(), filter, opts)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		return HandleResponse(c, results, nil)
	})
}

// FindOne xử lý request tìm một document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		filter = h.applyRestaurantFilter(c, filter)

		opts, err := h.processFindOneOptions(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.BaseService.FindOne(c.Context(), filter, opts)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		return HandleResponse(c, result, nil)
	})
}

// FindOneById xử lý request tìm một document theo path param id
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		filter := h.applyRestaurantFilter(c, map[string]interface{}{"_id": id})
		result, err := h.BaseService.FindOne(c.Context(), filter, nil)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		return HandleResponse(c, result, nil)
	})
}

// FindWithPagination xử lý request tìm kiếm phân trang (query param "page", "limit")
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		filter = h.applyRestaurantFilter(c, filter)

		page := int64(fiber.Query(c, "page", 1))
		limit := int64(fiber.Query(c, "limit", 10))

		opts, err := h.processFindOptions(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		result, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, opts)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		return HandleResponse(c, result, nil)
	})
}

// UpdateById xử lý request cập nhật một document theo path param id.
// Chỉ các field client gửi lên được đưa vào $set.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := h.ValidateInput(&input); err != nil {
			return HandleResponse(c, nil, err)
		}

		data, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		filter := h.applyRestaurantFilter(c, map[string]interface{}{"_id": id})
		updated, err := h.BaseService.UpdateOne(c.Context(), filter, data, nil)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		logger.LogCRUD("update", h.resourceName, h.modelID(updated), c, nil)
		return HandleResponse(c, updated, nil)
	})
}

// DeleteById xử lý request xóa một document theo path param id
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}

		filter := h.applyRestaurantFilter(c, map[string]interface{}{"_id": id})
		if err := h.BaseService.DeleteOne(c.Context(), filter); err != nil {
			return HandleResponse(c, nil, err)
		}

		logger.LogCRUD("delete", h.resourceName, id.Hex(), c, nil)
		return HandleResponse(c, map[string]interface{}{"deleted": true, "id": id.Hex()}, nil)
	})
}

// CountDocuments xử lý request đếm số document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		filter = h.applyRestaurantFilter(c, filter)

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		return HandleResponse(c, map[string]interface{}{"count": count}, nil)
	})
}

// DocumentExists kiểm tra tồn tại document theo filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		filter = h.applyRestaurantFilter(c, filter)

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		if err != nil {
			return HandleResponse(c, nil, err)
		}
		return HandleResponse(c, map[string]interface{}{"exists": exists}, nil)
	})
}

// ParseIDParam đọc và validate path param "id"
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr := c.Params("id")
	if !primitive.IsValidObjectID(idStr) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			"ID không hợp lệ: "+idStr,
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(idStr), nil
}
