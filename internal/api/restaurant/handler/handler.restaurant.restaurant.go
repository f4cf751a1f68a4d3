// Package handler xử lý request cho domain nhà hàng và người dùng.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/api/restaurant/dto"
	"resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/api/restaurant/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/logger"
)

// RestaurantHandler xử lý CRUD nhà hàng.
// Tạo, cập nhật và xóa có nghiệp vụ riêng (kèm tài khoản quản trị, xóa dây chuyền),
// các thao tác đọc dùng CRUD chung.
type RestaurantHandler struct {
	*basehdl.BaseHandler[models.Restaurant, dto.RestaurantCreateInput, dto.RestaurantUpdateInput]
	restaurantService *service.RestaurantService
}

// NewRestaurantHandler tạo RestaurantHandler mới
func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Restaurant, dto.RestaurantCreateInput, dto.RestaurantUpdateInput](restaurantService.Restaurants()),
		restaurantService: restaurantService,
	}
}

// InsertOne tạo nhà hàng mới kèm tài khoản quản trị
func (h *RestaurantHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.RestaurantCreateInput
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

		rest := &models.Restaurant{
			Name:    input.Name,
			Address: input.Address,
			Phone:   input.Phone,
		}
		admin := &models.User{
			Name:     input.Admin.Name,
			Email:    input.Admin.Email,
			Password: input.Admin.Password,
		}

		createdRest, createdAdmin, err := h.restaurantService.CreateWithAdmin(c.Context(), rest, admin)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("create", "Restaurant", createdRest.ID.Hex(), c, map[string]interface{}{
			"admin_email": createdAdmin.Email,
			"admin_role":  createdAdmin.Role,
		})
		return basehdl.HandleResponse(c, map[string]interface{}{
			"restaurant": createdRest,
			"admin":      createdAdmin,
		}, nil)
	})
}

// UpdateById cập nhật nhà hàng, kèm tài khoản quản trị nếu body có phần admin
func (h *RestaurantHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input dto.RestaurantUpdateInput
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

		restUpdate := map[string]interface{}{}
		if input.Name != nil {
			restUpdate["name"] = *input.Name
		}
		if input.Address != nil {
			restUpdate["address"] = *input.Address
		}
		if input.Phone != nil {
			restUpdate["phone"] = *input.Phone
		}

		adminUpdate := map[string]interface{}{}
		if input.Admin != nil {
			if input.Admin.Name != nil {
				adminUpdate["name"] = *input.Admin.Name
			}
			if input.Admin.Email != nil {
				adminUpdate["email"] = *input.Admin.Email
			}
			if input.Admin.Password != nil {
				adminUpdate["password"] = *input.Admin.Password
			}
		}

		updated, err := h.restaurantService.UpdateWithAdmin(c.Context(), id, restUpdate, adminUpdate)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("update", "Restaurant", id.Hex(), c, nil)
		return basehdl.HandleResponse(c, updated, nil)
	})
}

// DeleteById xóa nhà hàng cùng toàn bộ dữ liệu con
func (h *RestaurantHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		if err := h.restaurantService.DeleteCascade(c.Context(), id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("delete", "Restaurant", id.Hex(), c, nil)
		return basehdl.HandleResponse(c, map[string]interface{}{"deleted": true, "id": id.Hex()}, nil)
	})
}
