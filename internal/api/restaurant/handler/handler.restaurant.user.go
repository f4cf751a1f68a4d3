package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/api/middleware"
	"resto_commerce/internal/api/restaurant/dto"
	"resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/api/restaurant/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/logger"
	"resto_commerce/internal/utility"
)

// UserHandler xử lý CRUD người dùng trong nhà hàng đang chọn
type UserHandler struct {
	*basehdl.BaseHandler[models.User, dto.UserCreateInput, dto.UserUpdateInput]
	userService *service.UserService
}

// NewUserHandler tạo UserHandler mới
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, dto.UserCreateInput, dto.UserUpdateInput](userService.Users()),
		userService: userService,
	}
}

// InsertOne tạo user mới trong nhà hàng đang chọn
func (h *UserHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.UserCreateInput
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
				"Phải chọn một nhà hàng cụ thể để tạo user",
				common.StatusBadRequest,
				nil,
			))
		}

		user := &models.User{
			Name:         input.Name,
			Email:        input.Email,
			Password:     input.Password,
			Role:         input.Role,
			RestaurantID: utility.String2ObjectID(restID),
		}

		created, err := h.userService.Create(c.Context(), user)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("create", "User", created.ID.Hex(), c, map[string]interface{}{"role": created.Role})
		return basehdl.HandleResponse(c, created, nil)
	})
}

// UpdateById cập nhật user theo id
func (h *UserHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input dto.UserUpdateInput
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

		// User phải thuộc nhà hàng đang chọn, id ngoài tenant trả về not found
		if _, err := h.BaseService.FindOne(c.Context(), h.ScopedIDFilter(c, id), nil); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		data := map[string]interface{}{}
		if input.Name != nil {
			data["name"] = *input.Name
		}
		if input.Email != nil {
			data["email"] = *input.Email
		}
		if input.Password != nil {
			data["password"] = *input.Password
		}
		if input.Role != nil {
			data["role"] = *input.Role
		}

		updated, err := h.userService.Update(c.Context(), id, data)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("update", "User", id.Hex(), c, nil)
		return basehdl.HandleResponse(c, updated, nil)
	})
}

// DeleteById xóa user theo id, áp các ràng buộc xóa user
func (h *UserHandler) DeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := h.ParseIDParam(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		// User phải thuộc nhà hàng đang chọn, id ngoài tenant trả về not found
		if _, err := h.BaseService.FindOne(c.Context(), h.ScopedIDFilter(c, id), nil); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		actorID, _ := c.Locals(middleware.LocalUserID).(string)
		if err := h.userService.Delete(c.Context(), actorID, id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCRUD("delete", "User", id.Hex(), c, nil)
		return basehdl.HandleResponse(c, map[string]interface{}{"deleted": true, "id": id.Hex()}, nil)
	})
}
