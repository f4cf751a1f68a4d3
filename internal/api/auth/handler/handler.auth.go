// Package handler xử lý các endpoint xác thực: đăng nhập, đăng xuất,
// thông tin phiên hiện tại và pending sale của POS.
package handler

import (
	"github.com/gofiber/fiber/v3"

	"resto_commerce/internal/api/auth/dto"
	"resto_commerce/internal/api/auth/service"
	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
	"resto_commerce/internal/logger"
)

// HeaderSessionID là header chứa session id của client
const HeaderSessionID = "X-Session-ID"

// AuthHandler xử lý các request xác thực
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler tạo AuthHandler mới
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// validateInput kiểm tra input theo validator chung, validator chưa khởi tạo thì bỏ qua
func validateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// Login xử lý POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := validateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		sess, user, err := h.authService.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogAuth("login", c, map[string]interface{}{"email": user.Email, "role": user.Role})
		return basehdl.HandleResponse(c, dto.LoginResponse{
			SessionID:    sess.ID,
			UserID:       user.ID.Hex(),
			UserName:     user.Name,
			Email:        user.Email,
			Role:         user.Role,
			RestaurantID: user.RestaurantID.Hex(),
		}, nil)
	})
}

// Logout xử lý POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		sessionID := c.Get(HeaderSessionID)
		if err := h.authService.Logout(c.Context(), sessionID); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		logger.LogAuth("logout", c, nil)
		return basehdl.HandleResponse(c, map[string]interface{}{"loggedOut": true}, nil)
	})
}

// Me xử lý GET /auth/me, trả về thông tin phiên đăng nhập hiện tại
func (h *AuthHandler) Me(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		sess, err := h.authService.GetSession(c.Context(), c.Get(HeaderSessionID))
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, dto.MeResponse{
			UserID:        sess.UserID,
			UserName:      sess.UserName,
			Email:         sess.Email,
			Role:          sess.Role,
			RestaurantID:  sess.RestaurantID,
			PendingSaleID: sess.PendingSaleID,
		}, nil)
	})
}

// SetPendingSale xử lý PUT /auth/pending-sale
func (h *AuthHandler) SetPendingSale(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input dto.PendingSaleInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				common.MsgInvalidFormat,
				common.StatusBadRequest,
				err,
			))
		}

		if err := validateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		sess, err := h.authService.SetPendingSale(c.Context(), c.Get(HeaderSessionID), input.SaleID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, map[string]interface{}{"pendingSaleId": sess.PendingSaleID}, nil)
	})
}
