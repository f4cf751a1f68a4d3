// Package middleware chứa các middleware xác thực và tenant context.
// Thông tin user/tenant được gắn vào request locals, handler không đọc global.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	authsvc "resto_commerce/internal/api/auth/service"
	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/common"
)

// Các key locals được middleware gắn vào request
const (
	LocalSessionID    = "session_id"
	LocalUserID       = "user_id"
	LocalUserName     = "user_name"
	LocalUserEmail    = "user_email"
	LocalUserRole     = "user_role"
	LocalRestaurantID = "restaurant_id"
	// LocalActiveRestaurantID: nhà hàng đang được chọn để thao tác (có thể khác nhà hàng của user khi superadmin)
	LocalActiveRestaurantID = "active_restaurant_id"
)

// HeaderSessionID là header chứa session id
const HeaderSessionID = "X-Session-ID"

// AuthMiddleware kiểm tra session và phân quyền cho các route cần đăng nhập
type AuthMiddleware struct {
	authService *authsvc.AuthService
}

// NewAuthMiddleware tạo AuthMiddleware mới
func NewAuthMiddleware(authService *authsvc.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticated yêu cầu request có session hợp lệ.
// Session hợp lệ thì thông tin user được gắn vào locals cho các handler phía sau.
func (m *AuthMiddleware) Authenticated() fiber.Handler {
	return func(c fiber.Ctx) error {
		sessionID := c.Get(HeaderSessionID)
		if sessionID == "" {
			return basehdl.HandleResponse(c, nil, common.ErrSessionMissing)
		}

		sess, err := m.authService.GetSession(c.Context(), sessionID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		c.Locals(LocalSessionID, sess.ID)
		c.Locals(LocalUserID, sess.UserID)
		c.Locals(LocalUserName, sess.UserName)
		c.Locals(LocalUserEmail, sess.Email)
		c.Locals(LocalUserRole, sess.Role)
		c.Locals(LocalRestaurantID, sess.RestaurantID)

		return c.Next()
	}
}

// RequirePermission yêu cầu role của user được phép thực hiện action.
// Phải đặt sau Authenticated trong chain.
func (m *AuthMiddleware) RequirePermission(action string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		if role == "" {
			return basehdl.HandleResponse(c, nil, common.ErrSessionMissing)
		}
		if !authsvc.CanPerform(role, action) {
			return basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
		}
		return c.Next()
	}
}
