package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "resto_commerce/internal/api/auth/models"
	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/common"
)

// HeaderActiveRestaurantID là header chọn nhà hàng đang thao tác.
// Giá trị "all" nghĩa là truy vấn trên tất cả nhà hàng (chỉ superadmin).
const HeaderActiveRestaurantID = "X-Active-Restaurant-ID"

// RestaurantContext xác định nhà hàng đang được thao tác cho request.
// Thứ tự ưu tiên: header X-Active-Restaurant-ID, sau đó nhà hàng của user trong session.
// Phải đặt sau Authenticated trong chain.
func (m *AuthMiddleware) RestaurantContext() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		active := c.Get(HeaderActiveRestaurantID)

		if active == "" {
			active, _ = c.Locals(LocalRestaurantID).(string)
		}

		if active == basehdl.TenantAllSentinel {
			if role != authmodels.RoleSuperadmin {
				return basehdl.HandleResponse(c, nil, common.ErrTenantScopeForbidden)
			}
			c.Locals(LocalActiveRestaurantID, basehdl.TenantAllSentinel)
			return c.Next()
		}

		if !primitive.IsValidObjectID(active) {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Restaurant id không hợp lệ: "+active,
				common.StatusBadRequest,
				nil,
			))
		}

		// User thường chỉ được thao tác trong nhà hàng của chính mình
		if role != authmodels.RoleSuperadmin {
			own, _ := c.Locals(LocalRestaurantID).(string)
			if active != own {
				return basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
			}
		}

		c.Locals(LocalActiveRestaurantID, active)
		return c.Next()
	}
}
