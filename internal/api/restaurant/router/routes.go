// Package router đăng ký route cho domain nhà hàng và người dùng.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "resto_commerce/internal/api/auth/service"
	"resto_commerce/internal/api/restaurant/handler"
	"resto_commerce/internal/api/restaurant/service"
	apirouter "resto_commerce/internal/api/router"
	"resto_commerce/internal/global"
)

// Register đăng ký các route /restaurants và /users
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sessions := authsvc.NewSessionService(global.Redis_Session, global.MongoDB_ServerConfig.Session_TTL_Hours)

	restaurantHandler := handler.NewRestaurantHandler(service.NewRestaurantService())
	userHandler := handler.NewUserHandler(service.NewUserService(sessions))

	// Đăng ký nhà hàng kèm admin đầu tiên là form công khai như /auth/login,
	// không yêu cầu session. Nhà hàng đầu tiên sinh ra superadmin của hệ thống.
	v1.Post("/restaurants", restaurantHandler.InsertOne)

	// Xóa nhà hàng có permission chặt hơn các thao tác còn lại
	// nên đăng ký riêng, không đưa vào CRUDConfig.
	r.RegisterCRUDRoutes(v1, "/restaurants", restaurantHandler, apirouter.CRUDConfig{
		Find:       true,
		FindOne:    true,
		FindById:   true,
		Paginate:   true,
		UpdateById: true,
		Count:      true,

		ReadPermission:  authsvc.PermRestaurantRead,
		WritePermission: authsvc.PermRestaurantUpdate,
	})
	r.RegisterRouteWithMiddleware(v1, fiber.MethodDelete, "/restaurants/:id",
		restaurantHandler.DeleteById, r.AuthChain(authsvc.PermRestaurantDelete)...)

	// Tạo và xóa user kiểm tra theo permission riêng, không dùng chung user.update
	r.RegisterCRUDRoutes(v1, "/users", userHandler, apirouter.CRUDConfig{
		Find:       true,
		FindOne:    true,
		FindById:   true,
		Paginate:   true,
		UpdateById: true,
		Count:      true,

		ReadPermission:  authsvc.PermUserRead,
		WritePermission: authsvc.PermUserUpdate,
	})
	r.RegisterRouteWithMiddleware(v1, fiber.MethodPost, "/users",
		userHandler.InsertOne, r.AuthChain(authsvc.PermUserCreate)...)
	r.RegisterRouteWithMiddleware(v1, fiber.MethodDelete, "/users/:id",
		userHandler.DeleteById, r.AuthChain(authsvc.PermUserDelete)...)

	return nil
}
