// Package router đăng ký route cho domain xác thực.
package router

import (
	"github.com/gofiber/fiber/v3"

	"resto_commerce/internal/api/auth/handler"
	"resto_commerce/internal/api/auth/service"
	apirouter "resto_commerce/internal/api/router"
	"resto_commerce/internal/global"
)

// Register đăng ký các route /auth
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sessions := service.NewSessionService(global.Redis_Session, global.MongoDB_ServerConfig.Session_TTL_Hours)
	authService := service.NewAuthService(sessions)
	h := handler.NewAuthHandler(authService)

	// Login và logout không yêu cầu session
	v1.Post("/auth/login", h.Login)
	v1.Post("/auth/logout", h.Logout)

	// Các route còn lại yêu cầu session hợp lệ
	authChain := []fiber.Handler{r.Auth.Authenticated()}
	r.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/auth/me", h.Me, authChain...)
	r.RegisterRouteWithMiddleware(v1, fiber.MethodPut, "/auth/pending-sale", h.SetPendingSale, authChain...)

	return nil
}
