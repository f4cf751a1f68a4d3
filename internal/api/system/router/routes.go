// Package router đăng ký route hệ thống.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "resto_commerce/internal/api/router"
	"resto_commerce/internal/api/system/handler"
)

// Register đăng ký route /system/health (không yêu cầu đăng nhập)
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	v1.Get("/system/health", handler.Health)
	return nil
}
