// Package handler xử lý các endpoint hệ thống (health check).
package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "resto_commerce/internal/api/base/handler"
	"resto_commerce/internal/global"
)

var startTime = time.Now()

// Health xử lý GET /system/health, báo trạng thái các kết nối hạ tầng.
// Endpoint này không yêu cầu đăng nhập để load balancer thăm dò được.
func Health(c fiber.Ctx) error {
	mongoStatus := "disconnected"
	if global.MongoDB_Session != nil {
		if err := global.MongoDB_Session.Ping(c.Context(), nil); err == nil {
			mongoStatus = "connected"
		}
	}

	redisStatus := "disconnected"
	if global.Redis_Session != nil {
		if err := global.Redis_Session.Ping(c.Context()).Err(); err == nil {
			redisStatus = "connected"
		}
	}

	status := "ok"
	if mongoStatus != "connected" {
		status = "degraded"
	}

	return basehdl.JSONResponse(c, 200, fiber.Map{
		"status":  status,
		"mongodb": mongoStatus,
		"redis":   redisStatus,
		"uptime":  time.Since(startTime).String(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
