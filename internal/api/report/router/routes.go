// Package router đăng ký route cho domain báo cáo.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "resto_commerce/internal/api/auth/service"
	"resto_commerce/internal/api/report/handler"
	"resto_commerce/internal/api/report/service"
	apirouter "resto_commerce/internal/api/router"
)

// Register đăng ký các route /reports
func Register(v1 fiber.Router, r *apirouter.Router) error {
	h := handler.NewReportHandler(service.NewReportService())

	r.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/reports/stock",
		h.Stock, r.AuthChain(authsvc.PermReportView)...)
	r.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/reports/sales",
		h.Sales, r.AuthChain(authsvc.PermReportView)...)

	return nil
}
