// Package router đăng ký route cho domain bán hàng và nhập hàng.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "resto_commerce/internal/api/auth/service"
	"resto_commerce/internal/api/pos/handler"
	"resto_commerce/internal/api/pos/service"
	apirouter "resto_commerce/internal/api/router"
)

// Register đăng ký các route /sales và /purchases
func Register(v1 fiber.Router, r *apirouter.Router) error {
	saleHandler := handler.NewSaleHandler(service.NewSaleService())
	purchaseHandler := handler.NewPurchaseHandler(service.NewPurchaseService())

	// Các path tĩnh của sales phải đăng ký trước /sales/:id
	r.RegisterRouteWithMiddleware(v1, fiber.MethodPost, "/sales/delete-by-ids",
		saleHandler.DeleteManyByIds, r.AuthChain(authsvc.PermSaleDelete)...)

	// Tạo và xóa đơn bán có permission riêng nên đăng ký ngoài CRUDConfig
	r.RegisterCRUDRoutes(v1, "/sales", saleHandler, apirouter.CRUDConfig{
		Find:       true,
		FindOne:    true,
		FindById:   true,
		Paginate:   true,
		UpdateById: true,
		Count:      true,

		ReadPermission:  authsvc.PermSaleRead,
		WritePermission: authsvc.PermSaleUpdate,
	})
	r.RegisterRouteWithMiddleware(v1, fiber.MethodPost, "/sales",
		saleHandler.InsertOne, r.AuthChain(authsvc.PermSaleCreate)...)
	r.RegisterRouteWithMiddleware(v1, fiber.MethodDelete, "/sales/:id",
		saleHandler.DeleteById, r.AuthChain(authsvc.PermSaleDelete)...)

	r.RegisterRouteWithMiddleware(v1, fiber.MethodPut, "/sales/:id/status",
		saleHandler.UpdateStatus, r.AuthChain(authsvc.PermSaleUpdate)...)

	r.RegisterCRUDRoutes(v1, "/purchases", purchaseHandler,
		apirouter.ReadWriteConfig(authsvc.PermPurchaseRead, authsvc.PermPurchaseWrite))

	return nil
}
