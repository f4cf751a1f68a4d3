// Package router đăng ký route cho domain thực đơn.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "resto_commerce/internal/api/auth/service"
	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/catalog/handler"
	"resto_commerce/internal/api/catalog/models"
	"resto_commerce/internal/api/catalog/service"
	apirouter "resto_commerce/internal/api/router"
	"resto_commerce/internal/global"
)

// Register đăng ký các route /products và /categories
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	productHandler := handler.NewProductHandler(basesvc.NewBaseServiceMongo[models.Product](productCol))

	categoryService := service.NewCategoryService()
	categoryHandler := handler.NewCategoryHandler(categoryService)

	r.RegisterCRUDRoutes(v1, "/products", productHandler,
		apirouter.ReadWriteConfig(authsvc.PermCatalogRead, authsvc.PermCatalogWrite))

	// Listing gộp theo phạm vi phải đăng ký trước /categories/:id
	r.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/categories/list",
		categoryHandler.List, r.AuthChain(authsvc.PermCatalogRead)...)

	r.RegisterCRUDRoutes(v1, "/categories", categoryHandler,
		apirouter.ReadWriteConfig(authsvc.PermCatalogRead, authsvc.PermCatalogWrite))

	return nil
}
