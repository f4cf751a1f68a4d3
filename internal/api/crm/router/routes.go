// Package router đăng ký route cho domain khách hàng.
// Khách hàng chỉ cần CRUD chuẩn nên dùng trực tiếp BaseHandler.
package router

import (
	"github.com/gofiber/fiber/v3"

	authsvc "resto_commerce/internal/api/auth/service"
	basehdl "resto_commerce/internal/api/base/handler"
	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/crm/dto"
	"resto_commerce/internal/api/crm/models"
	apirouter "resto_commerce/internal/api/router"
	"resto_commerce/internal/global"
)

// Register đăng ký các route /customers
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	customerHandler := basehdl.NewBaseHandler[models.Customer, dto.CustomerCreateInput, dto.CustomerUpdateInput](
		basesvc.NewBaseServiceMongo[models.Customer](customerCol))

	r.RegisterCRUDRoutes(v1, "/customers", customerHandler,
		apirouter.ReadWriteConfig(authsvc.PermCustomerRead, authsvc.PermCustomerWrite))

	return nil
}
