// Package handler xử lý request cho domain thực đơn.
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehdl "resto_commerce/internal/api/base/handler"
	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/catalog/dto"
	"resto_commerce/internal/api/catalog/models"
	"resto_commerce/internal/api/catalog/service"
)

// ProductHandler dùng CRUD chung cho sản phẩm, không có nghiệp vụ riêng
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
}

// NewProductHandler tạo ProductHandler mới
func NewProductHandler(products basesvc.BaseServiceMongo[models.Product]) *ProductHandler {
	return &ProductHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput](products),
	}
}

// CategoryHandler dùng CRUD chung cho danh mục, thêm endpoint listing theo phạm vi
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput]
	categoryService *service.CategoryService
}

// NewCategoryHandler tạo CategoryHandler mới
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput](categoryService.Categories()),
		categoryService: categoryService,
	}
}

// List xử lý GET /categories/list, trả về danh mục theo phạm vi nhà hàng đang chọn.
// Phạm vi "all" gộp các danh mục trùng tên giữa các nhà hàng.
func (h *CategoryHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		scope := basehdl.GetActiveRestaurantID(c)
		views, err := h.categoryService.ListForScope(c.Context(), scope)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, views, nil)
	})
}
