// Package service chứa logic nghiệp vụ cho thực đơn: sản phẩm và danh mục.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/catalog/models"
	"resto_commerce/internal/global"
	"resto_commerce/internal/utility"
)

// CategoryService xử lý nghiệp vụ danh mục
type CategoryService struct {
	categories basesvc.BaseServiceMongo[models.Category]
}

// NewCategoryService tạo CategoryService từ registry collections
func NewCategoryService() *CategoryService {
	col, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	return &CategoryService{
		categories: basesvc.NewBaseServiceMongo[models.Category](col),
	}
}

// Categories trả về base service của collection categories
func (s *CategoryService) Categories() basesvc.BaseServiceMongo[models.Category] {
	return s.categories
}

// ListForScope liệt kê danh mục theo phạm vi nhà hàng.
// Phạm vi "all" trả về union danh mục của mọi nhà hàng, gộp các dòng trùng tên.
func (s *CategoryService) ListForScope(ctx context.Context, restaurantScope string) ([]models.CategoryView, error) {
	filter := bson.M{}
	allScope := restaurantScope == "" || restaurantScope == "all"
	if !allScope {
		filter["restaurantId"] = utility.String2ObjectID(restaurantScope)
	}

	categories, err := s.categories.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	if allScope {
		return DedupCategoriesByName(categories), nil
	}

	views := make([]models.CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, models.CategoryView{
			ID:           cat.ID.Hex(),
			Name:         cat.Name,
			RestaurantID: cat.RestaurantID.Hex(),
		})
	}
	return views, nil
}

// DedupCategoriesByName gộp các danh mục trùng tên (không phân biệt hoa thường)
// thành một dòng hiển thị duy nhất với id tổng hợp bằng chính tên danh mục.
// Giữ nguyên thứ tự xuất hiện đầu tiên, tên hiển thị lấy theo dòng đầu tiên.
func DedupCategoriesByName(categories []models.Category) []models.CategoryView {
	seen := make(map[string]bool, len(categories))
	views := make([]models.CategoryView, 0, len(categories))

	for _, cat := range categories {
		key := utility.NormalizeName(cat.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		views = append(views, models.CategoryView{
			ID:        cat.Name,
			Name:      cat.Name,
			Synthetic: true,
		})
	}
	return views
}
