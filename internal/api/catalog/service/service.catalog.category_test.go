package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resto_commerce/internal/api/catalog/models"
)

func TestDedupCategoriesByName(t *testing.T) {
	restA := primitive.NewObjectID()
	restB := primitive.NewObjectID()

	categories := []models.Category{
		{ID: primitive.NewObjectID(), Name: "Bebidas", RestaurantID: restA},
		{ID: primitive.NewObjectID(), Name: "bebidas", RestaurantID: restB},
		{ID: primitive.NewObjectID(), Name: "Postres", RestaurantID: restA},
		{ID: primitive.NewObjectID(), Name: "  Bebidas ", RestaurantID: restB},
	}

	views := DedupCategoriesByName(categories)

	assert.Len(t, views, 2, "danh mục trùng tên phải được gộp thành một dòng")
	assert.Equal(t, "Bebidas", views[0].Name, "tên hiển thị lấy theo dòng xuất hiện đầu tiên")
	assert.Equal(t, "Bebidas", views[0].ID, "id tổng hợp bằng chính tên danh mục")
	assert.True(t, views[0].Synthetic)
	assert.Equal(t, "Postres", views[1].Name)
}

func TestDedupCategoriesByName_Empty(t *testing.T) {
	views := DedupCategoriesByName(nil)
	assert.Empty(t, views)
	assert.NotNil(t, views)
}

func TestDedupCategoriesByName_KeepsOrder(t *testing.T) {
	categories := []models.Category{
		{ID: primitive.NewObjectID(), Name: "Sopas"},
		{ID: primitive.NewObjectID(), Name: "Carnes"},
		{ID: primitive.NewObjectID(), Name: "sopas"},
		{ID: primitive.NewObjectID(), Name: "Ensaladas"},
	}

	views := DedupCategoriesByName(categories)

	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Sopas", "Carnes", "Ensaladas"}, names)
}
