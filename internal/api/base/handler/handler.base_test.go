package basehdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "resto_commerce/internal/api/base/service"
)

type tenantDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	RestaurantID primitive.ObjectID `bson:"restaurantId"`
}

type globalDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// buildScopedFilter chạy fn trong một request thật để có fiber.Ctx với locals
func buildScopedFilter(t *testing.T, scope string, fn func(c fiber.Ctx) map[string]interface{}) map[string]interface{} {
	t.Helper()

	var filter map[string]interface{}
	app := fiber.New()
	app.Get("/t", func(c fiber.Ctx) error {
		if scope != "" {
			c.Locals("active_restaurant_id", scope)
		}
		filter = fn(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return filter
}

func TestScopedIDFilter_AddsTenantCondition(t *testing.T) {
	h := NewBaseHandler[tenantDoc, tenantDoc, tenantDoc](basesvc.NewBaseServiceMongo[tenantDoc](nil))
	restID := primitive.NewObjectID()
	docID := primitive.NewObjectID()

	filter := buildScopedFilter(t, restID.Hex(), func(c fiber.Ctx) map[string]interface{} {
		return h.ScopedIDFilter(c, docID)
	})

	// Update/delete theo id phải bị chặn trong nhà hàng đang chọn
	assert.Equal(t, docID, filter["_id"])
	assert.Equal(t, restID, filter["restaurantId"])
}

func TestScopedIDFilter_AllSentinelSkipsTenant(t *testing.T) {
	h := NewBaseHandler[tenantDoc, tenantDoc, tenantDoc](basesvc.NewBaseServiceMongo[tenantDoc](nil))
	docID := primitive.NewObjectID()

	filter := buildScopedFilter(t, TenantAllSentinel, func(c fiber.Ctx) map[string]interface{} {
		return h.ScopedIDFilter(c, docID)
	})

	assert.Equal(t, docID, filter["_id"])
	assert.NotContains(t, filter, "restaurantId")
}

func TestScopedFilter_PreservesExistingConditions(t *testing.T) {
	h := NewBaseHandler[tenantDoc, tenantDoc, tenantDoc](basesvc.NewBaseServiceMongo[tenantDoc](nil))
	restID := primitive.NewObjectID()
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	filter := buildScopedFilter(t, restID.Hex(), func(c fiber.Ctx) map[string]interface{} {
		return h.ScopedFilter(c, map[string]interface{}{
			"_id": map[string]interface{}{"$in": ids},
		})
	})

	// Xóa hàng loạt theo danh sách id vẫn bị giới hạn trong tenant
	assert.Equal(t, restID, filter["restaurantId"])
	inCond, ok := filter["_id"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ids, inCond["$in"])
}

func TestScopedFilter_NonTenantModelUnchanged(t *testing.T) {
	h := NewBaseHandler[globalDoc, globalDoc, globalDoc](basesvc.NewBaseServiceMongo[globalDoc](nil))
	docID := primitive.NewObjectID()

	filter := buildScopedFilter(t, primitive.NewObjectID().Hex(), func(c fiber.Ctx) map[string]interface{} {
		return h.ScopedIDFilter(c, docID)
	})

	assert.Equal(t, docID, filter["_id"])
	assert.NotContains(t, filter, "restaurantId")
}
