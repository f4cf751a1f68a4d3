// Package basehdl - base CRUD handlers.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.
package basehdl

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
	"resto_commerce/internal/utility"
)

// TenantAllSentinel là giá trị đặc biệt của active restaurant id nghĩa là
// "không filter, lấy dữ liệu của tất cả nhà hàng" (chỉ dành cho superadmin).
const TenantAllSentinel = "all"

// BaseHandler xử lý CRUD chung cho một model.
// Type Parameters:
//   - T: Model
//   - CreateInput: DTO đầu vào khi tạo mới
//   - UpdateInput: DTO đầu vào khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T]

	// resourceName: tên loại tài nguyên dùng trong audit log (tên struct của model)
	resourceName string
	// tenantScoped: model có field RestaurantID, dữ liệu được filter theo nhà hàng đang chọn
	tenantScoped bool
}

// NewBaseHandler tạo BaseHandler mới cho một service.
// Tự phát hiện model có field RestaurantID để bật tenant scoping.
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	var zero T
	modelType := reflect.TypeOf(zero)
	_, scoped := modelType.FieldByName("RestaurantID")
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService:  service,
		resourceName: modelType.Name(),
		tenantScoped: scoped,
	}
}

// modelID lấy hex id của model qua reflection (field ID kiểu primitive.ObjectID)
func (h *BaseHandler[T, CreateInput, UpdateInput]) modelID(model T) string {
	field := reflect.ValueOf(model).FieldByName("ID")
	if !field.IsValid() {
		return ""
	}
	if objID, ok := field.Interface().(primitive.ObjectID); ok {
		return objID.Hex()
	}
	return ""
}

// ParseRequestBody parse request body vào dest
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, dest interface{}) error {
	return c.Bind().Body(dest)
}

// ValidateInput validate input với struct tag (validate, oneof, etc.)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// TransformCreateInputToModel chuyển DTO tạo mới sang Model (JSON roundtrip theo json tag)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	var model T
	if _, err := utility.ConvertStruct(input, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// TransformUpdateInputToModel chuyển DTO cập nhật sang map $set (bỏ field zero)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (map[string]interface{}, error) {
	dataMap, err := utility.ToMap(input)
	if err != nil {
		return nil, err
	}
	// Bỏ các field nil để partial update chỉ chạm vào field client gửi lên
	for key, value := range dataMap {
		if value == nil {
			delete(dataMap, key)
		}
	}
	return dataMap, nil
}

// GetActiveRestaurantID lấy active restaurant id từ context (đã được set bởi RestaurantContextMiddleware).
// Trả về chuỗi rỗng nếu chưa chọn nhà hàng.
func GetActiveRestaurantID(c fiber.Ctx) string {
	restID, ok := c.Locals("active_restaurant_id").(string)
	if !ok {
		return ""
	}
	return restID
}

// SetRestaurantID gán restaurant id vào model qua reflection (field RestaurantID)
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetRestaurantID(model *T, id primitive.ObjectID) {
	v := reflect.ValueOf(model).Elem()
	field := v.FieldByName("RestaurantID")
	if field.IsValid() && field.CanSet() && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
		field.Set(reflect.ValueOf(id))
	}
}

// applyRestaurantFilter thêm điều kiện restaurantId vào filter theo tenant đang chọn.
// Sentinel "all" = không filter (union tất cả nhà hàng, middleware đã chặn non-superadmin).
func (h *BaseHandler[T, CreateInput, UpdateInput]) applyRestaurantFilter(c fiber.Ctx, filter map[string]interface{}) map[string]interface{} {
	if !h.tenantScoped {
		return filter
	}
	restID := GetActiveRestaurantID(c)
	if restID == "" || restID == TenantAllSentinel {
		return filter
	}
	objID, err := primitive.ObjectIDFromHex(restID)
	if err != nil {
		return filter
	}
	if filter == nil {
		filter = make(map[string]interface{})
	}
	filter["restaurantId"] = objID
	return filter
}

// ScopedFilter thêm điều kiện restaurantId vào filter theo tenant đang chọn.
// Handler tùy biến phải đi qua đây cho mọi thao tác ghi theo _id để không
// chạm vào document của nhà hàng khác.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ScopedFilter(c fiber.Ctx, filter map[string]interface{}) map[string]interface{} {
	return h.applyRestaurantFilter(c, filter)
}

// ScopedIDFilter dựng filter theo _id đã gắn điều kiện tenant
func (h *BaseHandler[T, CreateInput, UpdateInput]) ScopedIDFilter(c fiber.Ctx, id primitive.ObjectID) map[string]interface{} {
	return h.applyRestaurantFilter(c, map[string]interface{}{"_id": id})
}

// ProcessFilter parse filter từ query string (JSON) và chuẩn hóa các giá trị ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	filterStr := c.Query("filter", "{}")
	var filter map[string]interface{}
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter phải là JSON hợp lệ. Giá trị nhận được: %s", filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Chuẩn hóa _id và các field *Id dạng chuỗi hex thành ObjectID
	for key, value := range filter {
		strVal, ok := value.(string)
		if !ok {
			continue
		}
		if key == "_id" || key == "restaurantId" || key == "userId" {
			if primitive.IsValidObjectID(strVal) {
				filter[key] = utility.String2ObjectID(strVal)
			}
		}
	}

	return filter, nil
}

// findQueryOptions chứa các tùy chọn tìm kiếm parse từ query string
type findQueryOptions struct {
	Sort       map[string]interface{} `json:"sort,omitempty"`
	Projection map[string]interface{} `json:"projection,omitempty"`
	Limit      *int64                 `json:"limit,omitempty"`
	Skip       *int64                 `json:"skip,omitempty"`
}

// processFindOptions parse options từ query string thành *options.FindOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOptions(c fiber.Ctx) (*mongoopts.FindOptions, error) {
	raw, err := h.parseQueryOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.Find()
	if raw.Sort != nil {
		opts.SetSort(raw.Sort)
	}
	if raw.Projection != nil {
		opts.SetProjection(raw.Projection)
	}
	if raw.Limit != nil {
		opts.SetLimit(*raw.Limit)
	}
	if raw.Skip != nil {
		opts.SetSkip(*raw.Skip)
	}
	return opts, nil
}

// processFindOneOptions parse options từ query string thành *options.FindOneOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFindOneOptions(c fiber.Ctx) (*mongoopts.FindOneOptions, error) {
	raw, err := h.parseQueryOptions(c)
	if err != nil {
		return nil, err
	}

	opts := mongoopts.FindOne()
	if raw.Sort != nil {
		opts.SetSort(raw.Sort)
	}
	if raw.Projection != nil {
		opts.SetProjection(raw.Projection)
	}
	return opts, nil
}

// parseQueryOptions parse query param "options" (JSON)
func (h *BaseHandler[T, CreateInput, UpdateInput]) parseQueryOptions(c fiber.Ctx) (*findQueryOptions, error) {
	optionsStr := c.Query("options", "{}")
	var raw findQueryOptions
	if err := json.Unmarshal([]byte(optionsStr), &raw); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options phải là JSON hợp lệ. Giá trị nhận được: %s", optionsStr),
			common.StatusBadRequest,
			err,
		)
	}
	return &raw, nil
}
