package utility

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConvertStruct chuyển đổi một struct sang struct khác
// Parameters:
//   - source: Struct nguồn cần chuyển đổi
//   - target: Con trỏ đến struct đích
//
// Returns:
//   - interface{}: Struct đích đã được chuyển đổi
//   - error: Lỗi nếu có
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	// Chuyển source thành JSON
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	// Chuyển JSON thành target struct
	err = json.Unmarshal(jsonData, target)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// String2ObjectID chuyển chuỗi hex thành primitive.ObjectID.
// Chuỗi không hợp lệ trả về ObjectID zero.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// NormalizeName chuẩn hóa tên để so sánh không phân biệt hoa thường.
// Dùng cho việc khớp Purchase.productName với Product.name và dedup tên danh mục.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseISODate parse chuỗi ngày giờ ISO-8601 (RFC3339 hoặc chỉ ngày yyyy-mm-dd).
// Chuỗi rỗng trả về thời điểm hiện tại.
func ParseISODate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("không parse được ngày giờ: %s", value)
}
