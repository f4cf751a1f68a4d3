// Package service chứa logic nghiệp vụ bán hàng và nhập hàng.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/pos/dto"
	"resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
	"resto_commerce/internal/utility"
)

// SaleService xử lý nghiệp vụ đơn bán
type SaleService struct {
	sales basesvc.BaseServiceMongo[models.Sale]
}

// NewSaleService tạo SaleService từ registry collections
func NewSaleService() *SaleService {
	col, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Sales)
	return &SaleService{
		sales: basesvc.NewBaseServiceMongo[models.Sale](col),
	}
}

// Sales trả về base service của collection sales
func (s *SaleService) Sales() basesvc.BaseServiceMongo[models.Sale] {
	return s.sales
}

// SaleFromCreateInput dựng model đơn bán từ input.
// Người tạo và nhà hàng lấy từ context đăng nhập, không nhận từ client.
func SaleFromCreateInput(input *dto.SaleCreateInput, userID primitive.ObjectID, userName string, restaurantID primitive.ObjectID) (*models.Sale, error) {
	saleDate, err := utility.ParseISODate(input.SaleDate)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"saleDate phải là chuỗi ISO-8601: "+input.SaleDate,
			common.StatusBadRequest,
			err,
		)
	}

	status := input.Status
	if status == "" {
		status = models.SaleStatusPending
	}
	if !models.IsValidSaleStatus(status) {
		return nil, common.ErrInvalidSaleStatus
	}

	items := make([]models.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.SaleItem{
			ProductID: utility.String2ObjectID(item.ID),
			Name:      item.Name,
			Price:     item.Price,
			Category:  item.Category,
			Quantity:  item.Quantity,
		})
	}

	return &models.Sale{
		CustomerName: input.CustomerName,
		TableNumber:  input.TableNumber,
		Items:        items,
		TotalPrice:   input.TotalPrice,
		SaleDate:     primitive.NewDateTimeFromTime(saleDate),
		UserID:       userID,
		UserName:     userName,
		RestaurantID: restaurantID,
		Status:       status,
	}, nil
}

// SaleUpdateData dựng map update từ input cập nhật, chỉ gồm các field được gửi lên
func SaleUpdateData(input *dto.SaleUpdateInput) (map[string]interface{}, error) {
	data := map[string]interface{}{}

	if input.CustomerName != nil {
		data["customerName"] = *input.CustomerName
	}
	if input.TableNumber != nil {
		data["tableNumber"] = *input.TableNumber
	}
	if input.TotalPrice != nil {
		data["totalPrice"] = *input.TotalPrice
	}
	if input.Status != nil {
		if !models.IsValidSaleStatus(*input.Status) {
			return nil, common.ErrInvalidSaleStatus
		}
		data["status"] = *input.Status
	}
	if input.SaleDate != nil {
		saleDate, err := utility.ParseISODate(*input.SaleDate)
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				"saleDate phải là chuỗi ISO-8601: "+*input.SaleDate,
				common.StatusBadRequest,
				err,
			)
		}
		data["saleDate"] = primitive.NewDateTimeFromTime(saleDate)
	}
	if input.Items != nil {
		items := make([]models.SaleItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, models.SaleItem{
				ProductID: utility.String2ObjectID(item.ID),
				Name:      item.Name,
				Price:     item.Price,
				Category:  item.Category,
				Quantity:  item.Quantity,
			})
		}
		data["items"] = items
	}

	return data, nil
}

// UpdateStatus cập nhật trạng thái đơn bán (pending -> paid hoặc ngược lại).
// filter do handler dựng, đã bao gồm điều kiện tenant.
func (s *SaleService) UpdateStatus(ctx context.Context, filter interface{}, status string) (*models.Sale, error) {
	if !models.IsValidSaleStatus(status) {
		return nil, common.ErrInvalidSaleStatus
	}

	updated, err := s.sales.UpdateOne(ctx, filter, map[string]interface{}{"status": status}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
