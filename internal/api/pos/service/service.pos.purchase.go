package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/pos/dto"
	"resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
	"resto_commerce/internal/utility"
)

// PurchaseService xử lý nghiệp vụ phiếu nhập hàng
type PurchaseService struct {
	purchases basesvc.BaseServiceMongo[models.Purchase]
}

// NewPurchaseService tạo PurchaseService từ registry collections
func NewPurchaseService() *PurchaseService {
	col, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Purchases)
	return &PurchaseService{
		purchases: basesvc.NewBaseServiceMongo[models.Purchase](col),
	}
}

// Purchases trả về base service của collection purchases
func (s *PurchaseService) Purchases() basesvc.BaseServiceMongo[models.Purchase] {
	return s.purchases
}

// PurchaseFromCreateInput dựng model phiếu nhập từ input
func PurchaseFromCreateInput(input *dto.PurchaseCreateInput, restaurantID primitive.ObjectID) (*models.Purchase, error) {
	purchaseDate, err := utility.ParseISODate(input.PurchaseDate)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"purchaseDate phải là chuỗi ISO-8601: "+input.PurchaseDate,
			common.StatusBadRequest,
			err,
		)
	}

	return &models.Purchase{
		ProductName:  input.ProductName,
		Supplier:     input.Supplier,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		PurchaseDate: primitive.NewDateTimeFromTime(purchaseDate),
		RestaurantID: restaurantID,
	}, nil
}

// PurchaseUpdateData dựng map update từ input cập nhật, chỉ gồm các field được gửi lên
func PurchaseUpdateData(input *dto.PurchaseUpdateInput) (map[string]interface{}, error) {
	data := map[string]interface{}{}

	if input.ProductName != nil {
		data["productName"] = *input.ProductName
	}
	if input.Supplier != nil {
		data["supplier"] = *input.Supplier
	}
	if input.Quantity != nil {
		data["quantity"] = *input.Quantity
	}
	if input.UnitPrice != nil {
		data["unitPrice"] = *input.UnitPrice
	}
	if input.PurchaseDate != nil {
		purchaseDate, err := utility.ParseISODate(*input.PurchaseDate)
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				"purchaseDate phải là chuỗi ISO-8601: "+*input.PurchaseDate,
				common.StatusBadRequest,
				err,
			)
		}
		data["purchaseDate"] = primitive.NewDateTimeFromTime(purchaseDate)
	}

	return data, nil
}
