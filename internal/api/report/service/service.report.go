package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "resto_commerce/internal/api/base/service"
	catalogmodels "resto_commerce/internal/api/catalog/models"
	crmmodels "resto_commerce/internal/api/crm/models"
	posmodels "resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/api/report/models"
	"resto_commerce/internal/global"
	"resto_commerce/internal/utility"
)

// ReportService nạp dữ liệu gốc của một phạm vi nhà hàng và tính báo cáo.
// Mỗi lần gọi nạp toàn bộ collection liên quan, không cache kết quả.
type ReportService struct {
	products  basesvc.BaseServiceMongo[catalogmodels.Product]
	sales     basesvc.BaseServiceMongo[posmodels.Sale]
	purchases basesvc.BaseServiceMongo[posmodels.Purchase]
	customers basesvc.BaseServiceMongo[crmmodels.Customer]
}

// NewReportService tạo ReportService từ registry collections
func NewReportService() *ReportService {
	productCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	saleCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Sales)
	purchaseCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Purchases)
	customerCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	return &ReportService{
		products:  basesvc.NewBaseServiceMongo[catalogmodels.Product](productCol),
		sales:     basesvc.NewBaseServiceMongo[posmodels.Sale](saleCol),
		purchases: basesvc.NewBaseServiceMongo[posmodels.Purchase](purchaseCol),
		customers: basesvc.NewBaseServiceMongo[crmmodels.Customer](customerCol),
	}
}

// scopeFilter dựng filter theo phạm vi nhà hàng, "all" nghĩa là không filter
func scopeFilter(restaurantScope string) bson.M {
	if restaurantScope == "" || restaurantScope == "all" {
		return bson.M{}
	}
	return bson.M{"restaurantId": utility.String2ObjectID(restaurantScope)}
}

// GetStockReport tính báo cáo tồn kho cho phạm vi nhà hàng
func (s *ReportService) GetStockReport(ctx context.Context, restaurantScope string) ([]models.StockRow, error) {
	filter := scopeFilter(restaurantScope)

	products, err := s.products.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchases.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	return BuildStockView(products, sales, purchases), nil
}

// GetSalesReport tính báo cáo doanh thu cho phạm vi nhà hàng trong khoảng [from, to]
func (s *ReportService) GetSalesReport(ctx context.Context, restaurantScope string, from, to time.Time) (*models.SalesReport, error) {
	sales, err := s.sales.Find(ctx, scopeFilter(restaurantScope), nil)
	if err != nil {
		return nil, err
	}

	report := BuildSalesReport(sales, from, to)

	customerCount, err := s.customers.CountDocuments(ctx, scopeFilter(restaurantScope))
	if err != nil {
		return nil, err
	}
	report.CustomerCount = customerCount

	return report, nil
}
