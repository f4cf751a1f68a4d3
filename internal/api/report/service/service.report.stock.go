// Package service tính các báo cáo tồn kho và doanh thu.
// Toàn bộ phép tính chạy trên dữ liệu đã nạp vào bộ nhớ, là hàm thuần để test được.
package service

import (
	"sort"

	catalogmodels "resto_commerce/internal/api/catalog/models"
	posmodels "resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/api/report/models"
	"resto_commerce/internal/utility"
)

// LowStockThreshold là ngưỡng tồn kho thấp, biên bao gồm (currentStock = 10 vẫn là thấp)
const LowStockThreshold = 10

// ClassifyStock phân loại tồn kho theo ngưỡng hiển thị
func ClassifyStock(currentStock int64) string {
	switch {
	case currentStock <= 0:
		return models.StockStatusOut
	case currentStock <= LowStockThreshold:
		return models.StockStatusLow
	default:
		return models.StockStatusIn
	}
}

// BuildStockView tính tồn kho hiện tại cho từng sản phẩm:
//   - initialStock: tổng quantity của các phiếu nhập có productName trùng tên
//     sản phẩm (không phân biệt hoa thường, khớp chính xác sau khi trim)
//   - unitsSold: tổng quantity của mọi dòng trong mọi đơn bán có id sản phẩm trùng khớp
//   - currentStock = initialStock - unitsSold, giá trị âm được giữ nguyên
//
// Kết quả sắp xếp tăng dần theo currentStock, sản phẩm nguy cấp nhất đứng đầu.
// Phiếu nhập không khớp tên sản phẩm nào bị bỏ qua vì dòng báo cáo sinh từ
// danh sách sản phẩm, không sinh từ phiếu nhập.
func BuildStockView(products []catalogmodels.Product, sales []posmodels.Sale, purchases []posmodels.Purchase) []models.StockRow {
	purchasedByName := make(map[string]int64, len(purchases))
	for _, p := range purchases {
		purchasedByName[utility.NormalizeName(p.ProductName)] += p.Quantity
	}

	soldByID := make(map[string]int64)
	for _, sale := range sales {
		for _, item := range sale.Items {
			soldByID[item.ProductID.Hex()] += item.Quantity
		}
	}

	rows := make([]models.StockRow, 0, len(products))
	for _, product := range products {
		id := product.ID.Hex()
		initial := purchasedByName[utility.NormalizeName(product.Name)]
		sold := soldByID[id]
		current := initial - sold

		rows = append(rows, models.StockRow{
			ProductID:    id,
			Name:         product.Name,
			Category:     product.Category,
			Price:        product.Price,
			InitialStock: initial,
			UnitsSold:    sold,
			CurrentStock: current,
			Status:       ClassifyStock(current),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CurrentStock < rows[j].CurrentStock
	})
	return rows
}
