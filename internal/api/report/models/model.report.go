// Package models định nghĩa các kiểu dữ liệu báo cáo tồn kho và doanh thu.
// Báo cáo luôn được tính lại từ dữ liệu gốc trên mỗi request, không lưu kết quả.
package models

// Các trạng thái tồn kho hiển thị
const (
	StockStatusOut = "out_of_stock"
	StockStatusLow = "low_stock"
	StockStatusIn  = "in_stock"
)

// StockRow là một dòng trong báo cáo tồn kho của một sản phẩm
type StockRow struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price"`
	// InitialStock: tổng số lượng nhập theo tên sản phẩm
	InitialStock int64 `json:"initialStock"`
	// UnitsSold: tổng số lượng đã bán theo id sản phẩm
	UnitsSold int64 `json:"unitsSold"`
	// CurrentStock có thể âm, nghĩa là bán vượt số đã nhập
	CurrentStock int64  `json:"currentStock"`
	Status       string `json:"status"`
}

// DayBucket là tổng doanh thu của một ngày
type DayBucket struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ProductRevenue là doanh thu tích lũy của một sản phẩm
type ProductRevenue struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int64   `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// SalesReport là kết quả báo cáo doanh thu cho một khoảng ngày
type SalesReport struct {
	// Days là chuỗi ngày liên tục, ngày không có doanh thu vẫn xuất hiện với giá trị 0
	Days []DayBucket `json:"days"`
	// BestSelling: tối đa 5 sản phẩm doanh thu cao nhất
	BestSelling []ProductRevenue `json:"bestSelling"`
	// WorstSelling: cửa sổ 5 sản phẩm thấp nhất ngoài nhóm dẫn đầu
	WorstSelling []ProductRevenue `json:"worstSelling"`
	// RevenueByCategory: doanh thu tích lũy theo danh mục, danh mục rỗng gộp vào "unknown"
	RevenueByCategory map[string]float64 `json:"revenueByCategory"`
	TotalRevenue      float64            `json:"totalRevenue"`
	TotalSales        int64              `json:"totalSales"`
	// AverageTicket: doanh thu trung bình mỗi đơn, 0 khi chưa có đơn nào
	AverageTicket float64 `json:"averageTicket"`
	// CustomerCount: số khách hàng trong phạm vi nhà hàng đang chọn
	CustomerCount int64 `json:"customerCount"`
}
