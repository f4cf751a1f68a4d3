package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	posmodels "resto_commerce/internal/api/pos/models"
)

func saleOn(day string, total float64, items ...posmodels.SaleItem) posmodels.Sale {
	t, _ := time.Parse("2006-01-02", day)
	return posmodels.Sale{
		ID:         primitive.NewObjectID(),
		SaleDate:   primitive.NewDateTimeFromTime(t),
		TotalPrice: total,
		Items:      items,
	}
}

func TestBuildSalesReport_DenseDaySeries(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-05")

	sales := []posmodels.Sale{
		saleOn("2026-08-02", 30),
		saleOn("2026-08-02", 20),
		saleOn("2026-08-04", 10),
	}

	report := BuildSalesReport(sales, from, to)

	require.Len(t, report.Days, 5, "mỗi ngày trong khoảng phải có một bucket")
	assert.Equal(t, "2026-08-01", report.Days[0].Date)
	assert.Equal(t, 0.0, report.Days[0].Total)
	assert.Equal(t, 50.0, report.Days[1].Total)
	assert.Equal(t, 0.0, report.Days[2].Total)
	assert.Equal(t, 10.0, report.Days[3].Total)
	assert.Equal(t, 0.0, report.Days[4].Total)
}

func TestBuildSalesReport_SalesOutsideRangeStillDense(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-03")

	sales := []posmodels.Sale{saleOn("2026-07-15", 100)}

	report := BuildSalesReport(sales, from, to)

	require.Len(t, report.Days, 3)
	for _, day := range report.Days {
		assert.Equal(t, 0.0, day.Total, "đơn bán ngoài khoảng không rơi vào bucket nào")
	}
	// Tổng doanh thu vẫn tính trên toàn bộ đơn bán được nạp
	assert.Equal(t, 100.0, report.TotalRevenue)
}

func TestBuildSalesReport_RankingAndUnknownCategory(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-01")

	idTop := primitive.NewObjectID()
	idLow := primitive.NewObjectID()
	sales := []posmodels.Sale{
		saleOn("2026-08-01", 0,
			posmodels.SaleItem{ProductID: idTop, Name: "Parrillada", Price: 20, Quantity: 5},
			posmodels.SaleItem{ProductID: idLow, Name: "Agua", Price: 2, Quantity: 1},
		),
		saleOn("2026-08-01", 0,
			posmodels.SaleItem{ProductID: idTop, Name: "Parrillada", Price: 20, Quantity: 2},
		),
	}

	report := BuildSalesReport(sales, from, to)

	require.NotEmpty(t, report.BestSelling)
	assert.Equal(t, idTop.Hex(), report.BestSelling[0].ProductID)
	assert.Equal(t, 140.0, report.BestSelling[0].Revenue)
	assert.Equal(t, int64(7), report.BestSelling[0].Quantity)
	assert.Equal(t, "unknown", report.BestSelling[0].Category, "sản phẩm không có danh mục nhận unknown")
}

func TestBuildSalesReport_WorstSellingWindow(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-01")

	// 12 sản phẩm với doanh thu 1..12
	items := make([]posmodels.SaleItem, 0, 12)
	for i := 1; i <= 12; i++ {
		items = append(items, posmodels.SaleItem{
			ProductID: primitive.NewObjectID(),
			Name:      fmt.Sprintf("P%d", i),
			Price:     float64(i),
			Quantity:  1,
		})
	}
	report := BuildSalesReport([]posmodels.Sale{saleOn("2026-08-01", 0, items...)}, from, to)

	require.Len(t, report.BestSelling, 5)
	assert.Equal(t, 12.0, report.BestSelling[0].Revenue)
	assert.Equal(t, 8.0, report.BestSelling[4].Revenue)

	// Phần còn lại là 7..1, cửa sổ 5 dòng cuối là 5..1, đảo ngược thành 1..5
	require.Len(t, report.WorstSelling, 5)
	assert.Equal(t, 1.0, report.WorstSelling[0].Revenue)
	assert.Equal(t, 5.0, report.WorstSelling[4].Revenue)
}

func TestBuildSalesReport_FewProductsNoWorstWindow(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-01")

	sales := []posmodels.Sale{
		saleOn("2026-08-01", 0,
			posmodels.SaleItem{ProductID: primitive.NewObjectID(), Name: "A", Price: 5, Quantity: 1},
			posmodels.SaleItem{ProductID: primitive.NewObjectID(), Name: "B", Price: 3, Quantity: 1},
		),
	}

	report := BuildSalesReport(sales, from, to)

	assert.Len(t, report.BestSelling, 2)
	assert.Empty(t, report.WorstSelling, "dưới 6 sản phẩm thì không có nhóm cuối")
}

func TestBuildSalesReport_KPIs(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-02")

	sales := []posmodels.Sale{
		saleOn("2026-08-01", 25),
		saleOn("2026-08-02", 75),
	}

	report := BuildSalesReport(sales, from, to)
	assert.Equal(t, 100.0, report.TotalRevenue)
	assert.Equal(t, int64(2), report.TotalSales)
	assert.Equal(t, 50.0, report.AverageTicket)
}

func TestBuildSalesReport_RevenueByCategory(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-01")

	sales := []posmodels.Sale{
		saleOn("2026-08-01", 0,
			posmodels.SaleItem{ProductID: primitive.NewObjectID(), Name: "Agua", Category: "bebidas", Price: 2, Quantity: 3},
			posmodels.SaleItem{ProductID: primitive.NewObjectID(), Name: "Refresco", Category: "bebidas", Price: 3, Quantity: 2},
			posmodels.SaleItem{ProductID: primitive.NewObjectID(), Name: "Taco", Price: 10, Quantity: 1},
		),
	}

	report := BuildSalesReport(sales, from, to)

	assert.Equal(t, 12.0, report.RevenueByCategory["bebidas"])
	assert.Equal(t, 10.0, report.RevenueByCategory["unknown"], "dòng không có danh mục gộp vào unknown")
}

func TestBuildSalesReport_NoSales(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-01")

	report := BuildSalesReport(nil, from, to)

	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Equal(t, 0.0, report.AverageTicket)
	assert.NotNil(t, report.RevenueByCategory)
	assert.Empty(t, report.BestSelling)
}
