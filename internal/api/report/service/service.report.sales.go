package service

import (
	"sort"
	"time"

	posmodels "resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/api/report/models"
)

// dayKeyLayout là khóa bucket theo ngày
const dayKeyLayout = "2006-01-02"

// rankingWindowSize là kích thước nhóm dẫn đầu và nhóm cuối trong xếp hạng sản phẩm
const rankingWindowSize = 5

// BuildSalesReport tính báo cáo doanh thu cho khoảng ngày [from, to]:
//   - chuỗi ngày liên tục, mỗi ngày trong khoảng có một bucket kể cả khi doanh thu bằng 0
//   - doanh thu mỗi ngày là tổng totalPrice của các đơn bán rơi vào ngày đó
//   - xếp hạng sản phẩm tích lũy quantity x price trên từng dòng của mọi đơn bán,
//     sản phẩm không có danh mục nhận danh mục "unknown"
//
// BestSelling là 5 sản phẩm doanh thu cao nhất. WorstSelling là 5 dòng cuối của
// phần còn lại sau khi bỏ nhóm dẫn đầu, đảo ngược để dòng thấp nhất đứng đầu.
// Khi tổng số sản phẩm có doanh thu dưới 10 thì đây là một cửa sổ, không phải
// đúng nghĩa "5 sản phẩm tệ nhất".
func BuildSalesReport(sales []posmodels.Sale, from, to time.Time) *models.SalesReport {
	report := &models.SalesReport{
		Days:              buildDenseDaySeries(sales, from, to),
		BestSelling:       []models.ProductRevenue{},
		WorstSelling:      []models.ProductRevenue{},
		RevenueByCategory: map[string]float64{},
	}

	revenueByID := make(map[string]*models.ProductRevenue)
	for _, sale := range sales {
		report.TotalRevenue += sale.TotalPrice
		report.TotalSales++

		for _, item := range sale.Items {
			id := item.ProductID.Hex()
			entry, ok := revenueByID[id]
			if !ok {
				category := item.Category
				if category == "" {
					category = "unknown"
				}
				entry = &models.ProductRevenue{
					ProductID: id,
					Name:      item.Name,
					Category:  category,
				}
				revenueByID[id] = entry
			}
			entry.Quantity += item.Quantity
			lineRevenue := float64(item.Quantity) * item.Price
			entry.Revenue += lineRevenue
			report.RevenueByCategory[entry.Category] += lineRevenue
		}
	}

	if report.TotalSales > 0 {
		report.AverageTicket = report.TotalRevenue / float64(report.TotalSales)
	}

	ranking := make([]models.ProductRevenue, 0, len(revenueByID))
	for _, entry := range revenueByID {
		ranking = append(ranking, *entry)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue > ranking[j].Revenue
	})

	if len(ranking) <= rankingWindowSize {
		report.BestSelling = ranking
		return report
	}

	report.BestSelling = ranking[:rankingWindowSize]

	rest := ranking[rankingWindowSize:]
	if len(rest) > rankingWindowSize {
		rest = rest[len(rest)-rankingWindowSize:]
	}
	worst := make([]models.ProductRevenue, len(rest))
	for i, entry := range rest {
		worst[len(rest)-1-i] = entry
	}
	report.WorstSelling = worst

	return report
}

// buildDenseDaySeries dựng chuỗi bucket theo ngày không có khoảng trống.
// Đơn bán ngoài khoảng [from, to] không được tính vào bucket nào.
func buildDenseDaySeries(sales []posmodels.Sale, from, to time.Time) []models.DayBucket {
	totalsByDay := make(map[string]float64)
	for _, sale := range sales {
		totalsByDay[sale.SaleDate.Time().UTC().Format(dayKeyLayout)] += sale.TotalPrice
	}

	from = from.UTC().Truncate(24 * time.Hour)
	to = to.UTC().Truncate(24 * time.Hour)

	days := []models.DayBucket{}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyLayout)
		days = append(days, models.DayBucket{
			Date:  key,
			Total: totalsByDay[key],
		})
	}
	return days
}
