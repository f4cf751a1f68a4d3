package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "resto_commerce/internal/api/catalog/models"
	posmodels "resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/api/report/models"
)

func saleWithItems(items ...posmodels.SaleItem) posmodels.Sale {
	return posmodels.Sale{ID: primitive.NewObjectID(), Items: items}
}

func TestBuildStockView_MatchByNameAndID(t *testing.T) {
	productID := primitive.NewObjectID()
	products := []catalogmodels.Product{
		{ID: productID, Name: "Agua", Price: 2},
	}
	purchases := []posmodels.Purchase{
		{ProductName: "agua", Quantity: 50},
	}
	sales := []posmodels.Sale{
		saleWithItems(posmodels.SaleItem{ProductID: productID, Quantity: 12}),
	}

	rows := BuildStockView(products, sales, purchases)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(50), rows[0].InitialStock, "nhập hàng khớp tên không phân biệt hoa thường")
	assert.Equal(t, int64(12), rows[0].UnitsSold)
	assert.Equal(t, int64(38), rows[0].CurrentStock)
	assert.Equal(t, models.StockStatusIn, rows[0].Status)
}

func TestBuildStockView_NoPurchaseGoesNegative(t *testing.T) {
	productID := primitive.NewObjectID()
	products := []catalogmodels.Product{{ID: productID, Name: "Cafe", Price: 3}}
	sales := []posmodels.Sale{
		saleWithItems(posmodels.SaleItem{ProductID: productID, Quantity: 7}),
	}

	rows := BuildStockView(products, sales, nil)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(0), rows[0].InitialStock)
	assert.Equal(t, int64(-7), rows[0].CurrentStock, "tồn kho âm được giữ nguyên, không clamp")
	assert.Equal(t, models.StockStatusOut, rows[0].Status)
}

func TestBuildStockView_UnmatchedPurchaseIgnored(t *testing.T) {
	products := []catalogmodels.Product{
		{ID: primitive.NewObjectID(), Name: "Agua", Price: 2},
	}
	purchases := []posmodels.Purchase{
		{ProductName: "Cerveza", Quantity: 100},
	}

	rows := BuildStockView(products, nil, purchases)
	require.Len(t, rows, 1, "dòng báo cáo sinh từ sản phẩm, phiếu nhập mồ côi không tạo dòng")
	assert.Equal(t, int64(0), rows[0].InitialStock)
}

func TestBuildStockView_SortedAscending(t *testing.T) {
	idA := primitive.NewObjectID()
	idB := primitive.NewObjectID()
	idC := primitive.NewObjectID()
	products := []catalogmodels.Product{
		{ID: idA, Name: "A"},
		{ID: idB, Name: "B"},
		{ID: idC, Name: "C"},
	}
	purchases := []posmodels.Purchase{
		{ProductName: "A", Quantity: 30},
		{ProductName: "B", Quantity: 5},
	}
	sales := []posmodels.Sale{
		saleWithItems(posmodels.SaleItem{ProductID: idC, Quantity: 2}),
	}

	rows := BuildStockView(products, sales, purchases)
	require.Len(t, rows, 3)

	// C: -2, B: 5, A: 30
	assert.Equal(t, idC.Hex(), rows[0].ProductID)
	assert.Equal(t, idB.Hex(), rows[1].ProductID)
	assert.Equal(t, idA.Hex(), rows[2].ProductID)
}

func TestClassifyStock_Boundaries(t *testing.T) {
	assert.Equal(t, models.StockStatusOut, ClassifyStock(-5))
	assert.Equal(t, models.StockStatusOut, ClassifyStock(0))
	assert.Equal(t, models.StockStatusLow, ClassifyStock(1))
	assert.Equal(t, models.StockStatusLow, ClassifyStock(10), "biên 10 thuộc nhóm tồn kho thấp")
	assert.Equal(t, models.StockStatusIn, ClassifyStock(11))
}

func TestBuildStockView_MultiplePurchasesAndSalesAccumulate(t *testing.T) {
	productID := primitive.NewObjectID()
	products := []catalogmodels.Product{{ID: productID, Name: "Pan"}}
	purchases := []posmodels.Purchase{
		{ProductName: "Pan", Quantity: 20},
		{ProductName: " PAN ", Quantity: 15},
	}
	sales := []posmodels.Sale{
		saleWithItems(posmodels.SaleItem{ProductID: productID, Quantity: 4}),
		saleWithItems(
			posmodels.SaleItem{ProductID: productID, Quantity: 6},
			posmodels.SaleItem{ProductID: primitive.NewObjectID(), Quantity: 99},
		),
	}

	rows := BuildStockView(products, sales, purchases)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(35), rows[0].InitialStock)
	assert.Equal(t, int64(10), rows[0].UnitsSold)
	assert.Equal(t, int64(25), rows[0].CurrentStock)
}
