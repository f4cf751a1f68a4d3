package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resto_commerce/internal/api/pos/dto"
	"resto_commerce/internal/api/pos/models"
	"resto_commerce/internal/common"
)

func TestSaleFromCreateInput(t *testing.T) {
	userID := primitive.NewObjectID()
	restID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	input := &dto.SaleCreateInput{
		CustomerName: "Maria",
		TableNumber:  4,
		Items: []dto.SaleItemInput{
			{ID: productID.Hex(), Name: "Agua", Price: 2, Quantity: 3},
		},
		TotalPrice: 6,
		SaleDate:   "2026-08-15T10:30:00Z",
	}

	sale, err := SaleFromCreateInput(input, userID, "Juan", restID)
	require.NoError(t, err)

	assert.Equal(t, "Maria", sale.CustomerName)
	assert.Equal(t, models.SaleStatusPending, sale.Status, "trạng thái mặc định phải là pending")
	assert.Equal(t, userID, sale.UserID)
	assert.Equal(t, "Juan", sale.UserName)
	assert.Equal(t, restID, sale.RestaurantID)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, productID, sale.Items[0].ProductID)
	assert.Equal(t, int64(3), sale.Items[0].Quantity)

	expected := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, primitive.NewDateTimeFromTime(expected), sale.SaleDate)
}

func TestSaleFromCreateInput_DateOnly(t *testing.T) {
	input := &dto.SaleCreateInput{
		Items:    []dto.SaleItemInput{{ID: primitive.NewObjectID().Hex(), Name: "Cafe", Quantity: 1}},
		SaleDate: "2026-08-15",
	}

	sale, err := SaleFromCreateInput(input, primitive.NewObjectID(), "Ana", primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", sale.SaleDate.Time().UTC().Format("2006-01-02"))
}

func TestSaleFromCreateInput_InvalidDate(t *testing.T) {
	input := &dto.SaleCreateInput{
		Items:    []dto.SaleItemInput{{ID: primitive.NewObjectID().Hex(), Name: "Cafe", Quantity: 1}},
		SaleDate: "15/08/2026",
	}

	_, err := SaleFromCreateInput(input, primitive.NewObjectID(), "Ana", primitive.NewObjectID())
	assert.Error(t, err)
}

func TestSaleUpdateData_StatusValidation(t *testing.T) {
	bad := "cancelled"
	_, err := SaleUpdateData(&dto.SaleUpdateInput{Status: &bad})
	assert.True(t, errors.Is(err, common.ErrInvalidSaleStatus))

	good := models.SaleStatusPaid
	data, err := SaleUpdateData(&dto.SaleUpdateInput{Status: &good})
	require.NoError(t, err)
	assert.Equal(t, models.SaleStatusPaid, data["status"])
}

func TestSaleUpdateData_OnlySentFields(t *testing.T) {
	total := 25.5
	data, err := SaleUpdateData(&dto.SaleUpdateInput{TotalPrice: &total})
	require.NoError(t, err)

	assert.Len(t, data, 1)
	assert.Equal(t, 25.5, data["totalPrice"])
}

func TestPurchaseFromCreateInput(t *testing.T) {
	restID := primitive.NewObjectID()
	input := &dto.PurchaseCreateInput{
		ProductName:  "Agua",
		Supplier:     "Distribuidora Sur",
		Quantity:     50,
		UnitPrice:    1.2,
		PurchaseDate: "2026-08-01",
	}

	purchase, err := PurchaseFromCreateInput(input, restID)
	require.NoError(t, err)
	assert.Equal(t, "Agua", purchase.ProductName)
	assert.Equal(t, int64(50), purchase.Quantity)
	assert.Equal(t, restID, purchase.RestaurantID)
	assert.Equal(t, "2026-08-01", purchase.PurchaseDate.Time().UTC().Format("2006-01-02"))
}
