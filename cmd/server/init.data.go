package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resto_commerce/internal/global"
)

// InitDefaultData tạo index cho các collection khi chạy ở chế độ khởi tạo.
// Chỉ chạy khi INITMODE=true, các lần chạy ổn định bỏ qua để khởi động nhanh.
func InitDefaultData() {
	if !global.MongoDB_ServerConfig.InitMode {
		logrus.Info("Init mode disabled, skipping index creation")
		return
	}

	ctx := context.TODO()

	// Email chỉ unique trong phạm vi một nhà hàng
	createIndex(ctx, global.MongoDB_ColNames.Users, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "restaurantId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	// Index truy vấn theo tenant cho các collection con
	for _, colName := range []string{
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Purchases,
		global.MongoDB_ColNames.Sales,
	} {
		createIndex(ctx, colName, mongo.IndexModel{
			Keys: bson.D{{Key: "restaurantId", Value: 1}},
		})
	}

	// Báo cáo doanh thu truy vấn theo ngày bán
	createIndex(ctx, global.MongoDB_ColNames.Sales, mongo.IndexModel{
		Keys: bson.D{{Key: "saleDate", Value: 1}},
	})

	logrus.Info("Initialized default indexes")
}

// createIndex tạo một index cho collection, lỗi chỉ log chứ không dừng khởi động
func createIndex(ctx context.Context, colName string, model mongo.IndexModel) {
	col, ok := global.RegistryCollections.Get(colName)
	if !ok || col == nil {
		logrus.Warnf("Collection %s not registered, skipping index", colName)
		return
	}

	if _, err := col.Indexes().CreateOne(ctx, model); err != nil {
		logrus.Errorf("Failed to create index on %s: %v", colName, err)
		return
	}
	logrus.Infof("Ensured index on %s", colName)
}
