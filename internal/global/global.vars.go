package global

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"resto_commerce/config"
	"resto_commerce/internal/registry"
)

// MongoDB_Pos_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Pos_CollectionName struct {
	Restaurants string // Tên collection cho nhà hàng (tenant gốc)
	Users       string // Tên collection cho người dùng
	Products    string // Tên collection cho sản phẩm
	Categories  string // Tên collection cho danh mục
	Customers   string // Tên collection cho khách hàng
	Purchases   string // Tên collection cho phiếu nhập hàng
	Sales       string // Tên collection cho đơn bán
}

// Các biến toàn cục
var Validate *validator.Validate                                                    // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                   // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                      // Cấu hình của server
var MongoDB_ColNames MongoDB_Pos_CollectionName = *new(MongoDB_Pos_CollectionName)  // Tên các collection
var Redis_Session *redis.Client                                                     // Kết nối Redis cho session store

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
