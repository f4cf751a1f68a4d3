package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "resto_commerce/internal/api/auth/models"
	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
	"resto_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// cascadeDeleteBatchSize là số document xóa mỗi lượt khi xóa dây chuyền dữ liệu nhà hàng
const cascadeDeleteBatchSize = 100

// RestaurantService xử lý nghiệp vụ nhà hàng: tạo kèm tài khoản quản trị,
// cập nhật kèm quản trị, xóa dây chuyền toàn bộ dữ liệu của nhà hàng.
type RestaurantService struct {
	client      *mongo.Client
	restaurants basesvc.BaseServiceMongo[models.Restaurant]
	users       basesvc.BaseServiceMongo[models.User]
}

// NewRestaurantService tạo RestaurantService từ registry collections
func NewRestaurantService() *RestaurantService {
	restCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Restaurants)
	userCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	return &RestaurantService{
		client:      global.MongoDB_Session,
		restaurants: basesvc.NewBaseServiceMongo[models.Restaurant](restCol),
		users:       basesvc.NewBaseServiceMongo[models.User](userCol),
	}
}

// Restaurants trả về base service của collection restaurants
func (s *RestaurantService) Restaurants() basesvc.BaseServiceMongo[models.Restaurant] {
	return s.restaurants
}

// CreateWithAdmin tạo nhà hàng mới kèm tài khoản quản trị trong một transaction.
// Nhà hàng đầu tiên của hệ thống nhận superadmin, bỏ qua kiểm tra trùng lặp.
func (s *RestaurantService) CreateWithAdmin(ctx context.Context, rest *models.Restaurant, admin *models.User) (*models.Restaurant, *models.User, error) {
	if s.client == nil {
		return nil, nil, common.ErrDatabaseNotConnected
	}

	count, err := s.restaurants.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, nil, err
	}

	// Hệ thống đã có nhà hàng thì tên nhà hàng và email quản trị phải chưa tồn tại
	if count > 0 {
		nameTaken, err := s.restaurants.DocumentExists(ctx, bson.M{"name": rest.Name})
		if err != nil {
			return nil, nil, err
		}
		if nameTaken {
			return nil, nil, common.ErrRestaurantNameTaken
		}

		emailTaken, err := s.users.DocumentExists(ctx, bson.M{"email": admin.Email})
		if err != nil {
			return nil, nil, err
		}
		if emailTaken {
			return nil, nil, common.ErrEmailTaken
		}
	}

	admin.Role = RoleForNewRestaurantAdmin(count)

	session, err := s.client.StartSession()
	if err != nil {
		return nil, nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	var createdRest models.Restaurant
	var createdAdmin models.User

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		createdRest, err = s.restaurants.InsertOne(sc, *rest)
		if err != nil {
			return nil, err
		}

		admin.RestaurantID = createdRest.ID
		createdAdmin, err = s.users.InsertOne(sc, *admin)
		if err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &createdRest, &createdAdmin, nil
}

// UpdateWithAdmin cập nhật nhà hàng và tài khoản quản trị của nó trong một transaction.
// adminUpdate nil hoặc rỗng thì chỉ cập nhật nhà hàng.
func (s *RestaurantService) UpdateWithAdmin(ctx context.Context, id primitive.ObjectID, restUpdate map[string]interface{}, adminUpdate map[string]interface{}) (*models.Restaurant, error) {
	if s.client == nil {
		return nil, common.ErrDatabaseNotConnected
	}

	// Đổi tên thì tên mới phải chưa thuộc về nhà hàng khác
	if newName, ok := restUpdate["name"].(string); ok && newName != "" {
		taken, err := s.restaurants.DocumentExists(ctx, bson.M{
			"name": newName,
			"_id":  bson.M{"$ne": id},
		})
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, common.ErrRestaurantNameTaken
		}
	}

	session, err := s.client.StartSession()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	var updated models.Restaurant
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		updated, err = s.restaurants.UpdateById(sc, id, restUpdate)
		if err != nil {
			return nil, err
		}

		if len(adminUpdate) > 0 {
			managerFilter := bson.M{
				"restaurantId": id,
				"role":         bson.M{"$in": bson.A{authmodels.RoleAdmin, authmodels.RoleSuperadmin}},
			}
			if _, err := s.users.UpdateOne(sc, managerFilter, adminUpdate, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteCascade xóa nhà hàng cùng toàn bộ dữ liệu con (users, sản phẩm, danh mục,
// khách hàng, nhập hàng, đơn bán). Dữ liệu con xóa theo từng batch ngoài transaction
// vì tổng số document có thể vượt giới hạn một transaction.
func (s *RestaurantService) DeleteCascade(ctx context.Context, id primitive.ObjectID) error {
	if s.client == nil {
		return common.ErrDatabaseNotConnected
	}

	total, err := s.restaurants.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if err := CanDeleteRestaurant(total); err != nil {
		return err
	}

	if _, err := s.restaurants.FindOneById(ctx, id); err != nil {
		return err
	}

	subCollections := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Purchases,
		global.MongoDB_ColNames.Sales,
	}

	for _, colName := range subCollections {
		col, ok := global.RegistryCollections.Get(colName)
		if !ok || col == nil {
			continue
		}
		if err := s.deleteInBatches(ctx, col, bson.M{"restaurantId": id}); err != nil {
			return err
		}
	}

	if err := s.restaurants.DeleteById(ctx, id); err != nil {
		return err
	}

	logger.GetAuditLogger().
		WithField("restaurant_id", id.Hex()).
		Info("Restaurant deleted with all sub data")
	return nil
}

// deleteInBatches xóa document khớp filter theo từng batch cascadeDeleteBatchSize
func (s *RestaurantService) deleteInBatches(ctx context.Context, col *mongo.Collection, filter bson.M) error {
	for {
		findOpts := options.Find().
			SetLimit(cascadeDeleteBatchSize).
			SetProjection(bson.M{"_id": 1})

		cursor, err := col.Find(ctx, filter, findOpts)
		if err != nil {
			return common.ConvertMongoError(err)
		}

		var docs []bson.M
		if err := cursor.All(ctx, &docs); err != nil {
			return common.ConvertMongoError(err)
		}
		if len(docs) == 0 {
			return nil
		}

		ids := make([]interface{}, 0, len(docs))
		for _, doc := range docs {
			ids = append(ids, doc["_id"])
		}

		if _, err := col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
			return common.ConvertMongoError(err)
		}

		if len(docs) < cascadeDeleteBatchSize {
			return nil
		}
	}
}
