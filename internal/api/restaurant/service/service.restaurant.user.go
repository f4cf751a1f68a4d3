package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "resto_commerce/internal/api/auth/models"
	authsvc "resto_commerce/internal/api/auth/service"
	basesvc "resto_commerce/internal/api/base/service"
	"resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
	"resto_commerce/internal/logger"
)

// UserService xử lý nghiệp vụ người dùng trong một nhà hàng
type UserService struct {
	users basesvc.BaseServiceMongo[models.User]
	// sessions dùng để thu hồi session khi user bị xóa, có thể nil trong test
	sessions *authsvc.SessionService
}

// NewUserService tạo UserService từ registry collections
func NewUserService(sessions *authsvc.SessionService) *UserService {
	userCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	return &UserService{
		users:    basesvc.NewBaseServiceMongo[models.User](userCol),
		sessions: sessions,
	}
}

// Users trả về base service của collection users
func (s *UserService) Users() basesvc.BaseServiceMongo[models.User] {
	return s.users
}

// Create tạo user mới. Email phải chưa được dùng trong cùng nhà hàng.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if !authmodels.IsValidRole(user.Role) {
		return nil, common.ErrInvalidInput
	}

	taken, err := s.users.DocumentExists(ctx, bson.M{
		"email":        user.Email,
		"restaurantId": user.RestaurantID,
	})
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.ErrEmailTaken
	}

	created, err := s.users.InsertOne(ctx, *user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update cập nhật user. Đổi email thì email mới phải chưa thuộc về user khác trong cùng nhà hàng.
func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, data map[string]interface{}) (*models.User, error) {
	if newRole, ok := data["role"].(string); ok && !authmodels.IsValidRole(newRole) {
		return nil, common.ErrInvalidInput
	}

	if newEmail, ok := data["email"].(string); ok && newEmail != "" {
		target, err := s.users.FindOneById(ctx, id)
		if err != nil {
			return nil, err
		}
		taken, err := s.users.DocumentExists(ctx, bson.M{
			"email":        newEmail,
			"restaurantId": target.RestaurantID,
			"_id":          bson.M{"$ne": id},
		})
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, common.ErrEmailTaken
		}
	}

	updated, err := s.users.UpdateById(ctx, id, data)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa user sau khi kiểm tra các ràng buộc (CanDeleteUser).
// Session của user bị xóa cũng được thu hồi.
func (s *UserService) Delete(ctx context.Context, actorID string, id primitive.ObjectID) error {
	target, err := s.users.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	superadminCount, err := s.users.CountDocuments(ctx, bson.M{
		"role": authmodels.RoleSuperadmin,
	})
	if err != nil {
		return err
	}

	managerCount, err := s.users.CountDocuments(ctx, bson.M{
		"restaurantId": target.RestaurantID,
		"role":         bson.M{"$in": bson.A{authmodels.RoleAdmin, authmodels.RoleSuperadmin}},
	})
	if err != nil {
		return err
	}

	if err := CanDeleteUser(actorID, &target, superadminCount, managerCount); err != nil {
		return err
	}

	if err := s.users.DeleteById(ctx, id); err != nil {
		return err
	}

	if s.sessions != nil {
		if err := s.sessions.DeleteByUserID(ctx, id.Hex()); err != nil {
			logger.GetErrorLogger().WithError(err).
				WithField("user_id", id.Hex()).
				Warn("Không thể thu hồi session của user đã xóa")
		}
	}
	return nil
}
