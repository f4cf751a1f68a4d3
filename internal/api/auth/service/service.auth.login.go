package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"resto_commerce/internal/api/auth/models"
	basesvc "resto_commerce/internal/api/base/service"
	restaurantmodels "resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
)

// AuthService xử lý đăng nhập/đăng xuất và quản lý session của user
type AuthService struct {
	userService basesvc.BaseServiceMongo[restaurantmodels.User]
	sessions    *SessionService
}

// NewAuthService tạo AuthService, lấy collection users từ registry
func NewAuthService(sessions *SessionService) *AuthService {
	userCol, _ := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	return &AuthService{
		userService: basesvc.NewBaseServiceMongo[restaurantmodels.User](userCol),
		sessions:    sessions,
	}
}

// Sessions trả về session service bên dưới (dùng cho middleware)
func (s *AuthService) Sessions() *SessionService {
	return s.sessions
}

// Login kiểm tra email/password và tạo session mới.
// Password so sánh trực tiếp theo dữ liệu hiện có.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, *restaurantmodels.User, error) {
	user, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if user.Password != password {
		return nil, nil, common.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, &models.Session{
		UserID:       user.ID.Hex(),
		UserName:     user.Name,
		Email:        user.Email,
		Role:         user.Role,
		RestaurantID: user.RestaurantID.Hex(),
	})
	if err != nil {
		return nil, nil, err
	}
	return sess, &user, nil
}

// Logout xóa session hiện tại
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// GetSession lấy session theo id
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// SetPendingSale ghi nhận đơn bán đang mở trên POS vào session.
// saleID rỗng nghĩa là xóa pending sale.
func (s *AuthService) SetPendingSale(ctx context.Context, sessionID string, saleID string) (*models.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.PendingSaleID = saleID
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
