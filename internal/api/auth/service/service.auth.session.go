// Package service chứa logic xác thực: quản lý session trên Redis,
// kiểm tra thông tin đăng nhập và ma trận phân quyền theo role.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"resto_commerce/internal/api/auth/models"
	"resto_commerce/internal/common"
)

// sessionKeyPrefix là prefix của key session trong Redis
const sessionKeyPrefix = "session:"

// SessionService quản lý vòng đời session trên Redis
type SessionService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionService tạo SessionService mới.
// ttlHours là thời gian sống của session tính theo giờ.
func NewSessionService(client *redis.Client, ttlHours int) *SessionService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &SessionService{
		client: client,
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create tạo session mới cho user, sinh UUID làm session id
func (s *SessionService) Create(ctx context.Context, sess *models.Session) (*models.Session, error) {
	if s.client == nil {
		return nil, common.ErrConnection
	}

	sess.ID = uuid.NewString()
	sess.CreatedAt = time.Now().UnixMilli()

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể serialize session: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Không thể lưu session: %v", err),
			common.StatusServiceUnavailable,
			err,
		)
	}
	return sess, nil
}

// Get lấy session theo id. Trả về ErrSessionExpired nếu không còn trong Redis.
func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	if s.client == nil {
		return nil, common.ErrConnection
	}
	if id == "" {
		return nil, common.ErrSessionMissing
	}

	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, common.ErrSessionExpired
	}
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Không thể đọc session: %v", err),
			common.StatusServiceUnavailable,
			err,
		)
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, common.ErrSessionInvalid
	}
	return &sess, nil
}

// Update ghi đè session hiện có, giữ nguyên TTL còn lại
func (s *SessionService) Update(ctx context.Context, sess *models.Session) error {
	if s.client == nil {
		return common.ErrConnection
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không thể serialize session: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	// KeepTTL để không reset thời gian sống khi cập nhật pending sale
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, redis.KeepTTL).Err(); err != nil {
		return common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Không thể cập nhật session: %v", err),
			common.StatusServiceUnavailable,
			err,
		)
	}
	return nil
}

// Delete xóa session (logout). Xóa session không tồn tại không phải lỗi.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return common.ErrConnection
	}
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// DeleteByUserID xóa tất cả session của một user (dùng khi user bị xóa).
// Quét bằng SCAN để không block Redis.
func (s *SessionService) DeleteByUserID(ctx context.Context, userID string) error {
	if s.client == nil {
		return common.ErrConnection
	}

	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var sess models.Session
		if err := json.Unmarshal(data, &sess); err != nil {
			continue
		}
		if sess.UserID == userID {
			_ = s.client.Del(ctx, key).Err()
		}
	}
	return iter.Err()
}
