package router

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto_commerce/config"
	authsvc "resto_commerce/internal/api/auth/service"
	"resto_commerce/internal/api/middleware"
	apirouter "resto_commerce/internal/api/router"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
)

// newTestApp dựng app với route nhà hàng, Redis giả lập và không có MongoDB
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	mr := miniredis.RunT(t)
	global.Redis_Session = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	global.MongoDB_ServerConfig = &config.Configuration{Session_TTL_Hours: 24}
	global.InitValidator()

	sessions := authsvc.NewSessionService(global.Redis_Session, 24)
	auth := middleware.NewAuthMiddleware(authsvc.NewAuthService(sessions))

	app := fiber.New()
	require.NoError(t, apirouter.SetupRoutes(app, apirouter.NewRouter(auth), Register))
	return app
}

// Đăng ký nhà hàng đầu tiên không cần session: request không kèm X-Session-ID
// phải đi tới tầng service thay vì bị chặn 401 ở middleware xác thực.
func TestRegisterRoutes_CreateRestaurantIsPublic(t *testing.T) {
	app := newTestApp(t)

	body := `{"name":"Nhà hàng đầu tiên","admin":{"name":"Chủ quán","email":"chu@quan.vn","password":"1234"}}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/restaurants", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	// Không có MongoDB nên service trả lỗi kết nối, chứng tỏ request đã qua route
	assert.Equal(t, common.StatusServiceUnavailable, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, common.ErrCodeDatabaseConnection.Code, payload["code"])
}

func TestRegisterRoutes_CreateRestaurantStillValidatesBody(t *testing.T) {
	app := newTestApp(t)

	// Thiếu phần admin thì bị chặn ở bước validate, chưa chạm tới DB
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/restaurants", strings.NewReader(`{"name":"Quán lẻ"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRoutes_OtherRestaurantRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/v1/restaurants"},
		{fiber.MethodPut, "/api/v1/restaurants/64f000000000000000000001"},
		{fiber.MethodDelete, "/api/v1/restaurants/64f000000000000000000001"},
		{fiber.MethodPost, "/api/v1/users"},
		{fiber.MethodDelete, "/api/v1/users/64f000000000000000000001"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, common.StatusUnauthorized, resp.StatusCode, "%s %s phải yêu cầu session", tc.method, tc.path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, common.ErrCodeAuthSession.Code, payload["code"], "%s %s", tc.method, tc.path)
	}
}
