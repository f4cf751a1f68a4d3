package handler

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

	"resto_commerce/internal/api/auth/service"
	"resto_commerce/internal/common"
	"resto_commerce/internal/global"
)

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()

	mr := miniredis.RunT(t)
	sessions := service.NewSessionService(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 24)
	h := NewAuthHandler(service.NewAuthService(sessions))

	app := fiber.New()
	app.Post("/auth/login", h.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	code, _ := payload["code"].(string)
	return resp.StatusCode, code
}

func TestLogin_InvalidBodyRejected(t *testing.T) {
	global.InitValidator()
	app := newLoginApp(t)

	status, _ := postLogin(t, app, `{"email":"khong-phai-email","password":""}`)
	assert.Equal(t, common.StatusBadRequest, status)
}

// Validator chưa khởi tạo thì login vẫn chạy tới service thay vì panic 500
func TestLogin_NilValidatorSkipsValidation(t *testing.T) {
	prev := global.Validate
	global.Validate = nil
	t.Cleanup(func() { global.Validate = prev })

	app := newLoginApp(t)

	// Không có collection users nên đăng nhập trả sai thông tin, không phải lỗi hệ thống
	status, code := postLogin(t, app, `{"email":"ai-do@example.com","password":"1234"}`)
	assert.Equal(t, common.StatusUnauthorized, status)
	assert.Equal(t, common.ErrCodeAuthCredentials.Code, code)
}
