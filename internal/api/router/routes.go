// Package router tập trung việc đăng ký route cho toàn bộ API.
// Mỗi domain cung cấp một RegisterFunc, router gắn middleware xác thực
// và phân quyền theo cấu hình CRUD của từng resource.
package router

import (
	"github.com/gofiber/fiber/v3"

	"resto_commerce/internal/api/middleware"
)

// CRUDHandler là tập handler CRUD chuẩn mà BaseHandler cung cấp
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// CRUDConfig bật/tắt từng route CRUD và khai báo permission cho nhóm đọc/ghi
type CRUDConfig struct {
	InsertOne  bool
	Find       bool
	FindOne    bool
	FindById   bool
	Paginate   bool
	UpdateById bool
	DeleteById bool
	Count      bool
	Exists     bool

	// ReadPermission áp cho các route đọc, WritePermission cho các route ghi
	ReadPermission  string
	WritePermission string
}

// ReadWriteConfig trả về cấu hình bật đầy đủ CRUD
func ReadWriteConfig(readPerm, writePerm string) CRUDConfig {
	return CRUDConfig{
		InsertOne:  true,
		Find:       true,
		FindOne:    true,
		FindById:   true,
		Paginate:   true,
		UpdateById: true,
		DeleteById: true,
		Count:      true,
		Exists:     true,

		ReadPermission:  readPerm,
		WritePermission: writePerm,
	}
}

// ReadOnlyConfig trả về cấu hình chỉ bật các route đọc
func ReadOnlyConfig(readPerm string) CRUDConfig {
	return CRUDConfig{
		Find:     true,
		FindOne:  true,
		FindById: true,
		Paginate: true,
		Count:    true,
		Exists:   true,

		ReadPermission: readPerm,
	}
}

// Router giữ middleware xác thực dùng chung cho mọi route cần đăng nhập
type Router struct {
	Auth *middleware.AuthMiddleware
}

// NewRouter tạo Router mới
func NewRouter(auth *middleware.AuthMiddleware) *Router {
	return &Router{Auth: auth}
}

// AuthChain trả về chain middleware chuẩn cho một action:
// xác thực session, xác định tenant, kiểm tra permission.
func (r *Router) AuthChain(permission string) []fiber.Handler {
	chain := []fiber.Handler{
		r.Auth.Authenticated(),
		r.Auth.RestaurantContext(),
	}
	if permission != "" {
		chain = append(chain, r.Auth.RequirePermission(permission))
	}
	return chain
}

// RegisterRouteWithMiddleware đăng ký một route kèm middleware.
// Fiber v3 không nhận middleware qua tham số route nên phải tạo group
// con tại path rồi Use từng middleware trước khi gắn handler.
func (r *Router) RegisterRouteWithMiddleware(parent fiber.Router, method, path string, handler fiber.Handler, middlewares ...fiber.Handler) {
	group := parent.Group(path)
	for _, mw := range middlewares {
		group.Use(mw)
	}
	group.Add([]string{method}, "/", handler)
}

// RegisterCRUDRoutes đăng ký các route CRUD chuẩn cho một resource theo cấu hình.
// Thứ tự đăng ký quan trọng: các path tĩnh (/paginate, /count, ...) phải đứng trước /:id.
func (r *Router) RegisterCRUDRoutes(parent fiber.Router, prefix string, h CRUDHandler, cfg CRUDConfig) {
	readChain := r.AuthChain(cfg.ReadPermission)
	writeChain := r.AuthChain(cfg.WritePermission)

	if cfg.InsertOne {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodPost, prefix, h.InsertOne, writeChain...)
	}
	if cfg.Find {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodGet, prefix, h.Find, readChain...)
	}
	if cfg.Paginate {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodGet, prefix+"/paginate", h.FindWithPagination, readChain...)
	}
	if cfg.Count {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodGet, prefix+"/count", h.CountDocuments, readChain...)
	}
	if cfg.Exists {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodGet, prefix+"/exists", h.DocumentExists, readChain...)
	}
	if cfg.FindOne {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodGet, prefix+"/one", h.FindOne, readChain...)
	}
	if cfg.FindById {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodGet, prefix+"/:id", h.FindOneById, readChain...)
	}
	if cfg.UpdateById {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodPut, prefix+"/:id", h.UpdateById, writeChain...)
	}
	if cfg.DeleteById {
		r.RegisterRouteWithMiddleware(parent, fiber.MethodDelete, prefix+"/:id", h.DeleteById, writeChain...)
	}
}

// RegisterFunc là hàm đăng ký route của một domain
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes tạo group /api/v1 và gọi lần lượt các RegisterFunc của từng domain
func SetupRoutes(app *fiber.App, r *Router, regs ...RegisterFunc) error {
	v1 := app.Group("/api/v1")
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
