package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"resto_commerce/internal/common"
	"resto_commerce/internal/logger"
)

// ResponsePayload là cấu trúc JSON trả về chuẩn của mọi endpoint
type ResponsePayload struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Status  string      `json:"status"`
}

// JSONResponse ghi response JSON với charset utf-8
func JSONResponse(c fiber.Ctx, statusCode int, payload interface{}) error {
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(payload)
}

// HandleResponse chuẩn hóa response cho một cặp (data, err).
// Nếu err là *common.Error thì dùng code/message/status của nó,
// lỗi khác được bọc thành lỗi hệ thống 500.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	return HandleResponse(c, data, err)
}

// HandleResponse phiên bản standalone cho các handler không kế thừa BaseHandler
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err == nil {
		return JSONResponse(c, common.StatusOK, ResponsePayload{
			Code:    "SUCCESS",
			Message: common.MsgSuccess,
			Data:    data,
			Status:  "success",
		})
	}

	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.StatusCode >= common.StatusInternalServerError {
			logger.GetErrorLogger().WithError(err).
				WithField("path", c.Path()).
				WithField("method", c.Method()).
				Error("Request failed")
		}
		return JSONResponse(c, customErr.StatusCode, ResponsePayload{
			Code:    customErr.Code.Code,
			Message: customErr.Message,
			Status:  "error",
		})
	}

	logger.GetErrorLogger().WithError(err).
		WithField("path", c.Path()).
		WithField("method", c.Method()).
		Error("Unhandled error")
	return JSONResponse(c, common.StatusInternalServerError, ResponsePayload{
		Code:    common.ErrCodeInternalServer.Code,
		Message: common.MsgInternalError,
		Status:  "error",
	})
}

// SafeHandler bọc một handler function với panic recovery.
// Panic trong handler được log kèm stack trace và trả về lỗi 500 thay vì sập tiến trình.
func SafeHandler(c fiber.Ctx, fn func() error) error {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().
					WithField("panic", fmt.Sprintf("%v", r)).
					WithField("stack", string(debug.Stack())).
					WithField("path", c.Path()).
					Error("Panic recovered in handler")
				err = common.NewError(
					common.ErrCodeInternalServer,
					common.MsgInternalError,
					common.StatusInternalServerError,
					r,
				)
			}
		}()
		err = fn()
	}()

	if err != nil {
		return HandleResponse(c, nil, err)
	}
	return nil
}

// SafeHandlerWrapper chuyển một handler trả về (data, err) thành fiber.Handler an toàn
func SafeHandlerWrapper(fn func(c fiber.Ctx) (interface{}, error)) fiber.Handler {
	return func(c fiber.Ctx) error {
		return SafeHandler(c, func() error {
			data, err := fn(c)
			return HandleResponse(c, data, err)
		})
	}
}
