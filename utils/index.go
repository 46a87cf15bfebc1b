package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// SessionExpiredResponse: 401 kèm đường dẫn login để client chuyển hướng
func SessionExpiredResponse(c *fiber.Ctx, message, loginPath string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message":  message,
		"redirect": loginPath,
	})
}

// DegradedListResponse: đọc lỗi thì trang vẫn dùng được với danh sách rỗng
// cùng một notice cho người dùng.
func DegradedListResponse(c *fiber.Ctx, notice string) error {
	limit, page := 0, 1
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"notice": notice,
		"data": fiber.Map{
			"rows":       []any{},
			"limit":      &limit,
			"page":       &page,
			"totalCount": 0,
		},
	})
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
