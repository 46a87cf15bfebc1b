package validate

import (
	"errors"
	"strconv"

	"arena_manager/constants"
	"arena_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById ép param đường dẫn phải là số, lưu vào Locals cho handler.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

