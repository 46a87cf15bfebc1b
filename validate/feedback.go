package validate

import (
	"fmt"
	"strconv"
	"strings"

	"arena_manager/constants"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func UpdateFeedbackStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID đánh giá không hợp lệ",
			})
		}

		var input model.UpdateFeedbackStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		// phản hồi toàn khoảng trắng coi như không có phản hồi
		if input.Response != nil {
			input.Response = utils.StringPtr(strings.TrimSpace(*input.Response))
		}

		c.Locals("inputId", uint(id))
		c.Locals("input", &input)
		return c.Next()
	}
}

func BulkFeedbackStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BulkFeedbackStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}
		if len(input.IDs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": constants.EMPTY_ID_LIST})
		}
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", &input)
		return c.Next()
	}
}
