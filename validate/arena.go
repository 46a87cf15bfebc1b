package validate

import (
	"fmt"
	"strconv"

	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func EditArena(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID sân không hợp lệ",
			})
		}

		var input model.EditArenaInput
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
		// giờ mở cửa phải là "HH:MM" hợp lệ nếu client gửi lên
		if input.OpenTime != nil {
			if _, err := utils.MinutesOfDay(*input.OpenTime); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ mở cửa không hợp lệ", err, "open_time")
			}
		}
		if input.CloseTime != nil {
			if _, err := utils.MinutesOfDay(*input.CloseTime); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ đóng cửa không hợp lệ", err, "close_time")
			}
		}

		c.Locals("inputId", uint(id))
		c.Locals("input", &input)
		return c.Next()
	}
}

func UpdateArenaStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID sân không hợp lệ",
			})
		}

		var input model.UpdateArenaStatusInput
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

		c.Locals("inputId", uint(id))
		c.Locals("input", &input)
		return c.Next()
	}
}
