package validate

import (
	"fmt"
	"strconv"

	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment chặn request không hợp lệ ngay tại đây, chưa hợp lệ
// thì không có gì được gửi sang gateway.
func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
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
		if input.Amount.Sign() <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số tiền phải lớn hơn 0", fmt.Errorf("amount must be positive"), "amount")
		}
		// booking_id và rental_id loại trừ lẫn nhau, phải có đúng một
		if (input.BookingID == nil) == (input.RentalID == nil) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thanh toán phải gắn với một lượt đặt sân hoặc một lượt thuê đồ", fmt.Errorf("booking_id xor rental_id"), "booking_id")
		}

		c.Locals("input", &input)
		return c.Next()
	}
}

func UpdatePaymentStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID thanh toán không hợp lệ",
			})
		}

		var input model.UpdatePaymentStatusInput
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
