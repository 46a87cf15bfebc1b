package middleware

import (
	"errors"
	"os"
	"strings"

	"arena_manager/constants"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected kiểm tra token trước khi handler đụng tới gateway:
// thiếu token hoặc token hỏng/hết hạn thì trả 401 kèm redirect /login,
// không có request nào được bắn đi.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}

		c.Locals("token", token)
		c.Locals("user", claimFrom(jwtToken))
		return c.Next()
	}
}

func claimFrom(token *jwt.Token) model.TokenClaim {
	claim := model.TokenClaim{}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return claim
	}
	if v, ok := mapClaims["userId"].(float64); ok {
		claim.UserId = uint(v)
	}
	if v, ok := mapClaims["username"].(string); ok {
		claim.Username = v
	}
	if v, ok := mapClaims["role"].(string); ok {
		claim.Role = v
	}
	return claim
}

// Token lấy token đã qua Protected từ Locals.
func Token(c *fiber.Ctx) string {
	if v, ok := c.Locals("token").(string); ok {
		return v
	}
	return ""
}
