package handler

import (
	"errors"

	"arena_manager/constants"
	"arena_manager/gateway"
	"arena_manager/helper"
	"arena_manager/middleware"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	gw        *gateway.Client
	newsCache *helper.NewsCache
)

// Setup tiêm gateway client và cache tin tức cho toàn bộ handler.
func Setup(client *gateway.Client, cache *helper.NewsCache) {
	gw = client
	newsCache = cache
}

// sessionGateway gắn token của phiên hiện tại vào client.
// Token chỉ đọc, không bao giờ refresh trong một phiên trang.
func sessionGateway(c *fiber.Ctx) *gateway.Client {
	return gw.WithToken(middleware.Token(c))
}

// respondGatewayError dịch lỗi gateway sang response cho dashboard:
// 401 ép đăng nhập lại, lỗi có message của backend thì đưa nguyên văn.
func respondGatewayError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, gateway.ErrSessionExpired) {
		return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return utils.ErrorResponse(c, apiErr.Status, apiErr.Message, err)
	}
	return utils.ErrorResponse(c, fiber.StatusBadGateway, fallback, err)
}

func pageParams(p model.Pagination, defaultLimit int) (int, int) {
	limit := defaultLimit
	page := 1
	if p.Limit != nil && *p.Limit > 0 {
		limit = *p.Limit
		if limit > 500 {
			limit = 500
		}
	}
	if p.Page != nil && *p.Page > 0 {
		page = *p.Page
	}
	return limit, page
}
