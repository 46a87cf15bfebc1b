package handler

import (
	"arena_manager/constants"
	"arena_manager/helper"
	"arena_manager/logger"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Trang tin công khai đọc từ cache trong bộ nhớ; cache nguội thì thử
// làm mới một lần ngay trong request.

func GetPublicNews(c *fiber.Ctx) error {
	items := newsCache.Articles()
	if len(items) == 0 {
		if err := newsCache.Refresh(c.UserContext()); err != nil {
			logger.L().Warn("news refresh on demand failed", zap.Error(err))
			// cache nguội và gateway cũng không trả được gì: trang vẫn sống
			if items = newsCache.Articles(); len(items) == 0 {
				return utils.DegradedListResponse(c, constants.CAN_NOT_GET_NEWS)
			}
		} else {
			items = newsCache.Articles()
		}
	}

	category := c.Query("category")
	items = helper.FilterNewsByCategory(items, category)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       items,
		"totalCount": len(items),
	})
}

func GetFeaturedNews(c *fiber.Ctx) error {
	items := newsCache.Featured()
	if len(items) == 0 {
		if err := newsCache.Refresh(c.UserContext()); err != nil {
			logger.L().Warn("news refresh on demand failed", zap.Error(err))
		}
		items = newsCache.Featured()
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func GetNewsCategories(c *fiber.Ctx) error {
	items := newsCache.Categories()
	if len(items) == 0 {
		if err := newsCache.Refresh(c.UserContext()); err != nil {
			logger.L().Warn("news refresh on demand failed", zap.Error(err))
		}
		items = newsCache.Categories()
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func GetNewsBySlug(c *fiber.Ctx) error {
	s := c.Params("slug")
	if s == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	item, err := newsCache.BySlug(c.UserContext(), s)
	if err != nil {
		return respondGatewayError(c, err, constants.NEWS_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
