package handler

import (
	"errors"

	"arena_manager/constants"
	"arena_manager/gateway"
	"arena_manager/logger"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Danh mục địa điểm/sân phục vụ dropdown filter của dashboard.

func GetVenues(c *fiber.Ctx) error {
	gwc := sessionGateway(c)
	items, err := gwc.Venues(c.UserContext())
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		logger.L().Error("load venues failed", zap.Error(err))
		return utils.DegradedListResponse(c, constants.CAN_NOT_GET_VENUE)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func GetCourts(c *fiber.Ctx) error {
	gwc := sessionGateway(c)
	items, err := gwc.Courts(c.UserContext())
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		logger.L().Error("load courts failed", zap.Error(err))
		return utils.DegradedListResponse(c, constants.CAN_NOT_GET_VENUE)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func GetCourtTypes(c *fiber.Ctx) error {
	gwc := sessionGateway(c)
	items, err := gwc.CourtTypes(c.UserContext())
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		logger.L().Error("load court types failed", zap.Error(err))
		return utils.DegradedListResponse(c, constants.CAN_NOT_GET_VENUE)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}
