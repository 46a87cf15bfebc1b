package handler

import (
	"errors"

	"arena_manager/constants"
	"arena_manager/gateway"
	"arena_manager/helper"
	"arena_manager/logger"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetAdminStats gom số liệu cho màn hình tổng quan. Feedback/payment có
// endpoint stats backend tính sẵn, số liệu sân reduce tại chỗ;
// endpoint nào hỏng thì rơi về đường client-computed.
func GetAdminStats(c *fiber.Ctx) error {
	gwc := sessionGateway(c)
	ctx := c.UserContext()

	type arenaStats struct {
		Total       int64 `json:"total"`
		Active      int64 `json:"active"`
		Maintenance int64 `json:"maintenance"`
		Inactive    int64 `json:"inactive"`
	}

	degraded := false

	var aStats arenaStats
	arenas, err := gwc.Arenas(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		logger.L().Warn("load arenas for stats failed", zap.Error(err))
		degraded = true
	}
	aStats.Total = int64(len(arenas))
	for _, a := range arenas {
		switch a.Status {
		case model.ArenaStatusActive:
			aStats.Active++
		case model.ArenaStatusMaintenance:
			aStats.Maintenance++
		case model.ArenaStatusInactive:
			aStats.Inactive++
		}
	}

	var fStats model.FeedbackStats
	if stats, err := gwc.FeedbackStats(ctx); err == nil {
		fStats = helper.CoalesceFeedbackStats(stats)
	} else {
		logger.L().Warn("feedback stats endpoint failed", zap.Error(err))
		if feedbacks, err := gwc.Feedbacks(ctx); err == nil {
			fStats = helper.ComputeFeedbackStats(feedbacks)
		} else {
			degraded = true
		}
	}

	var pStats model.PaymentStats
	if stats, err := gwc.PaymentStats(ctx); err == nil {
		pStats = *stats
	} else {
		logger.L().Warn("payment stats endpoint failed", zap.Error(err))
		if payments, err := gwc.Payments(ctx); err == nil {
			pStats = helper.ComputePaymentStats(payments)
		} else {
			pStats = helper.ComputePaymentStats(nil)
			degraded = true
		}
	}

	payload := fiber.Map{
		"arenas":    aStats,
		"feedbacks": fStats,
		"payments":  pStats,
	}
	// một mảng số liệu không tải được thì màn hình vẫn lên, kèm notice
	if degraded {
		payload["notice"] = constants.CAN_NOT_GET_STATS
	}
	return utils.SuccessResponse(c, fiber.StatusOK, payload)
}
