package handler

import (
	"context"
	"errors"
	"time"

	"arena_manager/collection"
	"arena_manager/constants"
	"arena_manager/coordinator"
	"arena_manager/gateway"
	"arena_manager/helper"
	"arena_manager/logger"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func GetFeedbacks(c *fiber.Ctx) error {
	filterInput := new(model.FilterFeedback)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gwc := sessionGateway(c)
	feedbacks, err := gwc.Feedbacks(c.UserContext())
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		logger.L().Error("load feedbacks failed", zap.Error(err))
		return utils.DegradedListResponse(c, constants.CAN_NOT_GET_FEEDBACK)
	}

	visible := collection.Filter(feedbacks, helper.FeedbackPredicates(filterInput)...)

	limit, page := pageParams(filterInput.Pagination, 20)
	totalCount := int64(len(visible))
	rows := collection.Paginate(visible, limit, page)

	// dòng tổng kết tính ngay trên tập đã lọc
	summary := helper.ComputeFeedbackStats(visible)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       rows,
		"limit":      &limit,
		"page":       &page,
		"totalCount": totalCount,
		"summary":    summary,
	})
}

func GetFeedbackById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	gwc := sessionGateway(c)
	fb, err := gwc.Feedback(c.UserContext(), id)
	if err != nil {
		return respondGatewayError(c, err, constants.FEEDBACK_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fb)
}

// UpdateFeedbackStatus duyệt hoặc từ chối một đánh giá đang chờ.
// Chỉ pending mới đổi được trạng thái; duyệt xong là terminal.
func UpdateFeedbackStatus(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(*model.UpdateFeedbackStatusInput)

	gwc := sessionGateway(c)
	coord := coordinator.New(collection.NewStore[model.Feedback](), gwc.Feedbacks, logger.L())
	if _, err := coord.Refresh(c.UserContext()); err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_FEEDBACK)
	}

	// trạng thái hiện tại đọc từ collection vừa refresh, không gọi thêm detail
	current, ok := findFeedback(coord.Store().Items(), id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FEEDBACK_NOT_FOUND, nil)
	}
	if !helper.CanTransitFeedback(current.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_TRANSITION,
			errors.New(current.Status+" -> "+input.Status))
	}

	rows, err := coord.Update(c.UserContext(),
		func(ctx context.Context) error {
			return gwc.UpdateFeedbackStatus(ctx, id, input.Status, input.Response)
		},
		func(fb model.Feedback) bool { return fb.FeedbackID == id },
		func(fb *model.Feedback) {
			now := time.Now()
			fb.Status = input.Status
			fb.Response = input.Response
			fb.ResponseDate = utils.Ptr(now)
			fb.UpdatedAt = now
		},
	)
	if err != nil {
		return respondGatewayError(c, err, constants.UPDATE_FAILED)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": rows})
}

func findFeedback(items []model.Feedback, id uint) (model.Feedback, bool) {
	for _, fb := range items {
		if fb.FeedbackID == id {
			return fb, true
		}
	}
	return model.Feedback{}, false
}

// BulkFeedbackStatus bắn N request độc lập, đợi hết rồi refetch.
// Trả riêng số thành công / thất bại, không all-or-nothing.
func BulkFeedbackStatus(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.BulkFeedbackStatusInput)

	gwc := sessionGateway(c)
	coord := coordinator.New(collection.NewStore[model.Feedback](), gwc.Feedbacks, logger.L())
	if _, err := coord.Refresh(c.UserContext()); err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_FEEDBACK)
	}

	result, rows, err := coord.BulkUpdate(c.UserContext(), input.IDs,
		func(ctx context.Context, id uint) error {
			return gwc.UpdateFeedbackStatus(ctx, id, input.Status, nil)
		},
	)
	if err != nil {
		logger.L().Warn("refetch after bulk update failed", zap.Error(err))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"result":         result,
		"rows":           rows,
		"clearSelection": true,
	})
}

// GetFeedbackStats ưu tiên số liệu backend tính sẵn; endpoint stats hỏng
// thì tự reduce trên collection (đường client-computed).
func GetFeedbackStats(c *fiber.Ctx) error {
	gwc := sessionGateway(c)

	stats, err := gwc.FeedbackStats(c.UserContext())
	if err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, helper.CoalesceFeedbackStats(stats))
	}
	if errors.Is(err, gateway.ErrSessionExpired) {
		return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
	}
	logger.L().Warn("feedback stats endpoint failed, computing locally", zap.Error(err))

	feedbacks, err := gwc.Feedbacks(c.UserContext())
	if err != nil {
		logger.L().Error("load feedbacks for stats failed", zap.Error(err))
		return utils.SuccessResponse(c, fiber.StatusOK, model.FeedbackStats{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ComputeFeedbackStats(feedbacks))
}
