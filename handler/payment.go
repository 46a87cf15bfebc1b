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

func GetPayments(c *fiber.Ctx) error {
	filterInput := new(model.FilterPayment)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gwc := sessionGateway(c)
	payments, err := gwc.Payments(c.UserContext())
	if err != nil {
		if errors.Is(err, gateway.ErrSessionExpired) {
			return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
		}
		logger.L().Error("load payments failed", zap.Error(err))
		return utils.DegradedListResponse(c, constants.CAN_NOT_GET_PAYMENT)
	}

	visible := collection.Filter(payments, helper.PaymentPredicates(filterInput, time.Now())...)

	limit, page := pageParams(filterInput.Pagination, 20)
	totalCount := int64(len(visible))
	rows := collection.Paginate(visible, limit, page)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":       rows,
		"limit":      &limit,
		"page":       &page,
		"totalCount": totalCount,
		"summary":    helper.ComputePaymentStats(visible),
	})
}

func GetPaymentById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	gwc := sessionGateway(c)
	p, err := gwc.Payment(c.UserContext(), id)
	if err != nil {
		return respondGatewayError(c, err, constants.PAYMENT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, p)
}

// CreatePayment: input đã qua validate; tạo xong refetch cả danh sách
// lẫn số liệu thống kê.
func CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreatePaymentInput)

	gwc := sessionGateway(c)
	created, err := gwc.CreatePayment(c.UserContext(), input)
	if err != nil {
		return respondGatewayError(c, err, constants.CREATE_FAILED)
	}

	rows, err := gwc.Payments(c.UserContext())
	if err != nil {
		logger.L().Warn("refetch payments after create failed", zap.Error(err))
	}
	stats, err := gwc.PaymentStats(c.UserContext())
	if err != nil {
		logger.L().Warn("refetch payment stats after create failed", zap.Error(err))
		computed := helper.ComputePaymentStats(rows)
		stats = &computed
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"payment": created,
		"rows":    rows,
		"stats":   stats,
	})
}

// UpdatePaymentStatus đi theo máy trạng thái 5 bước của thanh toán;
// pending→completed để backend gán paid_at.
func UpdatePaymentStatus(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("input").(*model.UpdatePaymentStatusInput)

	gwc := sessionGateway(c)
	coord := coordinator.New(collection.NewStore[model.Payment](), gwc.Payments, logger.L())
	if _, err := coord.Refresh(c.UserContext()); err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_PAYMENT)
	}

	// trạng thái hiện tại đọc từ collection vừa refresh, không gọi thêm detail
	current, ok := findPayment(coord.Store().Items(), id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, nil)
	}
	if !helper.CanTransitPayment(current.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_TRANSITION,
			errors.New(current.Status+" -> "+input.Status))
	}

	rows, err := coord.Update(c.UserContext(),
		func(ctx context.Context) error { return gwc.UpdatePaymentStatus(ctx, id, input.Status) },
		func(p model.Payment) bool { return p.PaymentID == id },
		func(p *model.Payment) {
			now := time.Now()
			p.Status = input.Status
			p.UpdatedAt = now
			if input.Status == model.PaymentStatusCompleted {
				p.PaidAt = utils.Ptr(now)
			}
		},
	)
	if err != nil {
		return respondGatewayError(c, err, constants.UPDATE_FAILED)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": rows})
}

func findPayment(items []model.Payment, id uint) (model.Payment, bool) {
	for _, p := range items {
		if p.PaymentID == id {
			return p, true
		}
	}
	return model.Payment{}, false
}

func DeletePayment(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	gwc := sessionGateway(c)
	coord := coordinator.New(collection.NewStore[model.Payment](), gwc.Payments, logger.L())
	if _, err := coord.Refresh(c.UserContext()); err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_PAYMENT)
	}

	err := coord.Delete(c.UserContext(),
		func(ctx context.Context) error { return gwc.DeletePayment(ctx, id) },
		func(p model.Payment) bool { return p.PaymentID == id },
	)
	if err != nil {
		return respondGatewayError(c, err, constants.DELETE_FAILED)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": coord.Store().Items()})
}

func GetPaymentStats(c *fiber.Ctx) error {
	gwc := sessionGateway(c)

	stats, err := gwc.PaymentStats(c.UserContext())
	if err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, stats)
	}
	if errors.Is(err, gateway.ErrSessionExpired) {
		return utils.SessionExpiredResponse(c, constants.SESSION_EXPIRED, constants.LOGIN_PATH)
	}
	logger.L().Warn("payment stats endpoint failed, computing locally", zap.Error(err))

	payments, err := gwc.Payments(c.UserContext())
	if err != nil {
		logger.L().Error("load payments for stats failed", zap.Error(err))
		return utils.SuccessResponse(c, fiber.StatusOK, helper.ComputePaymentStats(nil))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ComputePaymentStats(payments))
}
