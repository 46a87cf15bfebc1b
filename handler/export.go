package handler

import (
	"fmt"
	"strconv"
	"time"

	"arena_manager/collection"
	"arena_manager/constants"
	"arena_manager/helper"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Export tải về đúng tập đang hiển thị: cùng filter state với danh sách,
// cột và nhãn cố định theo từng loại.

func sendCSV(c *fiber.Ctx, filename string, headers []string, rows [][]string) error {
	data, err := utils.ExportCSV(headers, rows)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func ExportArenas(c *fiber.Ctx) error {
	filterInput := new(model.FilterArena)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gwc := sessionGateway(c)
	arenas, err := gwc.Arenas(c.UserContext())
	if err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_ARENA)
	}
	visible := collection.Filter(arenas, helper.ArenaPredicates(filterInput)...)
	visible = helper.SortArenas(visible, filterInput.SortBy)

	headers := []string{"ID", "Tên sân", "Địa chỉ", "Loại", "Trạng thái", "Giá/giờ", "Giờ mở cửa", "Giờ đóng cửa", "Số sân con"}
	rows := make([][]string, 0, len(visible))
	for _, a := range visible {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Name,
			a.Address,
			a.Type,
			a.Status,
			strconv.FormatFloat(a.PricePerHour, 'f', 0, 64),
			a.OpenTime,
			a.CloseTime,
			strconv.Itoa(len(a.SubArenas)),
		})
	}
	return sendCSV(c, "danh-sach-san.csv", headers, rows)
}

func ExportFeedbacks(c *fiber.Ctx) error {
	filterInput := new(model.FilterFeedback)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gwc := sessionGateway(c)
	feedbacks, err := gwc.Feedbacks(c.UserContext())
	if err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_FEEDBACK)
	}
	visible := collection.Filter(feedbacks, helper.FeedbackPredicates(filterInput)...)

	headers := []string{"ID", "Người gửi", "Email", "Điểm", "Nội dung", "Trạng thái", "Phản hồi", "Ngày tạo"}
	rows := make([][]string, 0, len(visible))
	for _, fb := range visible {
		name, email := "", ""
		if fb.User != nil {
			name, email = fb.User.Name, fb.User.Email
		}
		response := ""
		if fb.Response != nil {
			response = *fb.Response
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(fb.FeedbackID), 10),
			name,
			email,
			strconv.Itoa(fb.Rating),
			fb.Comment,
			fb.Status,
			response,
			fb.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return sendCSV(c, "danh-sach-danh-gia.csv", headers, rows)
}

func ExportPayments(c *fiber.Ctx) error {
	filterInput := new(model.FilterPayment)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gwc := sessionGateway(c)
	payments, err := gwc.Payments(c.UserContext())
	if err != nil {
		return respondGatewayError(c, err, constants.CAN_NOT_GET_PAYMENT)
	}
	visible := collection.Filter(payments, helper.PaymentPredicates(filterInput, time.Now())...)

	headers := []string{"ID", "Loại", "Số tiền", "Phương thức", "Trạng thái", "Mã giao dịch", "Ngày thanh toán", "Ngày tạo"}
	rows := make([][]string, 0, len(visible))
	for _, p := range visible {
		txID := ""
		if p.TransactionID != nil {
			txID = *p.TransactionID
		}
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(p.PaymentID), 10),
			p.Type(),
			p.Amount.StringFixed(0),
			p.PaymentMethod,
			p.Status,
			txID,
			paidAt,
			p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return sendCSV(c, "danh-sach-thanh-toan.csv", headers, rows)
}
