package helper

import (
	"strings"
	"time"

	"arena_manager/collection"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/shopspring/decimal"
)

// slot giờ theo token cũ của dashboard
var legacySlots = map[string][2]int{
	"morning":   {6 * 60, 12 * 60},
	"afternoon": {12 * 60, 18 * 60},
	"evening":   {18 * 60, 22 * 60},
}

// PaymentPredicates: thanh toán thiếu snapshot booking thì các filter
// dựa trên booking coi nó không khớp, không lỗi.
func PaymentPredicates(f *model.FilterPayment, now time.Time) []collection.Predicate[model.Payment] {
	var preds []collection.Predicate[model.Payment]

	if status := strings.TrimSpace(f.Status); status != "" && status != "all" {
		preds = append(preds, func(p model.Payment) bool { return p.Status == status })
	}
	if method := strings.TrimSpace(f.Method); method != "" && method != "all" {
		preds = append(preds, func(p model.Payment) bool { return p.PaymentMethod == method })
	}
	if typ := strings.TrimSpace(f.Type); typ != "" && typ != "all" {
		preds = append(preds, func(p model.Payment) bool { return p.Type() == typ })
	}
	if f.VenueId > 0 {
		preds = append(preds, func(p model.Payment) bool {
			return p.Booking != nil && p.Booking.VenueID == f.VenueId
		})
	}
	if p := dateRangePredicate(f.DateFrom, f.DateTo, func(p model.Payment) int64 {
		return p.CreatedAt.UnixNano()
	}); p != nil {
		preds = append(preds, p)
	}
	if day := strings.TrimSpace(f.DateFilter); day != "" && day != "all" {
		preds = append(preds, func(p model.Payment) bool {
			return p.Booking != nil && p.Booking.BookingDate.String() == day
		})
	}
	if slot := strings.TrimSpace(f.TimeSlot); slot != "" && slot != "all" {
		preds = append(preds, func(p model.Payment) bool {
			if p.Booking == nil {
				return false
			}
			return BookingOverlapsSlot(p.Booking.StartTime, p.Booking.EndTime, slot, now)
		})
	}
	return preds
}

// SlotBounds đổi token khung giờ sang [start, end) theo phút trong ngày.
// Nhận "HH:MM-HH:MM" hoặc token cũ morning/afternoon/evening/current.
func SlotBounds(token string, now time.Time) (int, int, bool) {
	token = strings.TrimSpace(token)
	if b, ok := legacySlots[token]; ok {
		return b[0], b[1], true
	}
	if token == "current" {
		start := now.Hour() * 60
		return start, start + 60, true
	}
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err1 := utils.MinutesOfDay(parts[0])
	end, err2 := utils.MinutesOfDay(parts[1])
	if err1 != nil || err2 != nil || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// BookingOverlapsSlot: chỉ cần giao nhau là khớp, không yêu cầu nằm trọn
// trong khung (booking bắt đầu trong khung, kết thúc trong khung, hoặc
// phủ qua cả khung).
func BookingOverlapsSlot(startHHMM, endHHMM, token string, now time.Time) bool {
	slotStart, slotEnd, ok := SlotBounds(token, now)
	if !ok {
		return true // token lạ: không ràng buộc
	}
	bStart, err1 := utils.MinutesOfDay(startHHMM)
	bEnd, err2 := utils.MinutesOfDay(endHHMM)
	if err1 != nil || err2 != nil {
		return false
	}
	return bStart < slotEnd && bEnd > slotStart
}

// SumAmounts cộng tiền bằng decimal; amount thiếu là zero value,
// đóng góp 0 chứ không lan NaN vào tổng.
func SumAmounts(items []model.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Amount)
	}
	return total
}

// ComputePaymentStats reduce trên collection hiện có (đường client-computed).
func ComputePaymentStats(items []model.Payment) model.PaymentStats {
	stats := model.PaymentStats{
		Total:          int64(len(items)),
		TotalAmount:    decimal.Zero,
		RevenueAmount:  decimal.Zero,
		RefundedAmount: decimal.Zero,
	}
	for _, p := range items {
		stats.TotalAmount = stats.TotalAmount.Add(p.Amount)
		switch p.Status {
		case model.PaymentStatusPending:
			stats.Pending++
		case model.PaymentStatusCompleted:
			stats.Completed++
			stats.RevenueAmount = stats.RevenueAmount.Add(p.Amount)
		case model.PaymentStatusFailed:
			stats.Failed++
		case model.PaymentStatusCancelled:
			stats.Cancelled++
		case model.PaymentStatusRefunded:
			stats.Refunded++
			stats.RefundedAmount = stats.RefundedAmount.Add(p.Amount)
		}
	}
	return stats
}

// paymentTransitions: các chuyển trạng thái dashboard được phép thực hiện.
// completed kèm side effect backend gán paid_at.
var paymentTransitions = map[string][]string{
	model.PaymentStatusPending:   {model.PaymentStatusCompleted, model.PaymentStatusFailed, model.PaymentStatusCancelled},
	model.PaymentStatusFailed:    {model.PaymentStatusCancelled},
	model.PaymentStatusCompleted: {model.PaymentStatusRefunded},
}

func CanTransitPayment(from, to string) bool {
	for _, allowed := range paymentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
