package helper

import (
	"testing"
	"time"

	"arena_manager/collection"
	"arena_manager/model"
	"arena_manager/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 5, 10, 12, 30, 0, 0, time.Local)

func dateOf(s string) utils.CustomDate {
	d, _ := utils.ParseDateOnly(s)
	return utils.CustomDate{Time: d}
}

func bookingPayment(id uint, date, start, end string) model.Payment {
	bid := id
	return model.Payment{
		PaymentID: id,
		BookingID: &bid,
		Status:    model.PaymentStatusPending,
		Booking:   &model.BookingRef{BookingID: bid, VenueID: 1, BookingDate: dateOf(date), StartTime: start, EndTime: end},
	}
}

func TestDateFilterMatchesBookingDate(t *testing.T) {
	p := bookingPayment(1, "2024-05-10", "08:00", "10:00")

	match := collection.Filter([]model.Payment{p}, PaymentPredicates(&model.FilterPayment{DateFilter: "2024-05-10"}, noon)...)
	assert.Len(t, match, 1)

	miss := collection.Filter([]model.Payment{p}, PaymentPredicates(&model.FilterPayment{DateFilter: "2024-05-11"}, noon)...)
	assert.Empty(t, miss)

	// booking không có ngày (zero value) thì không khớp ngày nào
	noDate := bookingPayment(2, "", "08:00", "10:00")
	assert.Empty(t, collection.Filter([]model.Payment{noDate}, PaymentPredicates(&model.FilterPayment{DateFilter: "2024-05-10"}, noon)...))
}

func TestBookingFiltersSkipPaymentsWithoutBooking(t *testing.T) {
	rid := uint(7)
	rental := model.Payment{PaymentID: 2, RentalID: &rid, Status: model.PaymentStatusPending}

	// filter theo địa điểm / khung giờ chỉ áp lên thanh toán có booking,
	// thiếu snapshot thì không khớp chứ không lỗi
	byVenue := collection.Filter([]model.Payment{rental}, PaymentPredicates(&model.FilterPayment{VenueId: 1}, noon)...)
	assert.Empty(t, byVenue)

	bySlot := collection.Filter([]model.Payment{rental}, PaymentPredicates(&model.FilterPayment{TimeSlot: "morning"}, noon)...)
	assert.Empty(t, bySlot)
}

func TestSlotOverlapIsOverlapNotContainment(t *testing.T) {
	cases := []struct {
		name             string
		start, end, slot string
		want             bool
	}{
		{"nằm trọn trong khung", "08:00", "10:00", "morning", true},
		{"chờm qua đầu khung", "05:00", "07:00", "morning", true},
		{"chờm qua cuối khung", "11:00", "13:00", "morning", true},
		{"phủ cả khung", "05:00", "13:00", "morning", true},
		{"kết thúc đúng lúc khung mở", "04:00", "06:00", "morning", false},
		{"bắt đầu đúng lúc khung đóng", "12:00", "14:00", "morning", false},
		{"khung tường minh", "17:30", "19:00", "18:00-20:00", true},
		{"ngoài khung tường minh", "15:00", "17:00", "18:00-20:00", false},
		{"buổi tối", "21:00", "23:00", "evening", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BookingOverlapsSlot(tc.start, tc.end, tc.slot, noon))
		})
	}
}

func TestSlotCurrentUsesWallClockHour(t *testing.T) {
	// noon = 12:30, khung "current" là 12:00-13:00
	assert.True(t, BookingOverlapsSlot("12:00", "14:00", "current", noon))
	assert.False(t, BookingOverlapsSlot("13:00", "15:00", "current", noon))
}

func TestTypeDiscriminator(t *testing.T) {
	bid, rid := uint(1), uint(2)
	items := []model.Payment{
		{PaymentID: 1, BookingID: &bid},
		{PaymentID: 2, RentalID: &rid},
	}

	bookings := collection.Filter(items, PaymentPredicates(&model.FilterPayment{Type: model.PaymentTypeBooking}, noon)...)
	require.Len(t, bookings, 1)
	assert.Equal(t, uint(1), bookings[0].PaymentID)

	rentals := collection.Filter(items, PaymentPredicates(&model.FilterPayment{Type: model.PaymentTypeRental}, noon)...)
	require.Len(t, rentals, 1)
	assert.Equal(t, uint(2), rentals[0].PaymentID)
}

func TestSumAmountsEmptyAndMissingAmounts(t *testing.T) {
	assert.True(t, SumAmounts(nil).IsZero())

	// amount vắng mặt là zero value, đóng góp 0 chứ không phá tổng
	items := []model.Payment{
		{PaymentID: 1, Amount: decimal.NewFromInt(150000)},
		{PaymentID: 2},
		{PaymentID: 3, Amount: decimal.NewFromInt(50000)},
	}
	assert.True(t, SumAmounts(items).Equal(decimal.NewFromInt(200000)))
}

func TestComputePaymentStats(t *testing.T) {
	items := []model.Payment{
		{Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(100)},
		{Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(200)},
		{Status: model.PaymentStatusPending, Amount: decimal.NewFromInt(50)},
		{Status: model.PaymentStatusRefunded, Amount: decimal.NewFromInt(100)},
	}

	stats := ComputePaymentStats(items)

	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Completed)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Refunded)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(450)))
	assert.True(t, stats.RevenueAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, stats.RefundedAmount.Equal(decimal.NewFromInt(100)))
}

func TestPaymentTransitions(t *testing.T) {
	assert.True(t, CanTransitPayment("pending", "completed"))
	assert.True(t, CanTransitPayment("pending", "failed"))
	assert.True(t, CanTransitPayment("pending", "cancelled"))
	assert.True(t, CanTransitPayment("failed", "cancelled"))
	assert.True(t, CanTransitPayment("completed", "refunded"))

	assert.False(t, CanTransitPayment("completed", "pending"))
	assert.False(t, CanTransitPayment("refunded", "completed"))
	assert.False(t, CanTransitPayment("cancelled", "pending"))
	assert.False(t, CanTransitPayment("failed", "completed"))
}
