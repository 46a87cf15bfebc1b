package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"

	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodVNPay        = "vnpay"
	PaymentMethodMomo         = "momo"

	PaymentTypeBooking = "booking"
	PaymentTypeRental  = "rental"
)

type RentalRef struct {
	RentalID  uint   `json:"rental_id"`
	ItemName  string `json:"item_name,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Payment: booking_id và rental_id loại trừ lẫn nhau,
// bên nào có mặt quyết định loại thanh toán.
type Payment struct {
	PaymentID       uint            `json:"payment_id"`
	BookingID       *uint           `json:"booking_id,omitempty"`
	RentalID        *uint           `json:"rental_id,omitempty"`
	UserID          uint            `json:"user_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	Status          string          `json:"status"`
	TransactionID   *string         `json:"transaction_id,omitempty"`
	GatewayResponse *string         `json:"gateway_response,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	User            *UserRef        `json:"user,omitempty"`
	Booking         *BookingRef     `json:"booking,omitempty"`
	Rental          *RentalRef      `json:"rental,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Type suy ra từ snapshot/khoá ngoại có mặt
func (p Payment) Type() string {
	if p.BookingID != nil || p.Booking != nil {
		return PaymentTypeBooking
	}
	if p.RentalID != nil || p.Rental != nil {
		return PaymentTypeRental
	}
	return ""
}

type PaymentStats struct {
	Total          int64           `json:"total"`
	Pending        int64           `json:"pending"`
	Completed      int64           `json:"completed"`
	Failed         int64           `json:"failed"`
	Cancelled      int64           `json:"cancelled"`
	Refunded       int64           `json:"refunded"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	RevenueAmount  decimal.Decimal `json:"revenue_amount"`  // completed
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
}

type CreatePaymentInput struct {
	BookingID     *uint           `json:"booking_id" validate:"omitempty,gt=0"`
	RentalID      *uint           `json:"rental_id" validate:"omitempty,gt=0"`
	UserID        uint            `json:"user_id" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash bank_transfer vnpay momo"`
	Notes         *string         `json:"notes" validate:"omitempty,max=2000"`
}

type UpdatePaymentStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed cancelled refunded"`
}

type FilterPayment struct {
	Pagination
	Status     string `query:"status" json:"status"`
	Method     string `query:"method" json:"method"`
	Type       string `query:"type" json:"type"` // booking | rental
	VenueId    uint   `query:"venueId" json:"venueId"`
	DateFrom   string `query:"dateFrom" json:"dateFrom"`     // theo created_at
	DateTo     string `query:"dateTo" json:"dateTo"`         // đến hết ngày
	DateFilter string `query:"dateFilter" json:"dateFilter"` // đúng ngày đặt sân (booking_date)
	TimeSlot   string `query:"timeSlot" json:"timeSlot"`     // "HH:MM-HH:MM" | morning | afternoon | evening | current
}
