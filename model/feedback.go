package model

import (
	"time"

	"arena_manager/utils"
)

const (
	FeedbackStatusPending  = "pending"
	FeedbackStatusApproved = "approved"
	FeedbackStatusRejected = "rejected"
)

type VenueRef struct {
	VenueID uint   `json:"venue_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type CourtRef struct {
	CourtID uint   `json:"court_id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
}

type BookingRef struct {
	BookingID   uint             `json:"booking_id"`
	VenueID     uint             `json:"venue_id,omitempty"`
	CourtID     uint             `json:"court_id,omitempty"`
	BookingDate utils.CustomDate `json:"booking_date"`
	StartTime   string           `json:"start_time,omitempty"` // "HH:MM"
	EndTime     string           `json:"end_time,omitempty"`   // "HH:MM"
}

type Feedback struct {
	FeedbackID   uint        `json:"feedback_id"`
	UserID       uint        `json:"user_id"`
	VenueID      *uint       `json:"venue_id,omitempty"`
	CourtID      *uint       `json:"court_id,omitempty"`
	BookingID    *uint       `json:"booking_id,omitempty"`
	Rating       int         `json:"rating"` // 1..5
	Comment      string      `json:"comment"`
	Status       string      `json:"status"`
	Response     *string     `json:"response,omitempty"`
	ResponseDate *time.Time  `json:"response_date,omitempty"`
	ResponseBy   *uint       `json:"response_by,omitempty"`
	User         *UserRef    `json:"user,omitempty"`
	Venue        *VenueRef   `json:"venue,omitempty"`
	Court        *CourtRef   `json:"court,omitempty"`
	Booking      *BookingRef `json:"booking,omitempty"`
	Responder    *UserRef    `json:"responder,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FeedbackStats: endpoint /feedbacks/stats trả sẵn, chỉ coalesce null về 0
type FeedbackStats struct {
	Total         int64   `json:"total"`
	Pending       int64   `json:"pending"`
	Approved      int64   `json:"approved"`
	Rejected      int64   `json:"rejected"`
	AverageRating float64 `json:"average_rating"`
}

type UpdateFeedbackStatusInput struct {
	Status   string  `json:"status" validate:"required,oneof=approved rejected"`
	Response *string `json:"response" validate:"omitempty,max=2000"`
}

type BulkFeedbackStatusInput struct {
	ArrayId
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type FilterFeedback struct {
	Pagination
	SearchKey string `query:"searchKey" json:"searchKey"`
	Status    string `query:"status" json:"status"`
	Rating    int    `query:"rating" json:"rating"`
	DateFrom  string `query:"dateFrom" json:"dateFrom"` // "YYYY-MM-DD"
	DateTo    string `query:"dateTo" json:"dateTo"`     // "YYYY-MM-DD", tính đến hết ngày
}
