package model

import "time"

const (
	ArenaTypeFootball   = "football"
	ArenaTypeVolleyball = "volleyball"
	ArenaTypeBasketball = "basketball"
	ArenaTypeBadminton  = "badminton"
	ArenaTypeTennis     = "tennis"
	ArenaTypeSwimming   = "swimming"
	ArenaTypeOther      = "other"

	ArenaStatusActive      = "active"
	ArenaStatusMaintenance = "maintenance"
	ArenaStatusInactive    = "inactive"
)

// SubArena chỉ có identity trong phạm vi sân cha
type SubArena struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type Arena struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Images       []string   `json:"images"`
	PricePerHour float64    `json:"price_per_hour"`
	OpenTime     string     `json:"open_time"`
	CloseTime    string     `json:"close_time"`
	SubArenas    []SubArena `json:"sub_arenas"`
	Features     []string   `json:"features"`
	Rules        []string   `json:"rules"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type EditArenaInput struct {
	Name         *string    `json:"name" validate:"omitempty,min=1"`
	Address      *string    `json:"address"`
	Description  *string    `json:"description"`
	Type         *string    `json:"type" validate:"omitempty,oneof=football volleyball basketball badminton tennis swimming other"`
	Status       *string    `json:"status" validate:"omitempty,oneof=active maintenance inactive"`
	Images       []string   `json:"images"`
	PricePerHour *float64   `json:"price_per_hour" validate:"omitempty,gte=0"`
	OpenTime     *string    `json:"open_time"`
	CloseTime    *string    `json:"close_time"`
	SubArenas    []SubArena `json:"sub_arenas"`
	Features     []string   `json:"features"`
	Rules        []string   `json:"rules"`
}

type UpdateArenaStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active maintenance inactive"`
}

// FilterArena là filter state của trang danh sách sân,
// khởi tạo mặc định mỗi lần load trang, không lưu lại.
type FilterArena struct {
	Pagination
	SearchKey  string   `query:"searchKey" json:"searchKey"`
	Types      []string `query:"types" json:"types"`
	Statuses   []string `query:"statuses" json:"statuses"`
	PriceRange string   `query:"priceRange" json:"priceRange"` // "all" | "min-max" | "min+"
	SortBy     string   `query:"sortBy" json:"sortBy"`         // "" | price_asc | price_desc | name
}
