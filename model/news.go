package model

import "time"

type NewsCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type News struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Summary     string        `json:"summary"`
	Content     string        `json:"content"`
	CoverImage  string        `json:"cover_image"`
	CategoryID  uint          `json:"category_id"`
	Category    *NewsCategory `json:"category,omitempty"`
	Featured    bool          `json:"featured"`
	PublishedAt time.Time     `json:"published_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
