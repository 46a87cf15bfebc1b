package gateway

import (
	"context"
	"fmt"
	"net/http"

	"arena_manager/model"
)

func (c *Client) Feedbacks(ctx context.Context) ([]model.Feedback, error) {
	var items []model.Feedback
	if err := c.do(ctx, http.MethodGet, "/feedbacks", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Feedback(ctx context.Context, id uint) (*model.Feedback, error) {
	var fb model.Feedback
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/feedbacks/%d", id), nil, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

func (c *Client) FeedbackStats(ctx context.Context) (*model.FeedbackStats, error) {
	var stats model.FeedbackStats
	if err := c.do(ctx, http.MethodGet, "/feedbacks/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) UpdateFeedbackStatus(ctx context.Context, id uint, status string, response *string) error {
	body := map[string]any{"status": status}
	if response != nil {
		body["response"] = *response
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/feedbacks/%d", id), body, nil)
}
