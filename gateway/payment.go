package gateway

import (
	"context"
	"fmt"
	"net/http"

	"arena_manager/model"
)

func (c *Client) Payments(ctx context.Context) ([]model.Payment, error) {
	var items []model.Payment
	if err := c.do(ctx, http.MethodGet, "/payments", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Payment(ctx context.Context, id uint) (*model.Payment, error) {
	var p model.Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) PaymentStats(ctx context.Context) (*model.PaymentStats, error) {
	var stats model.PaymentStats
	if err := c.do(ctx, http.MethodGet, "/payments/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) CreatePayment(ctx context.Context, input *model.CreatePaymentInput) (*model.Payment, error) {
	var p model.Payment
	if err := c.do(ctx, http.MethodPost, "/payments", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id uint, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/payments/%d", id), body, nil)
}

func (c *Client) DeletePayment(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/payments/%d", id), nil, nil)
}
