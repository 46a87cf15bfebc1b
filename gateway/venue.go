package gateway

import (
	"context"
	"net/http"

	"arena_manager/model"
)

func (c *Client) Venues(ctx context.Context) ([]model.Venue, error) {
	var items []model.Venue
	if err := c.do(ctx, http.MethodGet, "/venues", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Courts(ctx context.Context) ([]model.Court, error) {
	var items []model.Court
	if err := c.do(ctx, http.MethodGet, "/courts", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CourtTypes(ctx context.Context) ([]model.CourtType, error) {
	var items []model.CourtType
	if err := c.do(ctx, http.MethodGet, "/court-types", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
