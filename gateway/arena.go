package gateway

import (
	"context"
	"fmt"
	"net/http"

	"arena_manager/model"
)

func (c *Client) Arenas(ctx context.Context) ([]model.Arena, error) {
	var arenas []model.Arena
	if err := c.do(ctx, http.MethodGet, "/arenas", nil, &arenas); err != nil {
		return nil, err
	}
	return arenas, nil
}

func (c *Client) Arena(ctx context.Context, id uint) (*model.Arena, error) {
	var arena model.Arena
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/arenas/%d", id), nil, &arena); err != nil {
		return nil, err
	}
	return &arena, nil
}

func (c *Client) UpdateArena(ctx context.Context, id uint, patch any) (*model.Arena, error) {
	var arena model.Arena
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/arenas/%d", id), patch, &arena); err != nil {
		return nil, err
	}
	return &arena, nil
}

func (c *Client) UpdateArenaStatus(ctx context.Context, id uint, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/arenas/%d", id), body, nil)
}

func (c *Client) DeleteArena(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/arenas/%d", id), nil, nil)
}
