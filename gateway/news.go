package gateway

import (
	"context"
	"net/http"
	"net/url"

	"arena_manager/model"
)

func (c *Client) PublicNews(ctx context.Context) ([]model.News, error) {
	var items []model.News
	if err := c.do(ctx, http.MethodGet, "/news/public", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FeaturedNews(ctx context.Context) ([]model.News, error) {
	var items []model.News
	if err := c.do(ctx, http.MethodGet, "/news/featured", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) NewsCategories(ctx context.Context) ([]model.NewsCategory, error) {
	var items []model.NewsCategory
	if err := c.do(ctx, http.MethodGet, "/news/categories", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) NewsBySlug(ctx context.Context, s string) (*model.News, error) {
	var item model.News
	if err := c.do(ctx, http.MethodGet, "/news/slug/"+url.PathEscape(s), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
