// Package gateway là client REST gọi sang backend nền tảng đặt sân.
// Backend là nguồn dữ liệu duy nhất; service này không giữ database riêng.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrSessionExpired: token thiếu hoặc bị backend từ chối (401)
var ErrSessionExpired = errors.New("session expired")

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %d %s", e.Status, e.Message)
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Client struct {
	baseURL string
	hc      *http.Client
	token   string
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        30,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}
}

// WithToken trả về bản sao client gắn token của phiên hiện tại.
// Token chỉ đọc trong suốt vòng đời request, không refresh tại đây.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("gateway: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// đọc hết body để connection còn tái sử dụng được
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		return c.decodeError(resp, method, path)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("gateway: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// decodeError đọc body lỗi dạng {"message": "..."} của backend,
// không có message thì dùng thông báo chung theo status.
func (c *Client) decodeError(resp *http.Response, method, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var eb errorBody
	msg := ""
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	c.log.Warn("gateway request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", msg),
	)
	return &APIError{Status: resp.StatusCode, Message: msg}
}
