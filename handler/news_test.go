package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arena_manager/constants"
	"arena_manager/gateway"
	"arena_manager/helper"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicNewsDegradesWhenGatewayDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	gwc := gateway.New(srv.URL, 2*time.Second, nil)
	Setup(gwc, helper.NewNewsCache(gwc))

	app := fiber.New()
	app.Get("/tin-tuc", GetPublicNews)

	resp, err := app.Test(httptest.NewRequest("GET", "/tin-tuc", nil))
	require.NoError(t, err)

	// trang công khai không chết theo gateway: 200 với danh sách rỗng
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, constants.CAN_NOT_GET_NEWS, payload["notice"])
}
