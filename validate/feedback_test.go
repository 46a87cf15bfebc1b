package validate

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"arena_manager/constants"
	"arena_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFeedbackStatusNormalizesBlankResponse(t *testing.T) {
	var got *model.UpdateFeedbackStatusInput
	app := fiber.New()
	app.Patch("/:id", UpdateFeedbackStatus("id"), func(c *fiber.Ctx) error {
		got = c.Locals("input").(*model.UpdateFeedbackStatusInput)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PATCH", "/5", strings.NewReader(`{"status":"approved","response":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, got)
	// phản hồi toàn khoảng trắng coi như không gửi phản hồi
	assert.Nil(t, got.Response)
}

func TestUpdateFeedbackStatusKeepsTrimmedResponse(t *testing.T) {
	var got *model.UpdateFeedbackStatusInput
	app := fiber.New()
	app.Patch("/:id", UpdateFeedbackStatus("id"), func(c *fiber.Ctx) error {
		got = c.Locals("input").(*model.UpdateFeedbackStatusInput)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PATCH", "/5", strings.NewReader(`{"status":"rejected","response":"  Cảm ơn bạn  "}`))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	require.NotNil(t, got)
	require.NotNil(t, got.Response)
	assert.Equal(t, "Cảm ơn bạn", *got.Response)
}

func TestBulkFeedbackStatusRejectsEmptyIdList(t *testing.T) {
	app := fiber.New()
	app.Post("/bulk", BulkFeedbackStatus(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/bulk", strings.NewReader(`{"ids":[],"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, constants.EMPTY_ID_LIST, payload["error"])
}
