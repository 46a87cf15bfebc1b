package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arena_manager/gateway"
	"arena_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fake gateway đếm từng loại request để kiểm tra số round-trip
type feedbackBackend struct {
	listBody   string
	listGets   int
	detailGets int
	patches    int
}

func (b *feedbackBackend) serve(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/feedbacks":
		b.listGets++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(b.listBody))
	case r.Method == http.MethodPatch && r.URL.Path == "/feedbacks/5":
		b.patches++
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet && r.URL.Path == "/feedbacks/5":
		b.detailGets++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"feedback_id":5,"status":"pending"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func feedbackStatusApp(t *testing.T, backend *feedbackBackend, status string) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(backend.serve))
	t.Cleanup(srv.Close)

	Setup(gateway.New(srv.URL, 2*time.Second, nil), nil)

	app := fiber.New()
	app.Patch("/feedback/:id", func(c *fiber.Ctx) error {
		c.Locals("inputId", uint(5))
		c.Locals("input", &model.UpdateFeedbackStatusInput{Status: status})
		return UpdateFeedbackStatus(c)
	})
	return app
}

func TestUpdateFeedbackStatusReadsCurrentFromCollection(t *testing.T) {
	backend := &feedbackBackend{listBody: `[{"feedback_id":5,"status":"pending"}]`}
	app := feedbackStatusApp(t, backend, "approved")

	resp, err := app.Test(httptest.NewRequest("PATCH", "/feedback/5", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, backend.patches)
	// trạng thái hiện tại đọc từ list đã fetch, không có GET detail riêng
	assert.Equal(t, 0, backend.detailGets)
	// một lần trước khi ghi, một lần refetch sau khi ghi
	assert.Equal(t, 2, backend.listGets)
}

func TestUpdateFeedbackStatusRejectsInvalidTransition(t *testing.T) {
	backend := &feedbackBackend{listBody: `[{"feedback_id":5,"status":"approved"}]`}
	app := feedbackStatusApp(t, backend, "rejected")

	resp, err := app.Test(httptest.NewRequest("PATCH", "/feedback/5", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, backend.patches)
	assert.Equal(t, 0, backend.detailGets)
}

func TestUpdateFeedbackStatusUnknownIdIsNotFound(t *testing.T) {
	backend := &feedbackBackend{listBody: `[]`}
	app := feedbackStatusApp(t, backend, "approved")

	resp, err := app.Test(httptest.NewRequest("PATCH", "/feedback/5", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, backend.patches)
}
