// Package chathdl - Test verify handshake của webhook qua Fiber app.Test.
package chathdl

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_crm/config"
	"travel_crm/internal/global"
)

func newVerifyTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.ServerConfig = &config.Configuration{ChatVerifyToken: "secret-token"}

	// HandleVerify không chạm store nên handler rỗng là đủ
	h := &WebhookHandler{}
	app := fiber.New()
	app.Get("/webhook/:platform", h.HandleVerify)
	return app
}

func TestHandleVerify_TokenKhop(t *testing.T) {
	app := newVerifyTestApp(t)

	req := httptest.NewRequest("GET", "/webhook/messenger?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=challenge-123", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "challenge-123", string(body), "verify thành công phải echo lại hub.challenge")
}

func TestHandleVerify_TuChoi(t *testing.T) {
	app := newVerifyTestApp(t)

	cases := []struct {
		name string
		url  string
	}{
		{"token sai", "/webhook/messenger?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=c"},
		{"mode sai", "/webhook/messenger?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=c"},
		{"thiếu tham số", "/webhook/messenger"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.url, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, "Forbidden", string(body))
		})
	}
}
