// Package chathdl - Test validate query của danh sách hội thoại.
package chathdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel_crm/internal/global"
)

func newThreadsTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.InitValidator()

	// Platform không hợp lệ bị chặn trước khi chạm store nên handler rỗng là đủ
	h := &ConversationHandler{}
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals("clientID", primitive.NewObjectID().Hex())
		return c.Next()
	})
	app.Get("/chat/threads", h.HandleListThreads)
	return app
}

func TestHandleListThreads_PlatformKhongHoTro(t *testing.T) {
	app := newThreadsTestApp(t)

	req := httptest.NewRequest("GET", "/chat/threads?platform=zalo", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode, "platform ngoài danh sách hỗ trợ phải bị từ chối")
}
