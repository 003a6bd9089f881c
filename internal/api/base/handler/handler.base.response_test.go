// Package basehdl - Test wrapper bắt panic cho domain handler.
package basehdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_crm/internal/common"
)

func TestSafeHandlerWrapper_BatPanicTraLoi500(t *testing.T) {
	app := fiber.New()
	app.Get("/panic", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error {
			panic("boom")
		})
	})

	req := httptest.NewRequest("GET", "/panic", nil)
	resp, err := app.Test(req)
	require.NoError(t, err, "panic trong handler không được làm rơi request")
	assert.Equal(t, common.StatusInternalServerError, resp.StatusCode)
}

func TestSafeHandlerWrapper_KhongPanicTraBinhThuong(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error {
			HandleResponse(c, fiber.Map{"ping": "pong"}, nil)
			return nil
		})
	})

	req := httptest.NewRequest("GET", "/ok", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
}
