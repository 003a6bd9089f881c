// Package chathdl - các handler HTTP của pipeline chat.
package chathdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	basehdl "travel_crm/internal/api/base/handler"
	"travel_crm/internal/api/chat/adapter"
	chatsvc "travel_crm/internal/api/chat/service"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
	"travel_crm/internal/logger"
)

// WebhookHandler nhận webhook từ các platform chat.
// Route không qua auth middleware — platform gọi trực tiếp.
type WebhookHandler struct {
	ingestService     *chatsvc.IngestService
	webhookLogService *chatsvc.WebhookLogService
}

// NewWebhookHandler tạo mới WebhookHandler
func NewWebhookHandler() (*WebhookHandler, error) {
	ingestService, err := chatsvc.NewIngestService()
	if err != nil {
		return nil, err
	}
	webhookLogService, err := chatsvc.NewWebhookLogService()
	if err != nil {
		return nil, err
	}

	return &WebhookHandler{
		ingestService:     ingestService,
		webhookLogService: webhookLogService,
	}, nil
}

// HandleVerify xử lý GET verify handshake của platform.
// hub.mode=subscribe và hub.verify_token khớp cấu hình → echo lại hub.challenge,
// mọi trường hợp khác → 403.
func (h *WebhookHandler) HandleVerify(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == global.ServerConfig.ChatVerifyToken {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"platform": c.Params("platform"),
			}).Info("✅ [CHAT] Webhook verify thành công")
			return c.Status(common.StatusOK).SendString(challenge)
		}

		logger.GetAppLogger().WithFields(map[string]interface{}{
			"platform": c.Params("platform"),
			"mode":     mode,
		}).Warn("❌ [CHAT] Webhook verify thất bại, token không khớp")
		return c.Status(common.StatusForbidden).SendString("Forbidden")
	})
}

// HandleReceive xử lý POST webhook chứa tin nhắn đến.
// Luôn ack 200 EVENT_RECEIVED khi envelope thuộc đúng platform —
// kể cả khi payload hỏng hoặc không sinh ra event nào, để platform không retry.
// Envelope thuộc object khác → 404.
func (h *WebhookHandler) HandleReceive(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		platform := c.Params("platform")
		body := c.Body()
		ctx := c.Context()

		// Lưu payload thô trước khi xử lý, best-effort
		h.webhookLogService.SaveRaw(ctx, platform, body)

		platformAdapter, ok := adapter.Get(platform)
		if !ok {
			return c.Status(common.StatusNotFound).SendString("Not Found")
		}

		inboundEvents, err := platformAdapter.ParseEnvelope(body)
		if err != nil {
			if errors.Is(err, adapter.ErrUnsupportedObject) {
				return c.Status(common.StatusNotFound).SendString("Not Found")
			}
			// Lỗi parse khác không chặn ack — platform sẽ retry vô ích nếu trả 5xx
			logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
				"platform": platform,
			}).Error("💬 [CHAT] Lỗi parse webhook envelope")
			return c.Status(common.StatusOK).SendString("EVENT_RECEIVED")
		}

		h.ingestService.ProcessEvents(ctx, platformAdapter, inboundEvents)

		return c.Status(common.StatusOK).SendString("EVENT_RECEIVED")
	})
}
