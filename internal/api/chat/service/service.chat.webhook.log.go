package chatsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
	"travel_crm/internal/logger"
)

// WebhookLogService lưu payload webhook thô để debug và replay.
type WebhookLogService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatWebhookLog]
}

// NewWebhookLogService tạo mới WebhookLogService
func NewWebhookLogService() (*WebhookLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatWebhookLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_webhook_logs collection: %v", common.ErrNotFound)
	}

	return &WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatWebhookLog](collection),
	}, nil
}

// SaveRaw lưu payload thô của một request webhook. Best-effort:
// lỗi ghi log chẩn đoán không được chặn việc xử lý webhook.
func (s *WebhookLogService) SaveRaw(ctx context.Context, platform string, body []byte) {
	now := time.Now().UnixMilli()
	log := models.ChatWebhookLog{
		Platform:   platform,
		ReceivedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.RawBody = string(body)
	} else {
		log.Payload = payload
	}

	if _, err := s.InsertOne(ctx, log); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"platform": platform,
		}).Warn("💬 [CHAT] Không lưu được webhook log")
	}
}
