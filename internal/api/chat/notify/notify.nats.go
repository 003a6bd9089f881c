// Package notify đẩy thông báo realtime khi có tin nhắn mới.
// Publisher tách rời pipeline: nghe event nội bộ sau khi tin đã ghi DB,
// lỗi publish không bao giờ làm hỏng việc tiếp nhận tin nhắn.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"travel_crm/internal/api/events"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/global"
	"travel_crm/internal/logger"
)

// Publisher đẩy tin nhắn mới lên NATS theo channel của từng tenant.
// Khi không cấu hình NATS_URL, publisher chạy chế độ no-op.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher kết nối NATS theo cấu hình. NatsURL trống → no-op.
func NewPublisher() (*Publisher, error) {
	if global.ServerConfig.NatsURL == "" {
		logger.GetAppLogger().Info("💬 [CHAT] NATS_URL trống, thông báo realtime tắt")
		return &Publisher{}, nil
	}

	conn, err := nats.Connect(global.ServerConfig.NatsURL,
		nats.Name("travel_crm_chat_notify"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect NATS: %w", err)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"url": global.ServerConfig.NatsURL,
	}).Info("✅ [CHAT] Đã kết nối NATS cho thông báo realtime")

	return &Publisher{conn: conn}, nil
}

// Subject trả về subject NATS của một tenant.
func Subject(clientID string) string {
	return fmt.Sprintf("chat.client.%s", clientID)
}

// Register đăng ký publisher vào bus event nội bộ.
// Chỉ quan tâm insert trên collection tin nhắn; mọi lỗi chỉ ghi log.
func (p *Publisher) Register() {
	events.OnDataChanged(func(ctx context.Context, event events.DataChangeEvent) {
		if event.CollectionName != global.MongoDB_ColNames.ChatMessages {
			return
		}
		if event.Operation != events.OpInsert {
			return
		}

		message, ok := event.Document.(models.ChatMessage)
		if !ok {
			if ptr, okPtr := event.Document.(*models.ChatMessage); okPtr && ptr != nil {
				message = *ptr
			} else {
				return
			}
		}

		p.publishMessage(&message)
	})
}

func (p *Publisher) publishMessage(message *models.ChatMessage) {
	if p.conn == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":    "chat.message",
		"message": message,
	})
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("💬 [CHAT] Không serialize được thông báo tin nhắn")
		return
	}

	subject := Subject(message.ClientID.Hex())
	if err := p.conn.Publish(subject, payload); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"subject": subject,
		}).Warn("💬 [CHAT] Publish thông báo thất bại")
	}
}

// Close đóng kết nối NATS (drain để gửi nốt tin đang chờ).
func (p *Publisher) Close() {
	if p.conn != nil {
		_ = p.conn.Drain()
	}
}
