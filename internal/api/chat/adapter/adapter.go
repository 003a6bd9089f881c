// Package adapter trừu tượng hóa các nền tảng chat (Messenger, Instagram).
// Mỗi platform cung cấp: parse webhook envelope thành event chuẩn hóa,
// gửi tin nhắn ra ngoài, và lấy profile khách (best-effort).
package adapter

import (
	"context"
	"sync"

	"travel_crm/internal/common"
)

// InboundEvent là một tin nhắn đến đã được chuẩn hóa từ webhook payload.
// Mọi platform đều quy về cùng cấu trúc này trước khi vào pipeline.
type InboundEvent struct {
	PageID      string // ID trang nhận tin
	SenderID    string // PSID người gửi
	RecipientID string // ID người nhận (thường là pageId)
	Mid           string // Message ID từ platform
	Text          string // Nội dung văn bản ([attachment] nếu chỉ có file)
	HasAttachment bool   // Message chỉ có file đính kèm, Text là placeholder
	Timestamp     int64  // Thời điểm platform ghi nhận (mili giây)
}

// PlatformAdapter là capability của một nền tảng chat.
// Pipeline chỉ làm việc qua interface này, không biết chi tiết từng platform.
type PlatformAdapter interface {
	// Platform trả về tên platform (messenger, instagram)
	Platform() string

	// ParseEnvelope parse webhook payload thành danh sách event chuẩn hóa.
	// Entry/messaging không hợp lệ bị bỏ qua (không trả lỗi cho từng event hỏng);
	// payload không phải JSON hoặc thiếu cấu trúc envelope → trả về 0 event.
	// Envelope thuộc về object khác (vd gửi payload Instagram vào route Messenger)
	// → trả về ErrUnsupportedObject.
	ParseEnvelope(body []byte) ([]InboundEvent, error)

	// SendMessage gửi tin nhắn văn bản đến người nhận, trả về message ID từ platform.
	SendMessage(ctx context.Context, accessToken string, recipientID string, text string) (string, error)

	// FetchProfile lấy tên hiển thị của khách (best-effort, lỗi không chặn pipeline).
	FetchProfile(ctx context.Context, accessToken string, userID string) (string, error)
}

// ErrUnsupportedObject báo envelope không thuộc platform của adapter.
// Webhook handler trả 404 cho trường hợp này.
var ErrUnsupportedObject = common.NewError(common.ErrCodeValidationFormat, "Webhook object không được hỗ trợ", common.StatusNotFound, nil)

var (
	adapters   = make(map[string]PlatformAdapter)
	adaptersMu sync.RWMutex
)

// Register đăng ký adapter cho một platform. Gọi khi khởi động server.
func Register(a PlatformAdapter) {
	adaptersMu.Lock()
	defer adaptersMu.Unlock()
	adapters[a.Platform()] = a
}

// Get trả về adapter theo tên platform.
func Get(platform string) (PlatformAdapter, bool) {
	adaptersMu.RLock()
	defer adaptersMu.RUnlock()
	a, ok := adapters[platform]
	return a, ok
}
