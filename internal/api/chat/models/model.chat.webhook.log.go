package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatWebhookLog lưu payload webhook thô trước khi xử lý.
// Dùng để debug và replay khi pipeline có lỗi; không tham gia luồng chính.
type ChatWebhookLog struct {
	ID         primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"` // ID của document
	Platform   string                 `json:"platform" bson:"platform"`          // Platform nhận từ route
	Payload    map[string]interface{} `json:"payload" bson:"payload"`            // Payload thô đã decode
	RawBody    string                 `json:"rawBody,omitempty" bson:"rawBody,omitempty"` // Body gốc khi không decode được JSON
	ReceivedAt int64                  `json:"receivedAt" bson:"receivedAt" index:"single:-1"` // Thời điểm nhận
	CreatedAt  int64                  `json:"createdAt" bson:"createdAt"`        // Thời gian tạo
	UpdatedAt  int64                  `json:"updatedAt" bson:"updatedAt"`        // Thời gian cập nhật
}
