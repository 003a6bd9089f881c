package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hướng của tin nhắn.
const (
	DirectionIncoming = "incoming" // Khách gửi vào
	DirectionOutgoing = "outgoing" // Agent trả lời ra
)

// Loại nội dung tin nhắn.
const (
	MessageTypeText       = "text"       // Tin văn bản
	MessageTypeAttachment = "attachment" // Tin chỉ có file đính kèm
)

// AttachmentPlaceholder là nội dung thay thế khi tin nhắn chỉ có attachment.
const AttachmentPlaceholder = "[attachment]"

// ChatMessage là một tin nhắn trong hội thoại. Collection append-only:
// không update/delete, thứ tự đọc theo (createdAt, _id).
type ChatMessage struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                   // ID của document (tie-breaker khi createdAt trùng)
	ClientID       primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`           // Tenant (denormalize từ conversation để notify nhanh)
	ConversationID primitive.ObjectID `json:"conversationId" bson:"conversationId" index:"single:1"` // Hội thoại chứa tin nhắn
	Platform       string             `json:"platform" bson:"platform"`                            // messenger | instagram
	PageID         string             `json:"pageId" bson:"pageId"`                                // Trang nhận/gửi tin trên platform
	SenderID       string             `json:"senderId" bson:"senderId"`                            // Người gửi (PSID khách hoặc pageId khi outgoing)
	Direction      string             `json:"direction" bson:"direction"`                          // incoming | outgoing
	MessageType    string             `json:"messageType" bson:"messageType"`                      // text | attachment
	MessageText    string             `json:"messageText" bson:"messageText"`                      // Nội dung văn bản ([attachment] nếu chỉ có file)
	Mid            string             `json:"mid,omitempty" bson:"mid,omitempty"`                  // Message ID từ platform (nếu có)
	CreatedAt      int64              `json:"createdAt" bson:"createdAt" index:"single:1"`         // Thời gian tạo (trục sắp xếp chính)
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`                          // Thời gian cập nhật
}
