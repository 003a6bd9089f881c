package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatConversation là hội thoại giữa một khách (senderId) và một trang.
// Danh tính hội thoại là bộ ba (platform, pageId, senderId) — unique compound
// index đảm bảo find-or-create không tạo bản ghi trùng khi webhook về đồng thời.
type ChatConversation struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                              // ID của document
	ClientID      primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`                                      // Tenant sở hữu hội thoại (suy từ page)
	Platform      string             `json:"platform" bson:"platform" index:"compound:idx_conversation_identity_unique"`     // messenger | instagram
	PageID        string             `json:"pageId" bson:"pageId" index:"compound:idx_conversation_identity_unique"`         // ID trang
	SenderID      string             `json:"senderId" bson:"senderId" index:"compound:idx_conversation_identity_unique"`     // PSID của khách trên platform
	CustomerName  string             `json:"customerName" bson:"customerName"`                                               // Tên khách (best-effort từ profile API)
	LastMessage   string             `json:"lastMessage" bson:"lastMessage"`                                                 // Nội dung tin nhắn gần nhất (preview)
	LastMessageAt int64              `json:"lastMessageAt" bson:"lastMessageAt" index:"single:-1"`                           // Thời điểm tin gần nhất (monotonic, cập nhật qua $max)
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`                                                     // Thời gian tạo
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`                                                     // Thời gian cập nhật
}
