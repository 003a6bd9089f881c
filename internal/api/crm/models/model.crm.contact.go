// Package models - các model thuộc domain CRM của đại lý du lịch.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nguồn tạo liên hệ.
const (
	ContactSourceChat   = "chat"   // Tạo từ hội thoại chat
	ContactSourceManual = "manual" // Agent nhập tay
)

// Contact là liên hệ khách hàng của đại lý.
// Liên hệ tạo từ chat giữ tham chiếu đến hội thoại gốc.
type Contact struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID       primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty"`
	Source         string             `json:"source" bson:"source"` // chat | manual
	ConversationID primitive.ObjectID `json:"conversationId,omitempty" bson:"conversationId,omitempty"`
	Note           string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
