// Package models - các model thuộc domain chat (pipeline tiếp nhận hội thoại).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các platform được hỗ trợ.
const (
	PlatformMessenger = "messenger"
	PlatformInstagram = "instagram"
)

// ChatPage là trang (fanpage / tài khoản business) đã đăng ký nhận webhook.
// Đây là điểm neo tenant: mọi event đến pageId chưa đăng ký sẽ bị drop.
type ChatPage struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                                      // ID của document
	ClientID    primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`                              // Tenant sở hữu trang (kênh notify theo clientId)
	Platform    string             `json:"platform" bson:"platform" index:"compound:idx_chat_page_unique"`         // messenger | instagram
	PageID      string             `json:"pageId" bson:"pageId" index:"compound:idx_chat_page_unique"`             // ID trang trên platform
	PageName    string             `json:"pageName" bson:"pageName"`                                               // Tên hiển thị của trang
	AccessToken string             `json:"-" bson:"accessToken"`                                                   // Page access token để gửi tin ra ngoài
	IsActive    bool               `json:"isActive" bson:"isActive"`                                               // Trang còn nhận webhook không
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`                                             // Thời gian tạo
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`                                             // Thời gian cập nhật
}
