// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role trong hệ thống. Quyền truy cập trang được suy ra từ role
// (xem authsvc.RolePages).
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleGuest = "guest"
)

// User định nghĩa mô hình người dùng.
// Token chứa token xác thực mới nhất của người dùng; đăng nhập mới sẽ
// thay thế token cũ (mỗi user một phiên hợp lệ tại một thời điểm).
// ClientID là tenant của đại lý: mọi user cùng đại lý chia sẻ một ClientID,
// dùng để scope hội thoại, booking và dữ liệu CRM.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID  primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty" index:"single:1"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Role      string             `json:"role" bson:"role"`
	Token     string             `json:"token,omitempty" bson:"token,omitempty"`
	IsBlock   bool               `json:"-" bson:"isBlock"`
	BlockNote string             `json:"-" bson:"blockNote"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
