// Package chatdto chứa các cấu trúc input/output cho API chat.
package chatdto

// ChatPageCreateInput dữ liệu đăng ký trang nhận webhook
type ChatPageCreateInput struct {
	ClientID    string `json:"clientId" validate:"required" transform:"str_objectid"`  // Tenant sở hữu trang
	Platform    string `json:"platform" validate:"required,chat_platform"`             // messenger | instagram
	PageID      string `json:"pageId" validate:"required"`                             // ID trang trên platform
	PageName    string `json:"pageName"`                                               // Tên hiển thị
	AccessToken string `json:"accessToken" validate:"required"`                        // Page access token
}

// ChatPageUpdateInput dữ liệu cập nhật trang. Ngừng nhận webhook một trang
// thì dùng delete-by-id — event đến trang không còn đăng ký sẽ bị drop.
type ChatPageUpdateInput struct {
	PageName    string `json:"pageName,omitempty"`    // Tên hiển thị
	AccessToken string `json:"accessToken,omitempty"` // Page access token mới
}

// ReplyInput dữ liệu gửi tin trả lời từ agent
type ReplyInput struct {
	ConversationID string `json:"conversationId" validate:"required"` // Hội thoại đích
	MessageText    string `json:"messageText" validate:"required,max=2000"` // Nội dung trả lời
}
