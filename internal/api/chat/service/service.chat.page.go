// Package chatsvc - các service của pipeline tiếp nhận hội thoại.
package chatsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// PageService là service quản lý trang đã đăng ký nhận webhook
type PageService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatPage]
}

// NewPageService tạo mới PageService
func NewPageService() (*PageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatPages)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_pages collection: %v", common.ErrNotFound)
	}

	return &PageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatPage](collection),
	}, nil
}

// FindByPlatformPage tìm trang đã đăng ký theo (platform, pageId).
// Trả về ErrNotFound nếu trang chưa được đăng ký — caller drop event.
func (s *PageService) FindByPlatformPage(ctx context.Context, platform string, pageID string) (*models.ChatPage, error) {
	page, err := s.FindOne(ctx, bson.M{
		"platform": platform,
		"pageId":   pageID,
		"isActive": true,
	}, nil)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
