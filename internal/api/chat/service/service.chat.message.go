package chatsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// MessageService quản lý tin nhắn. Collection append-only: chỉ insert và đọc,
// không có update/delete trong luồng nghiệp vụ.
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatMessage]
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_messages collection: %v", common.ErrNotFound)
	}

	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatMessage](collection),
	}, nil
}

// AppendMessage ghi một tin nhắn mới vào hội thoại.
func (s *MessageService) AppendMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	if message.CreatedAt == 0 {
		message.CreatedAt = time.Now().UnixMilli()
	}
	message.UpdatedAt = time.Now().UnixMilli()

	inserted, err := s.InsertOne(ctx, *message)
	if err != nil {
		return nil, err
	}
	return &inserted, nil
}

// ListByConversation trả về tin nhắn của một hội thoại theo thứ tự thời gian.
// Sort theo (createdAt, _id): _id là tie-breaker khi hai tin cùng mili giây,
// đảm bảo thứ tự ổn định giữa các lần đọc.
func (s *MessageService) ListByConversation(ctx context.Context, conversationID primitive.ObjectID, limit int64) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: 1},
		{Key: "_id", Value: 1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	return s.Find(ctx, bson.M{"conversationId": conversationID}, opts)
}
