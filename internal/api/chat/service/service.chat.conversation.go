package chatsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "travel_crm/internal/api/base/models"
	basesvc "travel_crm/internal/api/base/service"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
)

// ConversationService quản lý hội thoại khách hàng.
// Định danh hội thoại là bộ ba (platform, pageId, senderId) — unique index
// đảm bảo mỗi khách chỉ có một hội thoại trên mỗi trang.
type ConversationService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatConversation]
}

// NewConversationService tạo mới ConversationService
func NewConversationService() (*ConversationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ChatConversations)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_conversations collection: %v", common.ErrNotFound)
	}

	return &ConversationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatConversation](collection),
	}, nil
}

// ResolveInput là dữ liệu cần để tìm-hoặc-tạo hội thoại.
type ResolveInput struct {
	ClientID     primitive.ObjectID // Tenant sở hữu hội thoại
	Platform     string             // messenger | instagram
	PageID       string             // Trang nhận tin
	SenderID     string             // PSID khách
	CustomerName string             // Tên khách (best-effort, có thể rỗng)
	LastMessage  string             // Nội dung tin mới nhất
	LastMessageAt int64             // Thời điểm tin mới nhất (mili giây)
}

// ResolveConversation tìm-hoặc-tạo hội thoại theo định danh (platform, pageId, senderId)
// trong một thao tác atomic. Idempotent dưới concurrency: hai webhook đồng thời
// của cùng một khách đều quy về cùng một document nhờ upsert + unique index.
// lastMessageAt dùng $max nên webhook đến trễ (out-of-order) không kéo lùi hội thoại.
func (s *ConversationService) ResolveConversation(ctx context.Context, input *ResolveInput) (*models.ChatConversation, error) {
	filter := bson.M{
		"platform": input.Platform,
		"pageId":   input.PageID,
		"senderId": input.SenderID,
	}

	set := bson.M{}
	if input.LastMessage != "" {
		set["lastMessage"] = input.LastMessage
	}
	if input.CustomerName != "" {
		// Chỉ ghi đè tên khi fetch profile thành công, không xóa tên cũ
		set["customerName"] = input.CustomerName
	}

	update := &basesvc.UpdateData{
		Set: set,
		SetOnInsert: bson.M{
			"clientId":  input.ClientID,
			"platform":  input.Platform,
			"pageId":    input.PageID,
			"senderId":  input.SenderID,
			"createdAt": time.Now().UnixMilli(),
		},
		Max: bson.M{
			"lastMessageAt": input.LastMessageAt,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	conversation, err := s.FindOneAndUpdate(ctx, filter, update, opts)
	if err != nil {
		// Race hiếm gặp: hai upsert đồng thời cùng chèn → một bên dính duplicate key.
		// Thử lại một lần, lúc này document đã tồn tại nên chỉ còn update.
		if errors.Is(err, common.ErrMongoDuplicate) {
			conversation, err = s.FindOneAndUpdate(ctx, filter, update, opts)
		}
		if err != nil {
			return nil, err
		}
	}

	return &conversation, nil
}

// TouchLastMessage cập nhật preview và mốc thời gian tin mới nhất của hội thoại.
// Dùng cho chiều outgoing, vẫn giữ tính đơn điệu của lastMessageAt qua $max.
func (s *ConversationService) TouchLastMessage(ctx context.Context, id primitive.ObjectID, lastMessage string, lastMessageAt int64) error {
	update := &basesvc.UpdateData{
		Set: bson.M{"lastMessage": lastMessage},
		Max: bson.M{"lastMessageAt": lastMessageAt},
	}

	_, err := s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, options.FindOneAndUpdate().SetReturnDocument(options.After))
	return err
}

// threadsFilter dựng filter danh sách hội thoại: luôn scope theo tenant,
// platform rỗng nghĩa là mọi platform.
func threadsFilter(clientID primitive.ObjectID, platform string) bson.M {
	filter := bson.M{"clientId": clientID}
	if platform != "" {
		filter["platform"] = platform
	}
	return filter
}

// FindThreads trả về danh sách hội thoại của tenant, mới nhất trước.
// platform khác rỗng thì chỉ trả hội thoại của platform đó.
func (s *ConversationService) FindThreads(ctx context.Context, clientID primitive.ObjectID, platform string, page int64, limit int64) (*basemodels.PaginateResult[models.ChatConversation], error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	return s.FindWithPagination(ctx, threadsFilter(clientID, platform), page, limit, opts)
}
