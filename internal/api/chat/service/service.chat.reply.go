package chatsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel_crm/internal/api/chat/adapter"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
	"travel_crm/internal/logger"
)

// ConversationLookup là phần ConversationService mà dispatcher cần —
// tra hội thoại và cập nhật preview sau khi gửi.
type ConversationLookup interface {
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.ChatConversation, error)
	TouchLastMessage(ctx context.Context, id primitive.ObjectID, lastMessage string, lastMessageAt int64) error
}

// AdapterLookup tra adapter theo tên platform.
type AdapterLookup func(platform string) (adapter.PlatformAdapter, bool)

// ReplyService gửi tin trả lời của agent ra platform.
// Thứ tự bắt buộc: gửi platform thành công TRƯỚC, ghi DB SAU —
// gửi thất bại thì không để lại tin nhắn outgoing nào trong hội thoại.
// Các store được inject qua interface hẹp để test với fake không cần Mongo.
type ReplyService struct {
	pages         PageStore
	conversations ConversationLookup
	messages      MessageStore
	adapters      AdapterLookup
}

// NewReplyService tạo dispatcher với các service Mongo thật và registry adapter.
func NewReplyService() (*ReplyService, error) {
	pageService, err := NewPageService()
	if err != nil {
		return nil, err
	}
	conversationService, err := NewConversationService()
	if err != nil {
		return nil, err
	}
	messageService, err := NewMessageService()
	if err != nil {
		return nil, err
	}

	return NewReplyServiceWithStores(pageService, conversationService, messageService, adapter.Get), nil
}

// NewReplyServiceWithStores tạo dispatcher với store và adapter lookup tùy ý (dùng cho test).
func NewReplyServiceWithStores(pages PageStore, conversations ConversationLookup, messages MessageStore, adapters AdapterLookup) *ReplyService {
	return &ReplyService{
		pages:         pages,
		conversations: conversations,
		messages:      messages,
		adapters:      adapters,
	}
}

// Dispatch gửi messageText đến khách của hội thoại và ghi lại tin outgoing.
// Hội thoại thuộc tenant khác → ErrNotFound (không lộ sự tồn tại của hội thoại).
func (s *ReplyService) Dispatch(ctx context.Context, clientID primitive.ObjectID, conversationID primitive.ObjectID, messageText string) (*models.ChatMessage, error) {
	conversation, err := s.conversations.FindOne(ctx, bson.M{
		"_id":      conversationID,
		"clientId": clientID,
	}, nil)
	if err != nil {
		return nil, err
	}

	page, err := s.pages.FindByPlatformPage(ctx, conversation.Platform, conversation.PageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput,
				"Trang của hội thoại không còn hoạt động", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	platformAdapter, ok := s.adapters(conversation.Platform)
	if !ok {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Platform không được hỗ trợ: %s", conversation.Platform), common.StatusBadRequest, nil)
	}

	mid, err := platformAdapter.SendMessage(ctx, page.AccessToken, conversation.SenderID, messageText)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"platform":       conversation.Platform,
			"conversationId": conversationID.Hex(),
		}).Error("💬 [CHAT] Gửi tin trả lời thất bại")
		return nil, common.NewError(common.ErrCodeValidationInput,
			"Gửi tin nhắn đến platform thất bại", common.StatusBadRequest, map[string]interface{}{
				"error": err.Error(),
			})
	}

	now := time.Now().UnixMilli()
	message, err := s.messages.AppendMessage(ctx, &models.ChatMessage{
		ClientID:       conversation.ClientID,
		ConversationID: conversation.ID,
		Platform:       conversation.Platform,
		PageID:         conversation.PageID,
		SenderID:       conversation.PageID,
		Direction:      models.DirectionOutgoing,
		MessageType:    models.MessageTypeText,
		MessageText:    messageText,
		Mid:            mid,
		CreatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.conversations.TouchLastMessage(ctx, conversation.ID, messageText, now); err != nil {
		// Tin đã gửi và đã ghi, preview lệch chỉ ảnh hưởng hiển thị danh sách
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"conversationId": conversationID.Hex(),
		}).Warn("💬 [CHAT] Không cập nhật được preview hội thoại")
	}

	return message, nil
}

// đảm bảo service thật thỏa mãn seam của dispatcher
var _ ConversationLookup = (*ConversationService)(nil)
