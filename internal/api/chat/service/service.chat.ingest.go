package chatsvc

import (
	"context"
	"errors"
	"time"

	"travel_crm/internal/api/chat/adapter"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
	"travel_crm/internal/logger"
)

// PageStore là phần PageService mà pipeline cần — tra cứu trang đã đăng ký.
type PageStore interface {
	FindByPlatformPage(ctx context.Context, platform string, pageID string) (*models.ChatPage, error)
}

// ConversationStore là phần ConversationService mà pipeline cần.
type ConversationStore interface {
	ResolveConversation(ctx context.Context, input *ResolveInput) (*models.ChatConversation, error)
}

// MessageStore là phần MessageService mà pipeline cần.
type MessageStore interface {
	AppendMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
}

// IngestService là pipeline tiếp nhận tin nhắn đến:
// tra trang → định danh hội thoại → ghi tin nhắn.
// Các store được inject qua interface hẹp để test với fake không cần Mongo.
type IngestService struct {
	pages         PageStore
	conversations ConversationStore
	messages      MessageStore
}

// NewIngestService tạo pipeline với các service Mongo thật.
func NewIngestService() (*IngestService, error) {
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

	return NewIngestServiceWithStores(pageService, conversationService, messageService), nil
}

// NewIngestServiceWithStores tạo pipeline với store tùy ý (dùng cho test).
func NewIngestServiceWithStores(pages PageStore, conversations ConversationStore, messages MessageStore) *IngestService {
	return &IngestService{
		pages:         pages,
		conversations: conversations,
		messages:      messages,
	}
}

// ProcessEvent xử lý một event đã chuẩn hóa từ webhook.
// Trang chưa đăng ký → drop event kèm log chẩn đoán, không trả lỗi
// (webhook vẫn ack 200 để platform không retry vô ích).
func (s *IngestService) ProcessEvent(ctx context.Context, platformAdapter adapter.PlatformAdapter, event *adapter.InboundEvent) error {
	platform := platformAdapter.Platform()

	page, err := s.pages.FindByPlatformPage(ctx, platform, event.PageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"platform": platform,
				"pageId":   event.PageID,
				"senderId": event.SenderID,
			}).Warn("💬 [CHAT] Trang chưa được đăng ký, bỏ qua event")
			return nil
		}
		return err
	}

	// Lấy tên khách best-effort: lỗi chỉ ghi log, không chặn pipeline
	customerName := ""
	if name, err := platformAdapter.FetchProfile(ctx, page.AccessToken, event.SenderID); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"platform": platform,
			"senderId": event.SenderID,
		}).Warn("💬 [CHAT] Không lấy được profile khách")
	} else {
		customerName = name
	}

	timestamp := event.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	conversation, err := s.conversations.ResolveConversation(ctx, &ResolveInput{
		ClientID:      page.ClientID,
		Platform:      platform,
		PageID:        event.PageID,
		SenderID:      event.SenderID,
		CustomerName:  customerName,
		LastMessage:   event.Text,
		LastMessageAt: timestamp,
	})
	if err != nil {
		return err
	}

	messageType := models.MessageTypeText
	if event.HasAttachment {
		messageType = models.MessageTypeAttachment
	}

	_, err = s.messages.AppendMessage(ctx, &models.ChatMessage{
		ClientID:       page.ClientID,
		ConversationID: conversation.ID,
		Platform:       platform,
		PageID:         event.PageID,
		SenderID:       event.SenderID,
		Direction:      models.DirectionIncoming,
		MessageType:    messageType,
		MessageText:    event.Text,
		Mid:            event.Mid,
		CreatedAt:      timestamp,
	})
	if err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"platform":       platform,
		"conversationId": conversation.ID.Hex(),
		"senderId":       event.SenderID,
	}).Info("💬 [CHAT] Đã ghi nhận tin nhắn đến")

	return nil
}

// ProcessEvents xử lý lần lượt các event của một envelope.
// Event lỗi không chặn các event còn lại.
func (s *IngestService) ProcessEvents(ctx context.Context, platformAdapter adapter.PlatformAdapter, events []adapter.InboundEvent) {
	for i := range events {
		if err := s.ProcessEvent(ctx, platformAdapter, &events[i]); err != nil {
			logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
				"platform": platformAdapter.Platform(),
				"senderId": events[i].SenderID,
			}).Error("💬 [CHAT] Lỗi xử lý event webhook")
		}
	}
}

// đảm bảo các service thật thỏa mãn seam của pipeline
var (
	_ PageStore         = (*PageService)(nil)
	_ ConversationStore = (*ConversationService)(nil)
	_ MessageStore      = (*MessageService)(nil)
)
