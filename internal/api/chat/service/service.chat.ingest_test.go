// Package chatsvc - Test pipeline tiếp nhận tin nhắn với store fake (không cần Mongo).
package chatsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel_crm/internal/api/chat/adapter"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
)

type fakePageStore struct {
	pages map[string]*models.ChatPage // key: platform + "/" + pageID
	err   error
}

func (f *fakePageStore) FindByPlatformPage(ctx context.Context, platform string, pageID string) (*models.ChatPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if page, ok := f.pages[platform+"/"+pageID]; ok {
		return page, nil
	}
	return nil, common.ErrNotFound
}

type fakeConversationStore struct {
	lastInput    *ResolveInput
	conversation *models.ChatConversation
	err          error
}

func (f *fakeConversationStore) ResolveConversation(ctx context.Context, input *ResolveInput) (*models.ChatConversation, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.conversation, nil
}

type fakeMessageStore struct {
	appended []*models.ChatMessage
	err      error
}

func (f *fakeMessageStore) AppendMessage(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.appended = append(f.appended, message)
	return message, nil
}

// fakeAdapter giả lập platform: FetchProfile cho pipeline đến, SendMessage cho dispatcher.
type fakeAdapter struct {
	platform    string
	profileName string
	profileErr  error
	sendMid     string
	sendErr     error
	sentTexts   []string
}

func (f *fakeAdapter) Platform() string { return f.platform }

func (f *fakeAdapter) ParseEnvelope(body []byte) ([]adapter.InboundEvent, error) {
	return nil, nil
}

func (f *fakeAdapter) SendMessage(ctx context.Context, accessToken, recipientID, text string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sentTexts = append(f.sentTexts, text)
	return f.sendMid, nil
}

func (f *fakeAdapter) FetchProfile(ctx context.Context, accessToken, userID string) (string, error) {
	return f.profileName, f.profileErr
}

func newTestPage(clientID primitive.ObjectID) *models.ChatPage {
	return &models.ChatPage{
		ID:          primitive.NewObjectID(),
		ClientID:    clientID,
		Platform:    models.PlatformMessenger,
		PageID:      "page-1",
		AccessToken: "token-1",
		IsActive:    true,
	}
}

func TestProcessEvent_TrangChuaDangKy(t *testing.T) {
	conversations := &fakeConversationStore{}
	messages := &fakeMessageStore{}
	svc := NewIngestServiceWithStores(&fakePageStore{pages: map[string]*models.ChatPage{}}, conversations, messages)

	err := svc.ProcessEvent(context.Background(), &fakeAdapter{platform: models.PlatformMessenger}, &adapter.InboundEvent{
		PageID:   "page-unknown",
		SenderID: "user-1",
		Text:     "hello",
	})

	require.NoError(t, err, "trang chưa đăng ký phải drop êm, không trả lỗi")
	assert.Nil(t, conversations.lastInput, "không được resolve hội thoại khi trang chưa đăng ký")
	assert.Empty(t, messages.appended, "không được ghi tin nhắn khi trang chưa đăng ký")
}

func TestProcessEvent_LoiTraCuuTrangKhacNotFound(t *testing.T) {
	svc := NewIngestServiceWithStores(
		&fakePageStore{err: errors.New("mongo timeout")},
		&fakeConversationStore{},
		&fakeMessageStore{},
	)

	err := svc.ProcessEvent(context.Background(), &fakeAdapter{platform: models.PlatformMessenger}, &adapter.InboundEvent{
		PageID:   "page-1",
		SenderID: "user-1",
		Text:     "hello",
	})

	require.Error(t, err, "lỗi hạ tầng phải được propagate, khác với trang chưa đăng ký")
}

func TestProcessEvent_LuongDayDu(t *testing.T) {
	clientID := primitive.NewObjectID()
	conversationID := primitive.NewObjectID()

	pages := &fakePageStore{pages: map[string]*models.ChatPage{
		models.PlatformMessenger + "/page-1": newTestPage(clientID),
	}}
	conversations := &fakeConversationStore{conversation: &models.ChatConversation{ID: conversationID, ClientID: clientID}}
	messages := &fakeMessageStore{}
	svc := NewIngestServiceWithStores(pages, conversations, messages)

	err := svc.ProcessEvent(context.Background(), &fakeAdapter{platform: models.PlatformMessenger, profileName: "Nguyễn Văn A"}, &adapter.InboundEvent{
		PageID:    "page-1",
		SenderID:  "user-1",
		Mid:       "mid-1",
		Text:      "Tôi muốn đặt tour Đà Nẵng",
		Timestamp: 1700000000123,
	})
	require.NoError(t, err)

	require.NotNil(t, conversations.lastInput)
	assert.Equal(t, clientID, conversations.lastInput.ClientID, "tenant phải lấy từ trang đã đăng ký")
	assert.Equal(t, models.PlatformMessenger, conversations.lastInput.Platform)
	assert.Equal(t, "page-1", conversations.lastInput.PageID)
	assert.Equal(t, "user-1", conversations.lastInput.SenderID)
	assert.Equal(t, "Nguyễn Văn A", conversations.lastInput.CustomerName)
	assert.Equal(t, "Tôi muốn đặt tour Đà Nẵng", conversations.lastInput.LastMessage)
	assert.Equal(t, int64(1700000000123), conversations.lastInput.LastMessageAt)

	require.Len(t, messages.appended, 1)
	m := messages.appended[0]
	assert.Equal(t, clientID, m.ClientID)
	assert.Equal(t, conversationID, m.ConversationID)
	assert.Equal(t, models.DirectionIncoming, m.Direction)
	assert.Equal(t, "page-1", m.PageID)
	assert.Equal(t, "user-1", m.SenderID)
	assert.Equal(t, models.MessageTypeText, m.MessageType)
	assert.Equal(t, "mid-1", m.Mid)
	assert.Equal(t, int64(1700000000123), m.CreatedAt)
}

func TestProcessEvent_TinChiCoAttachment(t *testing.T) {
	clientID := primitive.NewObjectID()
	pages := &fakePageStore{pages: map[string]*models.ChatPage{
		models.PlatformMessenger + "/page-1": newTestPage(clientID),
	}}
	conversations := &fakeConversationStore{conversation: &models.ChatConversation{ID: primitive.NewObjectID()}}
	messages := &fakeMessageStore{}
	svc := NewIngestServiceWithStores(pages, conversations, messages)

	err := svc.ProcessEvent(context.Background(), &fakeAdapter{platform: models.PlatformMessenger}, &adapter.InboundEvent{
		PageID:        "page-1",
		SenderID:      "user-1",
		Text:          models.AttachmentPlaceholder,
		HasAttachment: true,
		Timestamp:     1,
	})

	require.NoError(t, err)
	require.Len(t, messages.appended, 1)
	assert.Equal(t, models.MessageTypeAttachment, messages.appended[0].MessageType)
	assert.Equal(t, models.AttachmentPlaceholder, messages.appended[0].MessageText)
}

func TestProcessEvent_LoiFetchProfileKhongChanPipeline(t *testing.T) {
	clientID := primitive.NewObjectID()
	pages := &fakePageStore{pages: map[string]*models.ChatPage{
		models.PlatformMessenger + "/page-1": newTestPage(clientID),
	}}
	conversations := &fakeConversationStore{conversation: &models.ChatConversation{ID: primitive.NewObjectID()}}
	messages := &fakeMessageStore{}
	svc := NewIngestServiceWithStores(pages, conversations, messages)

	err := svc.ProcessEvent(context.Background(), &fakeAdapter{platform: models.PlatformMessenger, profileErr: errors.New("graph API 400")}, &adapter.InboundEvent{
		PageID:    "page-1",
		SenderID:  "user-1",
		Text:      "hello",
		Timestamp: 1,
	})

	require.NoError(t, err, "lỗi lấy profile không được chặn pipeline")
	require.NotNil(t, conversations.lastInput)
	assert.Empty(t, conversations.lastInput.CustomerName, "lỗi profile thì tên khách để trống")
	assert.Len(t, messages.appended, 1)
}

func TestProcessEvent_TimestampTrongFallbackThoiDiemHienTai(t *testing.T) {
	clientID := primitive.NewObjectID()
	pages := &fakePageStore{pages: map[string]*models.ChatPage{
		models.PlatformMessenger + "/page-1": newTestPage(clientID),
	}}
	conversations := &fakeConversationStore{conversation: &models.ChatConversation{ID: primitive.NewObjectID()}}
	messages := &fakeMessageStore{}
	svc := NewIngestServiceWithStores(pages, conversations, messages)

	err := svc.ProcessEvent(context.Background(), &fakeAdapter{platform: models.PlatformMessenger}, &adapter.InboundEvent{
		PageID:   "page-1",
		SenderID: "user-1",
		Text:     "hello",
	})

	require.NoError(t, err)
	require.NotNil(t, conversations.lastInput)
	assert.Greater(t, conversations.lastInput.LastMessageAt, int64(0), "timestamp trống phải fallback thời điểm hiện tại")
	require.Len(t, messages.appended, 1)
	assert.Equal(t, conversations.lastInput.LastMessageAt, messages.appended[0].CreatedAt)
}

func TestProcessEvents_EventLoiKhongChanEventSau(t *testing.T) {
	clientID := primitive.NewObjectID()
	pages := &fakePageStore{pages: map[string]*models.ChatPage{
		models.PlatformMessenger + "/page-1": newTestPage(clientID),
	}}
	conversations := &fakeConversationStore{conversation: &models.ChatConversation{ID: primitive.NewObjectID()}}
	messages := &fakeMessageStore{}
	svc := NewIngestServiceWithStores(pages, conversations, messages)

	events := []adapter.InboundEvent{
		{PageID: "page-unknown", SenderID: "user-1", Text: "drop"}, // trang chưa đăng ký
		{PageID: "page-1", SenderID: "user-2", Text: "ok", Timestamp: 1},
	}
	svc.ProcessEvents(context.Background(), &fakeAdapter{platform: models.PlatformMessenger}, events)

	require.Len(t, messages.appended, 1, "event hợp lệ sau event bị drop vẫn phải được xử lý")
	assert.Equal(t, "user-2", messages.appended[0].SenderID)
}
