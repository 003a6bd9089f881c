// Package chatsvc - Test dispatcher gửi tin trả lời với store fake (không cần Mongo).
package chatsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travel_crm/internal/api/chat/adapter"
	models "travel_crm/internal/api/chat/models"
	"travel_crm/internal/common"
)

type fakeConversationLookup struct {
	conversation models.ChatConversation
	findErr      error
	touchedText  string
	touchedAt    int64
}

func (f *fakeConversationLookup) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (models.ChatConversation, error) {
	if f.findErr != nil {
		return models.ChatConversation{}, f.findErr
	}
	return f.conversation, nil
}

func (f *fakeConversationLookup) TouchLastMessage(ctx context.Context, id primitive.ObjectID, lastMessage string, lastMessageAt int64) error {
	f.touchedText = lastMessage
	f.touchedAt = lastMessageAt
	return nil
}

func adapterLookupFor(a adapter.PlatformAdapter) AdapterLookup {
	return func(platform string) (adapter.PlatformAdapter, bool) {
		if a != nil && a.Platform() == platform {
			return a, true
		}
		return nil, false
	}
}

func newReplyFixture(sendErr error) (*ReplyService, *fakeConversationLookup, *fakeMessageStore, *fakeAdapter) {
	clientID := primitive.NewObjectID()
	conversations := &fakeConversationLookup{conversation: models.ChatConversation{
		ID:       primitive.NewObjectID(),
		ClientID: clientID,
		Platform: models.PlatformMessenger,
		PageID:   "page-1",
		SenderID: "user-1",
	}}
	pages := &fakePageStore{pages: map[string]*models.ChatPage{
		models.PlatformMessenger + "/page-1": newTestPage(clientID),
	}}
	messages := &fakeMessageStore{}
	platformAdapter := &fakeAdapter{platform: models.PlatformMessenger, sendMid: "mid-out-1", sendErr: sendErr}

	svc := NewReplyServiceWithStores(pages, conversations, messages, adapterLookupFor(platformAdapter))
	return svc, conversations, messages, platformAdapter
}

func TestDispatch_GuiLoiKhongGhiTinNao(t *testing.T) {
	svc, conversations, messages, _ := newReplyFixture(errors.New("graph API 500"))
	conv := conversations.conversation

	_, err := svc.Dispatch(context.Background(), conv.ClientID, conv.ID, "xin chào")

	require.Error(t, err, "gửi platform thất bại phải trả lỗi cho agent")
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	assert.Empty(t, messages.appended, "gửi thất bại thì không được ghi tin outgoing nào")
	assert.Empty(t, conversations.touchedText, "gửi thất bại thì không được cập nhật preview hội thoại")
}

func TestDispatch_GuiThanhCongGhiDungMotTinOutgoing(t *testing.T) {
	svc, conversations, messages, platformAdapter := newReplyFixture(nil)
	conv := conversations.conversation

	message, err := svc.Dispatch(context.Background(), conv.ClientID, conv.ID, "Cảm ơn anh đã quan tâm tour Đà Nẵng")
	require.NoError(t, err)

	require.Len(t, platformAdapter.sentTexts, 1, "phải gửi đúng một lần qua platform")
	require.Len(t, messages.appended, 1, "gửi thành công phải ghi đúng một tin outgoing")
	m := messages.appended[0]
	assert.Equal(t, models.DirectionOutgoing, m.Direction)
	assert.Equal(t, models.MessageTypeText, m.MessageType)
	assert.Equal(t, conv.PageID, m.PageID)
	assert.Equal(t, conv.PageID, m.SenderID, "chiều outgoing thì người gửi là trang")
	assert.Equal(t, "mid-out-1", m.Mid, "message id từ platform phải được lưu lại")
	assert.Equal(t, "Cảm ơn anh đã quan tâm tour Đà Nẵng", m.MessageText)
	assert.Equal(t, m, message)

	assert.Equal(t, m.MessageText, conversations.touchedText, "preview hội thoại phải cập nhật theo tin vừa gửi")
	assert.Equal(t, m.CreatedAt, conversations.touchedAt)
}

func TestDispatch_HoiThoaiKhacTenant(t *testing.T) {
	svc, _, messages, _ := newReplyFixture(nil)
	lookup := &fakeConversationLookup{findErr: common.ErrNotFound}
	svc.conversations = lookup

	_, err := svc.Dispatch(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "hello")

	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, messages.appended)
}

func TestDispatch_TrangKhongConDangKy(t *testing.T) {
	svc, conversations, messages, _ := newReplyFixture(nil)
	svc.pages = &fakePageStore{pages: map[string]*models.ChatPage{}}
	conv := conversations.conversation

	_, err := svc.Dispatch(context.Background(), conv.ClientID, conv.ID, "hello")

	require.Error(t, err)
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
	assert.Empty(t, messages.appended)
}

func TestDispatch_PlatformKhongDuocHoTro(t *testing.T) {
	svc, conversations, messages, _ := newReplyFixture(nil)
	svc.adapters = adapterLookupFor(nil)
	conv := conversations.conversation

	_, err := svc.Dispatch(context.Background(), conv.ClientID, conv.ID, "hello")

	require.Error(t, err)
	assert.Empty(t, messages.appended)
}
