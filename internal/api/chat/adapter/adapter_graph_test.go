// Package adapter - Test quy tắc chuẩn hóa webhook envelope của Graph API.
package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_crm/internal/api/chat/models"
)

func TestParseEnvelope_ChuanHoaEventHopLe(t *testing.T) {
	a := NewMessengerAdapter("https://graph.example.com")

	body := []byte(`{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"time": 1700000000000,
			"messaging": [{
				"sender": {"id": "user-1"},
				"recipient": {"id": "page-1"},
				"timestamp": 1700000000123,
				"message": {"mid": "mid-1", "text": "Xin chào"}
			}]
		}]
	}`)

	events, err := a.ParseEnvelope(body)
	require.NoError(t, err)
	require.Len(t, events, 1, "envelope hợp lệ phải cho đúng 1 event")

	e := events[0]
	assert.Equal(t, "page-1", e.PageID)
	assert.Equal(t, "user-1", e.SenderID)
	assert.Equal(t, "page-1", e.RecipientID)
	assert.Equal(t, "mid-1", e.Mid)
	assert.Equal(t, "Xin chào", e.Text)
	assert.Equal(t, int64(1700000000123), e.Timestamp)
}

func TestParseEnvelope_PayloadKhongPhaiJSON(t *testing.T) {
	a := NewMessengerAdapter("https://graph.example.com")

	events, err := a.ParseEnvelope([]byte(`not-json{{{`))
	require.NoError(t, err, "payload hỏng không được trả lỗi, webhook vẫn ack 200")
	assert.Empty(t, events, "payload hỏng phải cho 0 event")
}

func TestParseEnvelope_ObjectKhongKhop(t *testing.T) {
	messenger := NewMessengerAdapter("https://graph.example.com")
	instagram := NewInstagramAdapter("https://graph.example.com")

	body := []byte(`{"object": "instagram", "entry": []}`)

	_, err := messenger.ParseEnvelope(body)
	require.ErrorIs(t, err, ErrUnsupportedObject, "payload instagram vào adapter messenger phải bị từ chối")

	events, err := instagram.ParseEnvelope(body)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseEnvelope_BoQuaMessagingKhongCoSender(t *testing.T) {
	a := NewMessengerAdapter("https://graph.example.com")

	body := []byte(`{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [
				{"recipient": {"id": "page-1"}, "message": {"mid": "m1", "text": "no sender"}},
				{"sender": {"id": ""}, "message": {"mid": "m2", "text": "empty sender"}},
				{"sender": {"id": "user-1"}, "message": {"mid": "m3", "text": "ok"}}
			]
		}]
	}`)

	events, err := a.ParseEnvelope(body)
	require.NoError(t, err)
	require.Len(t, events, 1, "messaging không có sender phải bị bỏ qua")
	assert.Equal(t, "m3", events[0].Mid)
}

func TestParseEnvelope_BoQuaEchoVaKhongCoMessage(t *testing.T) {
	a := NewMessengerAdapter("https://graph.example.com")

	body := []byte(`{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [
				{"sender": {"id": "page-1"}, "message": {"mid": "m1", "text": "echo", "is_echo": true}},
				{"sender": {"id": "user-1"}, "delivery": {"mids": ["m0"]}}
			]
		}]
	}`)

	events, err := a.ParseEnvelope(body)
	require.NoError(t, err)
	assert.Empty(t, events, "echo và messaging không có message phải bị bỏ qua")
}

func TestParseEnvelope_ChiCoAttachment(t *testing.T) {
	a := NewMessengerAdapter("https://graph.example.com")

	body := []byte(`{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [
				{"sender": {"id": "user-1"}, "message": {"mid": "m1", "attachments": [{"type": "image"}]}},
				{"sender": {"id": "user-2"}, "message": {"mid": "m2"}}
			]
		}]
	}`)

	events, err := a.ParseEnvelope(body)
	require.NoError(t, err)
	require.Len(t, events, 1, "message không text không attachment phải bị bỏ qua")
	assert.Equal(t, models.AttachmentPlaceholder, events[0].Text, "message chỉ có attachment phải dùng placeholder")
	assert.True(t, events[0].HasAttachment, "event chỉ có attachment phải được đánh dấu")
}

func TestParseEnvelope_FallbackPageIDVaTimestamp(t *testing.T) {
	a := NewMessengerAdapter("https://graph.example.com")

	body := []byte(`{
		"object": "page",
		"entry": [{
			"time": 1700000000999,
			"messaging": [{
				"sender": {"id": "user-1"},
				"recipient": {"id": "page-9"},
				"message": {"mid": "m1", "text": "hi"}
			}]
		}]
	}`)

	events, err := a.ParseEnvelope(body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "page-9", events[0].PageID, "entry.id trống phải fallback sang recipient.id")
	assert.Equal(t, int64(1700000000999), events[0].Timestamp, "timestamp trống phải fallback sang entry.time")
}

func TestParseEnvelope_NhieuEntry(t *testing.T) {
	a := NewInstagramAdapter("https://graph.example.com")

	body := []byte(`{
		"object": "instagram",
		"entry": [
			{"id": "ig-1", "messaging": [{"sender": {"id": "u1"}, "timestamp": 1, "message": {"mid": "m1", "text": "a"}}]},
			{"id": "ig-2", "messaging": [{"sender": {"id": "u2"}, "timestamp": 2, "message": {"mid": "m2", "text": "b"}}]}
		]
	}`)

	events, err := a.ParseEnvelope(body)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ig-1", events[0].PageID)
	assert.Equal(t, "ig-2", events[1].PageID)
}

func TestRegistry_GetTheoPlatform(t *testing.T) {
	Register(NewMessengerAdapter("https://graph.example.com"))
	Register(NewInstagramAdapter("https://graph.example.com"))

	a, ok := Get(models.PlatformMessenger)
	require.True(t, ok)
	assert.Equal(t, models.PlatformMessenger, a.Platform())

	_, ok = Get("zalo")
	assert.False(t, ok, "platform chưa đăng ký không được trả về adapter")
}
