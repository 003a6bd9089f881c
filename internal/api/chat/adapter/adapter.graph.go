package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"travel_crm/internal/api/chat/models"
	"travel_crm/internal/logger"
)

// graphEnvelope là cấu trúc webhook envelope của Meta Graph API.
// Messenger và Instagram dùng chung shape, chỉ khác giá trị Object.
type graphEnvelope struct {
	Object string       `json:"object"`
	Entry  []graphEntry `json:"entry"`
}

type graphEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []graphMessaging `json:"messaging"`
}

type graphMessaging struct {
	Sender    *graphParticipant `json:"sender"`
	Recipient *graphParticipant `json:"recipient"`
	Timestamp int64             `json:"timestamp"`
	Message   *graphMessage     `json:"message"`
}

type graphParticipant struct {
	ID string `json:"id"`
}

type graphMessage struct {
	Mid         string            `json:"mid"`
	Text        string            `json:"text"`
	IsEcho      bool              `json:"is_echo"`
	Attachments []json.RawMessage `json:"attachments"`
}

// graphAdapter là PlatformAdapter dùng chung cho các nền tảng Meta Graph API.
// Messenger và Instagram chỉ khác tên platform và object trong envelope.
type graphAdapter struct {
	platform string
	object   string
	baseURL  string
	client   *http.Client
}

// NewMessengerAdapter tạo adapter cho Facebook Messenger.
func NewMessengerAdapter(baseURL string) PlatformAdapter {
	return &graphAdapter{
		platform: models.PlatformMessenger,
		object:   "page",
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewInstagramAdapter tạo adapter cho Instagram Messaging.
func NewInstagramAdapter(baseURL string) PlatformAdapter {
	return &graphAdapter{
		platform: models.PlatformInstagram,
		object:   "instagram",
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Platform trả về tên platform của adapter
func (a *graphAdapter) Platform() string {
	return a.platform
}

// ParseEnvelope parse webhook envelope thành danh sách event chuẩn hóa.
// Quy tắc chuẩn hóa:
//   - Envelope không decode được hoặc không có entry → 0 event (vẫn ack 200)
//   - Object không khớp platform → ErrUnsupportedObject (handler trả 404)
//   - Messaging không có sender hoặc không có message → bỏ qua
//   - Message echo (do chính page gửi) → bỏ qua
//   - Chỉ có attachment, không có text → thay bằng placeholder [attachment]
func (a *graphAdapter) ParseEnvelope(body []byte) ([]InboundEvent, error) {
	var envelope graphEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.GetAppLogger().WithError(err).Warn("💬 [CHAT] Webhook payload không phải JSON hợp lệ, bỏ qua")
		return nil, nil
	}

	if envelope.Object != a.object {
		return nil, ErrUnsupportedObject
	}

	var events []InboundEvent
	for _, entry := range envelope.Entry {
		for _, msg := range entry.Messaging {
			if msg.Sender == nil || msg.Sender.ID == "" {
				// Không xác định được người gửi → không thể định danh hội thoại
				continue
			}
			if msg.Message == nil || msg.Message.IsEcho {
				continue
			}

			text := msg.Message.Text
			hasAttachment := false
			if text == "" {
				if len(msg.Message.Attachments) == 0 {
					continue
				}
				text = models.AttachmentPlaceholder
				hasAttachment = true
			}

			pageID := entry.ID
			recipientID := ""
			if msg.Recipient != nil {
				recipientID = msg.Recipient.ID
				if pageID == "" {
					pageID = msg.Recipient.ID
				}
			}

			timestamp := msg.Timestamp
			if timestamp == 0 {
				timestamp = entry.Time
			}

			events = append(events, InboundEvent{
				PageID:        pageID,
				SenderID:      msg.Sender.ID,
				RecipientID:   recipientID,
				Mid:           msg.Message.Mid,
				Text:          text,
				HasAttachment: hasAttachment,
				Timestamp:     timestamp,
			})
		}
	}

	return events, nil
}

// sendMessageResponse là response của Graph API khi gửi tin nhắn.
type sendMessageResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// SendMessage gửi tin nhắn văn bản qua Graph API /me/messages.
func (a *graphAdapter) SendMessage(ctx context.Context, accessToken string, recipientID string, text string) (string, error) {
	endpoint := fmt.Sprintf("%s/me/messages?access_token=%s", a.baseURL, url.QueryEscape(accessToken))

	payload := map[string]interface{}{
		"recipient":      map[string]string{"id": recipientID},
		"messaging_type": "RESPONSE",
		"message":        map[string]string{"text": text},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"platform":    a.platform,
			"recipientId": recipientID,
		}).Error("💬 [CHAT] Lỗi khi gọi Graph API gửi tin nhắn")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"platform":    a.platform,
			"recipientId": recipientID,
			"statusCode":  resp.StatusCode,
			"response":    string(bodyBytes),
		}).Error("💬 [CHAT] Graph API trả về lỗi khi gửi tin nhắn")
		return "", fmt.Errorf("graph API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.MessageID, nil
}

// FetchProfile lấy tên hiển thị của khách từ Graph API.
// Best-effort: lỗi được trả về để caller quyết định bỏ qua.
func (a *graphAdapter) FetchProfile(ctx context.Context, accessToken string, userID string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=name&access_token=%s", a.baseURL, url.PathEscape(userID), url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("graph API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.Name, nil
}
