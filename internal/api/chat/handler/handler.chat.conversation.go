package chathdl

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "travel_crm/internal/api/base/handler"
	chatdto "travel_crm/internal/api/chat/dto"
	chatsvc "travel_crm/internal/api/chat/service"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
	"travel_crm/internal/utility"
)

// ConversationHandler xử lý các request hội thoại của agent.
// Mọi truy vấn đều scope theo tenant (clientID từ AuthMiddleware).
type ConversationHandler struct {
	conversationService *chatsvc.ConversationService
	messageService      *chatsvc.MessageService
	replyService        *chatsvc.ReplyService
}

// NewConversationHandler tạo mới ConversationHandler
func NewConversationHandler() (*ConversationHandler, error) {
	conversationService, err := chatsvc.NewConversationService()
	if err != nil {
		return nil, err
	}
	messageService, err := chatsvc.NewMessageService()
	if err != nil {
		return nil, err
	}
	replyService, err := chatsvc.NewReplyService()
	if err != nil {
		return nil, err
	}

	return &ConversationHandler{
		conversationService: conversationService,
		messageService:      messageService,
		replyService:        replyService,
	}, nil
}

// HandleListThreads trả về danh sách hội thoại của tenant, mới nhất trước.
// Query: page, limit (mặc định 1, 50), platform (tùy chọn — lọc theo platform).
func (h *ConversationHandler) HandleListThreads(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID, err := requireClientID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		platform := strings.ToLower(c.Query("platform"))
		if platform != "" {
			if err := global.Validate.Var(platform, "chat_platform"); err != nil {
				basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Platform không hỗ trợ", common.StatusBadRequest, err))
				return nil
			}
		}

		page := utility.P2Int64(c.Query("page", "1"))
		limit := utility.P2Int64(c.Query("limit", "50"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 200 {
			limit = 50
		}

		result, err := h.conversationService.FindThreads(c.Context(), clientID, platform, page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetConversation trả về hội thoại kèm toàn bộ tin nhắn theo thứ tự thời gian.
func (h *ConversationHandler) HandleGetConversation(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID, err := requireClientID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		conversationID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID hội thoại không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		conversation, err := h.conversationService.FindOne(c.Context(), map[string]interface{}{
			"_id":      conversationID,
			"clientId": clientID,
		}, nil)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		messages, err := h.messageService.ListByConversation(c.Context(), conversationID, 0)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{
			"conversation": conversation,
			"messages":     messages,
		}, nil)
		return nil
	})
}

// HandleReply gửi tin trả lời của agent vào một hội thoại.
func (h *ConversationHandler) HandleReply(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		clientID, err := requireClientID(c)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input chatdto.ReplyInput
		if err := parseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		conversationID, err := primitive.ObjectIDFromHex(input.ConversationID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID hội thoại không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		message, err := h.replyService.Dispatch(c.Context(), clientID, conversationID, input.MessageText)
		basehdl.HandleResponse(c, message, err)
		return nil
	})
}
