package chathdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "travel_crm/internal/api/base/handler"
	chatdto "travel_crm/internal/api/chat/dto"
	models "travel_crm/internal/api/chat/models"
	chatsvc "travel_crm/internal/api/chat/service"
	"travel_crm/internal/common"
	"travel_crm/internal/logger"
)

// PageHandler quản lý trang đã đăng ký nhận webhook (CRUD qua BaseHandler).
type PageHandler struct {
	*basehdl.BaseHandler[models.ChatPage, chatdto.ChatPageCreateInput, chatdto.ChatPageUpdateInput]
	pageService *chatsvc.PageService
}

// NewPageHandler tạo mới PageHandler
func NewPageHandler() (*PageHandler, error) {
	pageService, err := chatsvc.NewPageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create page service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ChatPage, chatdto.ChatPageCreateInput, chatdto.ChatPageUpdateInput](pageService)
	return &PageHandler{
		BaseHandler: baseHandler,
		pageService: pageService,
	}, nil
}

// HandleRegisterPage đăng ký trang mới nhận webhook.
// Không dùng InsertOne của BaseHandler vì trang mới phải active ngay (isActive=true).
func (h *PageHandler) HandleRegisterPage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input chatdto.ChatPageCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clientID, err := primitive.ObjectIDFromHex(input.ClientID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "clientId không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		page, err := h.pageService.InsertOne(c.Context(), models.ChatPage{
			ClientID:    clientID,
			Platform:    input.Platform,
			PageID:      input.PageID,
			PageName:    input.PageName,
			AccessToken: input.AccessToken,
			IsActive:    true,
		})
		if err != nil {
			if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Trang đã được đăng ký", common.StatusConflict, err))
				return nil
			}
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("create", "chat_page", page.ID.Hex(), c, map[string]interface{}{
			"platform": page.Platform,
			"pageId":   page.PageID,
		})

		page.AccessToken = ""
		h.HandleResponse(c, page, nil)
		return nil
	})
}
