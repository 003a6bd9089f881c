package crmhdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "travel_crm/internal/api/base/handler"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	crmsvc "travel_crm/internal/api/crm/service"
	"travel_crm/internal/common"
	"travel_crm/internal/logger"
)

// InvoiceHandler xử lý hóa đơn. Tạo hóa đơn luôn đi kèm các dòng chi tiết
// nên không dùng InsertOne chuẩn của BaseHandler.
type InvoiceHandler struct {
	*basehdl.BaseHandler[models.Invoice, crmdto.InvoiceCreateInput, crmdto.InvoiceUpdateInput]
	invoiceService *crmsvc.InvoiceService
}

// NewInvoiceHandler tạo mới InvoiceHandler
func NewInvoiceHandler() (*InvoiceHandler, error) {
	invoiceService, err := crmsvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %v", err)
	}
	return &InvoiceHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Invoice, crmdto.InvoiceCreateInput, crmdto.InvoiceUpdateInput](invoiceService),
		invoiceService: invoiceService,
	}, nil
}

// HandleCreateWithItems tạo hóa đơn kèm các dòng chi tiết
func (h *InvoiceHandler) HandleCreateWithItems(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input crmdto.InvoiceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, items, err := h.invoiceService.CreateWithItems(c.Context(), &input)
		if err != nil {
			if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Số hóa đơn đã tồn tại", common.StatusConflict, err))
				return nil
			}
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("create", "invoice", invoice.ID.Hex(), c, map[string]interface{}{
			"invoiceNumber": invoice.InvoiceNumber,
			"itemCount":     len(items),
		})

		h.HandleResponse(c, fiber.Map{
			"invoice": invoice,
			"items":   items,
		}, nil)
		return nil
	})
}

// HandleGetWithItems trả về hóa đơn kèm các dòng chi tiết
func (h *InvoiceHandler) HandleGetWithItems(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		invoiceID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID hóa đơn không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		invoice, err := h.invoiceService.FindOneById(c.Context(), invoiceID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		items, err := h.invoiceService.ListItems(c.Context(), invoiceID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"invoice": invoice,
			"items":   items,
		}, nil)
		return nil
	})
}
