package crmsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "travel_crm/internal/api/base/service"
	crmdto "travel_crm/internal/api/crm/dto"
	models "travel_crm/internal/api/crm/models"
	"travel_crm/internal/common"
	"travel_crm/internal/global"
	"travel_crm/internal/logger"
)

// InvoiceService quản lý hóa đơn và các dòng chi tiết.
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[models.Invoice]
	itemService *basesvc.BaseServiceMongoImpl[models.InvoiceItem]
}

// NewInvoiceService tạo mới InvoiceService
func NewInvoiceService() (*InvoiceService, error) {
	invoiceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("failed to get invoices collection: %v", common.ErrNotFound)
	}
	itemCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.InvoiceItems)
	if !exist {
		return nil, fmt.Errorf("failed to get invoice_items collection: %v", common.ErrNotFound)
	}

	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Invoice](invoiceCollection),
		itemService:          basesvc.NewBaseServiceMongo[models.InvoiceItem](itemCollection),
	}, nil
}

// CreateWithItems tạo hóa đơn kèm các dòng chi tiết.
// TotalAmount tính từ items, hóa đơn mới luôn ở trạng thái draft.
func (s *InvoiceService) CreateWithItems(ctx context.Context, input *crmdto.InvoiceCreateInput) (*models.Invoice, []models.InvoiceItem, error) {
	clientID, err := primitive.ObjectIDFromHex(input.ClientID)
	if err != nil {
		return nil, nil, common.NewError(common.ErrCodeValidationFormat, "clientId không hợp lệ", common.StatusBadRequest, err)
	}
	bookingID, err := primitive.ObjectIDFromHex(input.BookingID)
	if err != nil {
		return nil, nil, common.NewError(common.ErrCodeValidationFormat, "bookingId không hợp lệ", common.StatusBadRequest, err)
	}

	total := 0.0
	for _, item := range input.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}

	invoice, err := s.InsertOne(ctx, models.Invoice{
		ClientID:      clientID,
		InvoiceNumber: input.InvoiceNumber,
		BookingID:     bookingID,
		Status:        models.InvoiceStatusDraft,
		TotalAmount:   total,
		Currency:      input.Currency,
		DueAt:         input.DueAt,
	})
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UnixMilli()
	items := make([]models.InvoiceItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.InvoiceItem{
			InvoiceID:   invoice.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      float64(item.Quantity) * item.UnitPrice,
			CreatedAt:   now,
		})
	}

	insertedItems, err := s.itemService.InsertMany(ctx, items)
	if err != nil {
		// Hóa đơn đã tạo nhưng items lỗi — ghi log để đối soát tay
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"invoiceId": invoice.ID.Hex(),
		}).Error("🧾 [CRM] Tạo dòng hóa đơn thất bại sau khi đã tạo hóa đơn")
		return nil, nil, err
	}

	return &invoice, insertedItems, nil
}

// ListItems trả về các dòng của một hóa đơn.
func (s *InvoiceService) ListItems(ctx context.Context, invoiceID primitive.ObjectID) ([]models.InvoiceItem, error) {
	return s.itemService.Find(ctx, map[string]interface{}{"invoiceId": invoiceID}, nil)
}
