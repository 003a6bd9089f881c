// Package crmrouter đăng ký các route thuộc domain CRM.
package crmrouter

import (
	"github.com/gofiber/fiber/v3"

	crmhdl "travel_crm/internal/api/crm/handler"
	"travel_crm/internal/api/middleware"
	"travel_crm/internal/api/router"
)

// Register đăng ký các route CRM vào group /api/v1.
func Register(v1 fiber.Router, r *router.Router) error {
	contactHandler, err := crmhdl.NewContactHandler()
	if err != nil {
		return err
	}
	bookingHandler, err := crmhdl.NewBookingHandler()
	if err != nil {
		return err
	}
	itineraryHandler, err := crmhdl.NewItineraryHandler()
	if err != nil {
		return err
	}
	packageHandler, err := crmhdl.NewTravelPackageHandler()
	if err != nil {
		return err
	}
	hotelHandler, err := crmhdl.NewHotelHandler()
	if err != nil {
		return err
	}
	invoiceHandler, err := crmhdl.NewInvoiceHandler()
	if err != nil {
		return err
	}

	r.RegisterCRUDRoutes(v1, "/contacts", contactHandler, router.ReadWriteConfig, "contacts")
	r.RegisterCRUDRoutes(v1, "/bookings", bookingHandler, router.ReadWriteConfig, "bookings")
	r.RegisterCRUDRoutes(v1, "/itineraries", itineraryHandler, router.ReadWriteConfig, "itineraries")
	r.RegisterCRUDRoutes(v1, "/packages", packageHandler, router.ReadWriteConfig, "packages")
	r.RegisterCRUDRoutes(v1, "/hotels", hotelHandler, router.ReadWriteConfig, "hotels")

	// Hóa đơn: tạo luôn kèm items nên không mở insert-one chuẩn
	invoiceMiddleware := middleware.AuthMiddleware("invoices")
	router.RegisterRouteWithMiddleware(v1, "/invoices", "POST", "/create", []fiber.Handler{invoiceMiddleware}, invoiceHandler.HandleCreateWithItems)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "GET", "/with-items/:id", []fiber.Handler{invoiceMiddleware}, invoiceHandler.HandleGetWithItems)
	r.RegisterCRUDRoutes(v1, "/invoices", invoiceHandler, router.CRUDConfig{
		Find: true, FindOne: true, FindById: true, Paginate: true,
		UpdById: true, Count: true, Distinct: true,
	}, "invoices")

	return nil
}
