package dto

import (
	"time"

	"github.com/flarehaven/venue-booking/internal/calendar"
	"github.com/flarehaven/venue-booking/internal/models"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type BookingResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Phone     string               `json:"phone"`
	Guests    int                  `json:"guests"`
	Day       int                  `json:"day"`
	Status    models.BookingStatus `json:"status"`
	Total     int                  `json:"total"`
	CreatedAt time.Time            `json:"created_at"`
}

// TransferResponse carries the bank-transfer hand-off shown right after a
// booking is created.
type TransferResponse struct {
	TransferInfo models.TransferInfo `json:"transfer_info"`
	Amount       int                 `json:"amount"`
	WhatsAppURL  string              `json:"whatsapp_url"`
}

type CreateBookingResponse struct {
	Booking  BookingResponse  `json:"booking"`
	Transfer TransferResponse `json:"transfer"`
}

type QuoteResponse struct {
	Guests      int `json:"guests"`
	ExtraGuests int `json:"extra_guests"`
	PriceBase   int `json:"price_base"`
	PriceExtra  int `json:"price_extra"`
	Total       int `json:"total"`
}

type CalendarResponse struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Days  []calendar.Day `json:"days"`
}

func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Guests:    b.Guests,
		Day:       b.Day,
		Status:    b.Status,
		Total:     b.Total,
		CreatedAt: b.CreatedAt,
	}
}
