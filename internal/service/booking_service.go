package service

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/flarehaven/venue-booking/internal/calendar"
	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/flarehaven/venue-booking/internal/pricing"
	"github.com/flarehaven/venue-booking/internal/store"
)

var (
	ErrMissingFields  = errors.New("name, phone, guests and day are all required")
	ErrInvalidDay     = errors.New("day must be between 1 and 31")
	ErrDayUnavailable = errors.New("day is already booked")
)

// Publisher is the outbound messaging hook. A nil Publisher disables it;
// publish failures never fail the request.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// The prewritten proof-of-payment message the client sends over WhatsApp.
const transferDoneMessage = "Hola, ya realicé la transferencia 💸 Aquí te adjunto el comprobante. Gracias!!"

type TransferInstructions struct {
	TransferInfo models.TransferInfo
	Amount       int
	WhatsAppURL  string
}

type Quote struct {
	Guests      int
	ExtraGuests int
	PriceBase   int
	PriceExtra  int
	Total       int
}

type BookingDraft struct {
	Name   string
	Phone  string
	Guests int
	Day    int
}

type BookingService interface {
	CreateBooking(draft BookingDraft) (models.Booking, TransferInstructions, error)
	Quote(guests int) Quote
	CalendarGrid(month time.Month, year int) []calendar.Day
	SiteConfig() models.SiteConfig
}

type bookingService struct {
	store          store.Store
	publisher      Publisher
	whatsappNumber string
}

func NewBookingService(st store.Store, publisher Publisher, whatsappNumber string) BookingService {
	return &bookingService{
		store:          st,
		publisher:      publisher,
		whatsappNumber: whatsappNumber,
	}
}

// CreateBooking runs the public flow: required-field validation, guest
// clamping, the day-blocked pre-check, price computation, then the store
// append. The stored booking is always pending; the transfer hand-off that
// follows never rolls it back.
func (s *bookingService) CreateBooking(draft BookingDraft) (models.Booking, TransferInstructions, error) {
	if draft.Name == "" || draft.Phone == "" || draft.Guests == 0 || draft.Day == 0 {
		return models.Booking{}, TransferInstructions{}, ErrMissingFields
	}
	if draft.Day < 1 || draft.Day > 31 {
		return models.Booking{}, TransferInstructions{}, ErrInvalidDay
	}
	if s.store.IsDayBlocked(draft.Day) {
		return models.Booking{}, TransferInstructions{}, ErrDayUnavailable
	}

	cfg := s.store.Config()
	guests := pricing.ClampGuests(draft.Guests)
	total := pricing.Total(guests, cfg.PriceBase, cfg.PriceExtra)

	booking := s.store.AddBooking(store.BookingDraft{
		Name:   draft.Name,
		Phone:  draft.Phone,
		Guests: guests,
		Day:    draft.Day,
		Total:  total,
	})

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	instructions := TransferInstructions{
		TransferInfo: cfg.TransferInfo,
		Amount:       total,
		WhatsAppURL:  s.whatsappURL(),
	}
	return booking, instructions, nil
}

func (s *bookingService) Quote(guests int) Quote {
	cfg := s.store.Config()
	guests = pricing.ClampGuests(guests)
	extra := guests - pricing.IncludedGuests
	if extra < 0 {
		extra = 0
	}
	return Quote{
		Guests:      guests,
		ExtraGuests: extra,
		PriceBase:   cfg.PriceBase,
		PriceExtra:  cfg.PriceExtra,
		Total:       pricing.Total(guests, cfg.PriceBase, cfg.PriceExtra),
	}
}

func (s *bookingService) CalendarGrid(month time.Month, year int) []calendar.Day {
	return calendar.Grid(month, year, s.store.IsDayBlocked)
}

func (s *bookingService) SiteConfig() models.SiteConfig {
	return s.store.Config()
}

func (s *bookingService) whatsappURL() string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, url.QueryEscape(transferDoneMessage))
}
