package store

import (
	"sync"
	"time"

	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/google/uuid"
)

// BookingDraft carries every booking field the public flow provides; the
// store itself assigns the identifier, timestamp and pending status.
type BookingDraft struct {
	Name   string
	Phone  string
	Guests int
	Day    int
	Total  int
}

// ConfigPatch is an explicit partial update of the site configuration. Nil
// fields are left untouched; a non-nil Gallery replaces the whole gallery.
type ConfigPatch struct {
	Title        *string
	Description  *string
	HeroImage    *string
	PriceBase    *int
	PriceExtra   *int
	Gallery      *[]models.MediaItem
	TransferInfo *models.TransferInfo
}

type Store interface {
	AddBooking(draft BookingDraft) models.Booking
	RemoveBooking(id string)
	UpdateBookingStatus(id string, status models.BookingStatus)
	ApplyConfigPatch(patch ConfigPatch)
	IsDayBlocked(day int) bool
	Bookings() []models.Booking
	Config() models.SiteConfig
}

// memoryStore is the single owner of all booking and site state for the
// lifetime of the process. There is no persistence: a restart resets it to
// the seed data.
type memoryStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	config   models.SiteConfig
}

func New() Store {
	return &memoryStore{
		bookings: models.SeedBookings(),
		config:   models.DefaultSiteConfig(),
	}
}

// AddBooking appends a new pending booking. It deliberately performs no
// day-occupancy check: callers pre-check with IsDayBlocked.
func (s *memoryStore) AddBooking(draft BookingDraft) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.Booking{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Phone:     draft.Phone,
		Guests:    draft.Guests,
		Day:       draft.Day,
		Status:    models.StatusPending,
		Total:     draft.Total,
		CreatedAt: time.Now(),
	}
	s.bookings = append(s.bookings, booking)
	return booking
}

func (s *memoryStore) RemoveBooking(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return
		}
	}
}

func (s *memoryStore) UpdateBookingStatus(id string, status models.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return
		}
	}
}

func (s *memoryStore) ApplyConfigPatch(patch ConfigPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Title != nil {
		s.config.Title = *patch.Title
	}
	if patch.Description != nil {
		s.config.Description = *patch.Description
	}
	if patch.HeroImage != nil {
		s.config.HeroImage = *patch.HeroImage
	}
	if patch.PriceBase != nil {
		s.config.PriceBase = *patch.PriceBase
	}
	if patch.PriceExtra != nil {
		s.config.PriceExtra = *patch.PriceExtra
	}
	if patch.Gallery != nil {
		s.config.Gallery = append([]models.MediaItem(nil), (*patch.Gallery)...)
	}
	if patch.TransferInfo != nil {
		s.config.TransferInfo = *patch.TransferInfo
	}
}

// IsDayBlocked reports whether any booking occupies the given day. Pending
// bookings block the day just like confirmed ones.
func (s *memoryStore) IsDayBlocked(day int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.Day == day {
			return true
		}
	}
	return false
}

func (s *memoryStore) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Booking(nil), s.bookings...)
}

func (s *memoryStore) Config() models.SiteConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config
	cfg.Gallery = append([]models.MediaItem(nil), s.config.Gallery...)
	return cfg
}
