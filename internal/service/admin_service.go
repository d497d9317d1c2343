package service

import (
	"encoding/base64"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/flarehaven/venue-booking/internal/auth"
	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/flarehaven/venue-booking/internal/store"
	"github.com/google/uuid"
)

var (
	ErrBadCredentials    = errors.New("invalid credentials")
	ErrInvalidStatus     = errors.New("status must be pending or confirmed")
	ErrGalleryImagesFull = errors.New("gallery image limit reached (max 20)")
	ErrGalleryVideosFull = errors.New("gallery video limit reached (max 5)")
	ErrUnsupportedMedia  = errors.New("only image and video media are supported")
	ErrMediaItemNotFound = errors.New("gallery item not found")
)

const (
	maxGalleryImages = 20
	maxGalleryVideos = 5
)

type AdminService interface {
	Login(username, password string) (string, error)
	ListBookings() []models.Booking
	DeleteBooking(id string)
	SetBookingStatus(id string, status models.BookingStatus) error
	Config() models.SiteConfig
	UpdateConfig(patch store.ConfigPatch)
	AddMedia(mediaType models.MediaType, url, caption string) (models.MediaItem, error)
	AddMediaFromFile(data []byte, caption string) (models.MediaItem, error)
	RemoveMedia(id string)
	SetMediaCaption(id, caption string) error
}

type adminService struct {
	store     store.Store
	verifier  auth.CredentialVerifier
	tokens    *auth.TokenManager
	publisher Publisher
}

func NewAdminService(st store.Store, verifier auth.CredentialVerifier, tokens *auth.TokenManager, publisher Publisher) AdminService {
	return &adminService{
		store:     st,
		verifier:  verifier,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (s *adminService) Login(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		return "", ErrBadCredentials
	}
	return s.tokens.Issue(username)
}

// ListBookings returns every booking sorted by day ascending, the order the
// admin table renders them in.
func (s *adminService) ListBookings() []models.Booking {
	bookings := s.store.Bookings()
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Day < bookings[j].Day
	})
	return bookings
}

func (s *adminService) DeleteBooking(id string) {
	s.store.RemoveBooking(id)
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.removed", map[string]string{"id": id})
	}
}

func (s *adminService) SetBookingStatus(id string, status models.BookingStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	s.store.UpdateBookingStatus(id, status)
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.status_changed", map[string]string{
			"id":     id,
			"status": string(status),
		})
	}
	return nil
}

func (s *adminService) Config() models.SiteConfig {
	return s.store.Config()
}

func (s *adminService) UpdateConfig(patch store.ConfigPatch) {
	s.store.ApplyConfigPatch(patch)
}

// AddMedia appends a gallery item referenced by URL, enforcing the 20-image
// and 5-video caps.
func (s *adminService) AddMedia(mediaType models.MediaType, url, caption string) (models.MediaItem, error) {
	if mediaType != models.MediaImage && mediaType != models.MediaVideo {
		return models.MediaItem{}, ErrUnsupportedMedia
	}

	gallery := s.store.Config().Gallery
	if err := checkCapacity(gallery, mediaType); err != nil {
		return models.MediaItem{}, err
	}

	item := models.MediaItem{
		ID:      uuid.NewString(),
		Type:    mediaType,
		URL:     url,
		Caption: caption,
	}
	gallery = append(gallery, item)
	s.store.ApplyConfigPatch(store.ConfigPatch{Gallery: &gallery})
	return item, nil
}

// AddMediaFromFile embeds uploaded file bytes directly as a data URL; no
// external storage service is involved.
func (s *adminService) AddMediaFromFile(data []byte, caption string) (models.MediaItem, error) {
	mime := http.DetectContentType(data)

	var mediaType models.MediaType
	switch {
	case strings.HasPrefix(mime, "image/"):
		mediaType = models.MediaImage
	case strings.HasPrefix(mime, "video/"):
		mediaType = models.MediaVideo
	default:
		return models.MediaItem{}, ErrUnsupportedMedia
	}

	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return s.AddMedia(mediaType, dataURL, caption)
}

func (s *adminService) RemoveMedia(id string) {
	gallery := s.store.Config().Gallery
	for i, item := range gallery {
		if item.ID == id {
			gallery = append(gallery[:i], gallery[i+1:]...)
			s.store.ApplyConfigPatch(store.ConfigPatch{Gallery: &gallery})
			return
		}
	}
}

func (s *adminService) SetMediaCaption(id, caption string) error {
	gallery := s.store.Config().Gallery
	for i := range gallery {
		if gallery[i].ID == id {
			gallery[i].Caption = caption
			s.store.ApplyConfigPatch(store.ConfigPatch{Gallery: &gallery})
			return nil
		}
	}
	return ErrMediaItemNotFound
}

func checkCapacity(gallery []models.MediaItem, mediaType models.MediaType) error {
	count := 0
	for _, item := range gallery {
		if item.Type == mediaType {
			count++
		}
	}
	if mediaType == models.MediaImage && count >= maxGalleryImages {
		return ErrGalleryImagesFull
	}
	if mediaType == models.MediaVideo && count >= maxGalleryVideos {
		return ErrGalleryVideosFull
	}
	return nil
}
