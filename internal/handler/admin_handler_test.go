package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flarehaven/venue-booking/internal/dto"
	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/flarehaven/venue-booking/internal/service"
	"github.com/flarehaven/venue-booking/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock AdminService ---

type mockAdminService struct {
	loginFn      func(username, password string) (string, error)
	listFn       func() []models.Booking
	deleteFn     func(id string)
	setStatusFn  func(id string, status models.BookingStatus) error
	configFn     func() models.SiteConfig
	updateFn     func(patch store.ConfigPatch)
	addMediaFn   func(mediaType models.MediaType, url, caption string) (models.MediaItem, error)
	addFileFn    func(data []byte, caption string) (models.MediaItem, error)
	removeFn     func(id string)
	setCaptionFn func(id, caption string) error
}

func (m *mockAdminService) Login(username, password string) (string, error) {
	return m.loginFn(username, password)
}
func (m *mockAdminService) ListBookings() []models.Booking { return m.listFn() }

func (m *mockAdminService) DeleteBooking(id string) { m.deleteFn(id) }
func (m *mockAdminService) SetBookingStatus(id string, status models.BookingStatus) error {
	return m.setStatusFn(id, status)
}
func (m *mockAdminService) Config() models.SiteConfig { return m.configFn() }

func (m *mockAdminService) UpdateConfig(patch store.ConfigPatch) { m.updateFn(patch) }
func (m *mockAdminService) AddMedia(mediaType models.MediaType, url, caption string) (models.MediaItem, error) {
	return m.addMediaFn(mediaType, url, caption)
}
func (m *mockAdminService) AddMediaFromFile(data []byte, caption string) (models.MediaItem, error) {
	return m.addFileFn(data, caption)
}
func (m *mockAdminService) RemoveMedia(id string) { m.removeFn(id) }
func (m *mockAdminService) SetMediaCaption(id, caption string) error {
	return m.setCaptionFn(id, caption)
}

// --- Tests ---

func TestLogin_Handler_Success(t *testing.T) {
	svc := &mockAdminService{
		loginFn: func(username, password string) (string, error) {
			return "token-123", nil
		},
	}

	e := echo.New()
	body := `{"username":"199107747","password":"Kheslaonda"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc)
	err := h.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
}

func TestLogin_Handler_BadCredentials(t *testing.T) {
	svc := &mockAdminService{
		loginFn: func(username, password string) (string, error) {
			return "", service.ErrBadCredentials
		},
	}

	e := echo.New()
	body := `{"username":"199107747","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc)
	err := h.Login(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestListBookings_Handler(t *testing.T) {
	svc := &mockAdminService{
		listFn: func() []models.Booking {
			return []models.Booking{
				{ID: "1", Day: 5, Status: models.StatusConfirmed},
				{ID: "2", Day: 15, Status: models.StatusPending},
			}
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc)
	err := h.ListBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.BookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, 5, resp[0].Day)
}

func TestDeleteBooking_Handler(t *testing.T) {
	var deleted string
	svc := &mockAdminService{
		deleteFn: func(id string) { deleted = id },
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/bookings/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	h := NewAdminHandler(svc)
	err := h.DeleteBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "42", deleted)
}

func TestUpdateBookingStatus_Handler(t *testing.T) {
	var gotID string
	var gotStatus models.BookingStatus
	svc := &mockAdminService{
		setStatusFn: func(id string, status models.BookingStatus) error {
			gotID, gotStatus = id, status
			return nil
		},
	}

	e := echo.New()
	body := `{"status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/2/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	h := NewAdminHandler(svc)
	err := h.UpdateBookingStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", gotID)
	assert.Equal(t, models.StatusConfirmed, gotStatus)
}

func TestUpdateBookingStatus_Handler_Invalid(t *testing.T) {
	svc := &mockAdminService{
		setStatusFn: func(id string, status models.BookingStatus) error {
			return service.ErrInvalidStatus
		},
	}

	e := echo.New()
	body := `{"status":"cancelled"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/2/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	h := NewAdminHandler(svc)
	err := h.UpdateBookingStatus(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateConfig_Handler(t *testing.T) {
	var gotPatch store.ConfigPatch
	svc := &mockAdminService{
		updateFn: func(patch store.ConfigPatch) { gotPatch = patch },
		configFn: func() models.SiteConfig { return models.DefaultSiteConfig() },
	}

	e := echo.New()
	body := `{"title":"Nuevo Salón","price_base":120000}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/config", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc)
	err := h.UpdateConfig(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, gotPatch.Title)
	assert.Equal(t, "Nuevo Salón", *gotPatch.Title)
	assert.NotNil(t, gotPatch.PriceBase)
	assert.Equal(t, 120000, *gotPatch.PriceBase)
	assert.Nil(t, gotPatch.Description)
	assert.Nil(t, gotPatch.Gallery)
}

func TestAddMedia_Handler_URL(t *testing.T) {
	svc := &mockAdminService{
		addMediaFn: func(mediaType models.MediaType, url, caption string) (models.MediaItem, error) {
			return models.MediaItem{ID: "m1", Type: mediaType, URL: url, Caption: caption}, nil
		},
	}

	e := echo.New()
	body := `{"type":"image","url":"https://example.com/x.jpg","caption":"Terraza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc)
	err := h.AddMedia(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var item models.MediaItem
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "m1", item.ID)
	assert.Equal(t, models.MediaImage, item.Type)
}

func TestAddMedia_Handler_MissingURL(t *testing.T) {
	e := echo.New()
	body := `{"type":"image","caption":"sin url"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(&mockAdminService{})
	err := h.AddMedia(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAddMedia_Handler_GalleryFull(t *testing.T) {
	svc := &mockAdminService{
		addMediaFn: func(mediaType models.MediaType, url, caption string) (models.MediaItem, error) {
			return models.MediaItem{}, service.ErrGalleryImagesFull
		},
	}

	e := echo.New()
	body := `{"type":"image","url":"https://example.com/x.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/gallery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAdminHandler(svc)
	err := h.AddMedia(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestUpdateCaption_Handler_NotFound(t *testing.T) {
	svc := &mockAdminService{
		setCaptionFn: func(id, caption string) error {
			return service.ErrMediaItemNotFound
		},
	}

	e := echo.New()
	body := `{"caption":"x"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/gallery/zz/caption", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("zz")

	h := NewAdminHandler(svc)
	err := h.UpdateCaption(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
