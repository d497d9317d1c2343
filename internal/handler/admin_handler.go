package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/flarehaven/venue-booking/internal/dto"
	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/flarehaven/venue-booking/internal/service"
	"github.com/labstack/echo/v4"
)

// Uploaded gallery files are embedded in-memory as data URLs, so keep them small.
const maxUploadBytes = 10 << 20

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, guard echo.MiddlewareFunc) {
	e.POST("/api/admin/login", h.Login)

	g := e.Group("/api/admin", guard)
	g.GET("/bookings", h.ListBookings)
	g.DELETE("/bookings/:id", h.DeleteBooking)
	g.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	g.GET("/config", h.GetConfig)
	g.PATCH("/config", h.UpdateConfig)
	g.POST("/gallery", h.AddMedia)
	g.DELETE("/gallery/:id", h.RemoveMedia)
	g.PATCH("/gallery/:id/caption", h.UpdateCaption)
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings := h.svc.ListBookings()
	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteBooking(c echo.Context) error {
	h.svc.DeleteBooking(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.SetBookingStatus(c.Param("id"), models.BookingStatus(req.Status)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Config())
}

func (h *AdminHandler) UpdateConfig(c echo.Context) error {
	var req dto.UpdateConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	h.svc.UpdateConfig(req.ToPatch())
	return c.JSON(http.StatusOK, h.svc.Config())
}

// AddMedia accepts either a JSON body referencing an external URL or a
// multipart upload whose bytes are embedded as a data URL.
func (h *AdminHandler) AddMedia(c echo.Context) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return h.addMediaFromFile(c)
	}

	var req dto.AddMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}

	item, err := h.svc.AddMedia(models.MediaType(req.Type), req.URL, req.Caption)
	if err != nil {
		return mapGalleryError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) addMediaFromFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read file")
	}

	item, err := h.svc.AddMediaFromFile(data, c.FormValue("caption"))
	if err != nil {
		return mapGalleryError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) RemoveMedia(c echo.Context) error {
	h.svc.RemoveMedia(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) UpdateCaption(c echo.Context) error {
	var req dto.UpdateCaptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.SetMediaCaption(c.Param("id"), req.Caption); err != nil {
		if errors.Is(err, service.ErrMediaItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func mapGalleryError(err error) error {
	switch {
	case errors.Is(err, service.ErrGalleryImagesFull), errors.Is(err, service.ErrGalleryVideosFull):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnsupportedMedia):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
