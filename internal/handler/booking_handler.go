package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/flarehaven/venue-booking/internal/dto"
	"github.com/flarehaven/venue-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc         service.BookingService
	pingMessage string
}

func NewBookingHandler(svc service.BookingService, pingMessage string) *BookingHandler {
	return &BookingHandler{svc: svc, pingMessage: pingMessage}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/ping", h.Ping)
	api.GET("/demo", h.Demo)
	api.GET("/site", h.GetSite)
	api.GET("/calendar", h.GetCalendar)
	api.GET("/quote", h.GetQuote)
	api.POST("/bookings", h.CreateBooking)
}

func (h *BookingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: h.pingMessage})
}

func (h *BookingHandler) Demo(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello from Express server"})
}

func (h *BookingHandler) GetSite(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SiteConfig())
}

func (h *BookingHandler) GetCalendar(c echo.Context) error {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if raw := c.QueryParam("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, "month must be between 1 and 12")
		}
		month = m
	}
	if raw := c.QueryParam("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = y
	}

	days := h.svc.CalendarGrid(time.Month(month), year)
	return c.JSON(http.StatusOK, dto.CalendarResponse{Month: month, Year: year, Days: days})
}

func (h *BookingHandler) GetQuote(c echo.Context) error {
	guests, err := strconv.Atoi(c.QueryParam("guests"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "guests query parameter is required")
	}

	q := h.svc.Quote(guests)
	return c.JSON(http.StatusOK, dto.QuoteResponse{
		Guests:      q.Guests,
		ExtraGuests: q.ExtraGuests,
		PriceBase:   q.PriceBase,
		PriceExtra:  q.PriceExtra,
		Total:       q.Total,
	})
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, transfer, err := h.svc.CreateBooking(service.BookingDraft{
		Name:   req.Name,
		Phone:  req.Phone,
		Guests: req.Guests,
		Day:    req.Day,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidDay):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDayUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Booking: dto.ToBookingResponse(booking),
		Transfer: dto.TransferResponse{
			TransferInfo: transfer.TransferInfo,
			Amount:       transfer.Amount,
			WhatsAppURL:  transfer.WhatsAppURL,
		},
	})
}
