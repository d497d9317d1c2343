package service

import (
	"testing"
	"time"

	"github.com/flarehaven/venue-booking/internal/models"
	"github.com/flarehaven/venue-booking/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Publisher ---

type mockPublisher struct {
	published []string
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.published = append(m.published, routingKey)
	return nil
}

func validDraft() BookingDraft {
	return BookingDraft{Name: "Ana Soto", Phone: "911111111", Guests: 30, Day: 8}
}

func TestCreateBooking_Success(t *testing.T) {
	st := store.New()
	pub := &mockPublisher{}
	svc := NewBookingService(st, pub, "934423169")

	booking, transfer, err := svc.CreateBooking(validDraft())

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, 30, booking.Guests)
	// base 100000 + 10 extra guests * 5000
	assert.Equal(t, 150000, booking.Total)
	assert.Equal(t, 150000, transfer.Amount)
	assert.Contains(t, transfer.WhatsAppURL, "https://wa.me/934423169?text=")
	assert.Equal(t, []string{"booking.created"}, pub.published)
	assert.Len(t, st.Bookings(), 3)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	svc := NewBookingService(store.New(), nil, "934423169")

	for _, draft := range []BookingDraft{
		{Phone: "911111111", Guests: 30, Day: 8},
		{Name: "Ana", Guests: 30, Day: 8},
		{Name: "Ana", Phone: "911111111", Day: 8},
		{Name: "Ana", Phone: "911111111", Guests: 30},
	} {
		_, _, err := svc.CreateBooking(draft)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestCreateBooking_InvalidDay(t *testing.T) {
	svc := NewBookingService(store.New(), nil, "934423169")

	draft := validDraft()
	draft.Day = 32
	_, _, err := svc.CreateBooking(draft)
	assert.ErrorIs(t, err, ErrInvalidDay)

	draft.Day = -3
	_, _, err = svc.CreateBooking(draft)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestCreateBooking_BlockedDay(t *testing.T) {
	st := store.New()
	svc := NewBookingService(st, nil, "934423169")

	// Day 5 is taken by a seed booking; pending day 15 blocks too.
	for _, day := range []int{5, 15} {
		draft := validDraft()
		draft.Day = day
		_, _, err := svc.CreateBooking(draft)
		assert.ErrorIs(t, err, ErrDayUnavailable)
	}
	assert.Len(t, st.Bookings(), 2)
}

func TestCreateBooking_ClampsGuests(t *testing.T) {
	st := store.New()
	svc := NewBookingService(st, nil, "934423169")

	draft := validDraft()
	draft.Guests = 500
	booking, _, err := svc.CreateBooking(draft)

	require.NoError(t, err)
	assert.Equal(t, 100, booking.Guests)
	assert.Equal(t, 500000, booking.Total)
}

func TestQuote(t *testing.T) {
	svc := NewBookingService(store.New(), nil, "934423169")

	q := svc.Quote(20)
	assert.Equal(t, 0, q.ExtraGuests)
	assert.Equal(t, 100000, q.Total)

	q = svc.Quote(50)
	assert.Equal(t, 30, q.ExtraGuests)
	assert.Equal(t, 250000, q.Total)

	// Out-of-range input is clamped before quoting.
	q = svc.Quote(0)
	assert.Equal(t, 1, q.Guests)
	assert.Equal(t, 100000, q.Total)
}

func TestCalendarGrid_ReflectsBookings(t *testing.T) {
	svc := NewBookingService(store.New(), nil, "934423169")

	days := svc.CalendarGrid(time.February, 2024)

	assert.Len(t, days, 29)
	assert.True(t, days[4].Blocked, "day 5 is booked")
	assert.True(t, days[14].Blocked, "day 15 is booked")
	assert.False(t, days[5].Blocked, "day 6 is free")
}
