package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
)

// Valid reports whether s is one of the two statuses a booking may hold.
func (s BookingStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Booking struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Guests    int           `json:"guests"`
	Day       int           `json:"day"`
	Status    BookingStatus `json:"status"`
	Total     int           `json:"total"`
	CreatedAt time.Time     `json:"created_at"`
}

// SeedBookings returns the two sample bookings every fresh store starts with.
// Totals are fixed sample values, not recomputed from the pricing formula.
func SeedBookings() []Booking {
	now := time.Now()
	return []Booking{
		{
			ID:        "1",
			Name:      "Juan Pérez",
			Phone:     "912345678",
			Guests:    20,
			Day:       5,
			Status:    StatusConfirmed,
			Total:     100000,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Maria Rodriguez",
			Phone:     "987654321",
			Guests:    50,
			Day:       15,
			Status:    StatusPending,
			Total:     150000,
			CreatedAt: now,
		},
	}
}
