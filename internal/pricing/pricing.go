// Package pricing computes the venue rental total. The base price covers up
// to IncludedGuests people; every guest above that adds a flat surcharge.
package pricing

const (
	IncludedGuests = 20
	MinGuests      = 1
	MaxGuests      = 100
)

// Total returns base when guests is at or below the included baseline, and a
// linear surcharge per extra guest above it. It performs no input validation;
// callers clamp guest counts first.
func Total(guests, base, extraPerGuest int) int {
	extra := guests - IncludedGuests
	if extra < 0 {
		extra = 0
	}
	return base + extra*extraPerGuest
}

// ClampGuests bounds a guest count to the bookable range [1, 100].
func ClampGuests(n int) int {
	if n < MinGuests {
		return MinGuests
	}
	if n > MaxGuests {
		return MaxGuests
	}
	return n
}
