package identifier

import (
	"math/rand/v2"
	"strings"
)

const (
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	orderIDLength     = 8
	bookingCodeLength = 6
	BookingIDPrefix   = "AAD"
)

// NewOrderID returns an 8-character uppercase alphanumeric order code.
// Uniqueness is not guaranteed here; the orders table unique constraint is
// the authoritative arbiter and callers regenerate on conflict.
func NewOrderID() string {
	return randomCode(orderIDLength)
}

// NewBookingID returns a booking code of the form "AAD" + 6 uppercase
// alphanumeric characters.
func NewBookingID() string {
	return BookingIDPrefix + randomCode(bookingCodeLength)
}

func randomCode(length int) string {
	var sb strings.Builder

	sb.Grow(length)

	for range length {
		sb.WriteByte(charset[rand.IntN(len(charset))])
	}

	return sb.String()
}
