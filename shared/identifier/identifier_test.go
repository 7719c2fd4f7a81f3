package identifier_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"digitalpage/shared/identifier"
)

var (
	orderIDPattern   = regexp.MustCompile(`^[A-Z0-9]{8}$`)
	bookingIDPattern = regexp.MustCompile(`^AAD[A-Z0-9]{6}$`)
)

func TestNewOrderID_Format(t *testing.T) {
	for range 1000 {
		id := identifier.NewOrderID()

		assert.True(t, orderIDPattern.MatchString(id), "unexpected order id %q", id)
	}
}

func TestNewBookingID_Format(t *testing.T) {
	for range 1000 {
		id := identifier.NewBookingID()

		assert.True(t, bookingIDPattern.MatchString(id), "unexpected booking id %q", id)
	}
}

func TestNewOrderID_NotConstant(t *testing.T) {
	seen := map[string]bool{}

	for range 100 {
		seen[identifier.NewOrderID()] = true
	}

	// Collisions are possible but a hundred identical draws would mean a
	// broken random source.
	assert.Greater(t, len(seen), 1)
}
