package model

import "time"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldBookingID    = "booking_id"
	FieldName         = "name"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldAadharNumber = "aadhar_number"
	FieldServiceType  = "service_type"
	FieldDate         = "date"
	FieldTimeSlot     = "time_slot"
	FieldStatus       = "status"
	FieldCreatedAt    = "created_at"
)

// ServiceTypes is the fixed catalog of Aadhaar update services the shop offers.
var ServiceTypes = []string{
	"biometric",
	"mobile",
	"address",
	"name",
	"dob",
	"gender",
	"photo",
}

// TimeSlots is the fixed daily appointment grid. No server-side double-booking
// check exists; two bookings may share a slot.
var TimeSlots = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"12:00 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
	"03:30 PM",
	"04:00 PM",
	"04:30 PM",
	"05:00 PM",
}

type Booking struct {
	ID           int64     `db:"id"`
	BookingID    string    `db:"booking_id"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	AadharNumber string    `db:"aadhar_number"`
	ServiceType  string    `db:"service_type"`
	Date         string    `db:"date"`
	TimeSlot     string    `db:"time_slot"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
