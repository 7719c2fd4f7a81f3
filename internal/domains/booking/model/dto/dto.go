package dto

import (
	"slices"
	"time"

	"digitalpage/internal/domains/booking/model"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
)

type CreateBookingRequest struct {
	Name         string `json:"name"         validate:"required,max=100"`
	Phone        string `json:"phone"        validate:"required,max=20"`
	Email        string `json:"email"        validate:"omitempty,email,max=100"`
	AadharNumber string `json:"aadharNumber" validate:"required,len=12,numeric"`
	ServiceType  string `json:"serviceType"  validate:"required"`
	Date         string `json:"date"         validate:"required,futuredate"`
	TimeSlot     string `json:"timeSlot"     validate:"required"`
}

// Validate covers the catalog checks the struct tags cannot express: the
// service type and time slot must come from the fixed shop catalogs.
func (c *CreateBookingRequest) Validate() error {
	if !slices.Contains(model.ServiceTypes, c.ServiceType) {
		return failure.BadRequestFromString("serviceType must be one of the offered services")
	}

	if !slices.Contains(model.TimeSlots, c.TimeSlot) {
		return failure.BadRequestFromString("timeSlot must be one of the available slots")
	}

	return nil
}

// ToModel builds the persistence record around the generated booking id.
func (c *CreateBookingRequest) ToModel(bookingID string) model.Booking {
	return model.Booking{
		BookingID:    bookingID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		AadharNumber: c.AadharNumber,
		ServiceType:  c.ServiceType,
		Date:         c.Date,
		TimeSlot:     c.TimeSlot,
		Status:       constant.BookingStatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}
}

type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
}

type BookingResponse struct {
	BookingID    string `json:"bookingId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	AadharNumber string `json:"aadharNumber"`
	ServiceType  string `json:"serviceType"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.BookingID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.AadharNumber = MaskAadhar(model.AadharNumber)
	r.ServiceType = model.ServiceType
	r.Date = model.Date
	r.TimeSlot = model.TimeSlot
	r.Status = model.Status
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// MaskAadhar hides all but the last four digits of an Aadhaar number.
func MaskAadhar(number string) string {
	const visible = 4

	if len(number) <= visible {
		return number
	}

	masked := make([]byte, len(number))
	for i := range masked {
		masked[i] = 'X'
	}

	copy(masked[len(number)-visible:], number[len(number)-visible:])

	return string(masked)
}
