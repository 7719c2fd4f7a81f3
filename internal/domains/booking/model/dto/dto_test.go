package dto_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"digitalpage/internal/domains/booking/model"
	"digitalpage/internal/domains/booking/model/dto"
	"digitalpage/shared/constant"
	"digitalpage/shared/validator"
)

// nextOpenDay returns a date string far enough in the future to satisfy the
// futuredate rule, skipping Sundays.
func nextOpenDay() string {
	day := time.Now().AddDate(0, 0, 7)
	if day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}

	return day.Format("2006-01-02")
}

func validCreateBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Name:         "Ravi",
		Phone:        "9876543210",
		Email:        "ravi@example.com",
		AadharNumber: "123412341234",
		ServiceType:  "biometric",
		Date:         nextOpenDay(),
		TimeSlot:     "10:00 AM",
	}
}

func TestCreateBookingRequest_StructValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateBookingRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(_ *dto.CreateBookingRequest) {},
			wantErr: false,
		},
		{
			name: "missing name",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Name = ""
			},
			wantErr: true,
		},
		{
			name: "missing phone",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Phone = ""
			},
			wantErr: true,
		},
		{
			name: "email is optional",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Email = ""
			},
			wantErr: false,
		},
		{
			name: "malformed email",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Email = "not-an-email"
			},
			wantErr: true,
		},
		{
			name: "aadhaar too short",
			mutate: func(req *dto.CreateBookingRequest) {
				req.AadharNumber = "12341234123"
			},
			wantErr: true,
		},
		{
			name: "aadhaar with letters",
			mutate: func(req *dto.CreateBookingRequest) {
				req.AadharNumber = "12341234123A"
			},
			wantErr: true,
		},
		{
			name: "date not a calendar date",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Date = "tomorrow"
			},
			wantErr: true,
		},
		{
			name: "date in the past",
			mutate: func(req *dto.CreateBookingRequest) {
				req.Date = "2020-01-06"
			},
			wantErr: true,
		},
		{
			name: "date on a sunday",
			mutate: func(req *dto.CreateBookingRequest) {
				day := time.Now().AddDate(0, 0, 7)
				for day.Weekday() != time.Sunday {
					day = day.AddDate(0, 0, 1)
				}
				req.Date = day.Format("2006-01-02")
			},
			wantErr: true,
		},
		{
			name: "missing time slot",
			mutate: func(req *dto.CreateBookingRequest) {
				req.TimeSlot = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateBookingRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookingRequest_CatalogValidation(t *testing.T) {
	t.Run("every catalog entry accepted", func(t *testing.T) {
		for _, serviceType := range model.ServiceTypes {
			req := validCreateBookingRequest()
			req.ServiceType = serviceType

			assert.NoError(t, req.Validate(), "service type %q", serviceType)
		}

		for _, slot := range model.TimeSlots {
			req := validCreateBookingRequest()
			req.TimeSlot = slot

			assert.NoError(t, req.Validate(), "time slot %q", slot)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		req := validCreateBookingRequest()
		req.ServiceType = "tarot"

		assert.Error(t, req.Validate())
	})

	t.Run("unknown time slot", func(t *testing.T) {
		req := validCreateBookingRequest()
		req.TimeSlot = "01:00 PM"

		assert.Error(t, req.Validate())
	})
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := validCreateBookingRequest()

	booking := req.ToModel("AADX1Y2Z3")

	assert.Equal(t, "AADX1Y2Z3", booking.BookingID)
	assert.Equal(t, req.Name, booking.Name)
	assert.Equal(t, req.AadharNumber, booking.AadharNumber)
	assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
	assert.WithinDuration(t, time.Now().UTC(), booking.CreatedAt, time.Minute)
}

func TestMaskAadhar(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "123412341234", want: "XXXXXXXX1234"},
		{in: "1234", want: "1234"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("masks %q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, dto.MaskAadhar(tt.in))
		})
	}
}
