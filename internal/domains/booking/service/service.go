package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"digitalpage/infras/otel"
	"digitalpage/internal/domains/booking/model/dto"
	"digitalpage/internal/domains/booking/repository"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
	"digitalpage/shared/identifier"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context) dto.GetBookingsResponse
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Create persists a new appointment. Identifier collisions are resolved with
// a bounded regenerate-and-retry loop around the insert; slot occupancy is
// observed but never enforced.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = req.Validate(); err != nil {
		return res, err
	}

	taken, countErr := s.repo.CountSlot(ctx, req.Date, req.TimeSlot)
	if countErr != nil {
		log.Error().Err(countErr).Msg("failed to check slot occupancy")
	} else if taken > 0 {
		log.Warn().
			Str("date", req.Date).
			Str("timeSlot", req.TimeSlot).
			Int("existing", taken).
			Msg("accepting a booking for an already-taken slot")
	}

	for attempt := 1; attempt <= constant.MaxIdentifierGenerateAttempts; attempt++ {
		booking := req.ToModel(identifier.NewBookingID())

		err = s.repo.Insert(ctx, booking)
		if err == nil {
			scope.AddEvent("Booking created: " + booking.BookingID)

			return dto.CreateBookingResponse{Success: true, BookingID: booking.BookingID}, nil
		}

		if !errors.Is(err, repository.ErrDuplicateBookingID) {
			log.Error().Err(err).Msg("failed to create booking")

			return res, failure.InternalError(err)
		}

		log.Warn().Str("bookingId", booking.BookingID).Int("attempt", attempt).Msg("booking id collision, regenerating")
	}

	return res, failure.InternalError(fmt.Errorf("could not allocate a unique booking id after %d attempts", constant.MaxIdentifierGenerateAttempts))
}

// GetAll returns every booking, newest first, with Aadhaar numbers masked.
// Backend failures are logged and swallowed so the dashboard always renders.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings, returning empty set")

		res.FromModels(nil)

		return res
	}

	res.FromModels(bookings)

	return res
}
