package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/lib/pq"

	"digitalpage/infras/database"
	"digitalpage/infras/otel"
	"digitalpage/internal/domains/booking/model"
	"digitalpage/shared/constant"
	"digitalpage/shared/logger"
)

// ErrDuplicateBookingID signals that the generated booking id lost the
// uniqueness race; the caller regenerates and retries.
var ErrDuplicateBookingID = errors.New("booking id already exists")

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetAll(ctx context.Context) ([]model.Booking, error)
	CountSlot(ctx context.Context, date, timeSlot string) (int, error)
}

type repositoryImpl struct {
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `INSERT INTO bookings (booking_id, name, phone, email, aadhar_number, service_type, date, time_slot, status, created_at)
		VALUES (:booking_id, :name, :phone, :email, :aadhar_number, :service_type, :date, :time_slot, :status, :created_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.DB.NamedExecContext(ctx, query, booking)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateBookingID, booking.BookingID)
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `SELECT id, booking_id, name, phone, email, aadhar_number, service_type, date, time_slot, status, created_at
		FROM bookings ORDER BY created_at DESC, id DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.DB.SelectContext(ctx, &bookings, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

// CountSlot reports how many bookings already occupy one date and time slot.
// Nothing enforces a limit; the service only logs when a slot fills twice.
func (repo *repositoryImpl) CountSlot(ctx context.Context, date, timeSlot string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.CountSlot", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := repo.db.DB.Rebind(`SELECT COUNT(id) FROM bookings WHERE date = ? AND time_slot = ?`)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.DB.GetContext(ctx, &count, query, date, timeSlot)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == constant.MySQLErrNumDuplicateEntry
	}

	return false
}
