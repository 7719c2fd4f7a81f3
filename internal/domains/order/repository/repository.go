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
	"digitalpage/internal/domains/order/model"
	"digitalpage/shared/constant"
	"digitalpage/shared/logger"
)

// ErrDuplicateOrderID signals that the generated order id lost the uniqueness
// race; the caller regenerates and retries.
var ErrDuplicateOrderID = errors.New("order id already exists")

type Order interface {
	Insert(ctx context.Context, order model.Order) error
	GetAll(ctx context.Context) ([]model.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (model.Order, bool, error)
	UpdateStatus(ctx context.Context, orderID, status string) (bool, error)
}

type repositoryImpl struct {
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, order model.Order) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `INSERT INTO orders (order_id, name, email, phone, copies, color, notes, files, status, created_at)
		VALUES (:order_id, :name, :email, :phone, :copies, :color, :notes, :files, :status, :created_at)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.DB.NamedExecContext(ctx, query, order)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateOrderID, order.OrderID)
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Order, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := `SELECT id, order_id, name, email, phone, copies, color, notes, files, status, created_at
		FROM orders ORDER BY created_at DESC, id DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var orders []model.Order

	err := repo.db.DB.SelectContext(ctx, &orders, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return orders, nil
}

func (repo *repositoryImpl) GetByOrderID(ctx context.Context, orderID string) (model.Order, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByOrderID", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := repo.db.DB.Rebind(`SELECT id, order_id, name, email, phone, copies, color, notes, files, status, created_at
		FROM orders WHERE order_id = ?`)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var orders []model.Order

	err := repo.db.DB.SelectContext(ctx, &orders, query, orderID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Order{}, false, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	if len(orders) == 0 {
		return model.Order{}, false, nil
	}

	return orders[0], true, nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, orderID, status string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdateStatus", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := repo.db.DB.Rebind(`UPDATE orders SET status = ? WHERE order_id = ?`)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.ExecContext(ctx, query, status, orderID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	if affected > 0 {
		return true, nil
	}

	// MySQL reports zero affected rows for a no-op update, so an unchanged
	// status is indistinguishable from a missing row without a lookup.
	return repo.exist(ctx, orderID)
}

func (repo *repositoryImpl) exist(ctx context.Context, orderID string) (bool, error) {
	query := repo.db.DB.Rebind(`SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = ?)`)

	exist := false

	err := repo.db.DB.GetContext(ctx, &exist, query, orderID)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
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
