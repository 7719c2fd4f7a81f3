package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"digitalpage/infras/objectstore"
	"digitalpage/infras/otel"
	"digitalpage/internal/domains/order/model"
	"digitalpage/internal/domains/order/model/dto"
	"digitalpage/internal/domains/order/repository"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
	"digitalpage/shared/identifier"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	GetAll(ctx context.Context) dto.GetOrdersResponse
	MarkPrinted(ctx context.Context, orderID string) error
	GetFile(ctx context.Context, orderID, fileName string) (dto.FileDownload, error)
}

type serviceImpl struct {
	repo  repository.Order
	store objectstore.Store
	otel  otel.Otel
}

func New(repo repository.Order, store objectstore.Store, otel otel.Otel) Order {
	return &serviceImpl{
		repo:  repo,
		store: store,
		otel:  otel,
	}
}

// Create stores every uploaded file first, then persists the order record.
// Files go to the object store one at a time, preserving upload order; if any
// upload fails, no order row is written. The identifier collision race is
// resolved here with a bounded regenerate-and-retry loop around the insert.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	refs := make([]string, 0, len(req.Files))

	for _, file := range req.Files {
		ref, storeErr := s.store.Put(ctx, file.Name, file.ContentType, file.Data)
		if storeErr != nil {
			log.Error().Err(storeErr).Str("file", file.Name).Msg("failed to store uploaded file")

			return res, failure.InternalError(fmt.Errorf("upload failed: %w", storeErr))
		}

		refs = append(refs, ref)
	}

	for attempt := 1; attempt <= constant.MaxIdentifierGenerateAttempts; attempt++ {
		order := req.ToModel(identifier.NewOrderID(), refs)

		err = s.repo.Insert(ctx, order)
		if err == nil {
			scope.AddEvent("Order created: " + order.OrderID)

			return dto.CreateOrderResponse{Success: true, OrderID: order.OrderID}, nil
		}

		if !errors.Is(err, repository.ErrDuplicateOrderID) {
			log.Error().Err(err).Msg("failed to create order")

			return res, failure.InternalError(err)
		}

		log.Warn().Str("orderId", order.OrderID).Int("attempt", attempt).Msg("order id collision, regenerating")
	}

	return res, failure.InternalError(fmt.Errorf("could not allocate a unique order id after %d attempts", constant.MaxIdentifierGenerateAttempts))
}

// GetAll returns every order, newest first. Backend failures are logged and
// swallowed so the dashboard always renders; an empty list is the fallback.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetOrdersResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllOrders")
	defer scope.End()

	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list orders, returning empty set")

		res.FromModels(nil)

		return res
	}

	res.FromModels(orders)

	return res
}

// MarkPrinted flips the order to printed. The transition is idempotent:
// printing an already-printed order succeeds without complaint.
func (s *serviceImpl) MarkPrinted(ctx context.Context, orderID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPrinted")
	defer scope.End()
	defer scope.TraceIfError(err)

	found, err := s.repo.UpdateStatus(ctx, orderID, constant.OrderStatusPrinted)
	if err != nil {
		log.Error().Err(err).Str("orderId", orderID).Msg("failed to update order status")

		return failure.InternalError(err)
	}

	if !found {
		return failure.NotFound("order not found")
	}

	scope.AddEvent("Order marked printed: " + orderID)

	return nil
}

// GetFile resolves one of an order's stored files. References recorded as
// absolute URLs come back as a redirect; local references are read from the
// object store and served as bytes.
func (s *serviceImpl) GetFile(ctx context.Context, orderID, fileName string) (res dto.FileDownload, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrderFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, found, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Str("orderId", orderID).Msg("failed to get order for file download")

		return res, failure.InternalError(err)
	}

	if !found {
		return res, failure.NotFound("order not found")
	}

	ref := matchFileRef(order.Files, fileName)
	if ref == constant.Empty {
		return res, failure.NotFound("file not found")
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return dto.FileDownload{FileName: fileName, RedirectURL: ref}, nil
	}

	data, contentType, err := s.store.Get(ctx, ref)
	if err != nil {
		return res, err
	}

	return dto.FileDownload{FileName: fileName, ContentType: contentType, Data: data}, nil
}

// matchFileRef finds the stored reference whose trailing path segment is the
// requested file name.
func matchFileRef(refs model.FileRefs, fileName string) string {
	for _, ref := range refs {
		if ref == fileName || strings.HasSuffix(ref, "/"+fileName) {
			return ref
		}
	}

	return constant.Empty
}
