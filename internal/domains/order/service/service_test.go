package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	storeMocks "digitalpage/infras/objectstore/mocks"
	otelMocks "digitalpage/infras/otel/mocks"
	orderMocks "digitalpage/internal/domains/order/mocks"
	"digitalpage/internal/domains/order/model"
	"digitalpage/internal/domains/order/model/dto"
	"digitalpage/internal/domains/order/repository"
	"digitalpage/internal/domains/order/service"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
)

var orderIDPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func validRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Name:   "Jane",
		Email:  "j@x.com",
		Copies: "2",
		Color:  "color",
		Files: []dto.FileUpload{
			{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("pdf bytes")},
		},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockStore := storeMocks.NewMockStore(ctrl)

	svc := service.New(mockRepo, mockStore, otelMocks.NewOtel())

	t.Run("successful creation", func(t *testing.T) {
		var inserted model.Order

		mockStore.EXPECT().
			Put(gomock.Any(), "a.pdf", "application/pdf", []byte("pdf bytes")).
			Return("uploads/abc/a.pdf", nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order model.Order) error {
				inserted = order

				return nil
			})

		res, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)

		assert.True(t, res.Success)
		assert.True(t, orderIDPattern.MatchString(res.OrderID), "unexpected order id %q", res.OrderID)

		assert.Equal(t, res.OrderID, inserted.OrderID)
		assert.Equal(t, constant.OrderStatusPending, inserted.Status)
		assert.Equal(t, "2", inserted.Copies)
		assert.Equal(t, "color", inserted.Color)
		assert.Equal(t, model.FileRefs{"uploads/abc/a.pdf"}, inserted.Files)
		assert.WithinDuration(t, time.Now().UTC(), inserted.CreatedAt, time.Minute)
	})

	t.Run("defaults applied", func(t *testing.T) {
		req := validRequest()
		req.Copies = ""
		req.Color = ""

		var inserted model.Order

		mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("uploads/def/a.pdf", nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order model.Order) error {
				inserted = order

				return nil
			})

		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, constant.DefaultCopies, inserted.Copies)
		assert.Equal(t, constant.ColorModeBW, inserted.Color)
	})

	t.Run("id collision retried with a fresh id", func(t *testing.T) {
		var ids []string

		mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("uploads/ghi/a.pdf", nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order model.Order) error {
				ids = append(ids, order.OrderID)
				if len(ids) == 1 {
					return fmt.Errorf("%w: %s", repository.ErrDuplicateOrderID, order.OrderID)
				}

				return nil
			}).
			Times(2)

		res, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)

		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
		assert.Equal(t, ids[1], res.OrderID)
	})

	t.Run("retries exhausted surfaces failure", func(t *testing.T) {
		mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("uploads/jkl/a.pdf", nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(repository.ErrDuplicateOrderID).
			Times(constant.MaxIdentifierGenerateAttempts)

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("store failure aborts before any insert", func(t *testing.T) {
		mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("repository error surfaces failure", func(t *testing.T) {
		mockStore.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("uploads/mno/a.pdf", nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestOrderService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockStore := storeMocks.NewMockStore(ctrl)

	svc := service.New(mockRepo, mockStore, otelMocks.NewOtel())

	t.Run("passes through repository order", func(t *testing.T) {
		now := time.Now().UTC()
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return([]model.Order{
				{OrderID: "NEWER111", Status: constant.OrderStatusPending, CreatedAt: now},
				{OrderID: "OLDER222", Status: constant.OrderStatusPrinted, CreatedAt: now.Add(-time.Hour)},
			}, nil)

		res := svc.GetAll(context.Background())

		require.Len(t, res.Orders, 2)
		assert.Equal(t, "NEWER111", res.Orders[0].OrderID)
		assert.Equal(t, "OLDER222", res.Orders[1].OrderID)
	})

	t.Run("fail-open on repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any()).
			Return(nil, errors.New("database down"))

		res := svc.GetAll(context.Background())

		assert.NotNil(t, res.Orders)
		assert.Empty(t, res.Orders)
	})
}

func TestOrderService_MarkPrinted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockStore := storeMocks.NewMockStore(ctrl)

	svc := service.New(mockRepo, mockStore, otelMocks.NewOtel())

	t.Run("marks printed", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "AB12CD34", constant.OrderStatusPrinted).
			Return(true, nil)

		assert.NoError(t, svc.MarkPrinted(context.Background(), "AB12CD34"))
	})

	t.Run("second call still succeeds", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "AB12CD34", constant.OrderStatusPrinted).
			Return(true, nil).
			Times(2)

		assert.NoError(t, svc.MarkPrinted(context.Background(), "AB12CD34"))
		assert.NoError(t, svc.MarkPrinted(context.Background(), "AB12CD34"))
	})

	t.Run("unknown order id", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "MISSING1", constant.OrderStatusPrinted).
			Return(false, nil)

		err := svc.MarkPrinted(context.Background(), "MISSING1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateStatus(gomock.Any(), "AB12CD34", constant.OrderStatusPrinted).
			Return(false, errors.New("database down"))

		err := svc.MarkPrinted(context.Background(), "AB12CD34")
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestOrderService_GetFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockStore := storeMocks.NewMockStore(ctrl)

	svc := service.New(mockRepo, mockStore, otelMocks.NewOtel())

	t.Run("serves local reference bytes", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByOrderID(gomock.Any(), "AB12CD34").
			Return(model.Order{
				OrderID: "AB12CD34",
				Files:   model.FileRefs{"abc-123/a.pdf"},
			}, true, nil)
		mockStore.EXPECT().
			Get(gomock.Any(), "abc-123/a.pdf").
			Return([]byte("pdf bytes"), "application/pdf", nil)

		res, err := svc.GetFile(context.Background(), "AB12CD34", "a.pdf")
		require.NoError(t, err)

		assert.Equal(t, []byte("pdf bytes"), res.Data)
		assert.Equal(t, "application/pdf", res.ContentType)
		assert.Empty(t, res.RedirectURL)
	})

	t.Run("redirects for URL reference", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByOrderID(gomock.Any(), "AB12CD34").
			Return(model.Order{
				OrderID: "AB12CD34",
				Files:   model.FileRefs{"https://blob.example.com/bucket/orders/xyz/a.pdf"},
			}, true, nil)

		res, err := svc.GetFile(context.Background(), "AB12CD34", "a.pdf")
		require.NoError(t, err)

		assert.Equal(t, "https://blob.example.com/bucket/orders/xyz/a.pdf", res.RedirectURL)
		assert.Nil(t, res.Data)
	})

	t.Run("unknown order", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByOrderID(gomock.Any(), "MISSING1").
			Return(model.Order{}, false, nil)

		_, err := svc.GetFile(context.Background(), "MISSING1", "a.pdf")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("file not part of order", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByOrderID(gomock.Any(), "AB12CD34").
			Return(model.Order{
				OrderID: "AB12CD34",
				Files:   model.FileRefs{"abc-123/a.pdf"},
			}, true, nil)

		_, err := svc.GetFile(context.Background(), "AB12CD34", "other.pdf")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
