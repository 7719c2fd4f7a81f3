package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digitalpage/internal/domains/order/model/dto"
	"digitalpage/shared/validator"
)

func validCreateOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Name:  "Jane",
		Email: "j@x.com",
		Files: []dto.FileUpload{
			{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("x")},
		},
	}
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateOrderRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(_ *dto.CreateOrderRequest) {},
			wantErr: false,
		},
		{
			name: "missing name",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Name = ""
			},
			wantErr: true,
		},
		{
			name: "missing email",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Email = ""
			},
			wantErr: true,
		},
		{
			name: "malformed email",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Email = "not-an-email"
			},
			wantErr: true,
		},
		{
			name: "no files",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Files = nil
			},
			wantErr: true,
		},
		{
			name: "non-numeric copies",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Copies = "two"
			},
			wantErr: true,
		},
		{
			name: "invalid color mode",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Color = "sepia"
			},
			wantErr: true,
		},
		{
			name: "optional fields accepted",
			mutate: func(req *dto.CreateOrderRequest) {
				req.Phone = "9876543210"
				req.Copies = "3"
				req.Color = "color"
				req.Notes = "spiral binding please"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateOrderRequest()
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

func TestCreateOrderRequest_ToModel(t *testing.T) {
	req := validCreateOrderRequest()

	order := req.ToModel("AB12CD34", []string{"abc/a.pdf", "def/b.pdf"})

	assert.Equal(t, "AB12CD34", order.OrderID)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "1", order.Copies)
	assert.Equal(t, "bw", order.Color)
	assert.Equal(t, []string{"abc/a.pdf", "def/b.pdf"}, []string(order.Files))
	assert.False(t, order.CreatedAt.IsZero())
}
