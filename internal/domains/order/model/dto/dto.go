package dto

import (
	"time"

	"digitalpage/internal/domains/order/model"
	"digitalpage/shared/constant"
)

// FileUpload carries one multipart file part through the intake flow.
type FileUpload struct {
	Name        string `validate:"required"`
	ContentType string
	Data        []byte `validate:"required"`
}

type CreateOrderRequest struct {
	Name   string       `json:"name"   validate:"required,max=100"`
	Email  string       `json:"email"  validate:"required,email,max=100"`
	Phone  string       `json:"phone"  validate:"omitempty,max=20"`
	Copies string       `json:"copies" validate:"omitempty,numeric"`
	Color  string       `json:"color"  validate:"omitempty,oneof=bw color"`
	Notes  string       `json:"notes"  validate:"omitempty,max=1000"`
	Files  []FileUpload `json:"-"      validate:"min=1,dive"`
}

// ToModel builds the persistence record. The caller supplies the generated
// order id and the stored-file references in upload order.
func (c *CreateOrderRequest) ToModel(orderID string, refs []string) model.Order {
	copies := c.Copies
	if copies == "" {
		copies = constant.DefaultCopies
	}

	color := c.Color
	if color == "" {
		color = constant.ColorModeBW
	}

	return model.Order{
		OrderID:   orderID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Copies:    copies,
		Color:     color,
		Notes:     c.Notes,
		Files:     refs,
		Status:    constant.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type OrderResponse struct {
	OrderID   string   `json:"orderId"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Copies    string   `json:"copies"`
	Color     string   `json:"color"`
	Notes     string   `json:"notes,omitempty"`
	Files     []string `json:"files"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.OrderID = model.OrderID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Copies = model.Copies
	r.Color = model.Color
	r.Notes = model.Notes
	r.Files = model.Files
	r.Status = model.Status
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type MarkPrintedResponse struct {
	Success bool `json:"success"`
}

type GetOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order) {
	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}

// FileDownload is the resolved content for one stored order file. RedirectURL
// is set instead of Data when the backing reference is an absolute URL.
type FileDownload struct {
	FileName    string
	ContentType string
	Data        []byte
	RedirectURL string
}
