package order

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"digitalpage/infras/otel"
	"digitalpage/internal/domains/order/model/dto"
	"digitalpage/internal/domains/order/service"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
	"digitalpage/shared/validator"
	"digitalpage/transport/http/response"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, ownerGuard func(http.Handler) http.Handler) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.With(ownerGuard).Get("/", handler.GetOrders)
		routerGroup.With(ownerGuard).Post("/{id}/print", handler.MarkPrinted)
	})

	router.Get("/files/{orderId}/{filename}", handler.GetFile)
}

// CreateOrder accepts a multipart print order: customer fields plus one or
// more files under the "files" field. At least one file is mandatory.
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CreateOrderRequest{
		Name:   r.FormValue(constant.FormFieldName),
		Email:  r.FormValue(constant.FormFieldEmail),
		Phone:  r.FormValue(constant.FormFieldPhone),
		Copies: r.FormValue(constant.FormFieldCopies),
		Color:  r.FormValue(constant.FormFieldColor),
		Notes:  r.FormValue(constant.FormFieldNotes),
	}

	files, err := collectFiles(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded files")

		response.WithError(w, err)

		return
	}

	// The zero-file check runs before struct validation so callers always
	// see this exact message when they forget the attachments.
	if len(files) == 0 {
		err = failure.BadRequestFromString("No files uploaded")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req.Files = files

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate order request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order created: " + res.OrderID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOrders lists every order for the dashboard, newest first.
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.GetAll(ctx))
}

// MarkPrinted flips an order to printed.
func (handler *Handler) MarkPrinted(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPrinted")
	defer scope.End()

	orderID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkPrinted(ctx, orderID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("orderId", orderID).Msg("failed to mark order printed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.MarkPrintedResponse{Success: true})
}

// GetFile serves one of an order's stored files, either as bytes with an
// attachment disposition or as a redirect when the reference is a URL.
func (handler *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFile")
	defer scope.End()

	orderID := chi.URLParam(r, constant.RequestParamOrderID)
	fileName := chi.URLParam(r, constant.RequestParamFilename)

	res, err := handler.service.GetFile(ctx, orderID, fileName)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("orderId", orderID).Str("file", fileName).Msg("failed to serve order file")

		response.WithError(w, err)

		return
	}

	if res.RedirectURL != constant.Empty {
		http.Redirect(w, r, res.RedirectURL, http.StatusFound)

		return
	}

	contentType := res.ContentType
	if contentType == constant.Empty {
		contentType = constant.ContentTypeOctetStream
	}

	w.Header().Set(constant.RequestHeaderContentType, contentType)
	w.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.FileName))

	if _, err = w.Write(res.Data); err != nil {
		log.Error().Err(err).Msg("failed to write file response")
	}
}

// collectFiles drains every part under the "files" field into memory.
func collectFiles(r *http.Request) ([]dto.FileUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[constant.FormFieldFiles]
	files := make([]dto.FileUpload, 0, len(headers))

	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			return nil, failure.BadRequest(fmt.Errorf("failed to open uploaded file %s: %w", header.Filename, err))
		}

		data, err := io.ReadAll(part)
		part.Close()

		if err != nil {
			return nil, failure.BadRequest(fmt.Errorf("failed to read uploaded file %s: %w", header.Filename, err))
		}

		files = append(files, dto.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get(constant.RequestHeaderContentType),
			Data:        data,
		})
	}

	return files, nil
}
