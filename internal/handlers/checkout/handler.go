package checkout

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/checkout/model/dto"
	"frontdesk/internal/domains/checkout/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkout
	otel    otel.Otel
}

func New(service service.Checkout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkout", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetState)
		routerGroup.Get("/records", handler.GetRecords)
		routerGroup.Post("/select", handler.SelectReservation)
		routerGroup.Post("/summary", handler.GenerateSummary)
		routerGroup.Post("/invoice", handler.GenerateInvoice)
		routerGroup.Post("/payments", handler.RecordPayment)
		routerGroup.Post("/complete", handler.Complete)
		routerGroup.Post("/cancel", handler.Cancel)
	})
}

// GetState returns the in-flight checkout.
// @Summary Checkout state
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[model.Session]
// @Router /v1/checkout [get]
func (handler *Handler) GetState(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetState")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.State(ctx))
}

// GetRecords returns completed checkouts.
// @Summary Checkout records
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[[]model.Record]
// @Router /v1/checkout/records [get]
func (handler *Handler) GetRecords(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecords")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Records(ctx))
}

// SelectReservation starts a checkout for a checked-in, inspected reservation.
// @Summary Select reservation
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.SelectReservationRequest true "Select Reservation Request"
// @Success 200 {object} response.Data[model.Session]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 412 {object} response.Error
// @Router /v1/checkout/select [post]
func (handler *Handler) SelectReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectReservation")
	defer scope.End()

	req := dto.SelectReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	state, err := handler.service.SelectReservation(ctx, req.ReservationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldReservationID, req.ReservationID).Msg("failed to select reservation for checkout")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, state)
}

// GenerateSummary totals room, minibar and damage charges.
// @Summary Generate summary
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[model.Summary]
// @Failure 409 {object} response.Error
// @Router /v1/checkout/summary [post]
func (handler *Handler) GenerateSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateSummary")
	defer scope.End()

	summary, err := handler.service.GenerateSummary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate checkout summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// GenerateInvoice issues the invoice for the current summary.
// @Summary Generate invoice
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[model.Invoice]
// @Failure 409 {object} response.Error
// @Router /v1/checkout/invoice [post]
func (handler *Handler) GenerateInvoice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvoice")
	defer scope.End()

	invoice, err := handler.service.GenerateInvoice(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, invoice)
}

// RecordPayment applies a payment to the invoice.
// @Summary Record payment
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.RecordPaymentRequest true "Record Payment Request"
// @Success 200 {object} response.Data[model.Session]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/checkout/payments [post]
func (handler *Handler) RecordPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	req := dto.RecordPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	state, err := handler.service.RecordPayment(ctx, req.Amount, req.Method)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, state)
}

// Complete finishes a fully paid checkout and hands the room to housekeeping.
// @Summary Complete checkout
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[model.Record]
// @Failure 409 {object} response.Error
// @Router /v1/checkout/complete [post]
func (handler *Handler) Complete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Complete")
	defer scope.End()

	record, err := handler.service.Complete(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete checkout")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, record)
}

// Cancel discards the in-flight checkout.
// @Summary Cancel checkout
// @Tags Checkout
// @Produce json
// @Success 200 {object} response.Data[model.Session]
// @Router /v1/checkout/cancel [post]
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Cancel(ctx))
}
