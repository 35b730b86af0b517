package inspection

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/inspection/model"
	"frontdesk/internal/domains/inspection/model/dto"
	"frontdesk/internal/domains/inspection/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inspection
	otel    otel.Otel
}

func New(service service.Inspection, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inspections", func(routerGroup chi.Router) {
		routerGroup.Get("/catalog", handler.GetCatalog)
		routerGroup.Post("/{roomId}", handler.BeginInspection)
		routerGroup.Get("/{roomId}", handler.GetDraft)
		routerGroup.Get("/{roomId}/history", handler.GetHistory)
		routerGroup.Get("/{roomId}/readiness", handler.GetReadiness)
		routerGroup.Post("/{roomId}/consumptions", handler.AddConsumption)
		routerGroup.Delete("/{roomId}/consumptions/{lineId}", handler.RemoveConsumption)
		routerGroup.Post("/{roomId}/damages", handler.AddDamage)
		routerGroup.Delete("/{roomId}/damages/{lineId}", handler.RemoveDamage)
		routerGroup.Post("/{roomId}/submit", handler.SubmitInspection)
	})
}

// respond writes the draft or the error the ledger returned for it.
func (handler *Handler) respond(writer http.ResponseWriter, request *http.Request, scope otel.Scope, record model.Record, err error, msg string) {
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldRoomID, chi.URLParam(request, constant.RequestParamRoomID)).Msg(msg)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, record)
}

// GetCatalog returns the minibar products and damage items that can be charged.
// @Summary Inspection catalog
// @Tags Inspection
// @Produce json
// @Success 200 {object} response.Data[dto.CatalogResponse]
// @Router /v1/inspections/catalog [get]
func (handler *Handler) GetCatalog(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalog")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.CatalogResponse{
		Products:    handler.service.Products(),
		DamageItems: handler.service.DamageItems(),
	})
}

// BeginInspection opens a draft for the room. Without a reservation a walk-in id is assigned.
// @Summary Begin inspection
// @Tags Inspection
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param request body dto.BeginInspectionRequest false "Begin Inspection Request"
// @Success 200 {object} response.Data[model.Record]
// @Failure 400 {object} response.Error
// @Router /v1/inspections/{roomId} [post]
func (handler *Handler) BeginInspection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BeginInspection")
	defer scope.End()

	req := dto.BeginInspectionRequest{}

	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	record, err := handler.service.Begin(ctx, chi.URLParam(request, constant.RequestParamRoomID), req.ReservationID)
	handler.respond(writer, request, scope, record, err, "failed to begin inspection")
}

// GetDraft returns the open inspection of a room.
// @Summary Get inspection draft
// @Tags Inspection
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Data[model.Record]
// @Failure 404 {object} response.Error
// @Router /v1/inspections/{roomId} [get]
func (handler *Handler) GetDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	record, err := handler.service.Draft(ctx, chi.URLParam(request, constant.RequestParamRoomID))
	handler.respond(writer, request, scope, record, err, "failed to get inspection draft")
}

// GetHistory returns the submitted inspections of a room, oldest first.
// @Summary Inspection history
// @Tags Inspection
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Data[[]model.Record]
// @Router /v1/inspections/{roomId}/history [get]
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.History(ctx, chi.URLParam(request, constant.RequestParamRoomID)))
}

// GetReadiness reports whether the room can be checked out and the charges recorded for it.
// @Summary Checkout readiness
// @Tags Inspection
// @Produce json
// @Param roomId path string true "Room ID"
// @Param reservation_id query string false "Reservation ID"
// @Success 200 {object} response.Data[model.Readiness]
// @Failure 400 {object} response.Error
// @Router /v1/inspections/{roomId}/readiness [get]
func (handler *Handler) GetReadiness(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReadiness")
	defer scope.End()

	roomID := chi.URLParam(request, constant.RequestParamRoomID)

	readiness, err := handler.service.CheckoutReadiness(ctx, roomID, request.URL.Query().Get(constant.RequestParamReservation))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldRoomID, roomID).Msg("failed to compute checkout readiness")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, readiness)
}

// AddConsumption adds a minibar line to the open inspection.
// @Summary Add consumption
// @Tags Inspection
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param request body dto.AddConsumptionRequest true "Add Consumption Request"
// @Success 200 {object} response.Data[model.Record]
// @Failure 400 {object} response.Error
// @Router /v1/inspections/{roomId}/consumptions [post]
func (handler *Handler) AddConsumption(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddConsumption")
	defer scope.End()

	req := dto.AddConsumptionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	record, err := handler.service.AddConsumption(ctx, chi.URLParam(request, constant.RequestParamRoomID), req.ProductID, req.Quantity)
	handler.respond(writer, request, scope, record, err, "failed to add consumption")
}

// RemoveConsumption drops a minibar line from the open inspection.
// @Summary Remove consumption
// @Tags Inspection
// @Produce json
// @Param roomId path string true "Room ID"
// @Param lineId path string true "Line ID"
// @Success 200 {object} response.Data[model.Record]
// @Failure 404 {object} response.Error
// @Router /v1/inspections/{roomId}/consumptions/{lineId} [delete]
func (handler *Handler) RemoveConsumption(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveConsumption")
	defer scope.End()

	record, err := handler.service.RemoveConsumption(ctx,
		chi.URLParam(request, constant.RequestParamRoomID),
		chi.URLParam(request, constant.RequestParamLineID),
	)
	handler.respond(writer, request, scope, record, err, "failed to remove consumption")
}

// AddDamage adds a damage line to the open inspection.
// @Summary Add damage
// @Tags Inspection
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param request body dto.AddDamageRequest true "Add Damage Request"
// @Success 200 {object} response.Data[model.Record]
// @Failure 400 {object} response.Error
// @Router /v1/inspections/{roomId}/damages [post]
func (handler *Handler) AddDamage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddDamage")
	defer scope.End()

	req := dto.AddDamageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	record, err := handler.service.AddDamage(ctx, chi.URLParam(request, constant.RequestParamRoomID), req.ItemID, req.Quantity, req.Notes)
	handler.respond(writer, request, scope, record, err, "failed to add damage")
}

// RemoveDamage drops a damage line from the open inspection.
// @Summary Remove damage
// @Tags Inspection
// @Produce json
// @Param roomId path string true "Room ID"
// @Param lineId path string true "Line ID"
// @Success 200 {object} response.Data[model.Record]
// @Failure 404 {object} response.Error
// @Router /v1/inspections/{roomId}/damages/{lineId} [delete]
func (handler *Handler) RemoveDamage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveDamage")
	defer scope.End()

	record, err := handler.service.RemoveDamage(ctx,
		chi.URLParam(request, constant.RequestParamRoomID),
		chi.URLParam(request, constant.RequestParamLineID),
	)
	handler.respond(writer, request, scope, record, err, "failed to remove damage")
}

// SubmitInspection completes the open inspection and publishes its charges.
// @Summary Submit inspection
// @Tags Inspection
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Data[model.Record]
// @Failure 400 {object} response.Error
// @Router /v1/inspections/{roomId}/submit [post]
func (handler *Handler) SubmitInspection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitInspection")
	defer scope.End()

	record, err := handler.service.Submit(ctx, chi.URLParam(request, constant.RequestParamRoomID))
	handler.respond(writer, request, scope, record, err, "failed to submit inspection")
}
