package reservation

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})
}

// CreateReservation records a new booking.
// @Summary Create reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[model.Reservation]
// @Failure 400 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, service.CreateInput{
		GuestID:     req.GuestID,
		RoomID:      req.RoomID,
		ArrivalAt:   req.ArrivalAt,
		DepartureAt: req.DepartureAt,
		TotalAmount: req.TotalAmount,
		Confirmed:   req.Confirmed,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// GetReservations lists reservations.
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param room_id query string false "Room ID"
// @Param status query string false "Reservation status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[gDto.Page[model.Reservation]]
// @Failure 400 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	query := request.URL.Query()
	status := model.Status(query.Get(constant.RequestParamStatus))

	if err := validator.ValidateVar(constant.RequestParamStatus, status, "omitempty,enum"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid reservation status filter")

		response.WithError(writer, err)

		return
	}

	reservations := handler.service.List(ctx, service.ListFilter{
		RoomID: query.Get(constant.RequestParamRoom),
		Status: status,
	})

	params := gDto.QueryParams{}
	params.FromRequest(request)

	response.WithJSON(writer, http.StatusOK, gDto.Paginate(reservations, params))
}

// GetReservationByID returns a single reservation.
// @Summary Get reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	reservation, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// UpdateStatus moves a reservation along its lifecycle.
// @Summary Update reservation status
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/status [patch]
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	reservation, err := handler.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldReservationID, id).Msg("failed to update reservation status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// CheckIn checks the guest in, which occupies the room.
// @Summary Check in
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/check-in [post]
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	reservation, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldReservationID, id).Msg("failed to check in")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// Cancel cancels a reservation that has not been checked in.
// @Summary Cancel reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	reservation, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldReservationID, id).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}
