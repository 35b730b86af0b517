package room

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/statistics", handler.GetStatistics)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/quick-actions", handler.GetQuickActions)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
	})
}

// GetRooms lists rooms ordered by number.
// @Summary List rooms
// @Description List rooms, optionally filtered by lifecycle status and a search over number, type, custom label and guest name.
// @Tags Room
// @Produce json
// @Param status query string false "Lifecycle status"
// @Param search query string false "Search text"
// @Success 200 {object} response.Data[[]dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	query := request.URL.Query()
	filter := model.Filter{
		Status: model.Status(query.Get(constant.RequestParamStatus)),
		Search: query.Get(constant.RequestParamSearch),
	}

	rooms, err := handler.service.List(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewRoomResponses(rooms))
}

// GetStatistics returns counts per status and the occupancy rate.
// @Summary Room statistics
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[model.Statistics]
// @Router /v1/rooms/statistics [get]
func (handler *Handler) GetStatistics(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Statistics(ctx))
}

// GetRoomByID returns a single room.
// @Summary Get room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewRoomResponse(room))
}

// GetQuickActions returns the operations offered for the room's current status.
// @Summary Room quick actions
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.QuickActionsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/quick-actions [get]
func (handler *Handler) GetQuickActions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuickActions")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.QuickActionsResponse{
		RoomID:  room.ID,
		Status:  room.Status,
		Actions: handler.service.QuickActionsFor(room),
	})
}

// UpdateStatus sets the lifecycle status of a room, optionally with a custom display overlay.
// @Summary Update room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
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

	room, err := handler.service.SetStatus(ctx, id, req.Status, req.CustomStatus)
	if err == nil && req.ClearCustomStatus && req.CustomStatus == nil {
		room, err = handler.service.ClearCustomStatus(ctx, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str(constant.LogFieldRoomID, id).Msg("failed to update room status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewRoomResponse(room))
}
