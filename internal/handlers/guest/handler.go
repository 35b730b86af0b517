package guest

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
	})
}

// CreateGuest registers a guest.
// @Summary Create guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Data[model.Guest]
// @Failure 400 {object} response.Error
// @Router /v1/guests [post]
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Create(ctx, service.CreateInput{Name: req.Name, Email: req.Email, Phone: req.Phone})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, guest)
}

// GetGuests lists guests by name.
// @Summary List guests
// @Tags Guest
// @Produce json
// @Success 200 {object} response.Data[[]model.Guest]
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.List(ctx))
}

// GetGuestByID returns a single guest.
// @Summary Get guest
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[model.Guest]
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [get]
func (handler *Handler) GetGuestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	guest, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, guest)
}
