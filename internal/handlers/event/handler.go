package event

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/event/model"
	"frontdesk/internal/domains/event/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	bus  service.Bus
	otel otel.Otel
}

func New(bus service.Bus, otel otel.Otel) Handler {
	return Handler{
		bus:  bus,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/events", handler.GetHistory)
}

// GetHistory pages through the retained events, oldest first unless sort_dir=desc,
// optionally narrowed to one type.
// @Summary Event history
// @Tags Event
// @Produce json
// @Param type query string false "Event type"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[gDto.Page[model.Event]]
// @Router /v1/events [get]
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	query := gDto.QueryParams{}
	query.FromRequest(request)

	history := handler.bus.History()

	eventType := model.Type(request.URL.Query().Get(constant.RequestParamType))
	if eventType != "" {
		filtered := make([]model.Event, 0, len(history))
		for _, evt := range history {
			if evt.Type == eventType {
				filtered = append(filtered, evt)
			}
		}

		history = filtered
	}

	response.WithJSON(writer, http.StatusOK, gDto.Paginate(history, query))
}
