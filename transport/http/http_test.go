package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	checkoutService "frontdesk/internal/domains/checkout/service"
	"frontdesk/internal/domains/event/relay"
	eventService "frontdesk/internal/domains/event/service"
	guestService "frontdesk/internal/domains/guest/service"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	inspectionService "frontdesk/internal/domains/inspection/service"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	checkoutHandler "frontdesk/internal/handlers/checkout"
	eventHandler "frontdesk/internal/handlers/event"
	guestHandler "frontdesk/internal/handlers/guest"
	housekeepingHandler "frontdesk/internal/handlers/housekeeping"
	inspectionHandler "frontdesk/internal/handlers/inspection"
	reservationHandler "frontdesk/internal/handlers/reservation"
	roomHandler "frontdesk/internal/handlers/room"
	transportHTTP "frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type client struct {
	t      *testing.T
	server *transportHTTP.HTTP
}

func newClient(t *testing.T) client {
	t.Helper()

	cfg := config.Default()
	otel := otelMocks.NewOtel()
	bus := eventService.New(cfg, otel)

	guests := guestService.New(otel)
	rooms := roomService.New(bus, guests, otel)
	rooms.Seed(
		roomModel.Room{ID: "101", Floor: 1, Type: roomModel.RoomType{ID: "dlx", Name: "Deluxe", BaseRate: 1500}},
		roomModel.Room{ID: "102", Floor: 1, Type: roomModel.RoomType{ID: "std", Name: "Standard", BaseRate: 800}},
	)
	housekeeping := housekeepingService.New(cfg, bus, rooms, otel)
	reservations := reservationService.New(bus, otel)
	inspections := inspectionService.New(bus, otel)
	checkout := checkoutService.New(cfg, inspections, housekeeping, reservations, bus, otel)

	t.Cleanup(func() {
		reservations.Close()
		housekeeping.Close()
		rooms.Close()
	})

	r := router.New(router.DomainHandlers{
		Room:         roomHandler.New(rooms, otel),
		Reservation:  reservationHandler.New(reservations, otel),
		Inspection:   inspectionHandler.New(inspections, otel),
		Housekeeping: housekeepingHandler.New(housekeeping, otel),
		Checkout:     checkoutHandler.New(checkout, otel),
		Guest:        guestHandler.New(guests, otel),
		Event:        eventHandler.New(bus, otel),
	}, middleware.NewAppMiddleware(otel, cfg, nil))

	return client{t: t, server: transportHTTP.New(cfg, r, relay.Provide(cfg, bus), otel)}
}

func (c client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&payload).Encode(body))
	}

	recorder := httptest.NewRecorder()
	c.server.ServeHTTP(recorder, httptest.NewRequest(method, path, &payload))

	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var body envelope[T]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body), recorder.Body.String())

	return body
}

type idResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type page[T any] struct {
	Items      []T `json:"items"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

func TestHTTP_Health(t *testing.T) {
	c := newClient(t)

	recorder := c.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", decode[any](t, recorder).Message)
}

func TestHTTP_StayLifecycle(t *testing.T) {
	c := newClient(t)

	recorder := c.do(http.MethodPost, "/v1/guests", map[string]any{"name": "Anita Rahman"})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	guest := decode[idResponse](t, recorder).Data

	recorder = c.do(http.MethodPost, "/v1/reservations", map[string]any{
		"guestId":     guest.ID,
		"roomId":      "101",
		"totalAmount": 1500,
		"confirmed":   true,
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	reservation := decode[idResponse](t, recorder).Data

	recorder = c.do(http.MethodGet, "/v1/rooms/101/quick-actions", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	actions := decode[struct {
		Status  string   `json:"status"`
		Actions []string `json:"actions"`
	}](t, recorder).Data
	assert.Equal(t, "reserved", actions.Status)
	assert.Contains(t, actions.Actions, "check_in")

	recorder = c.do(http.MethodPost, "/v1/reservations/"+reservation.ID+"/check-in", nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = c.do(http.MethodGet, "/v1/rooms?search=anita", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	rooms := decode[[]idResponse](t, recorder).Data
	require.Len(t, rooms, 1)
	assert.Equal(t, "occupied", rooms[0].Status)

	recorder = c.do(http.MethodPost, "/v1/checkout/select", map[string]any{"reservationId": reservation.ID})
	assert.Equal(t, http.StatusPreconditionFailed, recorder.Code)
	assert.Equal(t, "precondition", decode[any](t, recorder).Kind)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/inspections/101", map[string]any{"reservationId": reservation.ID}).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/inspections/101/consumptions", map[string]any{"productId": "beer", "quantity": 2}).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/inspections/101/damages", map[string]any{"itemId": "lamp", "quantity": 1}).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/inspections/101/submit", nil).Code)

	recorder = c.do(http.MethodGet, "/v1/inspections/101/readiness?reservation_id="+reservation.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, decode[map[string]any](t, recorder).Data["inspected"])

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/checkout/select", map[string]any{"reservationId": reservation.ID}).Code)

	recorder = c.do(http.MethodPost, "/v1/checkout/summary", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.InDelta(t, 1750, decode[struct {
		GrandTotal float64 `json:"grandTotal"`
	}](t, recorder).Data.GrandTotal, 0.001)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/checkout/invoice", nil).Code)

	recorder = c.do(http.MethodPost, "/v1/checkout/complete", nil)
	assert.Equal(t, http.StatusPreconditionFailed, recorder.Code, recorder.Body.String())

	recorder = c.do(http.MethodPost, "/v1/checkout/payments", map[string]any{"amount": 1750, "method": "cash"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, decode[struct {
		IsFullyPaid bool `json:"isFullyPaid"`
	}](t, recorder).Data.IsFullyPaid)

	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/v1/checkout/complete", nil).Code)

	recorder = c.do(http.MethodGet, "/v1/rooms/101", nil)
	assert.Equal(t, "cleaning", decode[idResponse](t, recorder).Data.Status)

	recorder = c.do(http.MethodGet, "/v1/housekeeping/tasks?room_id=101&kind=cleaning", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	tasks := decode[[]idResponse](t, recorder).Data
	require.Len(t, tasks, 1)

	recorder = c.do(http.MethodPatch, "/v1/housekeeping/tasks/"+tasks[0].ID, map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = c.do(http.MethodGet, "/v1/rooms/101", nil)
	assert.Equal(t, "vacant", decode[idResponse](t, recorder).Data.Status)

	recorder = c.do(http.MethodGet, "/v1/reservations/"+reservation.ID, nil)
	assert.Equal(t, "checked_out", decode[idResponse](t, recorder).Data.Status)

	recorder = c.do(http.MethodGet, "/v1/events?type=CHECKOUT_COMPLETED", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, decode[page[map[string]any]](t, recorder).Data.Pagination.Total)
}

func TestHTTP_Errors(t *testing.T) {
	c := newClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		code   int
		kind   string
	}{
		{name: "unknown room", method: http.MethodGet, path: "/v1/rooms/999", code: http.StatusNotFound, kind: "not_found"},
		{name: "unknown room status", method: http.MethodPatch, path: "/v1/rooms/101/status", body: map[string]any{"status": "flying"}, code: http.StatusBadRequest, kind: "validation"},
		{name: "unknown status filter", method: http.MethodGet, path: "/v1/rooms?status=flying", code: http.StatusBadRequest, kind: "validation"},
		{name: "malformed body", method: http.MethodPost, path: "/v1/reservations", body: "not json", code: http.StatusBadRequest, kind: "bad_request"},
		{name: "zero quantity", method: http.MethodPost, path: "/v1/inspections/101/consumptions", body: map[string]any{"productId": "beer", "quantity": 0}, code: http.StatusBadRequest, kind: "validation"},
		{name: "no open inspection", method: http.MethodPost, path: "/v1/inspections/101/submit", code: http.StatusBadRequest, kind: "validation"},
		{name: "unknown task kind filter", method: http.MethodGet, path: "/v1/housekeeping/tasks?kind=laundry", code: http.StatusBadRequest, kind: "validation"},
		{name: "unknown reservation status filter", method: http.MethodGet, path: "/v1/reservations?status=no_show", code: http.StatusBadRequest, kind: "validation"},
		{name: "summary without selection", method: http.MethodPost, path: "/v1/checkout/summary", code: http.StatusPreconditionFailed, kind: "precondition"},
		{name: "missing payment method", method: http.MethodPost, path: "/v1/checkout/payments", body: map[string]any{"amount": 10}, code: http.StatusBadRequest, kind: "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := c.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.code, recorder.Code, recorder.Body.String())
			assert.Equal(t, tt.kind, decode[any](t, recorder).Kind)
		})
	}
}

func TestHTTP_ManualStatusChangeSpawnsCleaningTask(t *testing.T) {
	c := newClient(t)

	recorder := c.do(http.MethodPatch, "/v1/rooms/102/status", map[string]any{
		"status":       "cleaning",
		"customStatus": map[string]any{"name": "Deep clean", "color": "#aa00ff"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Equal(t, "Deep clean", decode[map[string]any](t, recorder).Data["displayStatus"])

	recorder = c.do(http.MethodGet, "/v1/housekeeping/tasks?room_id=102", nil)
	assert.Len(t, decode[[]idResponse](t, recorder).Data, 1)

	recorder = c.do(http.MethodGet, "/v1/housekeeping/board", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = c.do(http.MethodGet, "/v1/rooms/statistics", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestHTTP_StaffRoster(t *testing.T) {
	c := newClient(t)

	recorder := c.do(http.MethodPost, "/v1/housekeeping/staff", map[string]any{"name": "Dewi"})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	member := decode[idResponse](t, recorder).Data

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/v1/housekeeping/staff", map[string]any{"name": "Eko"}).Code)

	recorder = c.do(http.MethodPatch, "/v1/housekeeping/staff/"+member.ID, map[string]any{"active": false})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	tests := []struct {
		query string
		count int
	}{
		{query: "", count: 2},
		{query: "?active=true", count: 1},
		{query: "?active=false", count: 1},
		{query: "?active=maybe", count: 2},
	}

	for _, tt := range tests {
		t.Run("staff"+tt.query, func(t *testing.T) {
			recorder := c.do(http.MethodGet, "/v1/housekeeping/staff"+tt.query, nil)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Len(t, decode[[]idResponse](t, recorder).Data, tt.count)
		})
	}

	recorder = c.do(http.MethodPatch, "/v1/housekeeping/staff/"+member.ID, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
