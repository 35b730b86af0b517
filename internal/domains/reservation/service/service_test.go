package service_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/service"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) (service.Reservation, eventService.Bus) {
	t.Helper()

	otel := mocks.NewOtel()
	bus := eventService.New(config.Default(), otel)
	registry := service.New(bus, otel)

	t.Cleanup(registry.Close)

	return registry, bus
}

func eventTypes(bus eventService.Bus) []eventModel.Type {
	types := make([]eventModel.Type, 0)
	for _, evt := range bus.History() {
		types = append(types, evt.Type)
	}

	return types
}

func TestReservationService_Create(t *testing.T) {
	arrival := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   service.CreateInput
		status  model.Status
		wantErr bool
	}{
		{
			name:   "pending by default",
			input:  service.CreateInput{GuestID: "g1", RoomID: "101", ArrivalAt: arrival, DepartureAt: arrival.Add(48 * time.Hour), TotalAmount: 1500},
			status: model.StatusPending,
		},
		{
			name:   "confirmed",
			input:  service.CreateInput{GuestID: "g1", RoomID: "101", TotalAmount: 1500, Confirmed: true},
			status: model.StatusConfirmed,
		},
		{
			name:    "missing guest",
			input:   service.CreateInput{RoomID: "101"},
			wantErr: true,
		},
		{
			name:    "missing room",
			input:   service.CreateInput{GuestID: "g1"},
			wantErr: true,
		},
		{
			name:    "negative amount",
			input:   service.CreateInput{GuestID: "g1", RoomID: "101", TotalAmount: -1},
			wantErr: true,
		},
		{
			name:    "departure before arrival",
			input:   service.CreateInput{GuestID: "g1", RoomID: "101", ArrivalAt: arrival, DepartureAt: arrival.Add(-time.Hour)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, bus := newRegistry(t)

			reservation, err := registry.Create(context.Background(), tt.input)

			if tt.wantErr {
				assert.True(t, failure.IsValidation(err), err)
				assert.Empty(t, bus.History())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, reservation.Status)

			history := bus.History()
			require.Len(t, history, 1)
			assert.Equal(t, eventModel.TypeReservationCreated, history[0].Type)

			payload, ok := eventModel.Payload[eventModel.ReservationChanged](history[0])
			require.True(t, ok)
			assert.Equal(t, reservation.ID, payload.ReservationID)
			assert.Equal(t, tt.status, payload.Status)
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		prepare  []model.Status
		next     model.Status
		wantErr  func(error) bool
		expected []eventModel.Type
	}{
		{
			name:     "confirm",
			next:     model.StatusConfirmed,
			expected: []eventModel.Type{eventModel.TypeReservationUpdated},
		},
		{
			name:     "check in publishes check-in",
			next:     model.StatusCheckedIn,
			expected: []eventModel.Type{eventModel.TypeReservationUpdated, eventModel.TypeCheckinCompleted},
		},
		{
			name:     "cancel publishes cancellation",
			next:     model.StatusCancelled,
			expected: []eventModel.Type{eventModel.TypeReservationUpdated, eventModel.TypeReservationCancelled},
		},
		{
			name:    "check out before check in",
			next:    model.StatusCheckedOut,
			wantErr: failure.IsState,
		},
		{
			name:    "cancel after check in",
			prepare: []model.Status{model.StatusCheckedIn},
			next:    model.StatusCancelled,
			wantErr: failure.IsState,
		},
		{
			name:    "unknown status",
			next:    model.Status("no_show"),
			wantErr: failure.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, bus := newRegistry(t)
			ctx := context.Background()

			reservation, err := registry.Create(ctx, service.CreateInput{GuestID: "g1", RoomID: "101", TotalAmount: 1500})
			require.NoError(t, err)

			for _, status := range tt.prepare {
				_, err = registry.UpdateStatus(ctx, reservation.ID, status)
				require.NoError(t, err)
			}

			before := len(bus.History())
			updated, err := registry.UpdateStatus(ctx, reservation.ID, tt.next)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), err)
				assert.Len(t, bus.History(), before)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.next, updated.Status)
			assert.Equal(t, tt.expected, eventTypes(bus)[before:])

			payload, ok := eventModel.Payload[eventModel.ReservationChanged](bus.History()[before])
			require.True(t, ok)
			assert.Equal(t, model.StatusPending, payload.PreviousStatus)
			assert.Equal(t, tt.next, payload.NewStatus)
		})
	}

	registry, _ := newRegistry(t)
	_, err := registry.UpdateStatus(context.Background(), "missing", model.StatusConfirmed)
	assert.True(t, failure.IsNotFound(err))
}

func TestReservationService_ListAndActiveForRoom(t *testing.T) {
	registry, _ := newRegistry(t)
	ctx := context.Background()

	cancelled, err := registry.Create(ctx, service.CreateInput{GuestID: "g1", RoomID: "101", Confirmed: true})
	require.NoError(t, err)
	_, err = registry.Cancel(ctx, cancelled.ID)
	require.NoError(t, err)

	_, err = registry.ActiveForRoom(ctx, "101")
	assert.True(t, failure.IsNotFound(err))

	confirmed, err := registry.Create(ctx, service.CreateInput{GuestID: "g2", RoomID: "101", Confirmed: true})
	require.NoError(t, err)

	_, err = registry.Create(ctx, service.CreateInput{GuestID: "g3", RoomID: "102"})
	require.NoError(t, err)

	active, err := registry.ActiveForRoom(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, active.ID)

	assert.Len(t, registry.List(ctx, service.ListFilter{}), 3)
	assert.Len(t, registry.List(ctx, service.ListFilter{RoomID: "101"}), 2)
	assert.Len(t, registry.List(ctx, service.ListFilter{Status: model.StatusCancelled}), 1)
}

func TestReservationService_Mirrors(t *testing.T) {
	tests := []struct {
		name     string
		initial  []model.Status
		evt      func(reservation model.Reservation) eventModel.Event
		expected model.Status
	}{
		{
			name:    "room occupied checks in the confirmed reservation",
			initial: []model.Status{model.StatusConfirmed},
			evt: func(r model.Reservation) eventModel.Event {
				return eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
					RoomID: r.RoomID, OldStatus: roomModel.StatusReserved, NewStatus: roomModel.StatusOccupied,
				})
			},
			expected: model.StatusCheckedIn,
		},
		{
			name:    "room vacant checks out the checked-in reservation",
			initial: []model.Status{model.StatusCheckedIn},
			evt: func(r model.Reservation) eventModel.Event {
				return eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
					RoomID: r.RoomID, OldStatus: roomModel.StatusCleaning, NewStatus: roomModel.StatusVacant,
				})
			},
			expected: model.StatusCheckedOut,
		},
		{
			name: "room vacant leaves a pending reservation alone",
			evt: func(r model.Reservation) eventModel.Event {
				return eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
					RoomID: r.RoomID, OldStatus: roomModel.StatusMaintenance, NewStatus: roomModel.StatusVacant,
				})
			},
			expected: model.StatusPending,
		},
		{
			name:    "checkout completed checks out",
			initial: []model.Status{model.StatusCheckedIn},
			evt: func(r model.Reservation) eventModel.Event {
				return eventModel.New(eventModel.TypeCheckoutCompleted, eventModel.CheckoutCompleted{
					ReservationID: r.ID, RoomID: r.RoomID, GuestID: r.GuestID,
				})
			},
			expected: model.StatusCheckedOut,
		},
		{
			name:    "checkout of a cancelled reservation is skipped",
			initial: []model.Status{model.StatusCancelled},
			evt: func(r model.Reservation) eventModel.Event {
				return eventModel.New(eventModel.TypeCheckoutCompleted, eventModel.CheckoutCompleted{
					ReservationID: r.ID, RoomID: r.RoomID, GuestID: r.GuestID,
				})
			},
			expected: model.StatusCancelled,
		},
		{
			name: "external check-in",
			evt: func(r model.Reservation) eventModel.Event {
				return eventModel.New(eventModel.TypeCheckinCompleted, eventModel.CheckinCompleted{
					ReservationID: r.ID, RoomID: r.RoomID, GuestID: r.GuestID,
				})
			},
			expected: model.StatusCheckedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, bus := newRegistry(t)
			ctx := context.Background()

			reservation, err := registry.Create(ctx, service.CreateInput{GuestID: "g1", RoomID: "101", TotalAmount: 1500})
			require.NoError(t, err)

			for _, status := range tt.initial {
				reservation, err = registry.UpdateStatus(ctx, reservation.ID, status)
				require.NoError(t, err)
			}

			bus.Emit(ctx, tt.evt(reservation))

			stored, err := registry.Get(ctx, reservation.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stored.Status)
		})
	}
}

func TestReservationService_OccupiedMirrorAnnouncesCheckin(t *testing.T) {
	registry, bus := newRegistry(t)
	ctx := context.Background()

	reservation, err := registry.Create(ctx, service.CreateInput{GuestID: "g1", RoomID: "101", Confirmed: true})
	require.NoError(t, err)

	before := len(bus.History())
	bus.Emit(ctx, eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
		RoomID: "101", OldStatus: roomModel.StatusReserved, NewStatus: roomModel.StatusOccupied,
	}))

	stored, err := registry.Get(ctx, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedIn, stored.Status)

	assert.Equal(t, []eventModel.Type{
		eventModel.TypeRoomStatusChanged,
		eventModel.TypeReservationUpdated,
		eventModel.TypeCheckinCompleted,
	}, eventTypes(bus)[before:])

	checkin, ok := eventModel.Payload[eventModel.CheckinCompleted](bus.History()[len(bus.History())-1])
	require.True(t, ok)
	assert.Equal(t, eventModel.CheckinCompleted{ReservationID: reservation.ID, RoomID: "101", GuestID: "g1"}, checkin)
}

func TestReservationService_MirrorsOnlyUnambiguousReservations(t *testing.T) {
	occupied := eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
		RoomID: "101", OldStatus: roomModel.StatusReserved, NewStatus: roomModel.StatusOccupied,
	})
	vacant := eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
		RoomID: "101", OldStatus: roomModel.StatusCleaning, NewStatus: roomModel.StatusVacant,
	})

	tests := []struct {
		name     string
		checkIn  bool
		events   []eventModel.Event
		expected [2]model.Status
	}{
		{
			name:     "occupied after an explicit check-in leaves the other reservation alone",
			checkIn:  true,
			events:   []eventModel.Event{occupied},
			expected: [2]model.Status{model.StatusCheckedIn, model.StatusConfirmed},
		},
		{
			name:     "vacant checks out only the checked-in reservation",
			checkIn:  true,
			events:   []eventModel.Event{occupied, vacant},
			expected: [2]model.Status{model.StatusCheckedOut, model.StatusConfirmed},
		},
		{
			name:     "occupied with two open reservations checks in neither",
			events:   []eventModel.Event{occupied},
			expected: [2]model.Status{model.StatusConfirmed, model.StatusConfirmed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, bus := newRegistry(t)
			ctx := context.Background()

			first, err := registry.Create(ctx, service.CreateInput{GuestID: "g1", RoomID: "101", Confirmed: true})
			require.NoError(t, err)
			second, err := registry.Create(ctx, service.CreateInput{GuestID: "g2", RoomID: "101", Confirmed: true})
			require.NoError(t, err)

			if tt.checkIn {
				_, err = registry.CheckIn(ctx, first.ID)
				require.NoError(t, err)
			}

			for _, evt := range tt.events {
				bus.Emit(ctx, evt)
			}

			for i, id := range []string{first.ID, second.ID} {
				stored, err := registry.Get(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, tt.expected[i], stored.Status, id)
			}
		})
	}
}
