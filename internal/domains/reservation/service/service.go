package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"frontdesk/infras/otel"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	"frontdesk/internal/domains/reservation/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CreateInput struct {
	GuestID     string
	RoomID      string
	ArrivalAt   time.Time
	DepartureAt time.Time
	TotalAmount float64
	Confirmed   bool
}

type ListFilter struct {
	RoomID string
	Status model.Status
}

type Reservation interface {
	Create(ctx context.Context, input CreateInput) (model.Reservation, error)
	Get(ctx context.Context, id string) (model.Reservation, error)
	List(ctx context.Context, filter ListFilter) []model.Reservation
	ActiveForRoom(ctx context.Context, roomID string) (model.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (model.Reservation, error)
	CheckIn(ctx context.Context, id string) (model.Reservation, error)
	Cancel(ctx context.Context, id string) (model.Reservation, error)
	Seed(reservations ...model.Reservation)
	Close()
}

type serviceImpl struct {
	mu           sync.RWMutex
	reservations []*model.Reservation

	bus  eventService.Bus
	otel otel.Otel
	log  zerolog.Logger
	subs []eventService.Subscription
}

// New builds the registry and subscribes the mirrors that keep reservation
// status in line with room and checkout events.
func New(bus eventService.Bus, otel otel.Otel) Reservation {
	s := &serviceImpl{
		bus:  bus,
		otel: otel,
		log:  logger.Component(model.EntityName),
	}

	s.subs = []eventService.Subscription{
		bus.Subscribe(eventModel.TypeRoomStatusChanged, s.onRoomStatusChanged),
		bus.Subscribe(eventModel.TypeCheckinCompleted, s.onCheckinCompleted),
		bus.Subscribe(eventModel.TypeCheckoutCompleted, s.onCheckoutCompleted),
	}

	return s
}

func (s *serviceImpl) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
}

func (s *serviceImpl) Seed(reservations ...model.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, reservation := range reservations {
		reservation := reservation
		s.reservations = append(s.reservations, &reservation)
	}
}

func (s *serviceImpl) Create(ctx context.Context, input CreateInput) (reservation model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	switch {
	case strings.TrimSpace(input.GuestID) == "":
		return model.Reservation{}, failure.Validation("guest is required")
	case strings.TrimSpace(input.RoomID) == "":
		return model.Reservation{}, failure.Validation("room is required")
	case input.TotalAmount < 0:
		return model.Reservation{}, failure.Validationf("total amount must not be negative, got %.2f", input.TotalAmount)
	case !input.DepartureAt.IsZero() && input.DepartureAt.Before(input.ArrivalAt):
		return model.Reservation{}, failure.Validation("departure must not be before arrival")
	}

	status := model.StatusPending
	if input.Confirmed {
		status = model.StatusConfirmed
	}

	now := timezone.Now()
	reservation = model.Reservation{
		ID:          uuid.NewString(),
		GuestID:     input.GuestID,
		RoomID:      input.RoomID,
		ArrivalAt:   input.ArrivalAt,
		DepartureAt: input.DepartureAt,
		Status:      status,
		TotalAmount: shared.RoundMoney(input.TotalAmount),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	stored := reservation
	s.reservations = append(s.reservations, &stored)
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldReservationID, reservation.ID).
		Str(constant.LogFieldRoomID, reservation.RoomID).
		Str("status", status.String()).
		Msg("reservation created")

	s.bus.Emit(ctx, eventModel.New(eventModel.TypeReservationCreated, eventModel.ReservationChanged{
		ReservationID: reservation.ID,
		RoomID:        reservation.RoomID,
		GuestID:       reservation.GuestID,
		Status:        reservation.Status,
	}))

	return reservation, nil
}

// find must be called with the lock held.
func (s *serviceImpl) find(id string) *model.Reservation {
	for _, reservation := range s.reservations {
		if reservation.ID == id {
			return reservation
		}
	}

	return nil
}

func (s *serviceImpl) Get(_ context.Context, id string) (model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservation := s.find(id)
	if reservation == nil {
		return model.Reservation{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	return *reservation, nil
}

func (s *serviceImpl) List(_ context.Context, filter ListFilter) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservations := make([]model.Reservation, 0, len(s.reservations))
	for _, reservation := range s.reservations {
		if filter.RoomID != "" && reservation.RoomID != filter.RoomID {
			continue
		}

		if filter.Status != "" && reservation.Status != filter.Status {
			continue
		}

		reservations = append(reservations, *reservation)
	}

	return reservations
}

// ActiveForRoom returns the room's checked-in reservation, or else its most
// recently created confirmed one.
func (s *serviceImpl) ActiveForRoom(_ context.Context, roomID string) (model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if reservation := s.latest(roomID, model.StatusCheckedIn); reservation != nil {
		return *reservation, nil
	}

	if reservation := s.latest(roomID, model.StatusConfirmed); reservation != nil {
		return *reservation, nil
	}

	return model.Reservation{}, failure.NotFoundf("no active %s for room %s", model.EntityName, roomID)
}

// latest must be called with the lock held.
func (s *serviceImpl) latest(roomID string, statuses ...model.Status) *model.Reservation {
	for i := len(s.reservations) - 1; i >= 0; i-- {
		reservation := s.reservations[i]
		if reservation.RoomID == roomID && slices.Contains(statuses, reservation.Status) {
			return reservation
		}
	}

	return nil
}

// UpdateStatus applies a transition and publishes RESERVATION_UPDATED, followed
// by CHECKIN_COMPLETED or RESERVATION_CANCELLED when the new status calls for it.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) (reservation model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.IsValid() {
		return model.Reservation{}, failure.Validationf("unknown reservation status %q", status)
	}

	s.mu.Lock()

	stored := s.find(id)
	if stored == nil {
		s.mu.Unlock()

		return model.Reservation{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	previous := stored.Status
	if !previous.CanTransitionTo(status) {
		s.mu.Unlock()

		return model.Reservation{}, failure.Statef("reservation %s cannot move from %s to %s", id, previous, status)
	}

	stored.Status = status
	stored.UpdatedAt = timezone.Now()
	reservation = *stored
	s.mu.Unlock()

	s.publishUpdated(ctx, reservation, previous)

	switch status {
	case model.StatusCheckedIn:
		s.bus.Emit(ctx, eventModel.New(eventModel.TypeCheckinCompleted, eventModel.CheckinCompleted{
			ReservationID: reservation.ID,
			RoomID:        reservation.RoomID,
			GuestID:       reservation.GuestID,
		}))
	case model.StatusCancelled:
		s.bus.Emit(ctx, eventModel.New(eventModel.TypeReservationCancelled, eventModel.ReservationChanged{
			ReservationID: reservation.ID,
			RoomID:        reservation.RoomID,
			GuestID:       reservation.GuestID,
			Status:        reservation.Status,
		}))
	case model.StatusPending, model.StatusConfirmed, model.StatusCheckedOut:
	}

	return reservation, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (model.Reservation, error) {
	return s.UpdateStatus(ctx, id, model.StatusCheckedIn)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (model.Reservation, error) {
	return s.UpdateStatus(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) publishUpdated(ctx context.Context, reservation model.Reservation, previous model.Status) {
	s.log.Info().
		Str(constant.LogFieldReservationID, reservation.ID).
		Str("previous_status", previous.String()).
		Str("new_status", reservation.Status.String()).
		Msg("reservation status changed")

	s.bus.Emit(ctx, eventModel.New(eventModel.TypeReservationUpdated, eventModel.ReservationChanged{
		ReservationID:  reservation.ID,
		RoomID:         reservation.RoomID,
		GuestID:        reservation.GuestID,
		Status:         reservation.Status,
		PreviousStatus: previous,
		NewStatus:      reservation.Status,
	}))
}

// mirror moves the reservation picked by pick to status when the transition is
// legal and reports the moved reservation. pick runs under the lock. Only
// RESERVATION_UPDATED is published here; callers decide on anything further.
func (s *serviceImpl) mirror(ctx context.Context, status model.Status, pick func() *model.Reservation) (model.Reservation, bool) {
	s.mu.Lock()

	stored := pick()
	if stored == nil || stored.Status == status {
		s.mu.Unlock()

		return model.Reservation{}, false
	}

	previous := stored.Status
	if !previous.CanTransitionTo(status) {
		s.mu.Unlock()
		s.log.Warn().
			Str(constant.LogFieldReservationID, stored.ID).
			Str("from", previous.String()).
			Str("to", status.String()).
			Msg("mirror transition skipped")

		return model.Reservation{}, false
	}

	stored.Status = status
	stored.UpdatedAt = timezone.Now()
	reservation := *stored
	s.mu.Unlock()

	s.publishUpdated(ctx, reservation, previous)

	return reservation, true
}

// arrivingFor picks the reservation an occupied room stands for: nothing when a
// guest is already checked in, otherwise the single confirmed or pending one.
// Must be called with the lock held.
func (s *serviceImpl) arrivingFor(roomID string) *model.Reservation {
	if s.latest(roomID, model.StatusCheckedIn) != nil {
		return nil
	}

	var candidates []*model.Reservation

	for _, reservation := range s.reservations {
		if reservation.RoomID == roomID &&
			(reservation.Status == model.StatusConfirmed || reservation.Status == model.StatusPending) {
			candidates = append(candidates, reservation)
		}
	}

	if len(candidates) > 1 {
		s.log.Warn().
			Str(constant.LogFieldRoomID, roomID).
			Int("candidates", len(candidates)).
			Msg("room occupied with several open reservations, check in explicitly")

		return nil
	}

	if len(candidates) == 0 {
		return nil
	}

	return candidates[0]
}

func (s *serviceImpl) onRoomStatusChanged(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.RoomStatusChanged](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	switch payload.NewStatus {
	case roomModel.StatusOccupied:
		reservation, moved := s.mirror(ctx, model.StatusCheckedIn, func() *model.Reservation {
			return s.arrivingFor(payload.RoomID)
		})
		if moved {
			s.bus.Emit(ctx, eventModel.New(eventModel.TypeCheckinCompleted, eventModel.CheckinCompleted{
				ReservationID: reservation.ID,
				RoomID:        reservation.RoomID,
				GuestID:       reservation.GuestID,
			}))
		}
	case roomModel.StatusVacant:
		s.mirror(ctx, model.StatusCheckedOut, func() *model.Reservation {
			return s.latest(payload.RoomID, model.StatusCheckedIn)
		})
	case roomModel.StatusReserved, roomModel.StatusPendingInspection, roomModel.StatusCleaning, roomModel.StatusMaintenance:
	}

	return nil
}

func (s *serviceImpl) onCheckinCompleted(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.CheckinCompleted](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	s.mirror(ctx, model.StatusCheckedIn, func() *model.Reservation {
		return s.find(payload.ReservationID)
	})

	return nil
}

func (s *serviceImpl) onCheckoutCompleted(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.CheckoutCompleted](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	s.mirror(ctx, model.StatusCheckedOut, func() *model.Reservation {
		return s.find(payload.ReservationID)
	})

	return nil
}
