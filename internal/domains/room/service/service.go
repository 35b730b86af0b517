package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"frontdesk/infras/otel"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	guestModel "frontdesk/internal/domains/guest/model"
	housekeepingModel "frontdesk/internal/domains/housekeeping/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog"
)

// GuestReader resolves guest names for room search.
type GuestReader interface {
	Get(ctx context.Context, id string) (guestModel.Guest, error)
}

// Room is the authoritative store of room lifecycle status.
type Room interface {
	Get(ctx context.Context, id string) (model.Room, error)
	List(ctx context.Context, filter model.Filter) ([]model.Room, error)
	Statistics(ctx context.Context) model.Statistics
	QuickActionsFor(room model.Room) []model.QuickAction
	SetStatus(ctx context.Context, id string, status model.Status, custom *model.CustomStatus) (model.Room, error)
	ClearCustomStatus(ctx context.Context, id string) (model.Room, error)
	Seed(rooms ...model.Room)
	Close()
}

type serviceImpl struct {
	mu    sync.RWMutex
	rooms map[string]*model.Room

	bus    eventService.Bus
	guests GuestReader
	otel   otel.Otel
	log    zerolog.Logger
	subs   []eventService.Subscription
}

// New builds the store and subscribes it to the events that move rooms.
func New(bus eventService.Bus, guests GuestReader, otel otel.Otel) Room {
	s := &serviceImpl{
		rooms:  make(map[string]*model.Room),
		bus:    bus,
		guests: guests,
		otel:   otel,
		log:    logger.Component(model.EntityName),
	}

	s.subs = []eventService.Subscription{
		bus.Subscribe(eventModel.TypeCheckinCompleted, s.onCheckinCompleted),
		bus.Subscribe(eventModel.TypeCheckoutCompleted, s.onCheckoutCompleted),
		bus.Subscribe(eventModel.TypeHousekeepingTaskCompleted, s.onTaskCompleted),
		bus.Subscribe(eventModel.TypeReservationCreated, s.onReservationCreated),
		bus.Subscribe(eventModel.TypeReservationCancelled, s.onReservationCancelled),
	}

	return s
}

func (s *serviceImpl) Close() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
}

func (s *serviceImpl) Seed(rooms ...model.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, room := range rooms {
		room := room.Clone()
		if room.Number == "" {
			room.Number = room.ID
		}

		if !room.Status.IsValid() {
			room.Status = model.StatusVacant
		}

		if room.UpdatedAt.IsZero() {
			room.UpdatedAt = timezone.Now()
		}

		s.rooms[room.ID] = &room
	}
}

func (s *serviceImpl) Get(_ context.Context, id string) (model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return model.Room{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	return room.Clone(), nil
}

func (s *serviceImpl) snapshot() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]model.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room.Clone())
	}

	slices.SortFunc(rooms, func(a, b model.Room) int {
		return strings.Compare(a.Number, b.Number)
	})

	return rooms
}

func (s *serviceImpl) List(ctx context.Context, filter model.Filter) (rooms []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, failure.Validationf("unknown room status %q", filter.Status)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	rooms = make([]model.Room, 0)

	for _, room := range s.snapshot() {
		if filter.Status != "" && room.Status != filter.Status {
			continue
		}

		if search != "" && !s.matches(ctx, room, search) {
			continue
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (s *serviceImpl) matches(ctx context.Context, room model.Room, search string) bool {
	candidates := []string{room.Number, room.Type.Name}

	if room.CustomStatus != nil {
		candidates = append(candidates, room.CustomStatus.Name)
	}

	if room.CurrentGuestID != "" && s.guests != nil {
		if guest, err := s.guests.Get(ctx, room.CurrentGuestID); err == nil {
			candidates = append(candidates, guest.Name)
		}
	}

	return slices.ContainsFunc(candidates, func(candidate string) bool {
		return candidate != "" && strings.Contains(strings.ToLower(candidate), search)
	})
}

func (s *serviceImpl) Statistics(_ context.Context) model.Statistics {
	rooms := s.snapshot()

	stats := model.Statistics{
		Total:    len(rooms),
		ByStatus: make(map[model.Status]int, len(model.Statuses)),
	}

	for _, status := range model.Statuses {
		stats.ByStatus[status] = 0
	}

	for _, room := range rooms {
		stats.ByStatus[room.Status]++
	}

	if stats.Total > 0 {
		stats.OccupancyRate = float64(stats.ByStatus[model.StatusOccupied]) / float64(stats.Total)
	}

	return stats
}

func (s *serviceImpl) QuickActionsFor(room model.Room) []model.QuickAction {
	return model.QuickActionsFor(room)
}

// SetStatus moves a room to any status. A nil custom status keeps the current overlay.
// Leaving occupied forgets the current guest; entering it learns the guest from the
// CHECKIN_COMPLETED the reservation registry answers with.
func (s *serviceImpl) SetStatus(ctx context.Context, id string, status model.Status, custom *model.CustomStatus) (room model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.IsValid() {
		return model.Room{}, failure.Validationf("unknown room status %q", status)
	}

	return s.transition(ctx, id, func(room *model.Room) bool {
		room.Status = status

		if custom != nil {
			overlay := *custom
			room.CustomStatus = &overlay
		}

		return true
	})
}

func (s *serviceImpl) ClearCustomStatus(ctx context.Context, id string) (room model.Room, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ClearCustomStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.rooms[id]
	if !ok {
		return model.Room{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	stored.CustomStatus = nil
	stored.UpdatedAt = timezone.Now()

	return stored.Clone(), nil
}

// transition applies mutate under the lock and, when mutate reports a change,
// publishes ROOM_STATUS_CHANGED after the lock is released.
func (s *serviceImpl) transition(ctx context.Context, id string, mutate func(room *model.Room) bool) (model.Room, error) {
	s.mu.Lock()

	stored, ok := s.rooms[id]
	if !ok {
		s.mu.Unlock()

		return model.Room{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	oldStatus := stored.Status
	changed := mutate(stored)

	// only an occupied room has a current guest
	if stored.Status != model.StatusOccupied {
		stored.CurrentGuestID = ""
	}

	if !changed {
		room := stored.Clone()
		s.mu.Unlock()

		return room, nil
	}

	stored.UpdatedAt = timezone.Now()
	room := stored.Clone()
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldRoomID, id).
		Str("old_status", oldStatus.String()).
		Str("new_status", room.Status.String()).
		Msg("room status changed")

	s.bus.Emit(ctx, eventModel.New(eventModel.TypeRoomStatusChanged, eventModel.RoomStatusChanged{
		RoomID:    id,
		OldStatus: oldStatus,
		NewStatus: room.Status,
	}))

	return room, nil
}

func (s *serviceImpl) onCheckinCompleted(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.CheckinCompleted](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	_, err := s.transition(ctx, payload.RoomID, func(room *model.Room) bool {
		changed := room.Status != model.StatusOccupied
		room.Status = model.StatusOccupied
		room.CurrentGuestID = payload.GuestID

		return changed
	})

	return err
}

func (s *serviceImpl) onCheckoutCompleted(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.CheckoutCompleted](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	_, err := s.transition(ctx, payload.RoomID, func(room *model.Room) bool {
		changed := room.Status != model.StatusCleaning
		room.Status = model.StatusCleaning
		room.CurrentGuestID = ""

		return changed
	})

	return err
}

func (s *serviceImpl) onTaskCompleted(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.HousekeepingTaskCompleted](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	if payload.TaskType != housekeepingModel.KindCleaning.String() {
		return nil
	}

	_, err := s.transition(ctx, payload.RoomID, func(room *model.Room) bool {
		changed := room.Status != model.StatusVacant
		room.Status = model.StatusVacant

		return changed
	})

	return err
}

func (s *serviceImpl) onReservationCreated(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.ReservationChanged](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	if payload.Status != reservationModel.StatusPending && !payload.Status.IsActive() {
		return nil
	}

	_, err := s.transition(ctx, payload.RoomID, func(room *model.Room) bool {
		if room.Status != model.StatusVacant {
			return false
		}

		room.Status = model.StatusReserved

		return true
	})

	return err
}

func (s *serviceImpl) onReservationCancelled(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.ReservationChanged](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	_, err := s.transition(ctx, payload.RoomID, func(room *model.Room) bool {
		if room.Status != model.StatusReserved {
			return false
		}

		room.Status = model.StatusVacant

		return true
	})

	return err
}
