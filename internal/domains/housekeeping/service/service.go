package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	"frontdesk/internal/domains/housekeeping/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RoomReader is the read side of the room store housekeeping depends on.
type RoomReader interface {
	Get(ctx context.Context, id string) (roomModel.Room, error)
	List(ctx context.Context, filter roomModel.Filter) ([]roomModel.Room, error)
}

type CreateTaskInput struct {
	RoomID      string
	Kind        model.Kind
	AssigneeID  string
	Notes       string
	ScheduledAt time.Time
}

type AddStaffInput struct {
	Name string
	Role string
}

type Housekeeping interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (model.Task, error)
	AdvanceTask(ctx context.Context, id string, status model.Status, completedAt *time.Time) (model.Task, error)
	EnsureCleaningTask(ctx context.Context, roomID string) (model.Task, error)
	Task(ctx context.Context, id string) (model.Task, error)
	Tasks(ctx context.Context, filter model.TaskFilter) []model.Task
	RoomBoard(ctx context.Context) ([]model.BoardEntry, error)

	AddStaff(ctx context.Context, input AddStaffInput) (model.Staff, error)
	Staff(ctx context.Context) []model.Staff
	SetStaffActive(ctx context.Context, id string, active bool) (model.Staff, error)
	SeedStaff(staff ...model.Staff)

	Close()
}

type serviceImpl struct {
	mu    sync.RWMutex
	tasks []*model.Task
	staff []*model.Staff
	board map[string]model.BoardEntry

	rooms RoomReader
	bus   eventService.Bus
	cfg   *config.Config
	otel  otel.Otel
	log   zerolog.Logger
	sub   eventService.Subscription
}

func New(cfg *config.Config, bus eventService.Bus, rooms RoomReader, otel otel.Otel) Housekeeping {
	s := &serviceImpl{
		board: make(map[string]model.BoardEntry),
		rooms: rooms,
		bus:   bus,
		cfg:   cfg,
		otel:  otel,
		log:   logger.Component("housekeeping"),
	}

	s.sub = bus.Subscribe(eventModel.TypeRoomStatusChanged, s.onRoomStatusChanged)

	return s
}

func (s *serviceImpl) Close() {
	s.sub.Unsubscribe()
}

func (s *serviceImpl) CreateTask(ctx context.Context, input CreateTaskInput) (task model.Task, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.CreateTask")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !input.Kind.IsValid() {
		return model.Task{}, failure.Validationf("unknown task kind %q", input.Kind)
	}

	if _, err = s.rooms.Get(ctx, input.RoomID); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	task = s.insert(input, false)
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldTaskID, task.ID).
		Str(constant.LogFieldRoomID, task.RoomID).
		Str("kind", task.Kind.String()).
		Msg("housekeeping task created")

	return task, nil
}

// insert must be called with the write lock held.
func (s *serviceImpl) insert(input CreateTaskInput, auto bool) model.Task {
	now := timezone.Now()

	scheduledAt := input.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = now
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		RoomID:      input.RoomID,
		Kind:        input.Kind,
		Status:      model.StatusPending,
		AssigneeID:  input.AssigneeID,
		Notes:       input.Notes,
		AutoCreated: auto,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.tasks = append(s.tasks, task)

	return *task
}

// EnsureCleaningTask returns the pending cleaning task of the room, creating and
// auto-assigning one when there is none. A cleaning already in progress belongs to
// an earlier turnover and does not count.
func (s *serviceImpl) EnsureCleaningTask(ctx context.Context, roomID string) (task model.Task, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.EnsureCleaningTask")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.rooms.Get(ctx, roomID); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.RoomID == roomID && existing.Kind == model.KindCleaning && existing.Status == model.StatusPending {
			return *existing, nil
		}
	}

	assignee := s.availableStaff()
	if assignee == "" {
		s.log.Warn().
			Str(constant.LogFieldRoomID, roomID).
			Str("role", s.cfg.Housekeeping.Role).
			Msg("no active housekeeping staff, cleaning task left unassigned")
	}

	task = s.insert(CreateTaskInput{
		RoomID:     roomID,
		Kind:       model.KindCleaning,
		AssigneeID: assignee,
		Notes:      "auto-created after room entered cleaning",
	}, true)

	s.log.Info().
		Str(constant.LogFieldTaskID, task.ID).
		Str(constant.LogFieldRoomID, roomID).
		Str("assignee_id", assignee).
		Msg("cleaning task auto-created")

	return task, nil
}

// availableStaff must be called with the lock held.
func (s *serviceImpl) availableStaff() string {
	for _, member := range s.staff {
		if member.Active && strings.EqualFold(member.Role, s.cfg.Housekeeping.Role) {
			return member.ID
		}
	}

	return ""
}

func (s *serviceImpl) AdvanceTask(ctx context.Context, id string, status model.Status, completedAt *time.Time) (task model.Task, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.AdvanceTask")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.IsValid() {
		return model.Task{}, failure.Validationf("unknown task status %q", status)
	}

	s.mu.Lock()

	stored := s.find(id)
	if stored == nil {
		s.mu.Unlock()

		return model.Task{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	if !stored.Status.CanTransitionTo(status) {
		current := stored.Status
		s.mu.Unlock()

		return model.Task{}, failure.Statef("task %s cannot move from %s to %s", id, current, status)
	}

	now := timezone.Now()
	stored.Status = status
	stored.UpdatedAt = now

	switch status {
	case model.StatusInProgress:
		stored.StartedAt = &now
	case model.StatusCompleted:
		finished := now
		if completedAt != nil {
			finished = *completedAt
		}

		stored.CompletedAt = &finished
	case model.StatusPending, model.StatusCancelled:
	}

	task = *stored
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldTaskID, id).
		Str(constant.LogFieldRoomID, task.RoomID).
		Str("status", status.String()).
		Msg("housekeeping task advanced")

	if status == model.StatusCompleted {
		s.bus.Emit(ctx, eventModel.New(eventModel.TypeHousekeepingTaskCompleted, eventModel.HousekeepingTaskCompleted{
			RoomID:   task.RoomID,
			TaskType: task.Kind.String(),
		}))
	}

	return task, nil
}

// find must be called with the lock held.
func (s *serviceImpl) find(id string) *model.Task {
	for _, task := range s.tasks {
		if task.ID == id {
			return task
		}
	}

	return nil
}

func (s *serviceImpl) Task(_ context.Context, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task := s.find(id)
	if task == nil {
		return model.Task{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	return *task, nil
}

func (s *serviceImpl) Tasks(_ context.Context, filter model.TaskFilter) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Matches(*task) {
			tasks = append(tasks, *task)
		}
	}

	return tasks
}

// RoomBoard lists every room in housekeeping terms. Rooms never mirrored fall
// back to their current lifecycle status; rooms with no mapping are omitted.
func (s *serviceImpl) RoomBoard(ctx context.Context) (entries []model.BoardEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.RoomBoard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.rooms.List(ctx, roomModel.Filter{})
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries = make([]model.BoardEntry, 0, len(rooms))

	for _, room := range rooms {
		if entry, ok := s.board[room.ID]; ok {
			entries = append(entries, entry)

			continue
		}

		if status, ok := model.FromLifecycle(room.Status); ok {
			entries = append(entries, model.BoardEntry{RoomID: room.ID, Status: status, UpdatedAt: room.UpdatedAt})
		}
	}

	return entries, nil
}

func (s *serviceImpl) onRoomStatusChanged(ctx context.Context, evt eventModel.Event) error {
	payload, ok := eventModel.Payload[eventModel.RoomStatusChanged](evt)
	if !ok {
		return eventModel.UnexpectedPayload(evt)
	}

	status, mapped := model.FromLifecycle(payload.NewStatus)
	if !mapped {
		s.log.Debug().
			Str(constant.LogFieldRoomID, payload.RoomID).
			Str("status", payload.NewStatus.String()).
			Msg("lifecycle status has no housekeeping mapping")

		return nil
	}

	s.mu.Lock()
	s.board[payload.RoomID] = model.BoardEntry{RoomID: payload.RoomID, Status: status, UpdatedAt: timezone.Now()}
	s.mu.Unlock()

	if payload.NewStatus != roomModel.StatusCleaning {
		return nil
	}

	_, err := s.EnsureCleaningTask(ctx, payload.RoomID)

	return err
}

func (s *serviceImpl) AddStaff(ctx context.Context, input AddStaffInput) (staff model.Staff, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.AddStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Staff{}, failure.Validation("staff name is required")
	}

	role := input.Role
	if role == "" {
		role = s.cfg.Housekeeping.Role
	}

	staff = model.Staff{ID: uuid.NewString(), Name: name, Role: role, Active: true}

	s.mu.Lock()
	s.staff = append(s.staff, &staff)
	s.mu.Unlock()

	return staff, nil
}

func (s *serviceImpl) Staff(_ context.Context) []model.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()

	staff := make([]model.Staff, 0, len(s.staff))
	for _, member := range s.staff {
		staff = append(staff, *member)
	}

	return staff
}

func (s *serviceImpl) SetStaffActive(ctx context.Context, id string, active bool) (staff model.Staff, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.SetStaffActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	index := slices.IndexFunc(s.staff, func(member *model.Staff) bool { return member.ID == id })
	if index < 0 {
		return model.Staff{}, failure.NotFoundf("%s %s not found", model.StaffEntityName, id)
	}

	s.staff[index].Active = active

	return *s.staff[index], nil
}

// SeedStaff appends staff in roster order; earlier members are assigned first.
func (s *serviceImpl) SeedStaff(staff ...model.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range staff {
		member := member
		s.staff = append(s.staff, &member)
	}
}
