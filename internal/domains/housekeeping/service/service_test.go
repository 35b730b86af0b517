package service_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/service"
	hkMocks "frontdesk/internal/domains/housekeeping/service/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	bus          eventService.Bus
	rooms        roomService.Room
	housekeeping service.Housekeeping
}

func newFixture(t *testing.T, staff ...model.Staff) fixture {
	t.Helper()

	cfg := config.Default()
	otel := mocks.NewOtel()
	bus := eventService.New(cfg, otel)

	rooms := roomService.New(bus, nil, otel)
	rooms.Seed(
		roomModel.Room{ID: "101", Status: roomModel.StatusVacant},
		roomModel.Room{ID: "102", Status: roomModel.StatusOccupied},
		roomModel.Room{ID: "103", Status: roomModel.StatusPendingInspection},
	)

	housekeeping := service.New(cfg, bus, rooms, otel)
	housekeeping.SeedStaff(staff...)

	t.Cleanup(func() {
		housekeeping.Close()
		rooms.Close()
	})

	return fixture{bus: bus, rooms: rooms, housekeeping: housekeeping}
}

func cleaningTasks(t *testing.T, f fixture, roomID string) []model.Task {
	t.Helper()

	return f.housekeeping.Tasks(context.Background(), model.TaskFilter{RoomID: roomID, Kind: model.KindCleaning})
}

func TestHousekeeping_CleaningStatusSpawnsOneTask(t *testing.T) {
	f := newFixture(t,
		model.Staff{ID: "s0", Name: "Off Duty", Role: "housekeeping", Active: false},
		model.Staff{ID: "s1", Name: "Front Desk", Role: "reception", Active: true},
		model.Staff{ID: "s2", Name: "Dewi", Role: "housekeeping", Active: true},
		model.Staff{ID: "s3", Name: "Eko", Role: "housekeeping", Active: true},
	)
	ctx := context.Background()

	for _, roomID := range []string{"101", "102", "103"} {
		_, err := f.rooms.SetStatus(ctx, roomID, roomModel.StatusCleaning, nil)
		require.NoError(t, err)

		tasks := cleaningTasks(t, f, roomID)
		require.Len(t, tasks, 1, roomID)
		assert.Equal(t, model.StatusPending, tasks[0].Status)
		assert.Equal(t, "s2", tasks[0].AssigneeID)
		assert.True(t, tasks[0].AutoCreated)
	}

	_, err := f.rooms.SetStatus(ctx, "101", roomModel.StatusCleaning, nil)
	require.NoError(t, err)
	assert.Len(t, cleaningTasks(t, f, "101"), 1)
}

func TestHousekeeping_NoStaffLeavesTaskUnassigned(t *testing.T) {
	f := newFixture(t)

	_, err := f.rooms.SetStatus(context.Background(), "102", roomModel.StatusCleaning, nil)
	require.NoError(t, err)

	tasks := cleaningTasks(t, f, "102")
	require.Len(t, tasks, 1)
	assert.Empty(t, tasks[0].AssigneeID)
}

func TestHousekeeping_CompletingCleaningFreesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rooms.SetStatus(ctx, "102", roomModel.StatusCleaning, nil)
	require.NoError(t, err)

	task := cleaningTasks(t, f, "102")[0]

	task, err = f.housekeeping.AdvanceTask(ctx, task.ID, model.StatusInProgress, nil)
	require.NoError(t, err)
	require.NotNil(t, task.StartedAt)

	finished := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	task, err = f.housekeeping.AdvanceTask(ctx, task.ID, model.StatusCompleted, &finished)
	require.NoError(t, err)
	assert.Equal(t, finished, *task.CompletedAt)

	room, err := f.rooms.Get(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, roomModel.StatusVacant, room.Status)

	board, err := f.housekeeping.RoomBoard(ctx)
	require.NoError(t, err)

	for _, entry := range board {
		if entry.RoomID == "102" {
			assert.Equal(t, model.RoomVacant, entry.Status)
		}
	}

	var completed int
	for _, evt := range f.bus.History() {
		if evt.Type == eventModel.TypeHousekeepingTaskCompleted {
			completed++
		}
	}

	assert.Equal(t, 1, completed)
}

func TestHousekeeping_AdvanceTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	newTask := func(t *testing.T) model.Task {
		t.Helper()

		task, err := f.housekeeping.CreateTask(ctx, service.CreateTaskInput{RoomID: "101", Kind: model.KindMaintenance})
		require.NoError(t, err)

		return task
	}

	tests := []struct {
		name    string
		prepare []model.Status
		next    model.Status
		wantErr func(error) bool
	}{
		{name: "pending to in progress", next: model.StatusInProgress},
		{name: "pending straight to completed", next: model.StatusCompleted},
		{name: "pending to cancelled", next: model.StatusCancelled},
		{name: "in progress to cancelled", prepare: []model.Status{model.StatusInProgress}, next: model.StatusCancelled},
		{name: "completed back to pending", prepare: []model.Status{model.StatusCompleted}, next: model.StatusPending, wantErr: failure.IsState},
		{name: "in progress back to pending", prepare: []model.Status{model.StatusInProgress}, next: model.StatusPending, wantErr: failure.IsState},
		{name: "cancelled to completed", prepare: []model.Status{model.StatusCancelled}, next: model.StatusCompleted, wantErr: failure.IsState},
		{name: "unknown status", next: model.Status("paused"), wantErr: failure.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTask(t)

			for _, status := range tt.prepare {
				_, err := f.housekeeping.AdvanceTask(ctx, task.ID, status, nil)
				require.NoError(t, err)
			}

			advanced, err := f.housekeeping.AdvanceTask(ctx, task.ID, tt.next, nil)

			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), err)

				stored, getErr := f.housekeeping.Task(ctx, task.ID)
				require.NoError(t, getErr)
				assert.NotEqual(t, tt.next, stored.Status)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.next, advanced.Status)
		})
	}

	_, err := f.housekeeping.AdvanceTask(ctx, "missing", model.StatusCompleted, nil)
	assert.True(t, failure.IsNotFound(err))
}

func TestHousekeeping_CreateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	scheduled := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	first, err := f.housekeeping.CreateTask(ctx, service.CreateTaskInput{
		RoomID:      "101",
		Kind:        model.KindDeepClean,
		AssigneeID:  "s9",
		Notes:       "carpet shampoo",
		ScheduledAt: scheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, first.Status)
	assert.Equal(t, scheduled, first.ScheduledAt)
	assert.False(t, first.AutoCreated)

	second, err := f.housekeeping.CreateTask(ctx, service.CreateTaskInput{RoomID: "101", Kind: model.KindDeepClean})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, f.housekeeping.Tasks(ctx, model.TaskFilter{RoomID: "101"}), 2)

	_, err = f.housekeeping.CreateTask(ctx, service.CreateTaskInput{RoomID: "999", Kind: model.KindCleaning})
	assert.True(t, failure.IsNotFound(err))

	_, err = f.housekeeping.CreateTask(ctx, service.CreateTaskInput{RoomID: "101", Kind: "laundry"})
	assert.True(t, failure.IsValidation(err))
}

func TestHousekeeping_EnsureCleaningTaskAfterCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.housekeeping.EnsureCleaningTask(ctx, "101")
	require.NoError(t, err)

	again, err := f.housekeeping.EnsureCleaningTask(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = f.housekeeping.AdvanceTask(ctx, first.ID, model.StatusCompleted, nil)
	require.NoError(t, err)

	next, err := f.housekeeping.EnsureCleaningTask(ctx, "101")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, next.ID)
}

func TestHousekeeping_CleaningStatusDuringCleaningAddsPendingTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rooms.SetStatus(ctx, "102", roomModel.StatusCleaning, nil)
	require.NoError(t, err)

	first := cleaningTasks(t, f, "102")[0]
	_, err = f.housekeeping.AdvanceTask(ctx, first.ID, model.StatusInProgress, nil)
	require.NoError(t, err)

	_, err = f.rooms.SetStatus(ctx, "102", roomModel.StatusCleaning, nil)
	require.NoError(t, err)

	tasks := cleaningTasks(t, f, "102")
	require.Len(t, tasks, 2)

	var pending []model.Task
	for _, task := range tasks {
		if task.Status == model.StatusPending {
			pending = append(pending, task)
		}
	}

	require.Len(t, pending, 1)
	assert.NotEqual(t, first.ID, pending[0].ID)
}

func TestHousekeeping_RoomBoard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rooms.SetStatus(ctx, "101", roomModel.StatusMaintenance, nil)
	require.NoError(t, err)

	_, err = f.rooms.SetStatus(ctx, "102", roomModel.StatusOccupied, nil)
	require.NoError(t, err)

	// pending_inspection is not mirrored, 102 keeps its last housekeeping status
	_, err = f.rooms.SetStatus(ctx, "102", roomModel.StatusPendingInspection, nil)
	require.NoError(t, err)

	board, err := f.housekeeping.RoomBoard(ctx)
	require.NoError(t, err)

	statuses := make(map[string]model.RoomStatus, len(board))
	for _, entry := range board {
		statuses[entry.RoomID] = entry.Status
	}

	assert.Equal(t, map[string]model.RoomStatus{
		"101": model.RoomOutOfOrder,
		"102": model.RoomOccupied,
	}, statuses)
}

func TestHousekeeping_Staff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	member, err := f.housekeeping.AddStaff(ctx, service.AddStaffInput{Name: "Rina"})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultHousekeepingRole, member.Role)
	assert.True(t, member.Active)

	_, err = f.housekeeping.AddStaff(ctx, service.AddStaffInput{Name: " "})
	assert.True(t, failure.IsValidation(err))

	member, err = f.housekeeping.SetStaffActive(ctx, member.ID, false)
	require.NoError(t, err)
	assert.False(t, member.Active)

	task, err := f.housekeeping.EnsureCleaningTask(ctx, "101")
	require.NoError(t, err)
	assert.Empty(t, task.AssigneeID)

	_, err = f.housekeeping.SetStaffActive(ctx, "missing", true)
	assert.True(t, failure.IsNotFound(err))
	assert.Len(t, f.housekeeping.Staff(ctx), 1)
}

func TestHousekeeping_RoomReaderErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	otel := mocks.NewOtel()
	bus := eventService.New(cfg, otel)
	reader := hkMocks.NewMockRoomReader(ctrl)

	housekeeping := service.New(cfg, bus, reader, otel)
	defer housekeeping.Close()

	reader.EXPECT().
		Get(gomock.Any(), "404").
		Return(roomModel.Room{}, failure.NotFound("room 404 not found"))

	_, err := housekeeping.EnsureCleaningTask(context.Background(), "404")
	assert.True(t, failure.IsNotFound(err))

	reader.EXPECT().
		List(gomock.Any(), roomModel.Filter{}).
		Return(nil, failure.InternalError(assert.AnError))

	_, err = housekeeping.RoomBoard(context.Background())
	assert.Error(t, err)
}
