package model_test

import (
	"testing"

	"frontdesk/internal/domains/housekeeping/model"
	roomModel "frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestFromLifecycle(t *testing.T) {
	tests := []struct {
		status   roomModel.Status
		expected model.RoomStatus
		mapped   bool
	}{
		{roomModel.StatusVacant, model.RoomVacant, true},
		{roomModel.StatusOccupied, model.RoomOccupied, true},
		{roomModel.StatusReserved, model.RoomVacant, true},
		{roomModel.StatusCleaning, model.RoomCleaning, true},
		{roomModel.StatusMaintenance, model.RoomOutOfOrder, true},
		{roomModel.StatusPendingInspection, "", false},
		{roomModel.Status("unknown"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			got, ok := model.FromLifecycle(tt.status)

			assert.Equal(t, tt.mapped, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    model.Status
		to      model.Status
		allowed bool
	}{
		{model.StatusPending, model.StatusInProgress, true},
		{model.StatusPending, model.StatusCompleted, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusInProgress, model.StatusCompleted, true},
		{model.StatusInProgress, model.StatusCancelled, true},
		{model.StatusInProgress, model.StatusPending, false},
		{model.StatusCompleted, model.StatusPending, false},
		{model.StatusCompleted, model.StatusInProgress, false},
		{model.StatusCancelled, model.StatusCompleted, false},
		{model.StatusPending, model.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTaskFilter_Matches(t *testing.T) {
	task := model.Task{RoomID: "101", Kind: model.KindCleaning, Status: model.StatusPending}

	assert.True(t, model.TaskFilter{}.Matches(task))
	assert.True(t, model.TaskFilter{RoomID: "101", Kind: model.KindCleaning}.Matches(task))
	assert.False(t, model.TaskFilter{Status: model.StatusCompleted}.Matches(task))
	assert.False(t, model.TaskFilter{RoomID: "102"}.Matches(task))
}
