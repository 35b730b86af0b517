package dto

import (
	"time"

	"frontdesk/internal/domains/housekeeping/model"
)

type CreateTaskRequest struct {
	RoomID      string     `json:"roomId" validate:"required"`
	Kind        model.Kind `json:"kind" validate:"required,enum"`
	AssigneeID  string     `json:"assigneeId"`
	Notes       string     `json:"notes" validate:"max=500"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

type AdvanceTaskRequest struct {
	Status      model.Status `json:"status" validate:"required,enum"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

type AddStaffRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Role string `json:"role" validate:"max=50"`
}

type SetStaffActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
