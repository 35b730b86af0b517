package model

import (
	"slices"
	"time"

	roomModel "frontdesk/internal/domains/room/model"
)

const (
	EntityName      = "housekeeping task"
	StaffEntityName = "staff"
)

// RoomStatus is the housekeeping board's own room vocabulary.
type RoomStatus string

const (
	RoomVacant     RoomStatus = "Vacant"
	RoomOccupied   RoomStatus = "Occupied"
	RoomCleaning   RoomStatus = "Cleaning"
	RoomOutOfOrder RoomStatus = "Out_of_Order"
)

func (s RoomStatus) String() string {
	return string(s)
}

// FromLifecycle translates a lifecycle status. pending_inspection has no
// housekeeping counterpart and reports false.
func FromLifecycle(status roomModel.Status) (RoomStatus, bool) {
	switch status {
	case roomModel.StatusVacant, roomModel.StatusReserved:
		return RoomVacant, true
	case roomModel.StatusOccupied:
		return RoomOccupied, true
	case roomModel.StatusCleaning:
		return RoomCleaning, true
	case roomModel.StatusMaintenance:
		return RoomOutOfOrder, true
	case roomModel.StatusPendingInspection:
		return "", false
	default:
		return "", false
	}
}

type Kind string

const (
	KindCleaning    Kind = "cleaning"
	KindMaintenance Kind = "maintenance"
	KindInspection  Kind = "inspection"
	KindDeepClean   Kind = "deep_clean"
)

var Kinds = []Kind{KindCleaning, KindMaintenance, KindInspection, KindDeepClean}

func (k Kind) IsValid() bool {
	return slices.Contains(Kinds, k)
}

func (k Kind) String() string {
	return string(k)
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

type Task struct {
	ID          string     `json:"id"`
	RoomID      string     `json:"roomId"`
	Kind        Kind       `json:"kind"`
	Status      Status     `json:"status"`
	AssigneeID  string     `json:"assigneeId,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	AutoCreated bool       `json:"autoCreated"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskFilter struct {
	RoomID string
	Status Status `validate:"omitempty,enum"`
	Kind   Kind   `validate:"omitempty,enum"`
}

func (f TaskFilter) Matches(task Task) bool {
	return (f.RoomID == "" || f.RoomID == task.RoomID) &&
		(f.Status == "" || f.Status == task.Status) &&
		(f.Kind == "" || f.Kind == task.Kind)
}

type Staff struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// BoardEntry is one room as the housekeeping board sees it.
type BoardEntry struct {
	RoomID    string     `json:"roomId"`
	Status    RoomStatus `json:"status"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
