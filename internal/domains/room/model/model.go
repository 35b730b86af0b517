package model

import (
	"slices"
	"time"
)

const (
	EntityName = "room"
)

// Status is the lifecycle status of a room. CustomStatus never changes it.
type Status string

const (
	StatusVacant            Status = "vacant"
	StatusReserved          Status = "reserved"
	StatusOccupied          Status = "occupied"
	StatusPendingInspection Status = "pending_inspection"
	StatusCleaning          Status = "cleaning"
	StatusMaintenance       Status = "maintenance"
)

var Statuses = []Status{
	StatusVacant,
	StatusReserved,
	StatusOccupied,
	StatusPendingInspection,
	StatusCleaning,
	StatusMaintenance,
}

func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

func (s Status) String() string {
	return string(s)
}

// QuickAction is a status-conditional operation offered for a room.
type QuickAction string

const (
	QuickActionReserve      QuickAction = "reserve"
	QuickActionCheckIn      QuickAction = "check_in"
	QuickActionCheckout     QuickAction = "checkout"
	QuickActionChangeStatus QuickAction = "change_status"
)

// CustomStatus is a display-only overlay (label and color).
type CustomStatus struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type RoomType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BaseRate float64 `json:"baseRate"`
}

type Room struct {
	ID             string        `json:"id"`
	Number         string        `json:"number"`
	Floor          int           `json:"floor"`
	Type           RoomType      `json:"type"`
	Status         Status        `json:"status"`
	CustomStatus   *CustomStatus `json:"customStatus,omitempty"`
	CurrentGuestID string        `json:"currentGuestId,omitempty"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// Clone returns a copy that does not share the custom status pointer.
func (r Room) Clone() Room {
	if r.CustomStatus != nil {
		custom := *r.CustomStatus
		r.CustomStatus = &custom
	}

	return r
}

// DisplayStatus is the label a board shows: the custom label when set, otherwise the status.
func (r Room) DisplayStatus() string {
	if r.CustomStatus != nil && r.CustomStatus.Name != "" {
		return r.CustomStatus.Name
	}

	return string(r.Status)
}

type Statistics struct {
	Total         int            `json:"total"`
	ByStatus      map[Status]int `json:"byStatus"`
	OccupancyRate float64        `json:"occupancyRate"`
}

// Filter narrows List. An empty Status matches every status; Search is a
// case-insensitive substring over number, type name, guest name and custom label.
type Filter struct {
	Status Status
	Search string
}

// QuickActionsFor returns the actions permitted for the room's current status.
func QuickActionsFor(room Room) []QuickAction {
	actions := make([]QuickAction, 0, 3)

	switch room.Status {
	case StatusVacant:
		actions = append(actions, QuickActionReserve, QuickActionCheckIn)
	case StatusReserved:
		actions = append(actions, QuickActionCheckIn)
	case StatusOccupied:
		actions = append(actions, QuickActionCheckout)
	case StatusPendingInspection, StatusCleaning, StatusMaintenance:
	}

	return append(actions, QuickActionChangeStatus)
}
