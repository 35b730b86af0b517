package model

import (
	"slices"
	"time"
)

const (
	EntityName = "reservation"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// transitions lists the statuses reachable from each status.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCheckedIn, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: nil,
	StatusCancelled:  nil,
}

func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the reservation currently holds its room.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

type Reservation struct {
	ID          string    `json:"id"`
	GuestID     string    `json:"guestId"`
	RoomID      string    `json:"roomId"`
	ArrivalAt   time.Time `json:"arrivalAt"`
	DepartureAt time.Time `json:"departureAt"`
	Status      Status    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
