package model

import (
	"fmt"
	"slices"
	"time"

	reservationModel "frontdesk/internal/domains/reservation/model"
	roomModel "frontdesk/internal/domains/room/model"
)

// Type is the discriminator of an Event. The values are the wire contract
// shared by every module and by the outbound relay.
type Type string

const (
	TypeCheckinCompleted          Type = "CHECKIN_COMPLETED"
	TypeCheckoutCompleted         Type = "CHECKOUT_COMPLETED"
	TypeRoomInspectionCompleted   Type = "ROOM_INSPECTION_COMPLETED"
	TypeReservationCreated        Type = "RESERVATION_CREATED"
	TypeReservationUpdated        Type = "RESERVATION_UPDATED"
	TypeReservationCancelled      Type = "RESERVATION_CANCELLED"
	TypeRoomStatusChanged         Type = "ROOM_STATUS_CHANGED"
	TypeHousekeepingTaskCompleted Type = "HOUSEKEEPING_TASK_COMPLETED"
	TypeConsumptionAdded          Type = "CONSUMPTION_ADDED"
	TypeDamageReported            Type = "DAMAGE_REPORTED"
)

var Types = []Type{
	TypeCheckinCompleted,
	TypeCheckoutCompleted,
	TypeRoomInspectionCompleted,
	TypeReservationCreated,
	TypeReservationUpdated,
	TypeReservationCancelled,
	TypeRoomStatusChanged,
	TypeHousekeepingTaskCompleted,
	TypeConsumptionAdded,
	TypeDamageReported,
}

func (t Type) IsValid() bool {
	return slices.Contains(Types, t)
}

func (t Type) String() string {
	return string(t)
}

type Event struct {
	Sequence  uint64    `json:"sequence"`
	Type      Type      `json:"type"`
	Payload   any       `json:"payload"`
	EmittedAt time.Time `json:"emittedAt"`
}

func New(eventType Type, payload any) Event {
	return Event{
		Type:    eventType,
		Payload: payload,
	}
}

// Payload extracts the typed payload of an event.
func Payload[T any](evt Event) (T, bool) {
	payload, ok := evt.Payload.(T)

	return payload, ok
}

// roomScoped is implemented by every payload of the taxonomy.
type roomScoped interface {
	Room() string
}

// RoomID returns the room the event is about, or "" for foreign payloads.
func (e Event) RoomID() string {
	if scoped, ok := e.Payload.(roomScoped); ok {
		return scoped.Room()
	}

	return ""
}

// UnexpectedPayload reports a payload that does not match the event type.
func UnexpectedPayload(evt Event) error {
	return fmt.Errorf("unexpected payload %T for %s", evt.Payload, evt.Type)
}

// CheckinCompleted is the payload of CHECKIN_COMPLETED.
type CheckinCompleted struct {
	ReservationID string `json:"reservationId"`
	RoomID        string `json:"roomId"`
	GuestID       string `json:"guestId"`
}

func (p CheckinCompleted) Room() string { return p.RoomID }

// CheckoutCompleted is the payload of CHECKOUT_COMPLETED.
type CheckoutCompleted struct {
	ReservationID string `json:"reservationId"`
	RoomID        string `json:"roomId"`
	GuestID       string `json:"guestId"`
}

func (p CheckoutCompleted) Room() string { return p.RoomID }

// RoomInspectionCompleted is the payload of ROOM_INSPECTION_COMPLETED.
type RoomInspectionCompleted struct {
	RoomID         string `json:"roomId"`
	HasConsumption bool   `json:"hasConsumption"`
	HasDamage      bool   `json:"hasDamage"`
}

func (p RoomInspectionCompleted) Room() string { return p.RoomID }

// ReservationChanged is the payload of RESERVATION_CREATED, RESERVATION_UPDATED
// and RESERVATION_CANCELLED. The statuses are only set for RESERVATION_UPDATED.
type ReservationChanged struct {
	ReservationID  string                  `json:"reservationId"`
	RoomID         string                  `json:"roomId"`
	GuestID        string                  `json:"guestId"`
	Status         reservationModel.Status `json:"-"`
	PreviousStatus reservationModel.Status `json:"previousStatus,omitempty"`
	NewStatus      reservationModel.Status `json:"newStatus,omitempty"`
}

func (p ReservationChanged) Room() string { return p.RoomID }

// RoomStatusChanged is the payload of ROOM_STATUS_CHANGED.
type RoomStatusChanged struct {
	RoomID    string           `json:"roomId"`
	OldStatus roomModel.Status `json:"oldStatus"`
	NewStatus roomModel.Status `json:"newStatus"`
}

func (p RoomStatusChanged) Room() string { return p.RoomID }

// HousekeepingTaskCompleted is the payload of HOUSEKEEPING_TASK_COMPLETED.
type HousekeepingTaskCompleted struct {
	RoomID   string `json:"roomId"`
	TaskType string `json:"taskType"`
}

func (p HousekeepingTaskCompleted) Room() string { return p.RoomID }

// ChargeItem is one consumption or damage line carried by CONSUMPTION_ADDED / DAMAGE_REPORTED.
type ChargeItem struct {
	LineID   string  `json:"lineId"`
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// ChargeItemsReported is the payload of CONSUMPTION_ADDED and DAMAGE_REPORTED.
type ChargeItemsReported struct {
	RoomID        string       `json:"roomId"`
	ReservationID string       `json:"reservationId"`
	Items         []ChargeItem `json:"items"`
}

func (p ChargeItemsReported) Room() string { return p.RoomID }
