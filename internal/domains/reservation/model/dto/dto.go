package dto

import (
	"time"

	"frontdesk/internal/domains/reservation/model"
)

type CreateReservationRequest struct {
	GuestID     string    `json:"guestId" validate:"required"`
	RoomID      string    `json:"roomId" validate:"required"`
	ArrivalAt   time.Time `json:"arrivalAt"`
	DepartureAt time.Time `json:"departureAt"`
	TotalAmount float64   `json:"totalAmount" validate:"gte=0"`
	Confirmed   bool      `json:"confirmed"`
}

type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,enum"`
}
